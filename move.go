package chesscore

// MoveKind tags the variant of a Move.
type MoveKind uint8

const (
	// NormalMove covers quiet moves, captures, promotions, and castling
	// (castling is distinguished by a non-nil Castle field).
	NormalMove MoveKind = iota
	// EnPassantMove is a pawn capturing a pawn that does not occupy the
	// destination square.
	EnPassantMove
	// DropMove places a pocketed piece on an empty square (Crazyhouse
	// only).
	DropMove
)

// Castle describes the rook's half of a castling move. King movement is
// carried by the enclosing Move's From/To.
type Castle struct {
	RookFrom, RookTo Square
}

// Move is a tagged union of the three ways a Situation can be advanced:
// a Normal move (optionally a capture, a promotion, or a castle), an
// EnPassant capture, or a Crazyhouse Drop. Which fields are meaningful
// depends on Kind.
type Move struct {
	Kind Kind

	// Normal, EnPassant: the moving piece and its origin/destination.
	Piece Piece
	From  Square
	To    Square

	// Normal: the captured role, or NoRole if the move is not a capture.
	Capture Role
	// Normal: the promotion role, or NoRole if the move is not a
	// promotion.
	Promotion Role
	// Normal: non-nil only when this move is a castle.
	Castle *Castle

	// EnPassant: the square of the captured pawn (distinct from To).
	CapturedPawnSquare Square

	// Drop: the role placed and the color doing the dropping (taken from
	// Piece.Color); To is the destination square.
	DropRole Role
}

// Kind is an alias retained for readability at call sites (`m.Kind ==
// chesscore.EnPassantMove` reads awkwardly as `m.Kind ==
// chesscore.EnPassantMoveKind`); MoveKind is the real type.
type Kind = MoveKind

// IsCapture reports whether m removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Kind == EnPassantMove || (m.Kind == NormalMove && m.Capture != NoRole)
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool { return m.Kind == NormalMove && m.Castle != nil }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind == NormalMove && m.Promotion != NoRole }

// NewNormalMove builds a quiet or capturing Normal move.
func NewNormalMove(piece Piece, from, to Square, capture Role) Move {
	return Move{Kind: NormalMove, Piece: piece, From: from, To: to, Capture: capture, Promotion: NoRole}
}

// NewPromotionMove builds a Normal move that promotes to promotion,
// optionally capturing a piece on the destination square.
func NewPromotionMove(piece Piece, from, to Square, capture, promotion Role) Move {
	return Move{Kind: NormalMove, Piece: piece, From: from, To: to, Capture: capture, Promotion: promotion}
}

// NewCastleMove builds the castling Move: the king moves from kingFrom to
// kingTo, the rook from rookFrom to rookTo.
func NewCastleMove(color Color, kingFrom, kingTo, rookFrom, rookTo Square) Move {
	return Move{
		Kind: NormalMove, Piece: Piece{color, King}, From: kingFrom, To: kingTo,
		Capture: NoRole, Promotion: NoRole, Castle: &Castle{RookFrom: rookFrom, RookTo: rookTo},
	}
}

// NewEnPassantMove builds an en-passant capture.
func NewEnPassantMove(color Color, from, to, capturedPawn Square) Move {
	return Move{Kind: EnPassantMove, Piece: Piece{color, Pawn}, From: from, To: to, CapturedPawnSquare: capturedPawn}
}

// NewDropMove builds a Crazyhouse piece drop.
func NewDropMove(color Color, role Role, to Square) Move {
	return Move{Kind: DropMove, Piece: Piece{color, role}, To: to, DropRole: role, Capture: NoRole, Promotion: NoRole}
}

// maxOrdinaryLegalMoves is the maximum number of legal moves in any
// reachable ordinary-chess position (218, from the well-known position
// R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1), used to
// preallocate MoveList's backing array so ordinary move generation never
// needs to grow a slice. Crazyhouse drops can exceed this (a full pocket
// can be dropped on any of dozens of empty squares), so Push falls back
// to append once the array is exhausted instead of panicking.
const maxOrdinaryLegalMoves = 218

// MoveList is a move buffer backed by a fixed-size array for the common
// case and an overflow slice for the rare case (Crazyhouse drops) that
// exceeds it.
type MoveList struct {
	moves    [maxOrdinaryLegalMoves]Move
	overflow []Move
	n        int
}

// Push appends m.
func (l *MoveList) Push(m Move) {
	if l.n < len(l.moves) {
		l.moves[l.n] = m
		l.n++
		return
	}
	l.overflow = append(l.overflow, m)
	l.n++
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move {
	if i < len(l.moves) {
		return l.moves[i]
	}
	return l.overflow[i-len(l.moves)]
}

// Slice returns every stored move as a freshly allocated plain slice.
func (l *MoveList) Slice() []Move {
	out := make([]Move, l.n)
	copied := copy(out, l.moves[:min(l.n, len(l.moves))])
	copy(out[copied:], l.overflow)
	return out
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() {
	l.n = 0
	l.overflow = l.overflow[:0]
}

// Contains reports whether a move with the same from/to/kind/promotion
// as m is present.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		o := l.At(i)
		if o.From == m.From && o.To == m.To && o.Kind == m.Kind && o.Promotion == m.Promotion && o.DropRole == m.DropRole {
			return true
		}
	}
	return false
}
