package chesscore

// UnmovedRooks is the Chess960 generalization of castling rights: the set
// of rook home squares (any file, not just a/h) that still retain the
// right to castle. Castles is derived from it but cached for quick access.
type UnmovedRooks Bitboard

// CastleSide identifies one of the four possible castling rights.
type CastleSide uint8

const (
	WhiteKingside CastleSide = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Castles is a 4-bit mask over the four CastleSide values.
type Castles uint8

// Has reports whether side is still available.
func (c Castles) Has(side CastleSide) bool { return c&(1<<side) != 0 }

func (c Castles) without(side CastleSide) Castles { return c &^ (1 << side) }

// sideOf returns the CastleSide for color c's kingside/queenside right.
func sideOf(c Color, kingside bool) CastleSide {
	switch {
	case c == White && kingside:
		return WhiteKingside
	case c == White && !kingside:
		return WhiteQueenside
	case c == Black && kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// CheckCount is a pair of non-negative per-color check counters, used by
// the Three-check variant. It is monotonically non-decreasing.
type CheckCount struct {
	White, Black int
}

// Of returns the counter for color c.
func (cc CheckCount) Of(c Color) int { return Fold(c, cc.White, cc.Black) }

// Incremented returns cc with color c's counter incremented by one.
func (cc CheckCount) Incremented(c Color) CheckCount {
	if c == White {
		cc.White++
	} else {
		cc.Black++
	}
	return cc
}

// hashEntrySize is the width, in bytes, of one PositionHash entry.
const hashEntrySize = 3

// PositionHash is an append-only sequence of fixed-size position digests,
// used to detect repetition. Each entry mixes piece placement, side to
// move, castling rights, and (when a legal capture is actually available)
// the en-passant target square of one past position.
type PositionHash []byte

// Append returns a new PositionHash with digest appended (the receiver is
// never mutated).
func (h PositionHash) Append(digest [hashEntrySize]byte) PositionHash {
	out := make(PositionHash, len(h), len(h)+hashEntrySize)
	copy(out, h)
	return append(out, digest[:]...)
}

// Len returns the number of entries recorded.
func (h PositionHash) Len() int { return len(h) / hashEntrySize }

// entry returns the i'th entry from the end (0 = most recent).
func (h PositionHash) entry(i int) ([hashEntrySize]byte, bool) {
	n := h.Len()
	if i < 0 || i >= n {
		return [hashEntrySize]byte{}, false
	}
	idx := len(h) - (i+1)*hashEntrySize
	var out [hashEntrySize]byte
	copy(out[:], h[idx:idx+hashEntrySize])
	return out, true
}

// kFoldRepetition reports whether some position (sampled at stride 2,
// i.e. same side to move) recurs at least k times among the stored
// entries, most-recent first.
func (h PositionHash) kFoldRepetition(k int) bool {
	counts := make(map[[hashEntrySize]byte]int)
	for i := 0; ; i += 2 {
		e, ok := h.entry(i)
		if !ok {
			break
		}
		counts[e]++
		if counts[e] >= k {
			return true
		}
	}
	return false
}

// ThreefoldRepetition reports whether the current position has occurred
// three or more times with the same side to move.
func (h PositionHash) ThreefoldRepetition() bool { return h.kFoldRepetition(3) }

// FivefoldRepetition reports whether the current position has occurred
// five or more times with the same side to move.
func (h PositionHash) FivefoldRepetition() bool { return h.kFoldRepetition(5) }

// History holds every piece of Situation state that is not piece
// placement: the move that produced the current position (needed to
// reconstruct en-passant eligibility), the running hash used for
// repetition detection, castling rights, per-color check counts, and the
// half-move clock. It is replaced by value on every applied move; the
// parent History is never mutated.
type History struct {
	LastMove     *Move
	Hashes       PositionHash
	Castles      Castles
	UnmovedRooks UnmovedRooks
	// RookSquare maps each CastleSide to the home square of the rook that
	// backs it. Fixed for the lifetime of a game (even a Chess960 one):
	// a right is lost when its bit disappears from UnmovedRooks, never by
	// RookSquare changing.
	RookSquare     [4]Square
	CheckCount     CheckCount
	HalfMoveClock  int
	FullMoveNumber int
	// Pockets holds Crazyhouse captured-piece reserves, indexed by
	// [Color][Role] (Role in pawn..queen; king is never pocketed). Zero
	// value for every variant that doesn't use pockets.
	Pockets [2][5]int
}
