package chesscore

import "github.com/lucidchess/core/attacks"

// Rules plugs variant-specific behavior into an otherwise shared legal
// move generator: where a game starts, which pseudo-legal moves are kept
// or added, what happens to the board after a move is applied beyond the
// ordinary piece placement, and when the game is over. Standard chess is
// just the Rules implementation that changes nothing.
type Rules interface {
	// Name identifies the variant for logging and FEN/PGN tagging.
	Name() string

	StartingBoard() Board
	StartingCastles() Castles
	StartingUnmovedRooks() UnmovedRooks

	// FilterMoves adjusts a pseudo-legal-filtered-to-legal move list in
	// place for variant-specific legality (e.g. Antichess forces capture,
	// Racing Kings drops every move that gives check).
	FilterMoves(s *Situation, list *MoveList)

	// FinalizeMove applies any board effects beyond ordinary placement
	// that follow from m having been played in next (e.g. Atomic's
	// explosion, Crazyhouse pocket bookkeeping). prev is the situation m
	// was played from, for variants that need to inspect state the move
	// already overwrote in next (e.g. whether a captured piece on m.To
	// had been promoted).
	FinalizeMove(prev, next *Situation, m Move)

	// PromotionRoles lists the roles a pawn may promote to.
	PromotionRoles() []Role

	// Outcome reports the game result if s is terminal, or ok=false if
	// the game continues.
	Outcome(s *Situation) (result Outcome, ok bool)
}

// Outcome describes how a finished game ended.
type Outcome struct {
	Winner Color // meaningful only when Decisive is true
	Decisive bool
	Reason string
}

var standardPromotionRoles = []Role{Queen, Rook, Bishop, Knight}

// Standard implements ordinary FIDE chess rules (the baseline that
// ThreeCheck, Atomic, Crazyhouse and Horde embed and override pieces of).
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) StartingBoard() Board { return standardBoard() }

func (Standard) StartingCastles() Castles {
	return 1<<WhiteKingside | 1<<WhiteQueenside | 1<<BlackKingside | 1<<BlackQueenside
}

func (Standard) StartingUnmovedRooks() UnmovedRooks {
	return UnmovedRooks(A1.Bitboard() | H1.Bitboard() | A8.Bitboard() | H8.Bitboard())
}

func (Standard) FilterMoves(*Situation, *MoveList) {}

func (Standard) FinalizeMove(prev, next *Situation, m Move) {}

func (Standard) PromotionRoles() []Role { return standardPromotionRoles }

func (Standard) Outcome(s *Situation) (Outcome, bool) {
	legal := s.LegalMoves()
	if legal.Len() == 0 {
		if s.InCheck() {
			return Outcome{Winner: s.SideToMove.Other(), Decisive: true, Reason: "checkmate"}, true
		}
		return Outcome{Reason: "stalemate"}, true
	}
	if s.History.HalfMoveClock >= 100 {
		return Outcome{Reason: "fifty-move rule"}, true
	}
	if s.History.Hashes.FivefoldRepetition() {
		return Outcome{Reason: "fivefold repetition"}, true
	}
	if insufficientMaterial(&s.Board) {
		return Outcome{Reason: "insufficient material"}, true
	}
	return Outcome{}, false
}

// insufficientMaterial reports the classical "no sequence of legal moves
// can ever produce checkmate" material shortage: king vs king, king+minor
// vs king, or king+bishop vs king+bishop with both bishops on the same
// color complex.
func insufficientMaterial(b *Board) bool {
	if b.ByRole(Pawn).NonEmpty() || b.ByRole(Rook).NonEmpty() || b.ByRole(Queen).NonEmpty() {
		return false
	}
	minors := b.ByRole(Knight) | b.ByRole(Bishop)
	if minors.Count() == 0 {
		return true
	}
	if minors.Count() == 1 {
		return true
	}
	if minors.Count() == 2 && b.ByRole(Bishop).Count() == 2 {
		bishops := b.ByRole(Bishop)
		first := bishops.First()
		rest := bishops.Remove(first)
		second := rest.First()
		return sameColorComplex(first, second)
	}
	return false
}

func sameColorComplex(a, b Square) bool {
	return (a.File()+a.Rank())%2 == (b.File()+b.Rank())%2
}

// ThreeCheck is ordinary chess, won early by whoever delivers three
// checks.
type ThreeCheck struct{ Standard }

func (ThreeCheck) Name() string { return "three-check" }

func (v ThreeCheck) Outcome(s *Situation) (Outcome, bool) {
	if s.History.CheckCount.Of(s.SideToMove.Other()) >= 3 {
		return Outcome{Winner: s.SideToMove.Other(), Decisive: true, Reason: "three checks"}, true
	}
	return v.Standard.Outcome(s)
}

// Antichess (giveaway) removes check/checkmate entirely: captures are
// mandatory when available, and a side wins by losing every piece or by
// being stalemated.
type Antichess struct{}

func (Antichess) Name() string { return "antichess" }
func (Antichess) StartingBoard() Board { return standardBoard() }
func (Antichess) StartingCastles() Castles { return 0 }
func (Antichess) StartingUnmovedRooks() UnmovedRooks { return 0 }
func (Antichess) FinalizeMove(prev, next *Situation, m Move) {}
func (Antichess) PromotionRoles() []Role { return standardPromotionRoles }

func (Antichess) FilterMoves(s *Situation, list *MoveList) {
	anyCapture := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).IsCapture() {
			anyCapture = true
			break
		}
	}
	if !anyCapture {
		return
	}
	var filtered MoveList
	for i := 0; i < list.Len(); i++ {
		if m := list.At(i); m.IsCapture() {
			filtered.Push(m)
		}
	}
	*list = filtered
}

func (Antichess) Outcome(s *Situation) (Outcome, bool) {
	if s.Board.ByColor(s.SideToMove).IsEmpty() {
		return Outcome{Winner: s.SideToMove, Decisive: true, Reason: "lost all pieces"}, true
	}
	legal := s.LegalMoves()
	if legal.Len() == 0 {
		return Outcome{Winner: s.SideToMove, Decisive: true, Reason: "stalemated"}, true
	}
	return Outcome{}, false
}

// Atomic: captures explode, removing every non-pawn piece in the
// surrounding king-ring from both sides (including the capturing piece
// and, possibly, a king — which ends the game immediately).
type Atomic struct{ Standard }

func (Atomic) Name() string { return "atomic" }

func (v Atomic) FinalizeMove(prev, next *Situation, m Move) {
	if !m.IsCapture() {
		return
	}
	center := m.To
	next.Board.Take(center) // the capturer always self-destructs, pawn or not
	kingAttacksBB(center).Foreach(func(sq Square) {
		p, ok := next.Board.PieceAt(sq)
		if ok && p.Role != Pawn {
			next.Board.Take(sq)
		}
	})
}

func (v Atomic) Outcome(s *Situation) (Outcome, bool) {
	if s.Board.King(White) == NoSquare {
		return Outcome{Winner: Black, Decisive: true, Reason: "white king exploded"}, true
	}
	if s.Board.King(Black) == NoSquare {
		return Outcome{Winner: White, Decisive: true, Reason: "black king exploded"}, true
	}
	return v.Standard.Outcome(s)
}

// Crazyhouse: captured pieces join the capturing side's pocket (tracked
// in History.Pockets) and may later be dropped back onto the board
// instead of moved.
type Crazyhouse struct{ Standard }

func (Crazyhouse) Name() string { return "crazyhouse" }

func (Crazyhouse) FinalizeMove(prev, next *Situation, m Move) {
	switch m.Kind {
	case NormalMove:
		if m.Capture != NoRole {
			role := m.Capture
			if prev.Board.WasPromoted(m.To) {
				role = Pawn
			}
			next.History.Pockets[m.Piece.Color][role]++
		}
	case EnPassantMove:
		next.History.Pockets[m.Piece.Color][Pawn]++
	case DropMove:
		next.History.Pockets[m.Piece.Color][m.DropRole]--
	}
}

func (Crazyhouse) PromotionRoles() []Role { return standardPromotionRoles }

// RacingKings: no checks ever occur (check is illegal to deliver); the
// first side to march its king to the 8th rank wins, except that when
// Black arrives first White gets one reply, and a White king reaching the
// 8th rank with it makes the game a draw.
type RacingKings struct{}

func (RacingKings) Name() string { return "racing kings" }
func (RacingKings) StartingCastles() Castles { return 0 }
func (RacingKings) StartingUnmovedRooks() UnmovedRooks { return 0 }
func (RacingKings) FinalizeMove(prev, next *Situation, m Move) {}
func (RacingKings) PromotionRoles() []Role { return nil }

func (RacingKings) StartingBoard() Board {
	var b Board
	backRank := [8]Role{Knight, Rook, Bishop, Queen, King, Bishop, Rook, Knight}
	for file := 0; file < 8; file++ {
		b.Put(Piece{White, backRank[file]}, SquareAt(file, 0))
		b.Put(Piece{Black, backRank[file]}, SquareAt(file, 1))
	}
	return b
}

// FilterMoves drops any move that would give check: Racing Kings forbids
// delivering check entirely (there is no way to win by checkmate, only
// by racing a king to the 8th rank).
func (RacingKings) FilterMoves(s *Situation, list *MoveList) {
	mover := s.SideToMove
	var filtered MoveList
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		after := s.ApplyMove(m)
		opponentKing := after.Board.King(mover.Other())
		if opponentKing != NoSquare && after.Board.IsAttacked(opponentKing, mover) {
			continue
		}
		filtered.Push(m)
	}
	*list = filtered
}

func (RacingKings) Outcome(s *Situation) (Outcome, bool) {
	whiteOnRank8 := s.Board.King(White) != NoSquare && s.Board.King(White).Rank() == 7
	blackOnRank8 := s.Board.King(Black) != NoSquare && s.Board.King(Black).Rank() == 7
	if whiteOnRank8 && blackOnRank8 {
		return Outcome{Reason: "both kings reached the goal"}, true
	}
	if whiteOnRank8 {
		return Outcome{Winner: White, Decisive: true, Reason: "white king reached the goal"}, true
	}
	if blackOnRank8 {
		if s.SideToMove == White {
			legal := s.LegalMoves()
			for i := 0; i < legal.Len(); i++ {
				if m := legal.At(i); m.Piece.Role == King && m.To.Rank() == 7 {
					return Outcome{}, false
				}
			}
		}
		return Outcome{Winner: Black, Decisive: true, Reason: "black king reached the goal"}, true
	}
	legal := s.LegalMoves()
	if legal.Len() == 0 {
		return Outcome{Reason: "stalemate"}, true
	}
	return Outcome{}, false
}

// Horde: White has a horde of pawns instead of a full army and no king;
// Black plays a normal army. Black wins by capturing every White piece;
// White wins by checkmating Black's king.
type Horde struct{ Standard }

func (Horde) Name() string { return "horde" }
func (Horde) StartingCastles() Castles { return 1<<BlackKingside | 1<<BlackQueenside }
func (Horde) StartingUnmovedRooks() UnmovedRooks {
	return UnmovedRooks(A8.Bitboard() | H8.Bitboard())
}

func (Horde) StartingBoard() Board {
	var b Board
	backRank := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.Put(Piece{Black, backRank[file]}, SquareAt(file, 7))
		b.Put(Piece{Black, Pawn}, SquareAt(file, 6))
	}
	for file := 0; file < 8; file++ {
		b.Put(Piece{White, Pawn}, SquareAt(file, 1))
		b.Put(Piece{White, Pawn}, SquareAt(file, 2))
		if file == 0 || file == 7 {
			continue
		}
		b.Put(Piece{White, Pawn}, SquareAt(file, 3))
	}
	b.Put(Piece{White, Pawn}, SquareAt(1, 0))
	b.Put(Piece{White, Pawn}, SquareAt(2, 0))
	b.Put(Piece{White, Pawn}, SquareAt(5, 0))
	b.Put(Piece{White, Pawn}, SquareAt(6, 0))
	return b
}

func (v Horde) Outcome(s *Situation) (Outcome, bool) {
	if s.Board.ByColor(White).IsEmpty() {
		return Outcome{Winner: Black, Decisive: true, Reason: "horde eliminated"}, true
	}
	return v.Standard.Outcome(s)
}

func kingAttacksBB(sq Square) Bitboard {
	return Bitboard(attacks.KingAttacks(int(sq)))
}
