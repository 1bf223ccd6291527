package chesscore

import "testing"

func TestAntichessForcesCaptures(t *testing.T) {
	s := NewSituationWithRules(Antichess{})
	// 1.e4 d5, now exd5 is available and must be forced.
	s = applyFromTo(t, s, E2, E4)
	s = applyFromTo(t, s, D7, D5)

	legal := s.LegalMoves()
	if legal.Len() != 1 {
		t.Fatalf("legal moves = %d, want exactly 1 forced capture", legal.Len())
	}
	if m := legal.At(0); !(m.From == E4 && m.To == D5) {
		t.Fatalf("forced move = %s-%s, want e4-d5", m.From, m.To)
	}
}

func TestAtomicExplosionRemovesKingRing(t *testing.T) {
	var board Board
	board.Put(Piece{White, King}, E1)
	board.Put(Piece{Black, King}, E8)
	board.Put(Piece{White, Queen}, D4)
	board.Put(Piece{Black, Bishop}, E5)
	board.Put(Piece{White, Knight}, D6) // sits in e5's king-ring, should be blown up too
	s2 := NewSituationFromParts(board, White, Atomic{}, History{FullMoveNumber: 1})

	var capture *Move
	legal := s2.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From == D4 && m.To == E5 {
			capture = &m
			break
		}
	}
	if capture == nil {
		t.Fatalf("expected Qxe5 to be legal")
	}
	next := s2.ApplyMove(*capture)
	if _, ok := next.Board.PieceAt(E5); ok {
		t.Fatalf("the captured bishop's square should be empty after the explosion")
	}
	if _, ok := next.Board.PieceAt(D6); ok {
		t.Fatalf("the knight in e5's king-ring should have exploded too")
	}
	if next.Board.King(White) == NoSquare {
		t.Fatalf("white's own king on e1 is outside the ring and should survive")
	}
}

func TestAtomicPawnCaptureRemovesCapturingPawn(t *testing.T) {
	var board Board
	board.Put(Piece{White, King}, E1)
	board.Put(Piece{Black, King}, H8)
	board.Put(Piece{White, Pawn}, E5)
	board.Put(Piece{Black, Knight}, F6)
	s := NewSituationFromParts(board, White, Atomic{}, History{FullMoveNumber: 1})

	var capture *Move
	legal := s.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From == E5 && m.To == F6 {
			capture = &m
			break
		}
	}
	if capture == nil {
		t.Fatalf("expected exf6 to be legal")
	}
	next := s.ApplyMove(*capture)
	if _, ok := next.Board.PieceAt(F6); ok {
		t.Fatalf("the capturing pawn should have exploded along with its victim")
	}
}

func TestRacingKingsGoal(t *testing.T) {
	board := Board{}
	board.Put(Piece{White, King}, A7)
	board.Put(Piece{Black, King}, H1)
	s := NewSituationFromParts(board, White, RacingKings{}, History{FullMoveNumber: 1})

	legal := s.LegalMoves()
	var toGoal *Move
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.To.Rank() == 7 {
			toGoal = &m
			break
		}
	}
	if toGoal == nil {
		t.Fatalf("expected a move reaching the 8th rank to be legal")
	}
	next := s.ApplyMove(*toGoal)
	outcome, ok := RacingKings{}.Outcome(next)
	if !ok || !outcome.Decisive || outcome.Winner != White {
		t.Fatalf("outcome = %+v, ok=%v, want a decisive white win", outcome, ok)
	}
}

// TestThreeCheckCountsChecksGivenNotReceived guards against the counter
// tracking the wrong side: delivering a check must increment the
// mover's own count (checks given), not the victim's, or a player who
// has been checked three times would wrongly win instead of lose.
func TestThreeCheckCountsChecksGivenNotReceived(t *testing.T) {
	var board Board
	board.Put(Piece{White, King}, E1)
	board.Put(Piece{Black, King}, H8)
	board.Put(Piece{White, Rook}, A1)
	s := NewSituationFromParts(board, White, ThreeCheck{}, History{
		FullMoveNumber: 1,
		CheckCount:     CheckCount{White: 2, Black: 0},
	})

	var check *Move
	legal := s.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		if m := legal.At(i); m.From == A1 && m.To == A8 {
			check = &m
			break
		}
	}
	if check == nil {
		t.Fatalf("expected Ra1-a8 (delivering check along the 8th rank) to be legal")
	}

	next := s.ApplyMove(*check)
	if !next.InCheck() {
		t.Fatalf("black should be in check after Ra8+")
	}
	if got := next.History.CheckCount.Of(White); got != 3 {
		t.Fatalf("white's check count = %d, want 3 (white delivered this check)", got)
	}
	if got := next.History.CheckCount.Of(Black); got != 0 {
		t.Fatalf("black's check count = %d, want 0 (black has given no checks)", got)
	}

	outcome, ok := ThreeCheck{}.Outcome(next)
	if !ok || !outcome.Decisive || outcome.Winner != White {
		t.Fatalf("outcome = %+v, ok=%v, want a decisive white win (white delivered 3 checks)", outcome, ok)
	}
}
