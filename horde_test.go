package chesscore

import "testing"

// TestHordeStartingPositionHasPawnMoves guards against a generator that
// only special-cases the kingless side for drops (Crazyhouse) and
// forgets ordinary piece moves: White has no king in Horde, so the
// legal-move generator's usual "find our king first" path does not
// apply, but White's pawns and pieces still need to move normally.
func TestHordeStartingPositionHasPawnMoves(t *testing.T) {
	s := NewSituationWithRules(Horde{})
	if s.Board.King(White) != NoSquare {
		t.Fatalf("horde white should start with no king")
	}
	legal := s.LegalMoves()
	if legal.Len() == 0 {
		t.Fatalf("white should have legal pawn moves from the horde starting position")
	}
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).Piece.Role != Pawn {
			t.Fatalf("every legal first move in the horde starting position should be a pawn push, got %+v", legal.At(i))
		}
	}
}

// TestHordeEliminationWins checks the Horde-specific terminal condition:
// White loses once it has no pieces left.
func TestHordeEliminationWins(t *testing.T) {
	var board Board
	board.Put(Piece{Black, King}, E8)
	board.Put(Piece{Black, Queen}, D1)
	s := NewSituationFromParts(board, White, Horde{}, History{FullMoveNumber: 1})

	outcome, ok := Horde{}.Outcome(s)
	if !ok || !outcome.Decisive || outcome.Winner != Black {
		t.Fatalf("outcome = %+v, ok=%v, want a decisive black win once white has no pieces", outcome, ok)
	}
}
