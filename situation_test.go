package chesscore

import "testing"

func TestStartingPositionLegalMoveCount(t *testing.T) {
	s := NewSituation()
	legal := s.LegalMoves()
	if got := legal.Len(); got != 20 {
		t.Fatalf("legal moves from the starting position = %d, want 20", got)
	}
}

func TestRuyLopezSequenceStaysLegal(t *testing.T) {
	s := NewSituation()
	moves := []struct{ from, to Square }{
		{E2, E4}, {E7, E5},
		{G1, F3}, {B8, C6},
		{F1, B5},
	}
	for _, step := range moves {
		legal := s.LegalMoves()
		found := false
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			if m.From == step.from && m.To == step.to {
				s = s.ApplyMove(m)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s-%s was not in the legal move list", step.from, step.to)
		}
	}
	if s.InCheck() {
		t.Fatalf("black should not be in check after Bb5")
	}
	legal := s.LegalMoves()
	found := false
	for i := 0; i < legal.Len(); i++ {
		if m := legal.At(i); m.From == A7 && m.To == A6 {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("a7-a6 should be legal for black after the Ruy Lopez sequence")
	}
}

func TestEnPassantOnlyImmediatelyAfterDoublePush(t *testing.T) {
	// White plays e4, black replies with a knight move (not a pawn push),
	// so white's e4 pawn no longer has anything to capture en passant,
	// and black's reply does not create a fresh en-passant target either.
	s := NewSituation()
	s = applyFromTo(t, s, E2, E4)
	s = applyFromTo(t, s, B8, C6)

	if sq := s.EnPassantSquare(); sq != NoSquare {
		t.Fatalf("EnPassantSquare() = %s, want none (last move was not a double pawn push)", sq)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	s := NewSituation()
	shuffle := []struct{ from, to Square }{
		{G1, F3}, {G8, F6},
		{F3, G1}, {F6, G8},
		{G1, F3}, {G8, F6},
		{F3, G1}, {F6, G8},
	}
	for _, step := range shuffle {
		s = applyFromTo(t, s, step.from, step.to)
	}
	if !s.History.Hashes.ThreefoldRepetition() {
		t.Fatalf("expected threefold repetition after repeating the starting position three times")
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate: 1.f3 e5 2.g4 Qh4#
	s := NewSituation()
	s = applyFromTo(t, s, F2, F3)
	s = applyFromTo(t, s, E7, E5)
	s = applyFromTo(t, s, G2, G4)
	s = applyFromTo(t, s, D8, H4)

	if !s.InCheck() {
		t.Fatalf("white should be in check after Qh4#")
	}
	legal := s.LegalMoves()
	if got := legal.Len(); got != 0 {
		t.Fatalf("legal moves after Qh4# = %d, want 0 (checkmate)", got)
	}
}

func applyFromTo(t *testing.T, s *Situation, from, to Square) *Situation {
	t.Helper()
	legal := s.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From == from && m.To == to {
			return s.ApplyMove(m)
		}
	}
	t.Fatalf("no legal move %s-%s in position", from, to)
	return nil
}
