package chesscore

import "testing"

func TestSANPawnAndKnightMoves(t *testing.T) {
	s := NewSituation()
	legal := s.LegalMoves()

	cases := []struct {
		from, to Square
		want     string
	}{
		{E2, E4, "e4"},
		{G1, F3, "Nf3"},
	}
	for _, c := range cases {
		var found *Move
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			if m.From == c.from && m.To == c.to {
				found = &m
				break
			}
		}
		if found == nil {
			t.Fatalf("move %s-%s not found among legal moves", c.from, c.to)
		}
		next := s.ApplyMove(*found)
		nextLegal := next.LegalMoves()
		got := SAN(*found, s, legal, next.InCheck(), nextLegal.Len() == 0)
		if got != c.want {
			t.Errorf("SAN(%s-%s) = %q, want %q", c.from, c.to, got, c.want)
		}
	}
}

func TestSANCastling(t *testing.T) {
	s, err := situationFromMoves(
		"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5",
	)
	if err != nil {
		t.Fatalf("setting up position: %v", err)
	}
	legal := s.LegalMoves()
	var castle *Move
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.IsCastle() {
			castle = &m
			break
		}
	}
	if castle == nil {
		t.Fatalf("expected a castling move to be legal")
	}
	next := s.ApplyMove(*castle)
	nextLegal := next.LegalMoves()
	got := SAN(*castle, s, legal, next.InCheck(), nextLegal.Len() == 0)
	if got != "O-O" {
		t.Errorf("SAN(castle) = %q, want O-O", got)
	}
}

// situationFromMoves plays a sequence of coordinate moves ("e2e4") from
// the starting position and returns the resulting Situation.
func situationFromMoves(uci ...string) (*Situation, error) {
	s := NewSituation()
	for _, u := range uci {
		from := parseSquareLiteral(u[0:2])
		to := parseSquareLiteral(u[2:4])
		legal := s.LegalMoves()
		var applied bool
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			if m.From == from && m.To == to {
				s = s.ApplyMove(m)
				applied = true
				break
			}
		}
		if !applied {
			return nil, &IllegalMoveError{Situation: s, Attempted: Move{From: from, To: to}}
		}
	}
	return s, nil
}

func parseSquareLiteral(s string) Square {
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return SquareAt(file, rank)
}
