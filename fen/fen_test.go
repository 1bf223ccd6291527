package fen

import (
	"testing"

	chesscore "github.com/lucidchess/core"
)

func TestParseStartingPositionRoundTrip(t *testing.T) {
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	s, err := Parse(want, chesscore.Standard{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := Serialize(s); got != want {
		t.Fatalf("Serialize(Parse(%q)) = %q, want unchanged", want, got)
	}
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", chesscore.Standard{})
	if err == nil {
		t.Fatalf("expected an error for a FEN string missing fields")
	}
	if _, ok := err.(*chesscore.InvalidPositionError); !ok {
		t.Fatalf("error type = %T, want *chesscore.InvalidPositionError", err)
	}
}

func TestParseRejectsBadRankWidth(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPP/RNBQKBNR w KQkq - 0 1", chesscore.Standard{})
	if err == nil {
		t.Fatalf("expected an error for a rank that does not sum to 8 files")
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	s, err := Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", chesscore.Standard{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.EnPassantSquare(); got != chesscore.D6 {
		t.Fatalf("EnPassantSquare() = %s, want d6", got)
	}
}

func TestParseMidgamePosition(t *testing.T) {
	fenStr := "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 4 4"
	s, err := Parse(fenStr, chesscore.Standard{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.SideToMove != chesscore.Black {
		t.Fatalf("SideToMove = %s, want black", s.SideToMove)
	}
	if s.History.HalfMoveClock != 4 || s.History.FullMoveNumber != 4 {
		t.Fatalf("clocks = (%d, %d), want (4, 4)", s.History.HalfMoveClock, s.History.FullMoveNumber)
	}
	if got := Serialize(s); got != fenStr {
		t.Fatalf("Serialize(Parse(%q)) = %q, want unchanged", fenStr, got)
	}
}
