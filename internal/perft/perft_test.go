package perft

import (
	"context"
	"testing"

	chesscore "github.com/lucidchess/core"
	"github.com/lucidchess/core/fen"
)

func mustParse(t *testing.T, f string) *chesscore.Situation {
	t.Helper()
	s, err := fen.Parse(f, chesscore.Standard{})
	if err != nil {
		t.Fatalf("parsing fen %q: %v", f, err)
	}
	return s
}

// Expected node counts from https://www.chessprogramming.org/Perft_Results.
func TestCountStandardStartingPosition(t *testing.T) {
	s := chesscore.NewSituation()
	cases := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := Count(s, c.depth); got != c.expected {
			t.Errorf("depth %d: Count = %d, want %d", c.depth, got, c.expected)
		}
	}
}

func TestCountKiwipete(t *testing.T) {
	s := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	cases := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
	}
	for _, c := range cases {
		if got := Count(s, c.depth); got != c.expected {
			t.Errorf("depth %d: Count = %d, want %d", c.depth, got, c.expected)
		}
	}
}

func TestCountPosition4(t *testing.T) {
	// Exercises check evasion, castling, and underpromotion all in one
	// regression case.
	s := mustParse(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if got := Count(s, 1); got != 6 {
		t.Errorf("depth 1: Count = %d, want 6", got)
	}
	if got := Count(s, 2); got != 264 {
		t.Errorf("depth 2: Count = %d, want 264", got)
	}
}

func TestCountParallelMatchesSerial(t *testing.T) {
	s := chesscore.NewSituation()
	serial := Count(s, 3)
	parallel, err := CountParallel(context.Background(), s, 3)
	if err != nil {
		t.Fatalf("CountParallel: %v", err)
	}
	if serial != parallel {
		t.Fatalf("CountParallel = %d, Count = %d, want equal", parallel, serial)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	s := chesscore.NewSituation()
	div := Divide(s, 3)
	var sum int64
	for _, n := range div {
		sum += n
	}
	if want := Count(s, 3); sum != want {
		t.Fatalf("sum of Divide(3) = %d, want Count(3) = %d", sum, want)
	}
}

func TestCountThreeCheckStartingPosition(t *testing.T) {
	// Three-check shares standard chess's opening move generation, so the
	// shallow node counts are identical to the standard starting position.
	s := chesscore.NewSituationWithRules(chesscore.ThreeCheck{})
	if got := Count(s, 2); got != 400 {
		t.Errorf("depth 2: Count = %d, want 400", got)
	}
}
