package chesscore

import "testing"

func TestBitboardAddRemoveContains(t *testing.T) {
	var b Bitboard
	b = b.Add(E4)
	if !b.Contains(E4) {
		t.Fatalf("expected E4 to be a member after Add")
	}
	b = b.Remove(E4)
	if b.Contains(E4) {
		t.Fatalf("expected E4 to be gone after Remove")
	}
}

func TestBitboardCount(t *testing.T) {
	b := A1.Bitboard() | H1.Bitboard() | A8.Bitboard() | H8.Bitboard()
	if got := b.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
}

func TestBitboardMoreThanOne(t *testing.T) {
	var b Bitboard
	if b.MoreThanOne() {
		t.Fatalf("empty bitboard reported MoreThanOne")
	}
	b = b.Add(A1)
	if b.MoreThanOne() {
		t.Fatalf("singleton bitboard reported MoreThanOne")
	}
	b = b.Add(H8)
	if !b.MoreThanOne() {
		t.Fatalf("two-member bitboard did not report MoreThanOne")
	}
}

func TestBitboardFirstLast(t *testing.T) {
	b := D4.Bitboard() | G6.Bitboard()
	if got := b.First(); got != D4 {
		t.Fatalf("First() = %s, want d4", got)
	}
	if got := b.Last(); got != G6 {
		t.Fatalf("Last() = %s, want g6", got)
	}
}

func TestBitboardSquaresRoundTrip(t *testing.T) {
	want := []Square{B2, D4, F6, H8}
	var b Bitboard
	for _, sq := range want {
		b = b.Add(sq)
	}
	got := b.Squares()
	if len(got) != len(want) {
		t.Fatalf("Squares() returned %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFileRankBB(t *testing.T) {
	if got := FileBB(0); got != FileABB {
		t.Errorf("FileBB(0) = %x, want FileABB = %x", got, FileABB)
	}
	if got := RankBB(0); got != Rank1BB {
		t.Errorf("RankBB(0) = %x, want Rank1BB = %x", got, Rank1BB)
	}
}
