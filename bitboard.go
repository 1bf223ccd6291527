package chesscore

import "math/bits"

// Bitboard is a 64-bit set of squares: bit i set means square i is a member.
// All operations are value semantics; there is no hidden state.
type Bitboard uint64

// Derived constants used throughout attack generation and variant rules.
const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = 0xFFFFFFFFFFFFFFFF

	FileABB Bitboard = 0x0101010101010101
	FileHBB Bitboard = FileABB << 7

	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	LightSquaresBB Bitboard = 0x55AA55AA55AA55AA
	DarkSquaresBB  Bitboard = ^LightSquaresBB

	CornersBB Bitboard = 1<<A1 | 1<<H1 | 1<<A8 | 1<<H8
)

// FileBB returns the bitboard of the given zero-based file.
func FileBB(file int) Bitboard { return FileABB << uint(file) }

// RankBB returns the bitboard of the given zero-based rank.
func RankBB(rank int) Bitboard { return Rank1BB << uint(8*rank) }

// Union, Inter, Xor, and Not give set-theoretic operations over bitboards.
// They exist mainly for readability at call sites that chain several ops;
// most code just uses |, &, ^, and ^b directly.
func (b Bitboard) Union(other Bitboard) Bitboard { return b | other }
func (b Bitboard) Inter(other Bitboard) Bitboard { return b & other }
func (b Bitboard) Xor(other Bitboard) Bitboard   { return b ^ other }
func (b Bitboard) Not() Bitboard                 { return ^b }

// Contains reports whether s is a member of b.
func (b Bitboard) Contains(s Square) bool { return b&s.Bitboard() != 0 }

// Add returns b with s added.
func (b Bitboard) Add(s Square) Bitboard { return b | s.Bitboard() }

// Remove returns b with s removed.
func (b Bitboard) Remove(s Square) Bitboard { return b &^ s.Bitboard() }

// Move returns b with the piece at from relocated to to. Behavior is
// undefined if from is not a member of b.
func (b Bitboard) Move(from, to Square) Bitboard {
	return b.Remove(from).Add(to)
}

// Count returns the population count (number of member squares).
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// IsEmpty reports whether b has no members.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// NonEmpty reports whether b has at least one member.
func (b Bitboard) NonEmpty() bool { return b != 0 }

// MoreThanOne reports whether b has two or more members, without counting
// every bit.
func (b Bitboard) MoreThanOne() bool { return b&(b-1) != 0 }

// Intersects reports whether b and other share any member.
func (b Bitboard) Intersects(other Bitboard) bool { return b&other != 0 }

// IsDisjoint reports whether b and other share no members.
func (b Bitboard) IsDisjoint(other Bitboard) bool { return b&other == 0 }

// First returns the lowest-indexed member square, or NoSquare if b is empty.
func (b Bitboard) First() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Last returns the highest-indexed member square, or NoSquare if b is empty.
func (b Bitboard) Last() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// SingleSquare returns the sole member square and true if b has exactly one
// member, else NoSquare and false.
func (b Bitboard) SingleSquare() (Square, bool) {
	if b.IsEmpty() || b.MoreThanOne() {
		return NoSquare, false
	}
	return b.First(), true
}

// RemoveFirst pops and returns the lowest-indexed member square from *b,
// using the b&(b-1) identity to clear it. Returns NoSquare if *b is empty.
func (b *Bitboard) RemoveFirst() Square {
	sq := b.First()
	if sq != NoSquare {
		*b &= *b - 1
	}
	return sq
}

// Squares materializes b into a slice of member squares, ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	bb := b
	for bb.NonEmpty() {
		out = append(out, bb.RemoveFirst())
	}
	return out
}

// Foreach calls f once per member square, ascending order.
func (b Bitboard) Foreach(f func(Square)) {
	bb := b
	for bb.NonEmpty() {
		f(bb.RemoveFirst())
	}
}

