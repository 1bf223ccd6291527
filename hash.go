package chesscore

import "math/bits"

// Zobrist-style random keys. Table sizes mirror the pieces the hash mixes
// in: one key per (color, role, square) triple, one per castling right,
// one per en-passant file, and one for side-to-move.
// maxPocketKeys bounds the per-(color,role) Crazyhouse pocket count this
// module hashes distinctly: a game has at most 8 pawns and 2 of each
// officer per side in circulation (barring the rare under/over-promotion
// edge cases FIDE960/Crazyhouse rules already constrain), so 16 keys per
// role leaves headroom without needing a literal count-to-key function.
const maxPocketKeys = 16

var (
	zobristPiece  [2][6][64]uint64
	zobristCastle [4]uint64
	zobristEPFile [8]uint64
	zobristSide   uint64
	// zobristPocket holds one independent key per (color, role, count),
	// so that XOR-ing in the key for the current count (rather than
	// XOR-ing the same key `count` times, which cancels out on even
	// counts) actually distinguishes "2 pocketed rooks" from "0 pocketed
	// rooks". Only Crazyhouse ever has a nonzero pocket.
	zobristPocket [2][5][maxPocketKeys]uint64
)

// splitmix64 is a fast, well-distributed fixed-seed stream generator,
// used here only to fill the Zobrist tables deterministically at package
// init (so the hash is stable across runs and binaries without shipping
// a literal 64KB+ table of random constants).
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func init() {
	seed := uint64(0x4368657373436f72) // arbitrary fixed seed
	for c := 0; c < 2; c++ {
		for r := 0; r < 6; r++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][r][sq] = splitmix64(&seed)
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = splitmix64(&seed)
	}
	for i := range zobristEPFile {
		zobristEPFile[i] = splitmix64(&seed)
	}
	zobristSide = splitmix64(&seed)
	for c := 0; c < 2; c++ {
		for r := 0; r < 5; r++ {
			for n := 0; n < maxPocketKeys; n++ {
				zobristPocket[c][r][n] = splitmix64(&seed)
			}
		}
	}
}

// hashPosition computes the full 64-bit Zobrist key for s, truncating it
// to hashEntrySize bytes for storage in a PositionHash. epSquare must
// already have been resolved to NoSquare unless a legal en-passant
// capture is actually available in s (the "legal en passant only"
// refinement: mixing in an en-passant square that can never be captured
// would make two otherwise-identical positions hash differently and
// defeat repetition detection).
func hashPosition(s *Situation, epSquare Square) [hashEntrySize]byte {
	var key uint64

	for c := 0; c < 2; c++ {
		for r := 0; r < 6; r++ {
			bb := s.Board.ByPiece(Piece{Color(c), Role(r)})
			for bb != 0 {
				sq := bits.TrailingZeros64(uint64(bb))
				key ^= zobristPiece[c][r][sq]
				bb &= bb - 1
			}
		}
	}

	for side := WhiteKingside; side <= BlackQueenside; side++ {
		if s.History.Castles.Has(side) {
			key ^= zobristCastle[side]
		}
	}

	if epSquare.Valid() {
		key ^= zobristEPFile[epSquare.File()]
	}

	if s.SideToMove == Black {
		key ^= zobristSide
	}

	for c := 0; c < 2; c++ {
		for r := 0; r < 5; r++ {
			n := s.History.Pockets[c][r]
			if n <= 0 {
				continue
			}
			if n >= maxPocketKeys {
				n = maxPocketKeys - 1
			}
			key ^= zobristPocket[c][r][n]
		}
	}

	var digest [hashEntrySize]byte
	digest[0] = byte(key)
	digest[1] = byte(key >> 8)
	digest[2] = byte(key >> 16)
	return digest
}

// legalEnPassantSquare returns History.LastMove's en-passant target
// square if s.SideToMove has at least one pseudo-legal pawn capture that
// lands on it and that capture would not leave its own king in check,
// else NoSquare. Computing this exactly (rather than simply checking
// "was the last move a double pawn push") is what the "legal en passant
// only" hash refinement requires.
func legalEnPassantSquare(s *Situation) Square {
	target := enPassantTarget(s.History.LastMove, s.SideToMove)
	if target == NoSquare {
		return NoSquare
	}
	var list MoveList
	generateEnPassantMoves(s, &list, NoSquare)
	for i := 0; i < list.Len(); i++ {
		if list.At(i).To == target {
			return target
		}
	}
	return NoSquare
}

// enPassantTarget returns the square a pawn capturing last would land on
// if last was a two-square pawn push by the side that just moved, else
// NoSquare.
func enPassantTarget(last *Move, toMove Color) Square {
	if last == nil || last.Kind != NormalMove || last.Piece.Role != Pawn {
		return NoSquare
	}
	from, to := last.From, last.To
	if abs8(int8(to)-int8(from)) != 16 {
		return NoSquare
	}
	_ = toMove
	return SquareAt(from.File(), (from.Rank()+to.Rank())/2)
}

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}
