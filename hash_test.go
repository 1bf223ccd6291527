package chesscore

import "testing"

// TestHashDistinguishesCrazyhousePockets guards against a hash that only
// mixes in board/side/castling/en-passant state: two otherwise-identical
// Crazyhouse positions with different pocket contents must not collide,
// or repetition detection would treat distinct positions as repeats.
func TestHashDistinguishesCrazyhousePockets(t *testing.T) {
	var board Board
	board.Put(Piece{White, King}, E1)
	board.Put(Piece{Black, King}, E8)

	empty := NewSituationFromParts(board, White, Crazyhouse{}, History{FullMoveNumber: 1})

	withKnight := NewSituationFromParts(board, White, Crazyhouse{}, History{FullMoveNumber: 1})
	withKnight.History.Pockets[White][Knight] = 1
	withKnightDigest := hashPosition(withKnight, NoSquare)

	emptyDigest := hashPosition(empty, NoSquare)
	if emptyDigest == withKnightDigest {
		t.Fatalf("positions with different Crazyhouse pockets hashed identically")
	}
}
