package chesscore

import "github.com/lucidchess/core/attacks"

// Board is a piece-placement container: one bitboard per role, one per
// color, plus their union. The six role bitboards are always pairwise
// disjoint and their union always equals Occupied; White and Black are
// always disjoint with union Occupied. Mutators re-establish these
// invariants; there is no way to construct a Board that violates them
// other than by writing to its fields directly, which callers outside
// this package never need to do.
type Board struct {
	byRole  [6]Bitboard
	byColor [2]Bitboard
	// promoted marks squares holding a piece that reached its current
	// role via pawn promotion. Only Crazyhouse consults this (a captured
	// promoted piece reverts to a pocketed pawn); every other variant
	// leaves it empty and pays no cost beyond the field itself.
	promoted Bitboard
}

// Occupied returns the union of every occupied square.
func (b *Board) Occupied() Bitboard { return b.byColor[White] | b.byColor[Black] }

// ByRole returns every square occupied by a piece of the given role,
// regardless of color.
func (b *Board) ByRole(r Role) Bitboard { return b.byRole[r] }

// ByColor returns every square occupied by a piece of the given color.
func (b *Board) ByColor(c Color) Bitboard { return b.byColor[c] }

// ByPiece returns every square occupied by the exact (color, role) piece.
func (b *Board) ByPiece(p Piece) Bitboard { return b.byRole[p.Role] & b.byColor[p.Color] }

// King returns the square of c's king, or NoSquare if it has none (Horde
// white, or Atomic after an explosion).
func (b *Board) King(c Color) Square { return b.ByPiece(Piece{c, King}).First() }

// PieceAt returns the piece on sq and true, or the zero Piece and false if
// sq is empty.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	if !b.Occupied().Contains(sq) {
		return Piece{}, false
	}
	color := White
	if b.byColor[Black].Contains(sq) {
		color = Black
	}
	for _, r := range allRoles {
		if b.byRole[r].Contains(sq) {
			return Piece{color, r}, true
		}
	}
	return Piece{}, false
}

// Put places p on sq, replacing whatever was there.
func (b *Board) Put(p Piece, sq Square) {
	b.Take(sq)
	b.byRole[p.Role] = b.byRole[p.Role].Add(sq)
	b.byColor[p.Color] = b.byColor[p.Color].Add(sq)
}

// Take removes whatever piece occupies sq, if any.
func (b *Board) Take(sq Square) {
	for r := range b.byRole {
		b.byRole[r] = b.byRole[r].Remove(sq)
	}
	b.byColor[White] = b.byColor[White].Remove(sq)
	b.byColor[Black] = b.byColor[Black].Remove(sq)
	b.promoted = b.promoted.Remove(sq)
}

// MovePiece relocates p from from to to, replacing whatever occupied to.
// The promoted marker, if any, travels with the piece.
func (b *Board) MovePiece(p Piece, from, to Square) {
	wasPromoted := b.promoted.Contains(from)
	b.Take(to)
	b.byRole[p.Role] = b.byRole[p.Role].Move(from, to)
	b.byColor[p.Color] = b.byColor[p.Color].Move(from, to)
	b.promoted = b.promoted.Remove(from)
	if wasPromoted {
		b.promoted = b.promoted.Add(to)
	}
}

// MarkPromoted flags sq as holding a piece that arrived there by pawn
// promotion (Crazyhouse bookkeeping only).
func (b *Board) MarkPromoted(sq Square) { b.promoted = b.promoted.Add(sq) }

// WasPromoted reports whether the piece on sq, if any, arrived there by
// pawn promotion.
func (b *Board) WasPromoted(sq Square) bool { return b.promoted.Contains(sq) }

// Clone returns an independent copy of b (Board is a fixed-size value
// type, so this is a plain struct copy).
func (b *Board) Clone() Board { return *b }

// AttackersTo returns every square occupied by a piece of color by that
// attacks sq, given the board's current occupancy.
func (b *Board) AttackersTo(sq Square, by Color) Bitboard {
	occ := uint64(b.Occupied())
	s := int(sq)
	var out Bitboard
	out |= Bitboard(attacks.PawnAttacks(int(by.Other()), s)) & b.ByPiece(Piece{by, Pawn})
	out |= Bitboard(attacks.KnightAttacks(s)) & b.ByPiece(Piece{by, Knight})
	out |= Bitboard(attacks.KingAttacks(s)) & b.ByPiece(Piece{by, King})
	out |= Bitboard(attacks.BishopAttacks(s, occ)) & (b.ByPiece(Piece{by, Bishop}) | b.ByPiece(Piece{by, Queen}))
	out |= Bitboard(attacks.RookAttacks(s, occ)) & (b.ByPiece(Piece{by, Rook}) | b.ByPiece(Piece{by, Queen}))
	return out
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.AttackersTo(sq, by).NonEmpty()
}

// standardBoard returns the piece placement of the ordinary chess starting
// position.
func standardBoard() Board {
	var b Board
	backRank := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.Put(Piece{White, backRank[file]}, SquareAt(file, 0))
		b.Put(Piece{White, Pawn}, SquareAt(file, 1))
		b.Put(Piece{Black, Pawn}, SquareAt(file, 6))
		b.Put(Piece{Black, backRank[file]}, SquareAt(file, 7))
	}
	return b
}
