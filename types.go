// Package chesscore implements a bitboard-based chess rules and
// move-generation engine: legal move enumeration, move application, and
// terminal-state classification for standard chess and a handful of
// popular variants (Chess960, Three-check, Antichess, Atomic, Crazyhouse,
// Racing Kings, Horde).
//
// The package is purely functional at the Situation level: every state
// transition returns a new Situation, the original is never mutated, so
// Situation values are safe to share across goroutines without locking.
// Attack tables are process-wide immutable state, published once by
// attacks.Init (called lazily on first use).
package chesscore

import "fmt"

// Square is a board square in [0,63]. File = square & 7, rank = square >> 3,
// a1 = 0, h8 = 63.
type Square int8

// File returns the square's file, a1-file = 0.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the square's rank, rank 1 = 0.
func (s Square) Rank() int { return int(s) >> 3 }

// Bitboard returns the singleton bitboard containing s.
func (s Square) Bitboard() Bitboard { return Bitboard(1) << uint(s) }

// Valid reports whether s is within the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// SquareAt builds a Square from a zero-based file and rank.
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// Named squares, used throughout the tests.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = -1
)

// Color is one of the two sides of a chess game.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color (an involution).
func (c Color) Other() Color { return c ^ 1 }

// Fold selects whiteValue or blackValue depending on c.
func Fold[T any](c Color, whiteValue, blackValue T) T {
	if c == White {
		return whiteValue
	}
	return blackValue
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Role is a piece type, independent of color.
type Role int8

const (
	Pawn Role = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoRole Role = -1
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// letter returns the uppercase SAN/FEN piece letter for r ('P' for pawn).
func (r Role) letter() byte {
	return "PNBRQK"[r]
}

// Piece is a (Color, Role) pair.
type Piece struct {
	Color Color
	Role  Role
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Role)
}

// Letter returns the FEN letter for p: uppercase for White, lowercase for
// Black ('N' for a white knight, 'n' for a black knight).
func (p Piece) Letter() byte {
	l := p.Role.letter()
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

// allRoles lists every promotable-to-or-placed role in board order.
var allRoles = [6]Role{Pawn, Knight, Bishop, Rook, Queen, King}
