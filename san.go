package chesscore

import "strings"

// SAN renders m, played from s, in Standard Algebraic Notation. legal is
// s.LegalMoves(), passed in rather than recomputed so that a caller
// rendering a whole line of moves pays for move generation only once per
// ply. check and checkmate report whether playing m gives check (and
// whether that check is mate), appended as '+' / '#'.
//
// Chess960 castling is rendered the way most GUIs expect it: "O-O" /
// "O-O-O" rather than the king-takes-rook square pair, since disambiguity
// never matters for a move that cannot coincide with any other.
func SAN(m Move, s *Situation, legal MoveList, check, checkmate bool) string {
	if m.IsCastle() {
		side := castleSideOf(s.SideToMove, m)
		if side == sideOf(s.SideToMove, true) {
			return appendSuffix("O-O", check, checkmate)
		}
		return appendSuffix("O-O-O", check, checkmate)
	}
	if m.Kind == DropMove {
		var b strings.Builder
		if m.DropRole != Pawn {
			b.WriteByte(m.DropRole.letter())
		}
		b.WriteByte('@')
		b.WriteString(m.To.String())
		return appendSuffix(b.String(), check, checkmate)
	}

	var b strings.Builder
	b.Grow(6)

	role := m.Piece.Role
	if role != Pawn {
		b.WriteByte(role.letter())
		writeDisambiguation(&b, m, legal)
	}

	if m.IsCapture() {
		if role == Pawn {
			b.WriteByte(byte('a' + m.From.File()))
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To.String())

	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(m.Promotion.letter())
	}

	return appendSuffix(b.String(), check, checkmate)
}

func appendSuffix(s string, check, checkmate bool) string {
	switch {
	case checkmate:
		return s + "#"
	case check:
		return s + "+"
	default:
		return s
	}
}

// writeDisambiguation appends a source file, rank, or full square to b
// when another legal move of the same role shares m's destination.
func writeDisambiguation(b *strings.Builder, m Move, legal MoveList) {
	sameFile, sameRank, ambiguous := false, false, false
	for i := 0; i < legal.Len(); i++ {
		o := legal.At(i)
		if o.From == m.From || o.To != m.To || o.Piece.Role != m.Piece.Role || o.Piece.Color != m.Piece.Color {
			continue
		}
		ambiguous = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return
	}
	switch {
	case !sameFile:
		b.WriteByte(byte('a' + m.From.File()))
	case !sameRank:
		b.WriteByte(byte('1' + m.From.Rank()))
	default:
		b.WriteString(m.From.String())
	}
}

func castleSideOf(mover Color, m Move) CastleSide {
	if m.Castle.RookFrom.File() > m.From.File() {
		return sideOf(mover, true)
	}
	return sideOf(mover, false)
}
