package chesscore

// Situation is the complete, immutable state of a game in progress: piece
// placement, side to move, and everything History tracks. Every method
// that advances a Situation returns a new value; the receiver is never
// mutated, so a Situation is safe to share across goroutines (e.g. a
// parallel perft search fans out over copies with no locking).
type Situation struct {
	Board      Board
	SideToMove Color
	History    History
	Rules      Rules
}

// NewSituation returns the standard chess starting position.
func NewSituation() *Situation {
	return NewSituationWithRules(Standard{})
}

// NewSituationWithRules returns the starting position of rules' variant.
func NewSituationWithRules(rules Rules) *Situation {
	board := rules.StartingBoard()
	unmovedRooks := rules.StartingUnmovedRooks()
	s := &Situation{
		Board:      board,
		SideToMove: White,
		Rules:      rules,
		History: History{
			Castles:        rules.StartingCastles(),
			UnmovedRooks:   unmovedRooks,
			RookSquare:     deriveRookSquares(&board, unmovedRooks),
			FullMoveNumber: 1,
		},
	}
	digest := hashPosition(s, NoSquare)
	s.History.Hashes = s.History.Hashes.Append(digest)
	return s
}

// NewSituationFromParts builds a Situation directly from already-parsed
// components, skipping the standard starting-position setup. This is
// the entry point the fen package uses: FEN carries its own board,
// castling rights, and counters, so NewSituationWithRules's defaults do
// not apply.
func NewSituationFromParts(board Board, sideToMove Color, rules Rules, history History) *Situation {
	s := &Situation{Board: board, SideToMove: sideToMove, Rules: rules, History: history}
	digest := hashPosition(s, s.EnPassantSquare())
	s.History.Hashes = s.History.Hashes.Append(digest)
	return s
}

// deriveRookSquares maps each CastleSide to its backing rook's home
// square: for each color, the king's rank is scanned for the two
// unmoved-rook squares, the lower-file one is queenside, the higher-file
// one is kingside. This holds for both standard chess and Chess960
// starting positions (the king always starts between its two rooks).
func deriveRookSquares(board *Board, unmovedRooks UnmovedRooks) [4]Square {
	var out [4]Square
	for _, c := range [2]Color{White, Black} {
		king := board.King(c)
		if king == NoSquare {
			continue
		}
		rooks := Bitboard(unmovedRooks) & board.ByColor(c) & RankBB(king.Rank())
		var queenside, kingside Square = NoSquare, NoSquare
		rooks.Foreach(func(sq Square) {
			if sq.File() < king.File() {
				queenside = sq
			} else {
				kingside = sq
			}
		})
		out[sideOf(c, true)] = kingside
		out[sideOf(c, false)] = queenside
	}
	return out
}

// Checkers returns every enemy piece currently giving check to the side
// to move.
func (s *Situation) Checkers() Bitboard {
	king := s.Board.King(s.SideToMove)
	if king == NoSquare {
		return EmptyBB
	}
	return s.Board.AttackersTo(king, s.SideToMove.Other())
}

// InCheck reports whether the side to move is in check.
func (s *Situation) InCheck() bool { return s.Checkers().NonEmpty() }

// EnPassantSquare returns the square over which a pawn may currently
// capture en passant, or NoSquare if none is available. Unlike
// enPassantTarget, this only returns a square when a legal capture
// actually exists.
func (s *Situation) EnPassantSquare() Square { return legalEnPassantSquare(s) }

// LegalMoves returns every legal move available to the side to move.
func (s *Situation) LegalMoves() MoveList {
	var list MoveList
	generateLegalMoves(s, &list)
	s.Rules.FilterMoves(s, &list)
	return list
}

// ApplyMove returns the Situation that results from playing m, which
// must be one of the moves returned by LegalMoves. Applying an illegal
// move produces an undefined (but not panicking) result; callers that
// cannot guarantee legality should validate against LegalMoves first.
func (s *Situation) ApplyMove(m Move) *Situation {
	next := &Situation{
		Board:      s.Board.Clone(),
		SideToMove: s.SideToMove.Other(),
		History:    s.History,
		Rules:      s.Rules,
	}
	next.History.LastMove = &m

	mover := s.SideToMove
	switch m.Kind {
	case NormalMove:
		if m.IsCastle() {
			// Both pieces are lifted before either is placed: in Chess960
			// the king's destination can be the rook's origin or vice versa.
			next.Board.Take(m.From)
			next.Board.Take(m.Castle.RookFrom)
			next.Board.Put(Piece{mover, King}, m.To)
			next.Board.Put(Piece{mover, Rook}, m.Castle.RookTo)
		} else {
			next.Board.MovePiece(m.Piece, m.From, m.To)
		}
		if m.IsPromotion() {
			next.Board.Put(Piece{mover, m.Promotion}, m.To)
			next.Board.MarkPromoted(m.To)
		}
	case EnPassantMove:
		next.Board.MovePiece(m.Piece, m.From, m.To)
		next.Board.Take(m.CapturedPawnSquare)
	case DropMove:
		next.Board.Put(m.Piece, m.To)
	}

	next.History.UnmovedRooks = updatedUnmovedRooks(s, m)
	next.History.Castles = updatedCastleRights(next.History.UnmovedRooks, s.History.RookSquare)

	if (m.Kind == NormalMove && m.Piece.Role == Pawn) || m.IsCapture() {
		next.History.HalfMoveClock = 0
	} else {
		next.History.HalfMoveClock = s.History.HalfMoveClock + 1
	}
	if mover == Black {
		next.History.FullMoveNumber = s.History.FullMoveNumber + 1
	}

	if next.InCheck() {
		// mover just delivered check to next.SideToMove: the counter
		// tracks checks given, not checks received (spec.md §4.4).
		next.History.CheckCount = s.History.CheckCount.Incremented(mover)
	}

	s.Rules.FinalizeMove(s, next, m)

	digest := hashPosition(next, next.EnPassantSquare())
	next.History.Hashes = next.History.Hashes.Append(digest)

	return next
}

// updatedUnmovedRooks drops sq from UnmovedRooks whenever a move starts
// or ends on sq (a rook moving away, or being captured on its home
// square), and also clears both of the mover's rights when its king
// moves.
func updatedUnmovedRooks(s *Situation, m Move) UnmovedRooks {
	r := Bitboard(s.History.UnmovedRooks)
	if m.Kind == NormalMove {
		r = r.Remove(m.From).Remove(m.To)
	}
	if m.Piece.Role == King {
		r = r.Remove(s.History.RookSquare[sideOf(s.SideToMove, true)])
		r = r.Remove(s.History.RookSquare[sideOf(s.SideToMove, false)])
	}
	return UnmovedRooks(r)
}

// updatedCastleRights recomputes Castles from the new UnmovedRooks: a
// right survives only while its backing rook square is still marked
// unmoved.
func updatedCastleRights(next UnmovedRooks, rookSquare [4]Square) Castles {
	var c Castles
	for side := WhiteKingside; side <= BlackQueenside; side++ {
		if Bitboard(next).Contains(rookSquare[side]) {
			c |= 1 << side
		}
	}
	return c
}
