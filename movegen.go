package chesscore

import "github.com/lucidchess/core/attacks"

// generateLegalMoves fills list with every legal move available to
// s.SideToMove. The algorithm follows the "checkers + pinned pieces"
// style rather than copy-make-and-recheck: it computes which pieces are
// pinned and to which ray they are confined up front, computes the set
// of checking pieces, and uses both to prune pseudo-legal moves directly
// instead of speculatively applying every move and testing the result.
// King moves are the one case still individually re-verified, with the
// king removed from the occupancy bitmask first so a slider does not
// appear blocked by the very king it is attacking along the king's
// vacated square.
func generateLegalMoves(s *Situation, list *MoveList) {
	mover := s.SideToMove
	king := s.Board.King(mover)
	if king == NoSquare {
		// Horde's white side has no king to check or castle with: every
		// pseudo-legal piece move is legal, there is simply no king-move
		// or pin/check machinery to apply.
		var noPins [64]Bitboard
		generatePieceMoves(s, king, EmptyBB, noPins, FullBB, FullBB, list)
		generateEnPassantMoves(s, list, NoSquare)
		generateDrops(s, list)
		return
	}

	checkers := s.Checkers()
	pinned, pinRay := computePins(s, king, mover)

	occupiedWithoutKing := uint64(s.Board.Occupied()) &^ king.Bitboard().asUint64()

	switch checkers.Count() {
	case 0:
		generatePieceMoves(s, king, pinned, pinRay, FullBB, FullBB, list)
		generateCastling(s, list)
		generateEnPassantMoves(s, list, NoSquare)
		generateDrops(s, list)
	case 1:
		checkerSq := checkers.First()
		blockOrCapture := checkers | Bitboard(attacks.Between(int(king), int(checkerSq)))
		generatePieceMoves(s, king, pinned, pinRay, blockOrCapture, blockOrCapture, list)
		generateEnPassantMoves(s, list, checkerSq)
		var drops MoveList
		generateDrops(s, &drops)
		block := Bitboard(attacks.Between(int(king), int(checkerSq)))
		for i := 0; i < drops.Len(); i++ {
			if m := drops.At(i); block.Contains(m.To) {
				list.Push(m)
			}
		}
	default:
		// Double check: only the king can move.
	}

	generateKingMoves(s, king, occupiedWithoutKing, list)
}

// computePins returns the set of mover's pieces that are pinned to its
// king, and, for each pinned square, the ray (king through pinner,
// inclusive of both) that square's moves are confined to.
func computePins(s *Situation, king Square, mover Color) (Bitboard, [64]Bitboard) {
	var pinned Bitboard
	var rayOf [64]Bitboard

	enemy := mover.Other()
	occupied := s.Board.Occupied()
	ownPieces := s.Board.ByColor(mover)

	sliders := (s.Board.ByPiece(Piece{enemy, Bishop}) | s.Board.ByPiece(Piece{enemy, Rook}) | s.Board.ByPiece(Piece{enemy, Queen}))
	sliders.Foreach(func(sq Square) {
		role, _ := pieceRoleAt(s, sq)
		if !slidesTowards(role, king, sq) {
			return
		}
		between := Bitboard(attacks.Between(int(sq), int(king)))
		blockers := between & occupied
		if blockers.Count() != 1 {
			return
		}
		if blockers.Intersects(ownPieces) {
			pinnedSq := blockers.First()
			pinned = pinned.Add(pinnedSq)
			rayOf[pinnedSq] = Bitboard(attacks.Rays(int(king), int(sq)))
		}
	})

	return pinned, rayOf
}

func pieceRoleAt(s *Situation, sq Square) (Role, bool) {
	p, ok := s.Board.PieceAt(sq)
	if !ok {
		return NoRole, false
	}
	return p.Role, true
}

// slidesTowards reports whether a piece of role r standing on from can,
// geometrically, reach to (ignoring blockers): a rook/queen along a
// straight line, a bishop/queen along a diagonal.
func slidesTowards(r Role, to, from Square) bool {
	if from.File() == to.File() || from.Rank() == to.Rank() {
		return r == Rook || r == Queen
	}
	if abs(from.File()-to.File()) == abs(from.Rank()-to.Rank()) {
		return r == Bishop || r == Queen
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// generatePieceMoves generates pseudo-legal-but-pin-filtered moves for
// every piece except the king: pawns, knights, bishops, rooks, queens.
// destMask restricts non-capture destinations, captureMask restricts
// capture destinations (equal to each other outside of check; when in
// check both are the block-or-capture set).
func generatePieceMoves(s *Situation, king Square, pinned Bitboard, pinRay [64]Bitboard, destMask, captureMask Bitboard, list *MoveList) {
	mover := s.SideToMove
	enemy := mover.Other()
	occupied := s.Board.Occupied()
	enemyPieces := s.Board.ByColor(enemy)

	allowedFor := func(sq Square) Bitboard {
		if pinned.Contains(sq) {
			return pinRay[sq]
		}
		return FullBB
	}

	generatePawnMoves(s, allowedFor, destMask, captureMask, list)

	s.Board.ByPiece(Piece{mover, Knight}).Foreach(func(from Square) {
		targets := Bitboard(attacks.KnightAttacks(int(from))) &^ s.Board.ByColor(mover) & allowedFor(from)
		emitSlides(s, from, Knight, targets, enemyPieces, destMask, captureMask, list)
	})
	s.Board.ByPiece(Piece{mover, Bishop}).Foreach(func(from Square) {
		targets := Bitboard(attacks.BishopAttacks(int(from), uint64(occupied))) &^ s.Board.ByColor(mover) & allowedFor(from)
		emitSlides(s, from, Bishop, targets, enemyPieces, destMask, captureMask, list)
	})
	s.Board.ByPiece(Piece{mover, Rook}).Foreach(func(from Square) {
		targets := Bitboard(attacks.RookAttacks(int(from), uint64(occupied))) &^ s.Board.ByColor(mover) & allowedFor(from)
		emitSlides(s, from, Rook, targets, enemyPieces, destMask, captureMask, list)
	})
	s.Board.ByPiece(Piece{mover, Queen}).Foreach(func(from Square) {
		targets := Bitboard(attacks.QueenAttacks(int(from), uint64(occupied))) &^ s.Board.ByColor(mover) & allowedFor(from)
		emitSlides(s, from, Queen, targets, enemyPieces, destMask, captureMask, list)
	})
}

func emitSlides(s *Situation, from Square, role Role, targets, enemyPieces, destMask, captureMask Bitboard, list *MoveList) {
	mover := s.SideToMove
	targets.Foreach(func(to Square) {
		isCapture := enemyPieces.Contains(to)
		if isCapture && !captureMask.Contains(to) {
			return
		}
		if !isCapture && !destMask.Contains(to) {
			return
		}
		capturedRole := NoRole
		if isCapture {
			capturedRole, _ = pieceRoleAt(s, to)
		}
		list.Push(NewNormalMove(Piece{mover, role}, from, to, capturedRole))
	})
}

func generatePawnMoves(s *Situation, allowedFor func(Square) Bitboard, destMask, captureMask Bitboard, list *MoveList) {
	mover := s.SideToMove
	enemy := mover.Other()
	occupied := s.Board.Occupied()
	enemyPieces := s.Board.ByColor(enemy)
	promoRoles := s.Rules.PromotionRoles()

	forward := 8
	startRank, promoRank := 1, 7
	if mover == Black {
		forward = -8
		startRank, promoRank = 6, 0
	}

	s.Board.ByPiece(Piece{mover, Pawn}).Foreach(func(from Square) {
		allowed := allowedFor(from)

		one := Square(int(from) + forward)
		if one.Valid() && !occupied.Contains(one) && allowed.Contains(one) {
			pushOrPromote(mover, from, one, promoRank, destMask, promoRoles, list)

			if from.Rank() == startRank {
				two := Square(int(from) + 2*forward)
				if !occupied.Contains(two) && allowed.Contains(two) && destMask.Contains(two) {
					list.Push(NewNormalMove(Piece{mover, Pawn}, from, two, NoRole))
				}
			}
		}

		captures := Bitboard(attacks.PawnAttacks(int(mover), int(from))) & enemyPieces & allowed
		captures.Foreach(func(to Square) {
			if !captureMask.Contains(to) {
				return
			}
			capturedRole, _ := pieceRoleAt(s, to)
			if to.Rank() == promoRank {
				for _, promo := range promoRoles {
					list.Push(NewPromotionMove(Piece{mover, Pawn}, from, to, capturedRole, promo))
				}
			} else {
				list.Push(NewNormalMove(Piece{mover, Pawn}, from, to, capturedRole))
			}
		})
	})
}

func pushOrPromote(mover Color, from, to Square, promoRank int, destMask Bitboard, promoRoles []Role, list *MoveList) {
	if !destMask.Contains(to) {
		return
	}
	if to.Rank() == promoRank {
		for _, promo := range promoRoles {
			list.Push(NewPromotionMove(Piece{mover, Pawn}, from, to, NoRole, promo))
		}
		return
	}
	list.Push(NewNormalMove(Piece{mover, Pawn}, from, to, NoRole))
}

// generateKingMoves generates every king step (no castling here) that
// lands on a square not occupied by a friendly piece and not attacked by
// the enemy, with the king itself removed from the occupancy used for
// that attack test.
func generateKingMoves(s *Situation, king Square, occupiedWithoutKing uint64, list *MoveList) {
	mover := s.SideToMove
	enemy := mover.Other()
	targets := Bitboard(attacks.KingAttacks(int(king))) &^ s.Board.ByColor(mover)
	targets.Foreach(func(to Square) {
		if isAttackedExcludingKing(s, to, enemy, occupiedWithoutKing) {
			return
		}
		capturedRole := NoRole
		if s.Board.ByColor(enemy).Contains(to) {
			capturedRole, _ = pieceRoleAt(s, to)
		}
		list.Push(NewNormalMove(Piece{mover, King}, king, to, capturedRole))
	})
}

func isAttackedExcludingKing(s *Situation, sq Square, by Color, occupiedWithoutKing uint64) bool {
	si := int(sq)
	if Bitboard(attacks.PawnAttacks(int(by.Other()), si)).Intersects(s.Board.ByPiece(Piece{by, Pawn})) {
		return true
	}
	if Bitboard(attacks.KnightAttacks(si)).Intersects(s.Board.ByPiece(Piece{by, Knight})) {
		return true
	}
	if Bitboard(attacks.KingAttacks(si)).Intersects(s.Board.ByPiece(Piece{by, King})) {
		return true
	}
	diag := Bitboard(attacks.BishopAttacks(si, occupiedWithoutKing))
	if diag.Intersects(s.Board.ByPiece(Piece{by, Bishop}) | s.Board.ByPiece(Piece{by, Queen})) {
		return true
	}
	straight := Bitboard(attacks.RookAttacks(si, occupiedWithoutKing))
	if straight.Intersects(s.Board.ByPiece(Piece{by, Rook}) | s.Board.ByPiece(Piece{by, Queen})) {
		return true
	}
	return false
}

// generateCastling appends any castling move currently available. It is
// Chess960-compatible: it reads rook homes from History.UnmovedRooks and
// RookSquare instead of assuming a/h files, and checks that every square
// the king passes through (including its origin and destination) is
// unattacked, and that every square between king and rook (other than
// the two themselves) is empty except for the castling king/rook
// themselves.
func generateCastling(s *Situation, list *MoveList) {
	mover := s.SideToMove
	king := s.Board.King(mover)
	if king == NoSquare || s.InCheck() {
		return
	}
	occupiedWithoutKing := uint64(s.Board.Occupied()) &^ king.Bitboard().asUint64()

	for _, kingside := range [2]bool{true, false} {
		side := sideOf(mover, kingside)
		if !s.History.Castles.Has(side) {
			continue
		}
		rookSq := s.History.RookSquare[side]
		if !Bitboard(s.History.UnmovedRooks).Contains(rookSq) {
			continue
		}

		rank := king.Rank()
		kingTo := SquareAt(fold(kingside, 6, 2), rank)
		rookTo := SquareAt(fold(kingside, 5, 3), rank)

		occAfterVacating := s.Board.Occupied().Remove(king).Remove(rookSq)
		path := Bitboard(attacks.Between(int(king), int(rookTo))).Union(rookTo.Bitboard())
		path = path.Union(Bitboard(attacks.Between(int(rookSq), int(kingTo)))).Union(kingTo.Bitboard())
		if occAfterVacating.Intersects(path) {
			continue
		}

		kingPath := Bitboard(attacks.Between(int(king), int(kingTo))).Union(king.Bitboard()).Union(kingTo.Bitboard())
		blocked := false
		kingPath.Foreach(func(sq Square) {
			if isAttackedExcludingKing(s, sq, mover.Other(), occupiedWithoutKing) {
				blocked = true
			}
		})
		if blocked {
			continue
		}

		list.Push(NewCastleMove(mover, king, kingTo, rookSq, rookTo))
	}
}

func fold(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}

// generateEnPassantMoves appends the (at most two) en-passant captures
// available given History.LastMove, after verifying each leaves its own
// king safe. A horizontal discovered check through the double-capture
// square (both the capturing pawn and the captured pawn vacate the
// fourth/fifth rank simultaneously, exposing the king to a rook or queen
// along that rank) is the one case ordinary pin detection above does not
// already rule out, since neither pawn individually is pinned; it is
// checked here by re-evaluating attacks with both squares cleared.
func generateEnPassantMoves(s *Situation, list *MoveList, mustCapture Square) {
	mover := s.SideToMove
	target := enPassantTarget(s.History.LastMove, mover)
	if target == NoSquare {
		return
	}
	capturedPawnSq := Square(int(target) - pawnForward(mover))
	if mustCapture != NoSquare && capturedPawnSq != mustCapture {
		return
	}
	king := s.Board.King(mover)

	attackers := Bitboard(attacks.PawnAttacks(int(mover.Other()), int(target))) & s.Board.ByPiece(Piece{mover, Pawn})
	attackers.Foreach(func(from Square) {
		occAfter := uint64(s.Board.Occupied())
		occAfter &^= from.Bitboard().asUint64()
		occAfter &^= capturedPawnSq.Bitboard().asUint64()
		occAfter |= target.Bitboard().asUint64()

		if king != NoSquare && isAttackedExcludingKingMask(s, king, mover.Other(), occAfter) {
			return
		}
		list.Push(NewEnPassantMove(mover, from, target, capturedPawnSq))
	})
}

func isAttackedExcludingKingMask(s *Situation, sq Square, by Color, occ uint64) bool {
	si := int(sq)
	diag := Bitboard(attacks.BishopAttacks(si, occ))
	if diag.Intersects(s.Board.ByPiece(Piece{by, Bishop}) | s.Board.ByPiece(Piece{by, Queen})) {
		return true
	}
	straight := Bitboard(attacks.RookAttacks(si, occ))
	if straight.Intersects(s.Board.ByPiece(Piece{by, Rook}) | s.Board.ByPiece(Piece{by, Queen})) {
		return true
	}
	return false
}

func pawnForward(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// generateDrops appends every Crazyhouse piece drop available from the
// mover's pocket: any pocketed role onto any empty square, except pawns
// may not drop onto the first or last rank.
func generateDrops(s *Situation, list *MoveList) {
	mover := s.SideToMove
	pocket := s.History.Pockets[mover]
	if pocket == ([5]int{}) {
		return
	}
	empty := s.Board.Occupied().Not()
	for role := Pawn; role <= Queen; role++ {
		if pocket[role] <= 0 {
			continue
		}
		squares := empty
		if role == Pawn {
			squares = squares &^ (Rank1BB | Rank8BB)
		}
		squares.Foreach(func(to Square) {
			list.Push(NewDropMove(mover, role, to))
		})
	}
}

func (b Bitboard) asUint64() uint64 { return uint64(b) }
