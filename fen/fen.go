// Package fen converts between Forsyth-Edwards Notation strings and
// chesscore.Situation values. Unlike the teacher package this is
// modeled on, every function here returns an error instead of panicking
// on malformed input, since a FEN string usually arrives from outside
// the process (a UCI peer, a PGN header, a user-supplied puzzle).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	chesscore "github.com/lucidchess/core"
)

// Each FEN string consists of six space-separated fields:
//  1. Piece placement.
//  2. Active color ("w" or "b").
//  3. Castling rights, "-" if neither side has any. Chess960 positions
//     use the file letter of the castling rook (Shredder-FEN) instead of
//     KQkq when the home rook is not on the a/h file.
//  4. En passant target square, "-" if none.
//  5. Halfmove clock.
//  6. Fullmove number.

// Parse parses fenString into a Situation playing under rules.
func Parse(fenString string, rules chesscore.Rules) (*chesscore.Situation, error) {
	fields := strings.Fields(fenString)
	if len(fields) != 6 {
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}

	board, err := parsePlacement(fields[0])
	if err != nil {
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: err.Error()}
	}
	for _, c := range [2]chesscore.Color{chesscore.White, chesscore.Black} {
		if board.ByPiece(chesscore.Piece{Color: c, Role: chesscore.King}).MoreThanOne() {
			return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: fmt.Sprintf("%s has more than one king", c)}
		}
	}

	var sideToMove chesscore.Color
	switch fields[1] {
	case "w":
		sideToMove = chesscore.White
	case "b":
		sideToMove = chesscore.Black
	default:
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: "active color must be 'w' or 'b'"}
	}

	unmovedRooks, rookSquare, err := parseCastling(fields[2], &board)
	if err != nil {
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: err.Error()}
	}
	castles := castlesFromRookSquares(unmovedRooks, rookSquare)

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: "bad halfmove clock: " + err.Error()}
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: "bad fullmove number: " + err.Error()}
	}

	var lastMove *chesscore.Move
	if fields[3] != "-" {
		target, err := parseSquare(fields[3])
		if err != nil {
			return nil, &chesscore.InvalidPositionError{Input: fenString, Reason: err.Error()}
		}
		lastMove = syntheticDoublePush(&board, sideToMove, target)
	}

	s := chesscore.NewSituationFromParts(board, sideToMove, rules, chesscore.History{
		LastMove:       lastMove,
		Castles:        castles,
		UnmovedRooks:   unmovedRooks,
		RookSquare:     rookSquare,
		HalfMoveClock:  halfMove,
		FullMoveNumber: fullMove,
	})
	return s, nil
}

// Serialize renders s as a FEN string.
func Serialize(s *chesscore.Situation) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(serializePlacement(&s.Board))
	b.WriteByte(' ')
	if s.SideToMove == chesscore.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')
	b.WriteString(serializeCastling(s))
	b.WriteByte(' ')
	if ep := s.EnPassantSquare(); ep != chesscore.NoSquare {
		b.WriteString(ep.String())
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(s.History.HalfMoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(s.History.FullMoveNumber))

	return b.String()
}

func parsePlacement(field string) (chesscore.Board, error) {
	var board chesscore.Board
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return board, fmt.Errorf("piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := pieceFromLetter(byte(c))
				if !ok {
					return board, fmt.Errorf("unrecognized piece letter %q", c)
				}
				if file > 7 {
					return board, fmt.Errorf("rank %d overflows 8 files", rank+1)
				}
				board.Put(piece, chesscore.SquareAt(file, rank))
				file++
			}
		}
		if file != 8 {
			return board, fmt.Errorf("rank %d has %d files, want 8", rank+1, file)
		}
	}
	return board, nil
}

func serializePlacement(b *chesscore.Board) string {
	var out strings.Builder
	out.Grow(72)
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := chesscore.SquareAt(file, rank)
			p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				out.WriteByte(byte('0' + empty))
				empty = 0
			}
			out.WriteByte(p.Letter())
		}
		if empty > 0 {
			out.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}
	return out.String()
}

func pieceFromLetter(c byte) (chesscore.Piece, bool) {
	color := chesscore.White
	upper := c
	if c >= 'a' && c <= 'z' {
		color = chesscore.Black
		upper = c - ('a' - 'A')
	}
	var role chesscore.Role
	switch upper {
	case 'P':
		role = chesscore.Pawn
	case 'N':
		role = chesscore.Knight
	case 'B':
		role = chesscore.Bishop
	case 'R':
		role = chesscore.Rook
	case 'Q':
		role = chesscore.Queen
	case 'K':
		role = chesscore.King
	default:
		return chesscore.Piece{}, false
	}
	return chesscore.Piece{Color: color, Role: role}, true
}

func parseSquare(s string) (chesscore.Square, error) {
	if len(s) != 2 {
		return chesscore.NoSquare, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chesscore.NoSquare, fmt.Errorf("bad square %q", s)
	}
	return chesscore.SquareAt(file, rank), nil
}

// syntheticDoublePush fabricates the double pawn push that would have
// produced the given en-passant target square, since History.LastMove
// only exists to answer "which pawn just double-pushed" and a FEN string
// does not otherwise carry move history.
func syntheticDoublePush(board *chesscore.Board, sideToMove chesscore.Color, target chesscore.Square) *chesscore.Move {
	mover := sideToMove.Other()
	forward := 8
	if mover == chesscore.Black {
		forward = -8
	}
	from := chesscore.Square(int(target) - forward)
	to := chesscore.Square(int(target) + forward)
	m := chesscore.NewNormalMove(chesscore.Piece{Color: mover, Role: chesscore.Pawn}, from, to, chesscore.NoRole)
	return &m
}

// parseCastling supports both classical KQkq and Shredder-FEN (file
// letter) castling fields, the latter required to represent Chess960
// positions unambiguously.
func parseCastling(field string, board *chesscore.Board) (chesscore.UnmovedRooks, [4]chesscore.Square, error) {
	var rookSquare [4]chesscore.Square
	for i := range rookSquare {
		rookSquare[i] = chesscore.NoSquare
	}
	if field == "-" {
		return 0, rookSquare, nil
	}

	var rooks chesscore.Bitboard
	for _, c := range field {
		color := chesscore.White
		letter := byte(c)
		if letter >= 'a' && letter <= 'z' {
			color = chesscore.Black
			letter -= 'a' - 'A'
		}
		king := board.King(color)
		if king == chesscore.NoSquare {
			return 0, rookSquare, fmt.Errorf("castling right for a side with no king")
		}
		rank := king.Rank()

		var rookFile int
		kingside := true
		switch letter {
		case 'K':
			rookFile = highestRookFile(board, color, rank, king.File(), true)
		case 'Q':
			rookFile = highestRookFile(board, color, rank, king.File(), false)
			kingside = false
		default:
			if letter < 'A' || letter > 'H' {
				return 0, rookSquare, fmt.Errorf("unrecognized castling letter %q", c)
			}
			rookFile = int(letter - 'A')
			kingside = rookFile > king.File()
		}
		sq := chesscore.SquareAt(rookFile, rank)
		rooks = rooks.Add(sq)
		side := sideOfRaw(color, kingside)
		rookSquare[side] = sq
	}
	return chesscore.UnmovedRooks(rooks), rookSquare, nil
}

// highestRookFile finds the outermost rook on the given rank in the
// requested direction from the king, used to resolve the classical K/Q
// castling letters against a (possibly Chess960) board.
func highestRookFile(board *chesscore.Board, color chesscore.Color, rank, kingFile int, kingside bool) int {
	best := -1
	for file := 0; file < 8; file++ {
		sq := chesscore.SquareAt(file, rank)
		p, ok := board.PieceAt(sq)
		if !ok || p.Role != chesscore.Rook || p.Color != color {
			continue
		}
		if kingside && file > kingFile {
			best = file
		}
		if !kingside && file < kingFile && best == -1 {
			best = file
		}
	}
	return best
}

func sideOfRaw(c chesscore.Color, kingside bool) chesscore.CastleSide {
	switch {
	case c == chesscore.White && kingside:
		return chesscore.WhiteKingside
	case c == chesscore.White && !kingside:
		return chesscore.WhiteQueenside
	case c == chesscore.Black && kingside:
		return chesscore.BlackKingside
	default:
		return chesscore.BlackQueenside
	}
}

func castlesFromRookSquares(unmovedRooks chesscore.UnmovedRooks, rookSquare [4]chesscore.Square) chesscore.Castles {
	var c chesscore.Castles
	for side := chesscore.WhiteKingside; side <= chesscore.BlackQueenside; side++ {
		if rookSquare[side] != chesscore.NoSquare && chesscore.Bitboard(unmovedRooks).Contains(rookSquare[side]) {
			c |= 1 << side
		}
	}
	return c
}

func serializeCastling(s *chesscore.Situation) string {
	var b strings.Builder
	letters := [4]byte{'K', 'Q', 'k', 'q'}
	for side := chesscore.WhiteKingside; side <= chesscore.BlackQueenside; side++ {
		if s.History.Castles.Has(side) {
			b.WriteByte(letters[side])
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
