package chesscore

import "fmt"

// InvalidPositionError reports a FEN (or other external position
// description) that could not be turned into a Situation: wrong field
// count, a piece-placement field that doesn't sum to eight files per
// rank, an unparseable counter, or a position the rules consider
// structurally impossible (e.g. a side with more than one king).
type InvalidPositionError struct {
	Input  string
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position %q: %s", e.Input, e.Reason)
}

// IllegalMoveError reports that a caller asked to apply a move that does
// not appear in the current Situation's LegalMoves.
type IllegalMoveError struct {
	Situation *Situation
	Attempted Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s-%s for side to move", e.Attempted.From, e.Attempted.To)
}

// ApplyLegalMove validates m against s.LegalMoves before applying it,
// returning *IllegalMoveError instead of producing an undefined
// Situation when m is not legal. Use this at any boundary that accepts
// moves from outside the package (UCI, PGN replay, a network peer);
// internal callers that already enumerated m from LegalMoves can call
// ApplyMove directly and skip the redundant scan.
func (s *Situation) ApplyLegalMove(m Move) (*Situation, error) {
	legal := s.LegalMoves()
	if !legal.Contains(m) {
		return nil, &IllegalMoveError{Situation: s, Attempted: m}
	}
	return s.ApplyMove(m), nil
}
