// Package perft walks the move generation tree of strictly legal moves
// to a given depth and counts the number of visited leaf nodes, the
// standard correctness oracle for a chess move generator (see
// https://www.chessprogramming.org/Perft_Results). It is internal since
// it exists to test and benchmark chesscore, not to be consumed as a
// public API.
package perft

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/sync/errgroup"

	chesscore "github.com/lucidchess/core"
	"github.com/lucidchess/core/fen"
)

// Count walks s's move tree to depth and returns the number of leaf
// nodes, single-threaded.
func Count(s *chesscore.Situation, depth int) int64 {
	if depth == 0 {
		return 1
	}
	legal := s.LegalMoves()
	if depth == 1 {
		return int64(legal.Len())
	}
	var nodes int64
	for i := 0; i < legal.Len(); i++ {
		nodes += Count(s.ApplyMove(legal.At(i)), depth-1)
	}
	return nodes
}

// Divide maps each root move to the leaf-node count of the subtree it
// leads to, one of the standard tools for locating the first ply at
// which a move generator disagrees with a reference engine.
func Divide(s *chesscore.Situation, depth int) map[string]int64 {
	legal := s.LegalMoves()
	out := make(map[string]int64, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		key := m.From.String() + m.To.String()
		if depth <= 1 {
			out[key] = 1
			continue
		}
		out[key] = Count(s.ApplyMove(m), depth-1)
	}
	return out
}

// CountParallel behaves like Count but fans the root moves out across
// an errgroup-managed worker pool: perft trees at any useful depth are
// embarrassingly parallel since subtrees share no mutable state (every
// Situation is an independent, immutably-shared value), so splitting at
// the root is sufficient to saturate available cores without needing a
// work-stealing scheduler deeper in the tree.
func CountParallel(ctx context.Context, s *chesscore.Situation, depth int) (int64, error) {
	if depth <= 1 {
		return Count(s, depth), nil
	}
	legal := s.LegalMoves()
	counts := make([]int64, legal.Len())

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < legal.Len(); i++ {
		i := i
		g.Go(func() error {
			counts[i] = Count(s.ApplyMove(legal.At(i)), depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Result accumulates the detailed move-category breakdown perft suites
// conventionally report alongside the raw node count.
type Result struct {
	Nodes        int64
	Captures     int64
	EnPassant    int64
	Castles      int64
	Promotions   int64
	Checks       int64
	DoubleChecks int64
}

// CountVerbose behaves like Count but also classifies every move played
// along the way into Result's categories, for comparing against a known
// breakdown when Count alone does not pinpoint a divergence.
func CountVerbose(s *chesscore.Situation, depth int, r *Result) int64 {
	legal := s.LegalMoves()
	if depth == 1 {
		for i := 0; i < legal.Len(); i++ {
			m := legal.At(i)
			classify(m, r)
			if checkers := s.ApplyMove(m).Checkers(); checkers.NonEmpty() {
				r.Checks++
				if checkers.MoreThanOne() {
					r.DoubleChecks++
				}
			}
		}
		r.Nodes += int64(legal.Len())
		return int64(legal.Len())
	}

	var nodes int64
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		classify(m, r)
		next := s.ApplyMove(m)
		if checkers := next.Checkers(); checkers.NonEmpty() {
			r.Checks++
			if checkers.MoreThanOne() {
				r.DoubleChecks++
			}
		}
		nodes += CountVerbose(next, depth-1, r)
	}
	return nodes
}

// Cache memoizes Count results on disk, keyed by FEN and depth, so that
// repeated runs of a regression suite (or repeated invocations while
// narrowing down a divergence with Divide) don't redo identical subtree
// counts. Badger's LSM storage is overkill for the handful of entries a
// single suite run produces, but it is the persistent KV store already
// proven out elsewhere in this codebase's lineage, and perft caching is
// exactly the kind of "small number of potentially large values, looked
// up by an opaque key" workload it's built for.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (creating if necessary) a badger database at dir.
func OpenCache(dir string) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening perft cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

func cacheKey(s *chesscore.Situation, depth int) []byte {
	return []byte(fen.Serialize(s) + "|" + strconv.Itoa(depth))
}

// CountCached behaves like Count, but consults c first and populates it
// with any freshly computed result.
func (c *Cache) CountCached(s *chesscore.Situation, depth int) (int64, error) {
	key := cacheKey(s, depth)

	var nodes int64
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := strconv.ParseInt(string(val), 10, 64)
			nodes = n
			return err
		})
	})
	if err == nil {
		return nodes, nil
	}
	if err != badger.ErrKeyNotFound {
		return 0, fmt.Errorf("reading perft cache: %w", err)
	}

	nodes = Count(s, depth)
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte(strconv.FormatInt(nodes, 10)))
	})
	if err != nil {
		return 0, fmt.Errorf("writing perft cache: %w", err)
	}
	return nodes, nil
}

func classify(m chesscore.Move, r *Result) {
	if m.IsCapture() {
		r.Captures++
	}
	if m.Kind == chesscore.EnPassantMove {
		r.EnPassant++
	}
	if m.IsCastle() {
		r.Castles++
	}
	if m.IsPromotion() {
		r.Promotions++
	}
}
