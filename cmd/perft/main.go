// Command perft counts the leaf nodes of one position's move tree to a
// given depth and reports elapsed time, in the spirit of the teacher
// package's own internal perft driver.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	chesscore "github.com/lucidchess/core"
	"github.com/lucidchess/core/fen"
	"github.com/lucidchess/core/internal/perft"
)

func main() {
	fenFlag := flag.String("fen", "", "FEN of the position to test (default: standard starting position)")
	depth := flag.Int("depth", 5, "search depth")
	parallel := flag.Bool("parallel", true, "fan root moves out across goroutines")
	divide := flag.Bool("divide", false, "print the leaf-node count contributed by each root move")
	cacheDir := flag.String("cache", "", "badger directory to memoize node counts in (default: no cache)")
	cpuprofile := flag.String("cpuprofile", "", "file to write a cpu profile")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	f := *fenFlag
	if f == "" {
		f = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}
	situation, err := fen.Parse(f, chesscore.Standard{})
	if err != nil {
		log.Fatalf("parsing fen: %v", err)
	}

	if *divide {
		for move, nodes := range perft.Divide(situation, *depth) {
			log.Printf("%s %d", move, nodes)
		}
		return
	}

	var cache *perft.Cache
	if *cacheDir != "" {
		cache, err = perft.OpenCache(*cacheDir)
		if err != nil {
			log.Fatalf("opening cache: %v", err)
		}
		defer cache.Close()
	}

	start := time.Now()
	var nodes int64
	switch {
	case cache != nil:
		nodes, err = cache.CountCached(situation, *depth)
	case *parallel:
		nodes, err = perft.CountParallel(context.Background(), situation, *depth)
	default:
		nodes = perft.Count(situation, *depth)
	}
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("perft failed: %v", err)
	}

	log.Printf("depth %d: %d nodes in %s (%.0f nodes/sec)",
		*depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
