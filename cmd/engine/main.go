// chesscore - a bitboard chess engine core
//
// MIT License
//
// Copyright (c) 2026 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/obrien-labs/chesscore/internal/config"
	"github.com/obrien-labs/chesscore/internal/engine"
	"github.com/obrien-labs/chesscore/internal/logging"
	"github.com/obrien-labs/chesscore/internal/movegen"
	"github.com/obrien-labs/chesscore/internal/position"
)

var out = message.NewPrinter(language.English)

var logLevels = map[string]int{
	"critical": 0, "error": 1, "warning": 2, "notice": 3, "info": 4, "debug": 5,
}

func main() {
	configFile := flag.String("config", "./chesscore.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", position.StartFen, "FEN of the position to load")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen and print the total node count")
	divide := flag.Bool("divide", false, "with -perft, print each root move's own sub-count instead of just the total")
	concurrent := flag.Bool("concurrent", false, "with -perft, shard root moves across goroutines (one Position clone per worker)")
	movetime := flag.Int("movetime", 0, "if set, run best_move for this many milliseconds on -fen and print the result")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	memProfile := flag.Bool("memprofile", false, "write a memory profile of this run to ./mem.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := logLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	e := engine.New()
	if err := e.ImportFEN(*fen); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case *perft > 0:
		runPerft(e, *perft, *divide, *concurrent)
	case *movetime > 0:
		runBestMove(e, *movetime)
	default:
		fmt.Println(e.Position())
		out.Printf("legal moves (%d):", len(e.LegalMoves()))
		for _, m := range e.LegalMoves() {
			fmt.Printf(" %s", m)
		}
		fmt.Println()
	}
}

func runPerft(e *engine.Engine, depth int, divide, concurrent bool) {
	start := time.Now()
	switch {
	case divide:
		entries := movegen.Divide(e.Position(), depth)
		sort.Slice(entries, func(i, j int) bool { return entries[i].Move.String() < entries[j].Move.String() })
		var total int64
		for _, en := range entries {
			out.Printf("%s: %d\n", en.Move, en.Nodes)
			total += en.Nodes
		}
		out.Printf("total: %d\n", total)
	case concurrent:
		total := concurrentPerft(e.Position(), depth)
		out.Printf("perft(%d): %d nodes in %s\n", depth, total, time.Since(start))
	default:
		total := movegen.Perft(e.Position(), depth)
		out.Printf("perft(%d): %d nodes in %s\n", depth, total, time.Since(start))
	}
}

// concurrentPerft shards the root move list across goroutines bounded by
// runtime.NumCPU(), each operating on its own cloned Position so no
// mutable state crosses a goroutine boundary. This is a debugging
// convenience for perft, not a parallel search - the search package
// remains strictly single-threaded.
func concurrentPerft(p *position.Position, depth int) int64 {
	roots := movegen.Divide(p, 1)
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	ctx := context.Background()
	results := make([]int64, len(roots))
	done := make(chan struct{}, len(roots))

	for i, root := range roots {
		i, root := i, root
		if err := sem.Acquire(ctx, 1); err != nil {
			continue
		}
		go func() {
			defer sem.Release(1)
			clone := *p
			clone.MakeMove(root.Move)
			results[i] = movegen.Perft(&clone, depth-1)
			done <- struct{}{}
		}()
	}
	for range roots {
		<-done
	}
	var total int64
	for _, n := range results {
		total += n
	}
	return total
}

func runBestMove(e *engine.Engine, movetimeMs int) {
	result := e.BestMove(int64(movetimeMs))
	if !result.HasMove {
		out.Println("no legal move (terminal position)")
		return
	}
	out.Printf("best move: %s  score: %d  depth: %d  nodes: %d  elapsed: %s\n",
		result.Move, result.Score, result.Depth, result.Nodes, result.Elapsed)
}
