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

// Package search implements alpha-beta minimax over the move generator and
// evaluator, with transposition-table probing and iterative deepening
// under a wall-clock cap. White maximizes, Black minimizes; there is no
// negamax sign flip anywhere in this package.
package search

import (
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/obrien-labs/chesscore/internal/logging"
	"github.com/obrien-labs/chesscore/internal/evaluator"
	"github.com/obrien-labs/chesscore/internal/movegen"
	"github.com/obrien-labs/chesscore/internal/position"
	"github.com/obrien-labs/chesscore/internal/transpositiontable"
	. "github.com/obrien-labs/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetSearchLog()
}

// Inf is the magnitude used for a forced mate score - comfortably larger
// than any reachable material+piece-square evaluation.
const Inf = 1 << 20

// Result is the outcome of one best-move search: the deepest completed
// iterative-deepening depth's move and score, plus instrumentation.
type Result struct {
	Move    position.Move
	HasMove bool
	Score   int
	Depth   int
	Nodes   int64
	Elapsed time.Duration
}

// nowFunc is overridable by tests that need a deterministic clock.
var nowFunc = time.Now

// BestMove runs iterative deepening from depth 1 until the wall-clock cap
// (timeBudgetMs) elapses between completed depths, and returns the deepest
// completed iteration's result. It never returns a partially-searched
// depth: an in-flight minimax call always runs to completion.
func BestMove(p *position.Position, tt *transpositiontable.Table, timeBudgetMs int64) Result {
	start := nowFunc()
	deadline := start.Add(time.Duration(timeBudgetMs) * time.Millisecond)

	var best Result
	for depth := 1; ; depth++ {
		var nodes int64
		score, move, hasMove := minimax(p, tt, depth, -Inf, Inf, &nodes, start)
		best = Result{
			Move:    move,
			HasMove: hasMove,
			Score:   score,
			Depth:   depth,
			Nodes:   best.Nodes + nodes,
			Elapsed: nowFunc().Sub(start),
		}
		if !hasMove {
			break
		}
		if nowFunc().After(deadline) || nowFunc().Equal(deadline) {
			break
		}
	}
	log.Debugf("best_move depth=%d score=%d nodes=%d elapsed=%s move=%s", best.Depth, best.Score, best.Nodes, best.Elapsed, best.Move)
	return best
}

// minimax searches p to the given depth within [alpha, beta], White
// maximizing and Black minimizing, probing tt at every node and storing
// the result of every node it expands (terminal and depth-0 nodes return
// without a store).
// start is only used for instrumentation; the outer BestMove loop, not
// minimax, enforces the wall-clock cap between whole depths.
func minimax(p *position.Position, tt *transpositiontable.Table, depth, alpha, beta int, nodes *int64, start time.Time) (int, position.Move, bool) {
	*nodes++
	alphaIn, betaIn := alpha, beta

	if entry, ok := tt.Probe(p.Zobrist); ok && entry.Depth >= depth {
		switch entry.NodeType {
		case transpositiontable.Exact:
			return entry.Evaluation, entry.BestMove, entry.HasMove
		case transpositiontable.LowerBound:
			if entry.Evaluation > alpha {
				return entry.Evaluation, entry.BestMove, entry.HasMove
			}
		case transpositiontable.UpperBound:
			if entry.Evaluation < beta {
				return entry.Evaluation, entry.BestMove, entry.HasMove
			}
		}
	}

	moves := movegen.GenerateLegalMoves(p)
	if len(moves) == 0 {
		if p.IsSquareAttacked(p.KingSquare(p.SideToMove), p.SideToMove.Flip()) {
			if p.SideToMove == White {
				return -Inf, position.Move{}, false
			}
			return Inf, position.Move{}, false
		}
		return 0, position.Move{}, false
	}

	if depth == 0 {
		return evaluator.Evaluate(p), position.Move{}, false
	}

	var best int
	var bestMove position.Move
	hasMove := false

	if p.SideToMove == White {
		best = -Inf
		for _, m := range moves {
			p.MakeMove(m)
			score, _, _ := minimax(p, tt, depth-1, alpha, beta, nodes, start)
			p.UnmakeMove(m)
			if !hasMove || score > best {
				best = score
				bestMove = m
				hasMove = true
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		best = Inf
		for _, m := range moves {
			p.MakeMove(m)
			score, _, _ := minimax(p, tt, depth-1, alpha, beta, nodes, start)
			p.UnmakeMove(m)
			if !hasMove || score < best {
				best = score
				bestMove = m
				hasMove = true
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}

	nodeType := transpositiontable.Exact
	switch {
	case best <= alphaIn:
		nodeType = transpositiontable.UpperBound
	case best >= betaIn:
		nodeType = transpositiontable.LowerBound
	}
	tt.Store(transpositiontable.Entry{
		Hash:       p.Zobrist,
		BestMove:   bestMove,
		HasMove:    hasMove,
		Depth:      depth,
		Evaluation: best,
		NodeType:   nodeType,
		Age:        nowFunc().Sub(start).Milliseconds(),
	})

	return best, bestMove, hasMove
}
