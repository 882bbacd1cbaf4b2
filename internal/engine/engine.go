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

// Package engine is the facade a caller (CLI, networked-play client, test
// harness) drives: import/export FEN, list legal moves, apply a
// caller-supplied move, and ask for the engine's own best move. It owns
// the Position, the shared attack tables, and the transposition table.
// Apart from cmd/engine's perft tools, which run package movegen on the
// engine's Position, callers go through this facade.
package engine

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"github.com/obrien-labs/chesscore/internal/attacks"
	myLogging "github.com/obrien-labs/chesscore/internal/logging"
	"github.com/obrien-labs/chesscore/internal/movegen"
	"github.com/obrien-labs/chesscore/internal/position"
	"github.com/obrien-labs/chesscore/internal/search"
	"github.com/obrien-labs/chesscore/internal/transpositiontable"
	. "github.com/obrien-labs/chesscore/internal/types"
)

var log *logging.Logger

var (
	ErrMalformedMove = errors.New("malformed move")
	ErrIllegalMove   = errors.New("illegal move")
)

// Engine bundles a Position with the shared attack tables and a
// transposition table that persists across searches within one game.
type Engine struct {
	tables *attacks.Tables
	tt     *transpositiontable.Table
	pos    *position.Position
}

// New builds an engine with a fresh set of attack tables and transposition
// table, and an empty position.
func New() *Engine {
	if log == nil {
		log = myLogging.GetLog()
	}
	tables := attacks.NewTables()
	return &Engine{
		tables: tables,
		tt:     transpositiontable.New(),
		pos:    position.NewPosition(tables),
	}
}

// ImportFEN loads a position, clearing all prior state including the
// transposition table (a new position invalidates every cached search
// result from the old one).
func (e *Engine) ImportFEN(fen string) error {
	if err := e.pos.ImportFEN(fen); err != nil {
		return err
	}
	e.tt.Clear()
	e.pos.LegalMoves = movegen.GenerateLegalMoves(e.pos)
	return nil
}

// ExportFEN renders the current position back to FEN.
func (e *Engine) ExportFEN() string {
	return e.pos.ExportFEN()
}

// LegalMoves returns the ordered legal-move list for the current position.
func (e *Engine) LegalMoves() []position.Move {
	return e.pos.LegalMoves
}

// Position exposes the underlying position read-only for callers that need
// to print a board diagram or inspect state not covered by this facade.
func (e *Engine) Position() *position.Position {
	return e.pos
}

// parseUserMove parses long-algebraic text (four characters, five with a
// trailing lowercase promotion letter) into a from/to/promotion skeleton.
func parseUserMove(s string) (from, to Square, promo PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return SqNone, SqNone, PieceTypeNone, fmt.Errorf("%w: %q has length %d, want 4 or 5", ErrMalformedMove, s, len(s))
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return SqNone, SqNone, PieceTypeNone, fmt.Errorf("%w: bad source square in %q", ErrMalformedMove, s)
	}
	to, ok = ParseSquare(s[2:4])
	if !ok {
		return SqNone, SqNone, PieceTypeNone, fmt.Errorf("%w: bad destination square in %q", ErrMalformedMove, s)
	}
	promo = PieceTypeNone
	if len(s) == 5 {
		pt, ok := PieceTypeFromLetter(s[4] - 'a' + 'A')
		if !ok || pt == Pawn || pt == King {
			return SqNone, SqNone, PieceTypeNone, fmt.Errorf("%w: bad promotion letter in %q", ErrMalformedMove, s)
		}
		promo = pt
	}
	return from, to, promo, nil
}

// MakeUserMove parses s, finds the matching fully-populated legal move for
// the current position, applies it, and refreshes LegalMoves. Returns
// ErrMalformedMove if s doesn't parse, ErrIllegalMove if it parses but
// does not match any move in the current legal-move list.
func (e *Engine) MakeUserMove(s string) error {
	from, to, promo, err := parseUserMove(s)
	if err != nil {
		return err
	}
	for _, m := range e.pos.LegalMoves {
		if m.From == from && m.To == to && m.PromotedTo == promo {
			e.pos.MakeMove(m)
			e.pos.LegalMoves = movegen.GenerateLegalMoves(e.pos)
			return nil
		}
	}
	log.Warningf("rejected illegal move %q for position %s", s, e.pos.ExportFEN())
	return fmt.Errorf("%w: %q is not in the current legal-move list", ErrIllegalMove, s)
}

// BestMove runs iterative deepening up to timeBudgetMs and returns the
// engine's chosen move and its evaluation. It does not apply the move;
// callers that want to play it call MakeUserMove(result.Move.String()).
func (e *Engine) BestMove(timeBudgetMs int64) search.Result {
	log.Infof("searching %s, budget %d ms", e.pos.ExportFEN(), timeBudgetMs)
	result := search.BestMove(e.pos, e.tt, timeBudgetMs)
	log.Infof("search result: depth %d, score %d, move %s, %d nodes in %s",
		result.Depth, result.Score, result.Move, result.Nodes, result.Elapsed)
	return result
}
