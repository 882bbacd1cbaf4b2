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

package movegen

import (
	"github.com/op/go-logging"

	myLogging "github.com/obrien-labs/chesscore/internal/logging"
	"github.com/obrien-labs/chesscore/internal/position"
)

var log *logging.Logger

// GenerateLegalMoves returns every legal move for the side to move in p,
// ordered by Order. A pseudo-legal move is legal unless it leaves the
// mover's own king attacked; this is checked by actually making the move,
// probing IsSquareAttacked, and unmaking it again, rather than by a
// pin/check precomputation. Each surviving move is annotated with
// IsCheck (whether it leaves the opponent's king attacked).
func GenerateLegalMoves(p *position.Position) []position.Move {
	if log == nil {
		log = myLogging.GetLog()
	}
	pseudo := generatePseudoLegal(p)
	legal := make([]position.Move, 0, len(pseudo))
	mover := p.SideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip()) {
			m.IsCheck = p.IsSquareAttacked(p.KingSquare(mover.Flip()), mover)
			legal = append(legal, m)
		}
		p.UnmakeMove(m)
	}
	Order(p, legal)
	if len(legal) == 0 {
		log.Debugf("no legal moves for %s to move: %s", mover, p)
	}
	return legal
}
