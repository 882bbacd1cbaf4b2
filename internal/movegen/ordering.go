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
	"sort"

	"github.com/obrien-labs/chesscore/internal/position"
)

// Order computes each move's composite sort key and stable-sorts the slice
// ascending, so the moves most likely to cause an early alpha-beta cutoff
// come first: giving check, capturing, moving to a square the mover
// defends, and moving a piece off a square the opponent attacks are
// rewarded (lower key); moving to a square the opponent attacks is
// penalized (higher key).
func Order(p *position.Position, moves []position.Move) {
	mover := p.SideToMove
	opp := mover.Flip()
	for i := range moves {
		m := &moves[i]
		key := 0
		if m.IsCheck {
			key -= 10
		}
		if m.IsCapture() {
			key -= 5
		}
		if p.IsSquareAttacked(m.To, mover) {
			key -= 2
		}
		if p.IsSquareAttacked(m.To, opp) {
			key += 2
		}
		if p.IsSquareAttacked(m.From, opp) {
			key -= 2
		}
		m.SortKey = key
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].SortKey < moves[j].SortKey
	})
}
