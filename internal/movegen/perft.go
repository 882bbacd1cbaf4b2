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

import "github.com/obrien-labs/chesscore/internal/position"

// Perft counts leaf positions reachable in exactly depth plies from p,
// the standard move-generator correctness benchmark. p is left exactly as
// it was found: every make is paired with an unmake before Perft returns.
func Perft(p *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := generatePseudoLegalFiltered(p)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += Perft(p, depth-1)
		p.UnmakeMove(m)
	}
	return nodes
}

// generatePseudoLegalFiltered is GenerateLegalMoves without the IsCheck
// annotation and the move-order sort, since perft counts need neither and
// both are wasted work at every one of perft's many nodes.
func generatePseudoLegalFiltered(p *position.Position) []position.Move {
	pseudo := generatePseudoLegal(p)
	legal := make([]position.Move, 0, len(pseudo))
	mover := p.SideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.IsSquareAttacked(p.KingSquare(mover), mover.Flip()) {
			legal = append(legal, m)
		}
		p.UnmakeMove(m)
	}
	return legal
}

// DivideEntry is one root move's perft sub-count, as reported by Divide.
type DivideEntry struct {
	Move  position.Move
	Nodes int64
}

// Divide runs perft one ply at the root, reporting each legal root move's
// own sub-tree count - useful for isolating a move generator bug against a
// reference engine's per-move breakdown.
func Divide(p *position.Position, depth int) []DivideEntry {
	moves := generatePseudoLegalFiltered(p)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		p.MakeMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(p, depth-1)})
		p.UnmakeMove(m)
	}
	return entries
}
