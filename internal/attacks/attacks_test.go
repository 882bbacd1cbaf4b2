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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/obrien-labs/chesscore/internal/types"
)

func TestKnightAndKingJumpTables(t *testing.T) {
	tb := NewTables()
	// a1 knight (corner) has exactly two destinations.
	assert.Equal(t, 2, tb.Knight[SqA1].PopCount())
	// central square d5 has eight.
	center := NewSquare(3, 3)
	assert.Equal(t, 8, tb.Knight[center].PopCount())
	// king in a corner has three neighbours.
	assert.Equal(t, 3, tb.King[SqA1].PopCount())
}

func TestPawnAttacksClipFileEdges(t *testing.T) {
	tb := NewTables()
	assert.Equal(t, 1, tb.Pawn[White][NewSquare(0, 4)].PopCount()) // a-file white pawn: one diagonal
	assert.True(t, tb.Pawn[White][NewSquare(4, 4)].PopCount() == 2)
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	tb := NewTables()
	a8 := tb.RookAttacks(SqA8, BbZero)
	// from a8 on an empty board: 7 along the rank, 7 along the file.
	assert.Equal(t, 14, a8.PopCount())
}

func TestBishopAttacksBlockedByOccupancy(t *testing.T) {
	tb := NewTables()
	center := NewSquare(3, 3)
	empty := tb.BishopAttacks(center, BbZero)
	var occ Bitboard
	// place a blocker one step northeast of center.
	occ.PushSquare(center.To(Northeast))
	blocked := tb.BishopAttacks(center, occ)
	assert.True(t, blocked.PopCount() < empty.PopCount())
	assert.True(t, blocked.Has(center.To(Northeast)))
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	tb := NewTables()
	sq := NewSquare(3, 3)
	var occ Bitboard
	occ.PushSquare(NewSquare(3, 1))
	want := tb.RookAttacks(sq, occ) | tb.BishopAttacks(sq, occ)
	assert.Equal(t, want, tb.QueenAttacks(sq, occ))
}
