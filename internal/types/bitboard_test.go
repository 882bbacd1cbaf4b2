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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareNumbering(t *testing.T) {
	assert.Equal(t, Square(0), SqA8)
	assert.Equal(t, Square(63), SqH1)
	assert.Equal(t, 0, SqA8.FileOf())
	assert.Equal(t, 0, SqA8.RankOf())
	assert.Equal(t, 7, SqH1.RankOf())
	assert.Equal(t, "a8", SqA8.String())
	assert.Equal(t, "h1", SqH1.String())
	assert.Equal(t, "e4", NewSquare(4, 4).String())
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, s := range []Square{SqA8, SqH8, SqA1, SqH1, NewSquare(4, 4)} {
		parsed, ok := ParseSquare(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	_, ok := ParseSquare("z9")
	assert.False(t, ok)
	_, ok = ParseSquare("e")
	assert.False(t, ok)
}

func TestBitboardPushPopHas(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqA8)
	bb.PushSquare(SqH1)
	assert.True(t, bb.Has(SqA8))
	assert.True(t, bb.Has(SqH1))
	assert.False(t, bb.Has(NewSquare(4, 4)))
	assert.Equal(t, 2, bb.PopCount())
	bb.PopSquare(SqA8)
	assert.False(t, bb.Has(SqA8))
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitboardLsbAndPopLsb(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqH1)
	bb.PushSquare(SqA8)
	assert.Equal(t, SqA8, bb.Lsb())
	first := bb.PopLsb()
	assert.Equal(t, SqA8, first)
	assert.Equal(t, SqH1, bb.Lsb())
	assert.Equal(t, BbZero, bb&^SquareBb(SqH1))
}

func TestRankAndFileMasks(t *testing.T) {
	assert.Equal(t, 8, Rank8Bb.PopCount())
	assert.Equal(t, 8, Rank1Bb.PopCount())
	assert.Equal(t, 8, FileABb.PopCount())
	assert.True(t, Rank8Bb.Has(SqA8))
	assert.True(t, Rank8Bb.Has(SqH8))
	assert.True(t, Rank1Bb.Has(SqA1))
	assert.True(t, FileABb.Has(SqA8))
	assert.True(t, FileABb.Has(SqA1))
	assert.False(t, FileABb.Has(SqH1))
}

func TestColorAndPieceBasics(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	assert.Equal(t, -8, White.PawnDirection())
	assert.Equal(t, 8, Black.PawnDirection())
	assert.True(t, White.PromotionRank(0))
	assert.True(t, Black.PromotionRank(7))
	pt, ok := PieceTypeFromLetter('N')
	assert.True(t, ok)
	assert.Equal(t, Knight, pt)
	_, ok = PieceTypeFromLetter('X')
	assert.False(t, ok)
}
