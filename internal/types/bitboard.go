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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit k is set iff square k is a member.
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

// file/rank masks in this engine's square numbering (square = rank*8+file).
var (
	FileABb = fileMask(0)
	FileHBb = fileMask(7)
	Rank1Bb = rankMask(7) // rank index 7 == chess rank 1
	Rank8Bb = rankMask(0) // rank index 0 == chess rank 8
)

func fileMask(file int) Bitboard {
	var b Bitboard
	for r := 0; r < 8; r++ {
		b.PushSquare(NewSquare(file, r))
	}
	return b
}

func rankMask(rank int) Bitboard {
	var b Bitboard
	for f := 0; f < 8; f++ {
		b.PushSquare(NewSquare(f, rank))
	}
	return b
}

// SquareBb returns the single-bit bitboard for s.
func SquareBb(s Square) Bitboard {
	return Bitboard(1) << uint(s)
}

// Has reports whether square s is a member.
func (b Bitboard) Has(s Square) bool {
	return b&SquareBb(s) != 0
}

// PushSquare sets square s.
func (b *Bitboard) PushSquare(s Square) {
	*b |= SquareBb(s)
}

// PopSquare clears square s.
func (b *Bitboard) PopSquare(s Square) {
	*b &^= SquareBb(s)
}

// PopCount is the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the lowest-indexed set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-indexed set square.
func (b *Bitboard) PopLsb() Square {
	s := b.Lsb()
	if s != SqNone {
		b.PopSquare(s)
	}
	return s
}

// String renders the bitboard as an 8x8 board of '1'/'.' for debug output,
// top rank (rank 8) first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if b.Has(NewSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
