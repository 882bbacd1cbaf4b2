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

// Package types holds the fundamental value types shared across the engine:
// colors, piece types, squares and bitboards. Nothing in this package
// depends on position or search state.
package types

// Color identifies which side a piece or a move belongs to.
type Color int8

const (
	White Color = iota
	Black
	ColorNone
	ColorLength = 2
)

// PieceOffset is the base index into the 12-slot piece-bitboard array for
// this color: White pieces occupy slots 0..5, Black pieces 6..11.
func (c Color) PieceOffset() int {
	return int(c) * 6
}

// OccIndex is this color's index into the occupancy-bitboard array.
func (c Color) OccIndex() int {
	return int(c)
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// PawnDirection is the square delta a pawn of this color moves forward by.
func (c Color) PawnDirection() int {
	if c == White {
		return -8
	}
	return 8
}

// PromotionRank reports whether rank (0..7, 0=rank8) is this color's
// promotion rank.
func (c Color) PromotionRank(rank int) bool {
	if c == White {
		return rank == 0
	}
	return rank == 7
}

// StartingPawnRank reports whether rank is this color's pawn starting rank.
func (c Color) StartingPawnRank(rank int) bool {
	if c == White {
		return rank == 6
	}
	return rank == 1
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}
