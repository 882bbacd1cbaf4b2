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

import "fmt"

// Square is a board square numbered 0..63 with square 0 = a8 (top-left from
// White's perspective) and square 63 = h1. Rank increases downward
// (RankOf(0)==0 is the 8th rank, RankOf(56)==7 is the 1st rank); file
// increases left to right (a=0..h=7). This numbering is load-bearing: White
// pawns advance by -8, Black pawns by +8.
type Square int8

const (
	SqNone Square = -1
	SqA8   Square = 0
	SqB8   Square = 1
	SqC8   Square = 2
	SqD8   Square = 3
	SqE8   Square = 4
	SqF8   Square = 5
	SqG8   Square = 6
	SqH8   Square = 7
	SqA1   Square = 56
	SqB1   Square = 57
	SqC1   Square = 58
	SqD1   Square = 59
	SqE1   Square = 60
	SqF1   Square = 61
	SqG1   Square = 62
	SqH1   Square = 63
	SqLength       = 64
)

// NewSquare builds a square from a file (0=a..7=h) and a rank (0=rank8..7=rank1).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// FileOf returns the file index (0=a..7=h).
func (s Square) FileOf() int {
	return int(s) % 8
}

// RankOf returns the rank index (0=rank8..7=rank1).
func (s Square) RankOf() int {
	return int(s) / 8
}

// IsValid reports whether s is within the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < SqLength
}

// algebraic rank digits, indexed by RankOf(): rank index 0 -> "8" ... 7 -> "1".
var rankChar = [8]byte{'8', '7', '6', '5', '4', '3', '2', '1'}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.FileOf()), rankChar[s.RankOf()]})
}

// ParseSquare parses an algebraic square such as "e4". ok is false for
// anything that isn't a two-character board square.
func ParseSquare(str string) (sq Square, ok bool) {
	if len(str) != 2 {
		return SqNone, false
	}
	file := str[0] - 'a'
	rankDigit := str[1]
	if file > 7 {
		return SqNone, false
	}
	var rank int
	switch rankDigit {
	case '1', '2', '3', '4', '5', '6', '7', '8':
		rank = 7 - int(rankDigit-'1')
	default:
		return SqNone, false
	}
	return NewSquare(int(file), rank), true
}

// Direction is a constant square delta used for ray-walking and mask
// construction. Because rank increases downward in this numbering, "North"
// (toward rank 8) is a negative delta.
type Direction int

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// To steps one square in the given direction, clipping file wraparound.
// Returns SqNone if the step leaves the board or wraps around a file edge.
func (s Square) To(d Direction) Square {
	if !s.IsValid() {
		return SqNone
	}
	file := s.FileOf()
	switch d {
	case East, Northeast, Southeast:
		if file == 7 {
			return SqNone
		}
	case West, Northwest, Southwest:
		if file == 0 {
			return SqNone
		}
	}
	ns := Square(int(s) + int(d))
	if !ns.IsValid() {
		return SqNone
	}
	return ns
}

// GoString supports %#v debug printing.
func (s Square) GoString() string {
	return fmt.Sprintf("Square(%d:%s)", int(s), s.String())
}
