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
//
// The bishopMagicNumbers and rookMagicNumbers tables below are the classic
// set of magic multipliers long in circulation among hobbyist bitboard
// engines (found offline by brute-force search against the standard a1=0
// square numbering). The multiplier search itself is build-time tooling
// and is deliberately not part of this package - only its fixed output is.

package attacks

import (
	"math/bits"

	. "github.com/obrien-labs/chesscore/internal/types"
)

// The magic numbers below are indexed by the standard a1=0, h8=63, rank-
// major square numbering (bit index = rank*8+file with rank 0 = rank 1).
// This engine numbers squares a8=0 instead, so every lookup first flips a
// square through stdSquare() and every occupancy bitboard through
// stdBitboard() before touching these tables. Flipping the rank while
// keeping the file order is exactly a byte-swap of the 64-bit word, which
// is also its own inverse, so the same helper converts both ways.

func stdSquare(sq Square) int {
	return int(sq) ^ 56
}

func stdBitboard(b Bitboard) Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

type delta struct{ df, dr int }

var bishopDeltas = [4]delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDeltas = [4]delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

const (
	stdFileA uint64 = 0x0101010101010101
	stdFileH uint64 = 0x8080808080808080
	stdRank1 uint64 = 0x00000000000000FF
	stdRank8 uint64 = 0xFF00000000000000
	stdEdges        = stdFileA | stdFileH | stdRank1 | stdRank8
)

// slideStd computes the sliding attack set from a standard-numbered square
// against a standard-numbered occupancy bitboard, stopping on (and
// including) the first blocker along each of the four directions.
func slideStd(stdSq int, occStd uint64, deltas [4]delta) uint64 {
	file0, rank0 := stdSq%8, stdSq/8
	var attacks uint64
	for _, d := range deltas {
		f, r := file0+d.df, rank0+d.dr
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			idx := uint(r*8 + f)
			attacks |= 1 << idx
			if occStd&(1<<idx) != 0 {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return attacks
}

// magicSet holds the built attack tables for one slider kind (bishop or rook).
type magicSet struct {
	mask  [64]uint64 // relevant-occupancy mask, standard numbering, indexed by std square
	magic [64]uint64
	shift [64]uint
	table [64][]Bitboard // attacks, standard numbering, indexed by std square then magic index
}

// newMagicSet builds masks and attack tables for every square from the
// precomputed magic numbers, following the relevant-occupancy /
// Carry-Rippler subset enumeration method: for every subset of the
// relevant-occupancy mask, ray-walk to find the true attack set and store
// it at the subset's magic index.
func newMagicSet(magicNumbers [64]uint64, deltas [4]delta) magicSet {
	var ms magicSet
	for stdSq := 0; stdSq < 64; stdSq++ {
		// Relevant-occupancy mask: every square of each empty-board ray
		// except the ray's last one, since a blocker there hides nothing.
		var mask uint64
		for _, d := range deltas {
			f, r := stdSq%8+d.df, stdSq/8+d.dr
			for f+d.df >= 0 && f+d.df < 8 && r+d.dr >= 0 && r+d.dr < 8 {
				mask |= 1 << uint(r*8+f)
				f += d.df
				r += d.dr
			}
		}
		bitCount := bits.OnesCount64(mask)
		shift := uint(64 - bitCount)
		magic := magicNumbers[stdSq]

		ms.mask[stdSq] = mask
		ms.magic[stdSq] = magic
		ms.shift[stdSq] = shift
		ms.table[stdSq] = make([]Bitboard, 1<<bitCount)

		// Carry-Rippler: enumerate every subset of mask, including the
		// empty subset, terminating once the subtraction wraps back to 0.
		occ := uint64(0)
		for {
			idx := (occ * magic) >> shift
			ms.table[stdSq][idx] = Bitboard(slideStd(stdSq, occ, deltas))
			occ = (occ - mask) & mask
			if occ == 0 {
				break
			}
		}
	}
	return ms
}

// attacks looks up the attack set from sq (this engine's numbering) given
// full-board occupancy occ (also this engine's numbering).
func (ms *magicSet) attacks(sq Square, occ Bitboard) Bitboard {
	s := stdSquare(sq)
	occStd := uint64(stdBitboard(occ))
	idx := ((occStd & ms.mask[s]) * ms.magic[s]) >> ms.shift[s]
	return stdBitboard(ms.table[s][idx])
}

// bishopMagicNumbers and rookMagicNumbers are the classic brute-force-found
// multipliers for the standard a1=0 square numbering.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}
