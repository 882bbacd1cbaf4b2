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

// Package zobrist holds the random key tables used to incrementally hash a
// Position. Keys are generated once at package init from a fixed seed so
// that the same binary always produces the same hash for the same
// position - the spec requires implementations to commit to one key set
// per build, not that the keys match any external reference.
package zobrist

import (
	. "github.com/obrien-labs/chesscore/internal/types"
)

// Key is a 64-bit Zobrist position hash.
type Key uint64

// PieceSquare holds one key per (piece index 0..11, square 0..63).
var PieceSquare [12][SqLength]Key

// Castling holds one key per castling right, ordered White-short,
// White-long, Black-short, Black-long.
var Castling [4]Key

// EnPassantFile holds one key per file (0=a..7=h), XORed in and out on the
// en-passant target's file.
var EnPassantFile [8]Key

// SideToMove is XORed in whenever it is Black's turn to move.
var SideToMove Key

// prnG is a small xorshift64star generator, the same construction
// Stockfish-derived magic-bitboard search code uses to seed its random
// search; here it drives deterministic Zobrist key generation instead.
type prnG struct{ s uint64 }

func (r *prnG) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	rng := &prnG{s: 0x9E3779B97F4A7C15}
	for piece := 0; piece < 12; piece++ {
		for sq := 0; sq < SqLength; sq++ {
			PieceSquare[piece][sq] = Key(rng.next())
		}
	}
	for i := range Castling {
		Castling[i] = Key(rng.next())
	}
	for i := range EnPassantFile {
		EnPassantFile[i] = Key(rng.next())
	}
	SideToMove = Key(rng.next())
}

// Castling right indices, matching Position's castling-rights bit order.
const (
	WhiteShort = 0
	WhiteLong  = 1
	BlackShort = 2
	BlackLong  = 3
)
