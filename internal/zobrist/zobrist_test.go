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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysAreDeterministicAcrossInit(t *testing.T) {
	// The package var blocks are filled once by init(); re-deriving the same
	// sequence here with a fresh generator must match exactly, proving the
	// seed fully determines every key deterministically.
	rng := &prnG{s: 0x9E3779B97F4A7C15}
	for sq := 0; sq < 64; sq++ {
		assert.Equal(t, PieceSquare[0][sq], Key(rng.next()))
	}
}

func TestKeysAreDistinct(t *testing.T) {
	seen := map[Key]bool{}
	for _, k := range PieceSquare[0] {
		assert.False(t, seen[k], "duplicate zobrist key")
		seen[k] = true
	}
	assert.NotEqual(t, Key(0), SideToMove)
}
