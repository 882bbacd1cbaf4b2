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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrien-labs/chesscore/internal/attacks"
	"github.com/obrien-labs/chesscore/internal/position"
)

var testTables = attacks.NewTables()

func TestStartPositionIsBalanced(t *testing.T) {
	p := position.NewPosition(testTables)
	require.NoError(t, p.ImportFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))
	assert.Equal(t, 0, Evaluate(p))
}

func TestExtraQueenFavorsWhite(t *testing.T) {
	p := position.NewPosition(testTables)
	require.NoError(t, p.ImportFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1"))
	assert.True(t, Evaluate(p) > 800)
}

func TestMirroringMakesSymmetricPositionsEqualZero(t *testing.T) {
	p := position.NewPosition(testTables)
	require.NoError(t, p.ImportFEN("4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1"))
	assert.Equal(t, 0, Evaluate(p))
}
