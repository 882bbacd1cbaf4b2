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

package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrien-labs/chesscore/internal/config"
	"github.com/obrien-labs/chesscore/internal/position"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	config.Setup()
	return New()
}

func TestImportExportFENRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", e.ExportFEN())
}

func TestImportFENPropagatesUnderlyingError(t *testing.T) {
	e := newTestEngine(t)
	err := e.ImportFEN("not-a-fen")
	assert.Error(t, err)
}

func TestImportFENRefreshesLegalMoves(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	assert.Len(t, e.LegalMoves(), 20)
}

func TestMakeUserMoveAppliesAndRefreshesLegalMoves(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	require.NoError(t, e.MakeUserMove("e2e4"))
	assert.Contains(t, e.ExportFEN(), "4P3")
	for _, m := range e.LegalMoves() {
		assert.NotEqual(t, "e2e4", m.String())
	}
}

func TestMakeUserMoveRejectsMalformedInput(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	err := e.MakeUserMove("e2")
	assert.True(t, errors.Is(err, ErrMalformedMove))
}

func TestMakeUserMoveRejectsIllegalMove(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	err := e.MakeUserMove("e2e5")
	assert.True(t, errors.Is(err, ErrIllegalMove))
}

func TestMakeUserMoveAcceptsPromotionLetter(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN("8/4P3/8/8/4k3/8/8/4K3 w - - 0 1"))
	require.NoError(t, e.MakeUserMove("e7e8q"))
	assert.Contains(t, e.ExportFEN(), "4Q3")
}

func TestBestMoveReturnsAMoveWithinBudget(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.ImportFEN(position.StartFen))
	result := e.BestMove(100)
	assert.True(t, result.HasMove)
	found := false
	for _, m := range e.LegalMoves() {
		if m.String() == result.Move.String() {
			found = true
		}
	}
	assert.True(t, found, "engine's chosen move must be one of the position's legal moves")
}
