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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrien-labs/chesscore/internal/attacks"
	"github.com/obrien-labs/chesscore/internal/position"
	. "github.com/obrien-labs/chesscore/internal/types"
)

var testTables = attacks.NewTables()

const startFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func mustImport(t *testing.T, fen string) *position.Position {
	p := position.NewPosition(testTables)
	require.NoError(t, p.ImportFEN(fen))
	return p
}

func TestInitialPositionLegalMoveCount(t *testing.T) {
	p := mustImport(t, startFen)
	assert.Len(t, GenerateLegalMoves(p), 20)
}

func TestMoveListDeterminism(t *testing.T) {
	p := mustImport(t, startFen)
	first := GenerateLegalMoves(p)
	second := GenerateLegalMoves(p)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].String(), second[i].String())
	}
}

func TestEnPassantCaptureIsLegalAndFlagged(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/p1pp1ppp/8/1p2pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
	moves := GenerateLegalMoves(p)
	var found *position.Move
	for i := range moves {
		if moves[i].String() == "f5e6" {
			found = &moves[i]
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.IsEnPassantCapture)

	before := *p
	p.MakeMove(*found)
	assert.False(t, p.PiecesBb(Black, Pawn).Has(NewSquare(4, 3))) // e5 pawn gone
	assert.True(t, p.PiecesBb(White, Pawn).Has(NewSquare(4, 2)))  // white pawn on e6
	p.UnmakeMove(*found)
	assert.Equal(t, before.PieceBb, p.PieceBb)
	assert.Equal(t, before.Zobrist, p.Zobrist)
}

func TestShortCastleAvailableAndAnnotated(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/pppppppp/8/8/4B3/4N3/PPPPPPPP/RNBQK2R w KQkq - 0 1")
	moves := GenerateLegalMoves(p)
	var found *position.Move
	for i := range moves {
		if moves[i].String() == "e1g1" {
			found = &moves[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, position.ShortCastle, found.CastleSide)
}

func TestPromotionEnumeratesFourMoves(t *testing.T) {
	p := mustImport(t, "rnbqk3/1pppp1P1/7P/5P2/1QN1B3/1PB1N3/pPPPP3/4K2R w Kq - 0 1")
	moves := GenerateLegalMoves(p)
	count := 0
	for _, m := range moves {
		if m.From.String() == "g7" && m.IsPromotion() {
			count++
		}
	}
	assert.Equal(t, 4, count)
}

func TestMateInOne(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/pppp1ppp/8/4p3/5PP1/8/PPPPP2P/RNBQKBNR b - - 0 1")
	moves := GenerateLegalMoves(p)
	var found *position.Move
	for i := range moves {
		if moves[i].String() == "d8h4" {
			found = &moves[i]
		}
	}
	require.NotNil(t, found)
	p.MakeMove(*found)
	after := GenerateLegalMoves(p)
	assert.Len(t, after, 0)
	assert.True(t, p.IsSquareAttacked(p.KingSquare(White), Black))
}

func TestZobristEquivalenceViaTransposition(t *testing.T) {
	p1 := mustImport(t, startFen)
	playMove(t, p1, "e2e4")
	playMove(t, p1, "e7e5")
	playMove(t, p1, "g1f3")

	p2 := mustImport(t, startFen)
	playMove(t, p2, "g1f3")
	playMove(t, p2, "e7e5")
	playMove(t, p2, "e2e4")

	assert.Equal(t, p1.Zobrist, p2.Zobrist)
}

func playMove(t *testing.T, p *position.Position, lan string) {
	t.Helper()
	for _, m := range GenerateLegalMoves(p) {
		if m.String() == lan {
			p.MakeMove(m)
			return
		}
	}
	t.Fatalf("move %s not found among legal moves", lan)
}

func TestPerftInitialPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("perft d4/d5 are expensive; skipped with -short")
	}
	p := mustImport(t, startFen)
	assert.Equal(t, int64(20), Perft(p, 1))
	assert.Equal(t, int64(400), Perft(p, 2))
	assert.Equal(t, int64(8902), Perft(p, 3))
	assert.Equal(t, int64(197281), Perft(p, 4))
	assert.Equal(t, int64(4865609), Perft(p, 5))
}

func TestPerftKiwipete(t *testing.T) {
	p := mustImport(t, kiwipeteFen)
	assert.Equal(t, int64(48), Perft(p, 1))
	assert.Equal(t, int64(2039), Perft(p, 2))
	if !testing.Short() {
		assert.Equal(t, int64(97862), Perft(p, 3))
	}
}

func TestOrderingPutsChecksAndCapturesFirst(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/pppp1ppp/8/4p3/5PP1/8/PPPPP2P/RNBQKBNR b - - 0 1")
	moves := GenerateLegalMoves(p)
	require.NotEmpty(t, moves)
	// d8h4 delivers checkmate; it must sort to the front.
	assert.Equal(t, "d8h4", moves[0].String())
}
