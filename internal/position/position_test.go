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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrien-labs/chesscore/internal/attacks"
	. "github.com/obrien-labs/chesscore/internal/types"
)

var testTables = attacks.NewTables()

func mustImport(t *testing.T, fen string) *Position {
	p := NewPosition(testTables)
	require.NoError(t, p.ImportFEN(fen))
	return p
}

func TestImportFENStartPosition(t *testing.T) {
	p := mustImport(t, StartFen)
	assert.Equal(t, White, p.SideToMove)
	assert.True(t, p.CastlingRights[WhiteShort])
	assert.True(t, p.CastlingRights[WhiteLong])
	assert.True(t, p.CastlingRights[BlackShort])
	assert.True(t, p.CastlingRights[BlackLong])
	assert.Equal(t, SqNone, p.EnPassant)
	assert.Equal(t, Rank8Bb|Rank1Bb, p.PiecesBb(White, Rook)|p.PiecesBb(Black, Rook)|p.PiecesBb(White, Knight)|p.PiecesBb(Black, Knight)|p.PiecesBb(White, Bishop)|p.PiecesBb(Black, Bishop)|p.PiecesBb(White, Queen)|p.PiecesBb(Black, Queen)|p.PiecesBb(White, King)|p.PiecesBb(Black, King))
	assert.NoError(t, p.VerifyInvariants())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/p1pp1ppp/8/1p2pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}
	for _, fen := range fens {
		p := mustImport(t, fen)
		p2 := NewPosition(testTables)
		require.NoError(t, p2.ImportFEN(p.ExportFEN()))
		assert.Equal(t, p.PieceBb, p2.PieceBb)
		assert.Equal(t, p.SideToMove, p2.SideToMove)
		assert.Equal(t, p.CastlingRights, p2.CastlingRights)
		assert.Equal(t, p.EnPassant, p2.EnPassant)
		assert.Equal(t, p.Zobrist, p2.Zobrist)
	}
}

func TestImportFENRejectsMalformedInput(t *testing.T) {
	p := NewPosition(testTables)
	err := p.ImportFEN("not a fen")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFEN)
	// position left cleared, not partially mutated
	assert.Equal(t, BbZero, p.Occ[2])
}

func TestRecomputeZobristMatchesStored(t *testing.T) {
	p := mustImport(t, StartFen)
	assert.Equal(t, p.Zobrist, p.RecomputeZobrist())
}

func TestOccupancyInvariants(t *testing.T) {
	p := mustImport(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, p.VerifyInvariants())
}

func TestMakeUnmakeIsReversible(t *testing.T) {
	p := mustImport(t, StartFen)
	before := *p
	m := Move{
		Mover:             White,
		From:              NewSquare(4, 6),
		FromPieceType:     Pawn,
		To:                NewSquare(4, 4),
		CapturedPieceType: PieceTypeNone,
		PromotedTo:        PieceTypeNone,
		PrevEnPassant:     SqNone,
		NextEnPassant:     NewSquare(4, 5),
	}
	p.MakeMove(m)
	assert.NotEqual(t, before.Zobrist, p.Zobrist)
	p.UnmakeMove(m)
	assert.Equal(t, before.PieceBb, p.PieceBb)
	assert.Equal(t, before.Occ, p.Occ)
	assert.Equal(t, before.SideToMove, p.SideToMove)
	assert.Equal(t, before.EnPassant, p.EnPassant)
	assert.Equal(t, before.Zobrist, p.Zobrist)
}

func TestEnPassantCaptureMakesCapturedPawnDisappear(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/p1pp1ppp/8/1p2pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
	capturedSq := NewSquare(4, 3) // e5
	require.True(t, p.PiecesBb(Black, Pawn).Has(capturedSq))
	m := Move{
		Mover:              White,
		From:               NewSquare(5, 3), // f5
		FromPieceType:      Pawn,
		To:                 NewSquare(4, 2), // e6
		CapturedPieceType:  Pawn,
		PromotedTo:         PieceTypeNone,
		IsEnPassantCapture: true,
		PrevEnPassant:      NewSquare(4, 2),
		NextEnPassant:      SqNone,
	}
	p.MakeMove(m)
	assert.False(t, p.PiecesBb(Black, Pawn).Has(capturedSq))
	assert.True(t, p.PiecesBb(White, Pawn).Has(NewSquare(4, 2)))
	assert.NoError(t, p.VerifyInvariants())
}

func TestIsSquareAttacked(t *testing.T) {
	p := mustImport(t, "rnbqkbnr/pppp1ppp/8/4p3/5PP1/8/PPPPP2P/RNBQKBNR b - - 0 1")
	// after 1.f4 1.g4 Black queen would reach h4; check a known attacked square:
	// g4 pawn attacks f5 and h5.
	assert.True(t, p.IsSquareAttacked(NewSquare(5, 3), White)) // f5
	assert.True(t, p.IsSquareAttacked(NewSquare(7, 3), White)) // h5
}
