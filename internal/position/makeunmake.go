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
	"github.com/obrien-labs/chesscore/internal/assert"
	. "github.com/obrien-labs/chesscore/internal/types"
	"github.com/obrien-labs/chesscore/internal/zobrist"
)

// castleRookSquares returns the rook's from/to squares for the given
// king-move's castle side. Valid for either color since White and Black
// king-from squares (60 and 4) differ by the board height, keeping the
// +3/+1 (short) and -4/-1 (long) offsets correct for both.
func castleRookSquares(kingFrom Square, side CastleSide) (rookFrom, rookTo Square) {
	if side == ShortCastle {
		return Square(int(kingFrom) + 3), Square(int(kingFrom) + 1)
	}
	return Square(int(kingFrom) - 4), Square(int(kingFrom) - 1)
}

// MakeMove applies m in place. m must come from this position's own
// legal-move list (or otherwise be fully populated the way the move
// generator populates it) - MakeMove does not validate legality.
func (p *Position) MakeMove(m Move) {
	mover := m.Mover
	opp := mover.Flip()
	destType := m.FromPieceType
	if m.IsPromotion() {
		destType = m.PromotedTo
	}

	p.PieceBb[mover.PieceOffset()+int(m.FromPieceType)].PopSquare(m.From)
	p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: m.FromPieceType}).Index()][m.From]
	p.PieceBb[mover.PieceOffset()+int(destType)].PushSquare(m.To)
	p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: destType}).Index()][m.To]

	p.Occ[mover.OccIndex()].PopSquare(m.From)
	p.Occ[mover.OccIndex()].PushSquare(m.To)
	p.Occ[occAll].PopSquare(m.From)
	p.Occ[occAll].PushSquare(m.To)

	switch {
	case m.IsEnPassantCapture:
		capSq := Square(int(m.To) - mover.PawnDirection())
		p.PieceBb[opp.PieceOffset()+int(Pawn)].PopSquare(capSq)
		p.Occ[opp.OccIndex()].PopSquare(capSq)
		p.Occ[occAll].PopSquare(capSq)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: opp, Type: Pawn}).Index()][capSq]
	case m.IsCapture():
		p.PieceBb[opp.PieceOffset()+int(m.CapturedPieceType)].PopSquare(m.To)
		p.Occ[opp.OccIndex()].PopSquare(m.To)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: opp, Type: m.CapturedPieceType}).Index()][m.To]
	}

	if m.CastleSide != NoCastle {
		rookFrom, rookTo := castleRookSquares(m.From, m.CastleSide)
		p.PieceBb[mover.PieceOffset()+int(Rook)].PopSquare(rookFrom)
		p.PieceBb[mover.PieceOffset()+int(Rook)].PushSquare(rookTo)
		p.Occ[mover.OccIndex()].PopSquare(rookFrom)
		p.Occ[mover.OccIndex()].PushSquare(rookTo)
		p.Occ[occAll].PopSquare(rookFrom)
		p.Occ[occAll].PushSquare(rookTo)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: Rook}).Index()][rookFrom]
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: Rook}).Index()][rookTo]
	}

	for i, rc := range m.RemovesRight {
		if rc == RightRevoked {
			p.CastlingRights[i] = false
			p.Zobrist ^= zobrist.Castling[i]
		}
	}

	if p.EnPassant != SqNone {
		p.Zobrist ^= zobrist.EnPassantFile[p.EnPassant.FileOf()]
	}
	p.EnPassant = m.NextEnPassant
	if p.EnPassant != SqNone {
		p.Zobrist ^= zobrist.EnPassantFile[p.EnPassant.FileOf()]
	}

	p.SideToMove = opp
	p.Zobrist ^= zobrist.SideToMove

	if assert.DEBUG {
		assert.Assert(p.VerifyInvariants() == nil, "after MakeMove(%s): %s", m, p)
	}
}

// UnmakeMove reverses m, restoring the position to exactly what it was
// before MakeMove(m), including the Zobrist hash. m must be the same Move
// value passed to the preceding MakeMove call.
func (p *Position) UnmakeMove(m Move) {
	mover := m.Mover
	opp := mover.Flip()
	destType := m.FromPieceType
	if m.IsPromotion() {
		destType = m.PromotedTo
	}

	p.Zobrist ^= zobrist.SideToMove
	p.SideToMove = mover

	if p.EnPassant != SqNone {
		p.Zobrist ^= zobrist.EnPassantFile[p.EnPassant.FileOf()]
	}
	p.EnPassant = m.PrevEnPassant
	if p.EnPassant != SqNone {
		p.Zobrist ^= zobrist.EnPassantFile[p.EnPassant.FileOf()]
	}

	for i, rc := range m.RemovesRight {
		if rc == RightRevoked {
			p.CastlingRights[i] = true
			p.Zobrist ^= zobrist.Castling[i]
		}
	}

	if m.CastleSide != NoCastle {
		rookFrom, rookTo := castleRookSquares(m.From, m.CastleSide)
		p.PieceBb[mover.PieceOffset()+int(Rook)].PopSquare(rookTo)
		p.PieceBb[mover.PieceOffset()+int(Rook)].PushSquare(rookFrom)
		p.Occ[mover.OccIndex()].PopSquare(rookTo)
		p.Occ[mover.OccIndex()].PushSquare(rookFrom)
		p.Occ[occAll].PopSquare(rookTo)
		p.Occ[occAll].PushSquare(rookFrom)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: Rook}).Index()][rookTo]
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: Rook}).Index()][rookFrom]
	}

	switch {
	case m.IsEnPassantCapture:
		capSq := Square(int(m.To) - mover.PawnDirection())
		p.PieceBb[opp.PieceOffset()+int(Pawn)].PushSquare(capSq)
		p.Occ[opp.OccIndex()].PushSquare(capSq)
		p.Occ[occAll].PushSquare(capSq)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: opp, Type: Pawn}).Index()][capSq]
	case m.IsCapture():
		p.PieceBb[opp.PieceOffset()+int(m.CapturedPieceType)].PushSquare(m.To)
		p.Occ[opp.OccIndex()].PushSquare(m.To)
		p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: opp, Type: m.CapturedPieceType}).Index()][m.To]
	}

	p.PieceBb[mover.PieceOffset()+int(destType)].PopSquare(m.To)
	p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: destType}).Index()][m.To]
	p.PieceBb[mover.PieceOffset()+int(m.FromPieceType)].PushSquare(m.From)
	p.Zobrist ^= zobrist.PieceSquare[(Piece{Color: mover, Type: m.FromPieceType}).Index()][m.From]

	p.Occ[mover.OccIndex()].PopSquare(m.To)
	p.Occ[mover.OccIndex()].PushSquare(m.From)
	p.Occ[occAll].PushSquare(m.From)
	if !(m.IsCapture() && !m.IsEnPassantCapture) {
		p.Occ[occAll].PopSquare(m.To)
	}

	if assert.DEBUG {
		assert.Assert(p.VerifyInvariants() == nil, "after UnmakeMove(%s): %s", m, p)
	}
}
