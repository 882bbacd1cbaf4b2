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

// Package movegen generates pseudo-legal moves per piece kind, filters
// them to legal moves via make+unmake, and orders the result.
package movegen

import (
	"github.com/obrien-labs/chesscore/internal/position"
	. "github.com/obrien-labs/chesscore/internal/types"
)

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func newMove(p *position.Position, mover Color, from, to Square, fromPT, capturedPT PieceType) position.Move {
	return position.Move{
		Mover:             mover,
		From:              from,
		FromPieceType:     fromPT,
		To:                to,
		CapturedPieceType: capturedPT,
		PromotedTo:        PieceTypeNone,
		CastleSide:        position.NoCastle,
		PrevEnPassant:     p.EnPassant,
		NextEnPassant:     SqNone,
		RemovesRight:      computeRightsFlags(p, mover, from, to, fromPT),
	}
}

func generatePseudoLegal(p *position.Position) []position.Move {
	mover := p.SideToMove
	moves := make([]position.Move, 0, 48)
	generatePawnMoves(p, mover, &moves)
	generatePieceMoves(p, mover, Knight, &moves)
	generatePieceMoves(p, mover, Bishop, &moves)
	generatePieceMoves(p, mover, Rook, &moves)
	generatePieceMoves(p, mover, Queen, &moves)
	generatePieceMoves(p, mover, King, &moves)
	generateCastling(p, mover, &moves)
	return moves
}

// generatePieceMoves handles every non-pawn, non-castling piece kind:
// attack-table lookup partitioned into quiet moves and captures by
// occupancy.
func generatePieceMoves(p *position.Position, mover Color, pt PieceType, moves *[]position.Move) {
	occAll := p.OccupiedAll()
	enemy := p.OccupiedBy(mover.Flip())
	for bb := p.PiecesBb(mover, pt); bb != BbZero; {
		from := bb.PopLsb()
		attacks := p.Tables().AttacksFrom(pt, mover, from, occAll)
		quiet := attacks &^ occAll
		for q := quiet; q != BbZero; {
			to := q.PopLsb()
			*moves = append(*moves, newMove(p, mover, from, to, pt, PieceTypeNone))
		}
		captures := attacks & enemy
		for c := captures; c != BbZero; {
			to := c.PopLsb()
			capturedPiece, _ := p.PieceAt(to)
			*moves = append(*moves, newMove(p, mover, from, to, pt, capturedPiece.Type))
		}
	}
}

func generatePawnMoves(p *position.Position, mover Color, moves *[]position.Move) {
	dir := mover.PawnDirection()
	occAll := p.OccupiedAll()
	enemy := p.OccupiedBy(mover.Flip())
	t := p.Tables()

	for pawns := p.PiecesBb(mover, Pawn); pawns != BbZero; {
		from := pawns.PopLsb()

		if to := Square(int(from) + dir); to.IsValid() && !occAll.Has(to) {
			emitPawnAdvance(p, mover, from, to, moves)
			if mover.StartingPawnRank(from.RankOf()) {
				if to2 := Square(int(to) + dir); to2.IsValid() && !occAll.Has(to2) {
					m := newMove(p, mover, from, to2, Pawn, PieceTypeNone)
					m.NextEnPassant = to
					*moves = append(*moves, m)
				}
			}
		}

		captureTargets := t.Pawn[mover][from] & enemy
		for c := captureTargets; c != BbZero; {
			to := c.PopLsb()
			capturedPiece, _ := p.PieceAt(to)
			emitPawnCapture(p, mover, from, to, capturedPiece.Type, moves)
		}

		if p.EnPassant != SqNone && t.Pawn[mover][from].Has(p.EnPassant) {
			m := newMove(p, mover, from, p.EnPassant, Pawn, Pawn)
			m.IsEnPassantCapture = true
			*moves = append(*moves, m)
		}
	}
}

func emitPawnAdvance(p *position.Position, mover Color, from, to Square, moves *[]position.Move) {
	if mover.PromotionRank(to.RankOf()) {
		for _, promo := range promotionPieces {
			m := newMove(p, mover, from, to, Pawn, PieceTypeNone)
			m.PromotedTo = promo
			*moves = append(*moves, m)
		}
		return
	}
	*moves = append(*moves, newMove(p, mover, from, to, Pawn, PieceTypeNone))
}

func emitPawnCapture(p *position.Position, mover Color, from, to Square, capturedPT PieceType, moves *[]position.Move) {
	if mover.PromotionRank(to.RankOf()) {
		for _, promo := range promotionPieces {
			m := newMove(p, mover, from, to, Pawn, capturedPT)
			m.PromotedTo = promo
			*moves = append(*moves, m)
		}
		return
	}
	*moves = append(*moves, newMove(p, mover, from, to, Pawn, capturedPT))
}

func generateCastling(p *position.Position, mover Color, moves *[]position.Move) {
	occAll := p.OccupiedAll()
	if mover == White {
		if p.CastlingRights[position.WhiteShort] &&
			!occAll.Has(SqF1) && !occAll.Has(SqG1) &&
			!p.IsSquareAttacked(SqF1, Black) {
			m := newMove(p, mover, SqE1, SqG1, King, PieceTypeNone)
			m.CastleSide = position.ShortCastle
			*moves = append(*moves, m)
		}
		if p.CastlingRights[position.WhiteLong] &&
			!occAll.Has(SqD1) && !occAll.Has(SqC1) && !occAll.Has(SqB1) &&
			!p.IsSquareAttacked(SqD1, Black) {
			m := newMove(p, mover, SqE1, SqC1, King, PieceTypeNone)
			m.CastleSide = position.LongCastle
			*moves = append(*moves, m)
		}
		return
	}
	if p.CastlingRights[position.BlackShort] &&
		!occAll.Has(SqF8) && !occAll.Has(SqG8) &&
		!p.IsSquareAttacked(SqF8, White) {
		m := newMove(p, mover, SqE8, SqG8, King, PieceTypeNone)
		m.CastleSide = position.ShortCastle
		*moves = append(*moves, m)
	}
	if p.CastlingRights[position.BlackLong] &&
		!occAll.Has(SqD8) && !occAll.Has(SqC8) && !occAll.Has(SqB8) &&
		!p.IsSquareAttacked(SqD8, White) {
		m := newMove(p, mover, SqE8, SqC8, King, PieceTypeNone)
		m.CastleSide = position.LongCastle
		*moves = append(*moves, m)
	}
}
