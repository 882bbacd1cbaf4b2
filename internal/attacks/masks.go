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

// Package attacks builds the precomputed and runtime attack tables: pawn,
// knight and king jump tables, and magic-bitboard lookup tables for
// bishops and rooks. Everything here is built once by NewTables and is
// read-only afterwards, safe to share across any number of positions.
package attacks

import (
	. "github.com/obrien-labs/chesscore/internal/types"
)

// Tables holds every attack table the move generator and square-attack
// query need. Build one with NewTables() at program start and share it
// read-only; never embed a Tables value inside a Position.
type Tables struct {
	Pawn   [ColorLength][SqLength]Bitboard
	Knight [SqLength]Bitboard
	King   [SqLength]Bitboard

	bishop magicSet
	rook   magicSet
}

var knightDeltas = [8]Direction{
	Direction(-17), Direction(-15), Direction(-10), Direction(-6),
	Direction(6), Direction(10), Direction(15), Direction(17),
}

// knightStep applies one knight jump, rejecting jumps that wrap around a
// file edge (a plain +/-delta check is not enough since e.g. -17 and -15
// both cross two ranks and only one file, but from file a or h one of the
// two wraps).
func knightStep(s Square, d Direction) Square {
	ns := Square(int(s) + int(d))
	if !ns.IsValid() {
		return SqNone
	}
	fileDelta := ns.FileOf() - s.FileOf()
	if fileDelta < 0 {
		fileDelta = -fileDelta
	}
	rankDelta := ns.RankOf() - s.RankOf()
	if rankDelta < 0 {
		rankDelta = -rankDelta
	}
	if !((fileDelta == 1 && rankDelta == 2) || (fileDelta == 2 && rankDelta == 1)) {
		return SqNone
	}
	return ns
}

var kingDeltas = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

func buildJumpTables(t *Tables) {
	for s := Square(0); s < SqLength; s++ {
		// pawn attacks: White captures toward North (negative delta), Black toward South.
		var wp, bp Bitboard
		if d := s.To(Northeast); d != SqNone {
			wp.PushSquare(d)
		}
		if d := s.To(Northwest); d != SqNone {
			wp.PushSquare(d)
		}
		if d := s.To(Southeast); d != SqNone {
			bp.PushSquare(d)
		}
		if d := s.To(Southwest); d != SqNone {
			bp.PushSquare(d)
		}
		t.Pawn[White][s] = wp
		t.Pawn[Black][s] = bp

		var knight Bitboard
		for _, d := range knightDeltas {
			if d2 := knightStep(s, d); d2 != SqNone {
				knight.PushSquare(d2)
			}
		}
		t.Knight[s] = knight

		var king Bitboard
		for _, d := range kingDeltas {
			if d2 := s.To(d); d2 != SqNone {
				king.PushSquare(d2)
			}
		}
		t.King[s] = king
	}
}

// NewTables builds every attack table. Call once at program start.
func NewTables() *Tables {
	t := &Tables{}
	buildJumpTables(t)
	t.bishop = newMagicSet(bishopMagicNumbers, bishopDeltas)
	t.rook = newMagicSet(rookMagicNumbers, rookDeltas)
	return t
}

// BishopAttacks returns the bishop attack set from sq given full board occupancy.
func (t *Tables) BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return t.bishop.attacks(sq, occ)
}

// RookAttacks returns the rook attack set from sq given full board occupancy.
func (t *Tables) RookAttacks(sq Square, occ Bitboard) Bitboard {
	return t.rook.attacks(sq, occ)
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func (t *Tables) QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return t.bishop.attacks(sq, occ) | t.rook.attacks(sq, occ)
}

// AttacksFrom returns the attack set for pt (mover color only matters for
// Pawn) from sq given full board occupancy.
func (t *Tables) AttacksFrom(pt PieceType, color Color, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return t.Pawn[color][sq]
	case Knight:
		return t.Knight[sq]
	case King:
		return t.King[sq]
	case Bishop:
		return t.bishop.attacks(sq, occ)
	case Rook:
		return t.rook.attacks(sq, occ)
	case Queen:
		return t.QueenAttacks(sq, occ)
	default:
		return BbZero
	}
}
