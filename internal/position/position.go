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

// Package position holds the bitboard Position representation, FEN
// import/export, the self-describing Move record, and make/unmake. The
// move generator (package movegen) reads a Position through the accessor
// methods below; it does not reach into unexported fields.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/op/go-logging"

	"github.com/obrien-labs/chesscore/internal/attacks"
	myLogging "github.com/obrien-labs/chesscore/internal/logging"
	. "github.com/obrien-labs/chesscore/internal/types"
	"github.com/obrien-labs/chesscore/internal/zobrist"
)

var log *logging.Logger

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Sentinel errors for malformed FEN input. Wrapped with fmt.Errorf("%w: ...")
// so callers can errors.Is against them.
var (
	ErrMalformedFEN = errors.New("malformed FEN")
)

// Position holds one chess position: piece placement, side to move,
// castling rights, en-passant target, its Zobrist hash, and the legal-move
// list computed for it. The transposition table is not part of it; package
// engine owns that.
type Position struct {
	tables *attacks.Tables

	// PieceBb[color.PieceOffset()+pieceType] is the bitboard for that
	// (color, type) pair.
	PieceBb [12]Bitboard
	// Occ[White], Occ[Black], Occ[2] (all) occupancy bitboards.
	Occ [3]Bitboard

	SideToMove Color

	// CastlingRights, ordered WhiteShort, WhiteLong, BlackShort, BlackLong.
	CastlingRights [4]bool

	// EnPassant is the en-passant target square, or SqNone.
	EnPassant Square

	Zobrist zobrist.Key

	// LegalMoves is recomputed after every user-visible make-move; see
	// package movegen's GenerateLegalMoves.
	LegalMoves []Move
}

const occAll = 2

// NewPosition creates an empty position sharing the given attack tables.
// Tables are owned by the caller (normally the program's main scope) and
// must outlive every Position built from them.
func NewPosition(tables *attacks.Tables) *Position {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{tables: tables}
	p.Clear()
	return p
}

// Tables returns the shared attack tables this position was built with.
func (p *Position) Tables() *attacks.Tables {
	return p.tables
}

// Clear resets the position to empty (no pieces, White to move, no rights,
// no en-passant target, zero Zobrist hash).
func (p *Position) Clear() {
	for i := range p.PieceBb {
		p.PieceBb[i] = BbZero
	}
	p.Occ[White] = BbZero
	p.Occ[Black] = BbZero
	p.Occ[occAll] = BbZero
	p.SideToMove = White
	for i := range p.CastlingRights {
		p.CastlingRights[i] = false
	}
	p.EnPassant = SqNone
	p.Zobrist = 0
	p.LegalMoves = nil
}

// PiecesBb returns the bitboard of pieces of (color, pt).
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.PieceBb[c.PieceOffset()+int(pt)]
}

// OccupiedBy returns the occupancy bitboard for color c.
func (p *Position) OccupiedBy(c Color) Bitboard {
	return p.Occ[c.OccIndex()]
}

// OccupiedAll returns the all-pieces occupancy bitboard.
func (p *Position) OccupiedAll() Bitboard {
	return p.Occ[occAll]
}

// PieceAt reports the piece occupying sq, if any.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !p.Occ[occAll].Has(sq) {
		return PieceNone, false
	}
	color := White
	if p.Occ[Black].Has(sq) {
		color = Black
	}
	for pt := Pawn; pt < PieceTypeNone; pt++ {
		if p.PiecesBb(color, pt).Has(sq) {
			return Piece{Color: color, Type: pt}, true
		}
	}
	return PieceNone, false
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesBb(c, King).Lsb()
}

// IsSquareAttacked reports whether any piece of color `by` attacks square.
// Implementation walks outward from the target square using each piece
// kind's own attack table against `by`'s bitboard of that kind - a pawn
// that would attack `square` if it were an enemy pawn of the opposite
// color is how pawn attacks are found, since pawn attack tables aren't
// symmetric.
func (p *Position) IsSquareAttacked(square Square, by Color) bool {
	occ := p.OccupiedAll()
	t := p.tables
	if t.Pawn[by.Flip()][square]&p.PiecesBb(by, Pawn) != BbZero {
		return true
	}
	if t.Knight[square]&p.PiecesBb(by, Knight) != BbZero {
		return true
	}
	if t.King[square]&p.PiecesBb(by, King) != BbZero {
		return true
	}
	rq := p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen)
	if t.RookAttacks(square, occ)&rq != BbZero {
		return true
	}
	bq := p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen)
	if t.BishopAttacks(square, occ)&bq != BbZero {
		return true
	}
	return false
}

// String renders an 8x8 board diagram plus side/castling/en-passant state,
// used both by the CLI's default mode (board plus legal-move list) and for
// the diagnostic dump printed
// when an invariant violation panics.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d  ", 8-r))
		for f := 0; f < 8; f++ {
			sq := NewSquare(f, r)
			if piece, ok := p.PieceAt(sq); ok {
				sb.WriteByte(piece.Letter())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(fmt.Sprintf("side to move: %s\n", p.SideToMove))
	sb.WriteString(fmt.Sprintf("castling: %s\n", p.castlingString()))
	sb.WriteString(fmt.Sprintf("en passant: %s\n", p.EnPassant))
	sb.WriteString(fmt.Sprintf("zobrist: %016x\n", uint64(p.Zobrist)))
	return sb.String()
}

func (p *Position) castlingString() string {
	s := ""
	if p.CastlingRights[WhiteShort] {
		s += "K"
	}
	if p.CastlingRights[WhiteLong] {
		s += "Q"
	}
	if p.CastlingRights[BlackShort] {
		s += "k"
	}
	if p.CastlingRights[BlackLong] {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// RecomputeZobrist rebuilds the Zobrist hash from scratch (pieces, rights,
// en-passant file, side to move), used by the reversibility/consistency
// tests and by the debug invariant verifier.
func (p *Position) RecomputeZobrist() zobrist.Key {
	var key zobrist.Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PieceTypeNone; pt++ {
			bb := p.PiecesBb(c, pt)
			for bb != BbZero {
				sq := bb.PopLsb()
				key ^= zobrist.PieceSquare[Piece{Color: c, Type: pt}.Index()][sq]
			}
		}
	}
	for i, has := range p.CastlingRights {
		if has {
			key ^= zobrist.Castling[i]
		}
	}
	if p.EnPassant != SqNone {
		key ^= zobrist.EnPassantFile[p.EnPassant.FileOf()]
	}
	if p.SideToMove == Black {
		key ^= zobrist.SideToMove
	}
	return key
}

// VerifyInvariants recomputes occupancy and the Zobrist hash from the
// piece bitboards and returns a descriptive error if anything doesn't
// match, nil otherwise. MakeMove and UnmakeMove assert on its result in a
// -tags debug build; this is the InvariantViolation check they lean on.
func (p *Position) VerifyInvariants() error {
	var white, black Bitboard
	for pt := Pawn; pt < PieceTypeNone; pt++ {
		white |= p.PiecesBb(White, pt)
		black |= p.PiecesBb(Black, pt)
	}
	if white != p.Occ[White] {
		return fmt.Errorf("InvariantViolation: white occupancy mismatch\n%s", p)
	}
	if black != p.Occ[Black] {
		return fmt.Errorf("InvariantViolation: black occupancy mismatch\n%s", p)
	}
	if white&black != BbZero {
		return fmt.Errorf("InvariantViolation: white/black occupancy overlap\n%s", p)
	}
	if white|black != p.Occ[occAll] {
		return fmt.Errorf("InvariantViolation: all-occupancy mismatch\n%s", p)
	}
	if p.RecomputeZobrist() != p.Zobrist {
		return fmt.Errorf("InvariantViolation: zobrist hash mismatch\n%s", p)
	}
	return nil
}
