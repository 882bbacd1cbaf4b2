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
	"fmt"

	. "github.com/obrien-labs/chesscore/internal/types"
)

// CastleSide names which side, if any, a move castles on.
type CastleSide int8

const (
	NoCastle CastleSide = iota
	ShortCastle
	LongCastle
)

// RightChange is a ternary flag recording whether a move touches one of
// the four castling rights: RightUntouched (right exists, move doesn't
// affect it), RightRevoked (move forfeits it), RightAlreadyGone (the right
// was already gone before this move, so undo must not restore it).
type RightChange int8

const (
	RightUntouched RightChange = iota
	RightRevoked
	RightAlreadyGone
)

// Castling right slots, matching zobrist.Castling's key order and
// Position.CastlingRights' array order.
const (
	WhiteShort = 0
	WhiteLong  = 1
	BlackShort = 2
	BlackLong  = 3
)

// Move is immutable once generated and self-describing: it carries
// everything MakeMove and UnmakeMove need, so unmaking never consults an
// external history stack.
type Move struct {
	Mover             Color
	From              Square
	FromPieceType     PieceType
	To                Square
	CapturedPieceType PieceType // PieceTypeNone if not a capture
	IsEnPassantCapture bool
	PromotedTo        PieceType // PieceTypeNone unless this is a promotion
	CastleSide        CastleSide

	PrevEnPassant Square // the position's en-passant target before this move
	NextEnPassant Square // the en-passant target this move establishes, or SqNone

	RemovesRight [4]RightChange

	IsCheck bool

	// SortKey is the move-ordering composite key from ordering.go; it is
	// not part of the move's identity, only a scratch field used while
	// sorting a generated move list.
	SortKey int
}

// IsCapture reports whether this move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m.CapturedPieceType != PieceTypeNone
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotedTo != PieceTypeNone
}

// String renders the move in long algebraic notation: four characters, or
// five with a trailing lowercase promotion letter.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string([]byte{m.PromotedTo.Letter() - 'A' + 'a'})
	}
	return s
}

// GoString supports %#v debug printing.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s %s->%s)", m.Mover, m.From, m.To)
}
