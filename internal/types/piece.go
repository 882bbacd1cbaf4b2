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

package types

// PieceType is one of the six chess piece kinds. The numeric value is the
// bitboard slot within a color's block of six: Pawn=0, Bishop=1, Knight=2,
// Rook=3, Queen=4, King=5.
type PieceType int8

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	Queen
	King
	PieceTypeNone
	PieceTypeLength = 6
)

// MaterialValue is this piece type's material worth in centipawns.
func (pt PieceType) MaterialValue() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 320
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// Letter is the uppercase FEN letter for this piece type.
func (pt PieceType) Letter() byte {
	switch pt {
	case Pawn:
		return 'P'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// PieceTypeFromLetter parses an uppercase FEN piece letter. ok is false for
// an unrecognized letter.
func PieceTypeFromLetter(l byte) (pt PieceType, ok bool) {
	switch l {
	case 'P':
		return Pawn, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	case 'R':
		return Rook, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	default:
		return PieceTypeNone, false
	}
}

func (pt PieceType) String() string {
	return string(pt.Letter())
}

// Piece is a (Color, PieceType) pair, used where a single occupant needs to
// be named without reaching into the bitboard arrays.
type Piece struct {
	Color Color
	Type  PieceType
}

// PieceNone denotes an empty square.
var PieceNone = Piece{Color: ColorNone, Type: PieceTypeNone}

// Letter is the FEN letter for this piece: uppercase for White, lowercase
// for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Color == Black {
		return l - 'A' + 'a'
	}
	return l
}

// Index is this piece's slot in a 12-element piece-bitboard array.
func (p Piece) Index() int {
	return p.Color.PieceOffset() + int(p.Type)
}
