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
	"github.com/obrien-labs/chesscore/internal/position"
	. "github.com/obrien-labs/chesscore/internal/types"
)

// rightsCorner is the home square of the rook guarding each castling right.
var rightsCorner = [4]Square{
	position.WhiteShort: SqH1,
	position.WhiteLong:  SqA1,
	position.BlackShort: SqH8,
	position.BlackLong:  SqA8,
}

var rightsColor = [4]Color{
	position.WhiteShort: White,
	position.WhiteLong:  White,
	position.BlackShort: Black,
	position.BlackLong:  Black,
}

// computeRightsFlags sets the ternary "removes castling right" annotation
// for every right, for a move by mover moving fromPT from `from` to `to`.
// A right already gone is reported as RightAlreadyGone regardless of what
// the move does; otherwise it is RightRevoked if the king moves, the
// right's own rook moves off its home square, or the move captures
// directly on that corner square (which can only happen, while the right
// still stands, by capturing the rook that has never left it).
func computeRightsFlags(p *position.Position, mover Color, from, to Square, fromPT PieceType) [4]position.RightChange {
	var flags [4]position.RightChange
	for i := 0; i < 4; i++ {
		if !p.CastlingRights[i] {
			flags[i] = position.RightAlreadyGone
			continue
		}
		revoke := false
		if rightsColor[i] == mover && fromPT == King {
			revoke = true
		}
		if rightsColor[i] == mover && from == rightsCorner[i] && fromPT == Rook {
			revoke = true
		}
		if to == rightsCorner[i] {
			revoke = true
		}
		if revoke {
			flags[i] = position.RightRevoked
		} else {
			flags[i] = position.RightUntouched
		}
	}
	return flags
}
