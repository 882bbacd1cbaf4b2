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
	"strings"

	. "github.com/obrien-labs/chesscore/internal/types"
	"github.com/obrien-labs/chesscore/internal/zobrist"
)

// ImportFEN loads a position from a FEN string. Only the board, side to
// move, castling rights and en-passant fields are consumed; any fields
// after those four (halfmove and fullmove counters) are ignored and not
// validated. On any malformed field the position is left cleared (not
// partially mutated) and a wrapped ErrMalformedFEN is returned.
func (p *Position) ImportFEN(fen string) error {
	if err := p.importFEN(fen); err != nil {
		p.Clear()
		log.Errorf("fen %q not valid, position left cleared: %s", fen, err)
		return err
	}
	return nil
}

func (p *Position) importFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("%w: expected at least 4 fields, got %d (%q)", ErrMalformedFEN, len(fields), fen)
	}

	fresh := &Position{tables: p.tables}
	fresh.Clear()

	if err := fresh.parseBoard(fields[0]); err != nil {
		return err
	}
	if err := fresh.parseSideToMove(fields[1]); err != nil {
		return err
	}
	if err := fresh.parseCastling(fields[2]); err != nil {
		return err
	}
	if err := fresh.parseEnPassant(fields[3]); err != nil {
		return err
	}

	*p = *fresh
	return nil
}

func (p *Position) parseBoard(board string) error {
	ranks := strings.Split(board, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: board must have 8 ranks, got %d (%q)", ErrMalformedFEN, len(ranks), board)
	}
	for r, rankStr := range ranks {
		file := 0
		for _, ch := range []byte(rankStr) {
			switch {
			case ch >= '1' && ch <= '8':
				n := int(ch - '0')
				if file+n > 8 {
					return fmt.Errorf("%w: rank %d overflows with run-length %c", ErrMalformedFEN, r, ch)
				}
				file += n
			default:
				if file >= 8 {
					return fmt.Errorf("%w: rank %d wider than 8 squares", ErrMalformedFEN, r)
				}
				color := White
				letter := ch
				if ch >= 'a' && ch <= 'z' {
					color = Black
					letter = ch - 'a' + 'A'
				}
				pt, ok := PieceTypeFromLetter(letter)
				if !ok {
					return fmt.Errorf("%w: illegal piece letter %q", ErrMalformedFEN, string(ch))
				}
				sq := NewSquare(file, r)
				p.setPiece(color, pt, sq)
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has width %d, want 8", ErrMalformedFEN, r, file)
		}
	}
	return nil
}

func (p *Position) setPiece(c Color, pt PieceType, sq Square) {
	p.PieceBb[c.PieceOffset()+int(pt)].PushSquare(sq)
	p.Occ[c.OccIndex()].PushSquare(sq)
	p.Occ[occAll].PushSquare(sq)
	p.Zobrist ^= zobrist.PieceSquare[Piece{Color: c, Type: pt}.Index()][sq]
}

func (p *Position) parseSideToMove(s string) error {
	switch strings.ToLower(s) {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
		p.Zobrist ^= zobrist.SideToMove
	default:
		return fmt.Errorf("%w: invalid side to move %q", ErrMalformedFEN, s)
	}
	return nil
}

func (p *Position) parseCastling(s string) error {
	if s == "-" {
		return nil
	}
	for _, ch := range []byte(s) {
		var idx int
		switch ch {
		case 'K':
			idx = WhiteShort
		case 'Q':
			idx = WhiteLong
		case 'k':
			idx = BlackShort
		case 'q':
			idx = BlackLong
		default:
			return fmt.Errorf("%w: invalid castling character %q", ErrMalformedFEN, string(ch))
		}
		if !p.CastlingRights[idx] {
			p.CastlingRights[idx] = true
			p.Zobrist ^= zobrist.Castling[idx]
		}
	}
	return nil
}

// parseEnPassant accepts any parseable algebraic square as the en-passant
// target without validating that a capturing pawn of the mover actually
// exists - the source this spec follows is permissive here and this
// implementation preserves that.
func (p *Position) parseEnPassant(s string) error {
	if s == "-" {
		p.EnPassant = SqNone
		return nil
	}
	sq, ok := ParseSquare(s)
	if !ok {
		return fmt.Errorf("%w: invalid en passant square %q", ErrMalformedFEN, s)
	}
	p.EnPassant = sq
	p.Zobrist ^= zobrist.EnPassantFile[sq.FileOf()]
	return nil
}

// ExportFEN renders the position back to FEN: board, side, castling,
// en-passant. Halfmove and fullmove counters are never emitted, matching
// ImportFEN's disregard of them.
func (p *Position) ExportFEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(f, r)
			piece, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(fmt.Sprintf("%d", empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteString(fmt.Sprintf("%d", empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	return sb.String()
}
