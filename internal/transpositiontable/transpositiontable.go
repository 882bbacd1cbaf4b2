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

// Package transpositiontable holds the Zobrist-keyed, single-slot,
// destructively-overwritten search cache. Newer writes always replace
// whatever a bucket holds, regardless of the prior entry's depth or
// classification - a strength-limiting but deliberately simple policy.
package transpositiontable

import (
	"unsafe"

	"github.com/op/go-logging"

	"github.com/obrien-labs/chesscore/internal/config"
	myLogging "github.com/obrien-labs/chesscore/internal/logging"
	"github.com/obrien-labs/chesscore/internal/position"
	"github.com/obrien-labs/chesscore/internal/zobrist"
)

var log *logging.Logger

// NodeType classifies how a stored evaluation relates to the search window
// that produced it.
type NodeType int8

const (
	Exact NodeType = iota
	LowerBound
	UpperBound
)

// Entry is one transposition table slot.
type Entry struct {
	Hash       zobrist.Key
	BestMove   position.Move
	HasMove    bool
	Depth      int
	Evaluation int
	NodeType   NodeType
	Age        int64
}

// Table is a fixed-size array of buckets indexed by hash % len(buckets).
type Table struct {
	buckets []Entry
	filled  []bool
}

// New builds a table sized from config.Settings.TT.Buckets (call
// config.Setup() first; New does not call it itself).
func New() *Table {
	if log == nil {
		log = myLogging.GetLog()
	}
	n := config.Settings.TT.Buckets
	if n == 0 {
		n = 10000
	}
	entrySize := uint64(unsafe.Sizeof(Entry{}))
	log.Infof("transposition table: %d buckets (%d bytes each, %d bytes total)", n, entrySize, n*entrySize)
	return &Table{
		buckets: make([]Entry, n),
		filled:  make([]bool, n),
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) % uint64(len(t.buckets))
}

// Probe returns the bucket's entry and whether it is both present and an
// exact match for key - the caller still must check entry.Depth against
// the depth it needs.
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	idx := t.index(key)
	if !t.filled[idx] || t.buckets[idx].Hash != key {
		return Entry{}, false
	}
	return t.buckets[idx], true
}

// Store writes entry into its bucket, unconditionally replacing whatever
// was there.
func (t *Table) Store(entry Entry) {
	idx := t.index(entry.Hash)
	t.buckets[idx] = entry
	t.filled[idx] = true
}

// Clear empties every bucket without reallocating.
func (t *Table) Clear() {
	for i := range t.filled {
		t.filled[i] = false
	}
	log.Debugf("transposition table cleared (%d buckets)", len(t.buckets))
}
