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

//go:build !debug

// Package assert gates invariant checks behind a build-time DEBUG flag so
// callers can write
//
//	if assert.DEBUG {
//		assert.Assert(cond, "message %v", v)
//	}
//
// without paying for the check (or for evaluating its arguments) in a
// release build. Failing an assertion means an invariant the engine
// promises to maintain internally has broken - it is not a way to report
// caller errors.
package assert

// DEBUG controls whether Assert panics on a failing condition. Built with
// -tags debug to turn invariant checking on.
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// Only called when DEBUG is true; this build's Assert is a no-op.
func Assert(test bool, msg string, a ...interface{}) {}
