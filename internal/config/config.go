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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or overridden by
// command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working directory).
	ConfFile = "./chesscore.toml"

	// LogLevel is the general log level (go-logging scale, 0=CRITICAL .. 5=DEBUG).
	LogLevel = 4

	// SearchLogLevel is the log level used by the search package.
	SearchLogLevel = 4

	// TestLogLevel is the log level used by package tests.
	TestLogLevel = 3

	// Settings is the global configuration, read in from ConfFile if present.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	TT     ttConfiguration
}

// searchConfiguration controls the iterative-deepening search.
type searchConfiguration struct {
	// SearchTimeMs is the configured search time in milliseconds
	// (default 5000). Nothing in the engine reads it: search.BestMove and
	// engine.Engine.BestMove take their time budget as an argument.
	SearchTimeMs int64
}

// ttConfiguration controls the transposition table.
type ttConfiguration struct {
	// Buckets is the number of buckets the Zobrist key is reduced into
	// (bucket = key % Buckets). The source used a fixed 10,000.
	Buckets uint64
}

func defaults() conf {
	return conf{
		Search: searchConfiguration{SearchTimeMs: 5000},
		TT:     ttConfiguration{Buckets: 10000},
	}
}

// Setup reads the configuration file (if present) and applies defaults for
// anything it does not set. Safe to call more than once; only the first
// call has effect.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("chesscore: config file not found, using defaults (", err, ")")
	}
	if Settings.Search.SearchTimeMs <= 0 {
		Settings.Search.SearchTimeMs = 5000
	}
	if Settings.TT.Buckets == 0 {
		Settings.TT.Buckets = 10000
	}
	initialized = true
}

// String prints the current configuration using reflection, matching the
// way the rest of the engine prints diagnostic board/position dumps.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search Config:\n")
	v := reflect.ValueOf(&c.Search).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		sb.WriteString(fmt.Sprintf("%-2d: %-16s %-6s = %v\n", i, t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface()))
	}
	sb.WriteString("TT Config:\n")
	v = reflect.ValueOf(&c.TT).Elem()
	t = v.Type()
	for i := 0; i < v.NumField(); i++ {
		sb.WriteString(fmt.Sprintf("%-2d: %-16s %-6s = %v\n", i, t.Field(i).Name, v.Field(i).Type(), v.Field(i).Interface()))
	}
	return sb.String()
}
