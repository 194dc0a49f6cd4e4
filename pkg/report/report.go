// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report renders search and replacement results for the console.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/rgx/pkg/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 🎨 Style wraps a span of text in display attributes
type Style func(s string) string

// PlainStyle leaves text untouched
func PlainStyle(s string) string {
	return s
}

// NewStyle returns a Style for attrs. A disabled style is plain even when the
// terminal supports colour.
func NewStyle(enabled bool, attrs ...color.Attribute) Style {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return func(s string) string {
		return c.Sprint(s)
	}
}

// Options controls how matches are rendered
type Options struct {
	OffsetWidth  int   // Minimum width of the offset column
	OnlyMatching bool  // Omit the context around matches
	Highlight    Style // Style applied to matched text, plain when nil
}

// 🎯 Reporter writes per-match lines and per-file summaries. Files are
// processed one at a time, so a Reporter is not safe for concurrent use.
type Reporter struct {
	console io.Writer
	zlog    zerolog.Logger
	opts    Options
	numbers *message.Printer
}

// 🏭 New creates a reporter writing to console. Log records go to the
// logger stored in ctx.
func New(ctx context.Context, console io.Writer, opts Options) *Reporter {
	if opts.Highlight == nil {
		opts.Highlight = PlainStyle
	}
	if opts.OffsetWidth < 0 {
		opts.OffsetWidth = 0
	}
	return &Reporter{
		console: console,
		zlog:    *zerolog.Ctx(ctx),
		opts:    opts,
		numbers: message.NewPrinter(language.English),
	}
}

// FormatOffset renders the offset column, padded to at least OffsetWidth
func (r *Reporter) FormatOffset(offset int) string {
	return fmt.Sprintf("Offset:%-*d ", r.opts.OffsetWidth, offset)
}

// FormatMatch renders one search hit with its context
func (r *Reporter) FormatMatch(offset int, w text.ContextWindow) string {
	if r.opts.OnlyMatching {
		return r.FormatOffset(offset) + r.opts.Highlight(w.Match)
	}
	return r.FormatOffset(offset) + w.Pre + r.opts.Highlight(w.Match) + w.Post
}

// FormatReplacement renders one substitution
func (r *Reporter) FormatReplacement(offset int, original, substitution string) string {
	return r.FormatOffset(offset) + original + "->" + substitution
}

// FormatCount renders n with invariant thousands grouping
func (r *Reporter) FormatCount(n int) string {
	return r.numbers.Sprintf("%d", n)
}

// 📝 Match logs one search hit
func (r *Reporter) Match(path string, offset int, w text.ContextWindow) {
	r.println(r.FormatMatch(offset, w))
	r.zlog.Debug().
		Str("file", path).
		Int("offset", offset).
		Str("match", w.Match).
		Msg("match")
}

// 📝 Replacement logs one substitution
func (r *Reporter) Replacement(path string, offset int, original, substitution string) {
	r.println(r.FormatReplacement(offset, original, substitution))
	r.zlog.Debug().
		Str("file", path).
		Int("offset", offset).
		Str("original", original).
		Str("substitution", substitution).
		Msg("replacement")
}

// 📊 MatchSummary logs the number of matches found in path
func (r *Reporter) MatchSummary(path string, n int) {
	if n == 1 {
		r.println(fmt.Sprintf("%s: found 1 match", path))
	} else {
		r.println(fmt.Sprintf("%s: found %s matches", path, r.FormatCount(n)))
	}
	r.zlog.Info().Str("file", path).Int("matches", n).Msg("search complete")
}

// 📊 ReplacementSummary logs the number of replacements made in path
func (r *Reporter) ReplacementSummary(path string, n int) {
	if n == 1 {
		r.println(fmt.Sprintf("%s: did 1 replacement", path))
	} else {
		r.println(fmt.Sprintf("%s: did %s replacements", path, r.FormatCount(n)))
	}
	r.zlog.Info().Str("file", path).Int("replacements", n).Msg("replace complete")
}

// Progressing logs that processing of path has started
func (r *Reporter) Progressing(path string) {
	r.println("Progressing: " + path)
}

// ⚠️ FileNotFound logs a target that was skipped
func (r *Reporter) FileNotFound(path string) {
	r.println("File not found error: " + path)
	r.zlog.Debug().Str("file", path).Msg("file not found")
}

func (r *Reporter) println(line string) {
	fmt.Fprintln(r.console, line)
}
