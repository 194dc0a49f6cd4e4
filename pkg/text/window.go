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

package text

import (
	"unicode/utf8"
)

// MaxContext is the maximum number of characters shown on each side of a match
const MaxContext = 100

// ContextWindow is the printable slice of a line around a match
type ContextWindow struct {
	Pre   string // Text between the line start and the match
	Match string // The matched text
	Post  string // Text between the match and the line end
}

// String joins the window back into the contiguous source text
func (w ContextWindow) String() string {
	return w.Pre + w.Match + w.Post
}

// Window returns the context of the match at [start, start+length) in text.
// Each side stops at the nearest '\n' or '\r' and never spans more than
// MaxContext runes. Offsets are byte offsets and are clamped to text.
func Window(text string, start, length int) ContextWindow {
	start = clamp(start, 0, len(text))
	end := clamp(start+length, start, len(text))

	return ContextWindow{
		Pre:   text[lineStart(text, start):start],
		Match: text[start:end],
		Post:  text[end:lineEnd(text, end)],
	}
}

// lineStart walks back from offset to just after the previous newline, at
// most MaxContext runes.
func lineStart(text string, offset int) int {
	i := offset
	for n := 0; n < MaxContext && i > 0; n++ {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if isNewline(r) {
			break
		}
		i -= size
	}
	return i
}

// lineEnd walks forward from offset to the next newline (exclusive), at most
// MaxContext runes.
func lineEnd(text string, offset int) int {
	i := offset
	for n := 0; n < MaxContext && i < len(text); n++ {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isNewline(r) {
			break
		}
		i += size
	}
	return i
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
