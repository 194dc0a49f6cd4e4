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

// Package match wraps the regular expression engine: it compiles search
// patterns, walks a text for its ordered, non-overlapping matches and expands
// replacement templates against a match's captures.
package match

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ErrPattern marks an invalid search pattern or replacement template.
var ErrPattern = errors.Base("pattern error")

// 🎯 Match is one located occurrence of the pattern
type Match struct {
	Start  int    // Byte offset of the match in the searched text
	Length int    // Length of the match in bytes
	Text   string // The matched substring

	// submatch index pairs as returned by regexp, used for template expansion
	loc []int
}

// End returns the offset of the first byte after the match
func (m Match) End() int {
	return m.Start + m.Length
}

// 🔍 Matcher finds matches of one compiled pattern
type Matcher struct {
	re *regexp.Regexp
}

// 🏭 Compile compiles pattern. Matching ignores case unless caseSensitive is set.
func Compile(pattern string, caseSensitive bool) (*Matcher, error) {
	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Errorf("%w: compiling %q: %w", ErrPattern, pattern, err)
	}
	return &Matcher{re: re}, nil
}

// FindAll returns every match in text ordered by ascending offset
func (m *Matcher) FindAll(text string) []Match {
	locs := m.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Start:  loc[0],
			Length: loc[1] - loc[0],
			Text:   text[loc[0]:loc[1]],
			loc:    loc,
		})
	}
	return matches
}

// Expand expands template against the captures of mt, which must have been
// found by this matcher in text. $1, ${1}, $name and ${name} reference groups,
// $$ is a literal dollar sign.
func (m *Matcher) Expand(template, text string, mt Match) string {
	return string(m.re.ExpandString(nil, template, text, mt.loc))
}

// ValidateTemplate rejects templates that reference groups the pattern does not define.
func (m *Matcher) ValidateTemplate(template string) error {
	rest := template
	for {
		i := strings.IndexByte(rest, '$')
		if i < 0 {
			return nil
		}
		rest = rest[i+1:]
		if strings.HasPrefix(rest, "$") {
			rest = rest[1:]
			continue
		}
		name, tail, ok := extractGroupName(rest)
		if !ok {
			// malformed references are copied verbatim by Expand
			continue
		}
		rest = tail
		if !m.hasGroup(name) {
			return errors.Errorf("%w: replacement %q references unknown group %q", ErrPattern, template, name)
		}
	}
}

func (m *Matcher) hasGroup(name string) bool {
	if n, err := strconv.Atoi(name); err == nil {
		return n >= 0 && n <= m.re.NumSubexp()
	}
	return m.re.SubexpIndex(name) >= 0
}

// extractGroupName parses "name" or "{name}" at the start of s, following the
// rules of regexp.Expand.
func extractGroupName(s string) (name, rest string, ok bool) {
	if s == "" {
		return "", "", false
	}
	brace := false
	if s[0] == '{' {
		brace = true
		s = s[1:]
	}
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		i += size
	}
	if i == 0 {
		return "", "", false
	}
	name = s[:i]
	if brace {
		if i >= len(s) || s[i] != '}' {
			return "", "", false
		}
		i++
	}
	return name, s[i:], true
}

// String returns the source of the compiled expression
func (m *Matcher) String() string {
	return m.re.String()
}
