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
	"strings"

	"github.com/walteh/rgx/pkg/match"
)

// Replacement records one substitution made by Replace
type Replacement struct {
	// Match is the occurrence that was replaced
	Match match.Match

	// Result is the expanded replacement text
	Result string
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content differs after replacement
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// Replacements lists every substitution in match order
	Replacements []Replacement

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// ExpandFunc produces the substitution text for one match
type ExpandFunc func(m match.Match) string

// Replace substitutes every match in content with the output of expand.
// matches must be ordered by ascending offset and must not overlap.
func Replace(content string, matches []match.Match, expand ExpandFunc) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: []byte(content),
		ModifiedContent: []byte(content),
	}
	if len(matches) == 0 {
		return result
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		sub := expand(m)
		result.Replacements = append(result.Replacements, Replacement{Match: m, Result: sub})
		result.ReplacementCount++

		b.WriteString(content[last:m.Start])
		b.WriteString(sub)
		last = m.End()
	}
	b.WriteString(content[last:])

	modified := b.String()
	result.ModifiedContent = []byte(modified)
	result.WasModified = modified != content
	return result
}
