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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rgx/pkg/match"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		pattern      string
		template     string
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:         "named_group",
			content:      "Name:Alice",
			pattern:      "Name:(?<name>[A-Za-z]+)",
			template:     "id=${name}",
			want:         "id=Alice",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "multiple_replacements",
			content:      "Hello World World",
			pattern:      "World",
			template:     "Universe",
			want:         "Hello Universe Universe",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "identity_template",
			content:      "keep\nthese\nlines",
			pattern:      `\w+`,
			template:     "${0}",
			want:         "keep\nthese\nlines",
			wantCount:    3,
			wantModified: false,
		},
		{
			name:      "no_match",
			content:   "Hello World",
			pattern:   "Goodbye",
			template:  "Hi",
			want:      "Hello World",
			wantCount: 0,
		},
		{
			name:      "empty_content",
			content:   "",
			pattern:   "World",
			template:  "Universe",
			want:      "",
			wantCount: 0,
		},
		{
			name:         "empty_template_deletes",
			content:      "a1b2c3",
			pattern:      `\d`,
			template:     "",
			want:         "abc",
			wantCount:    3,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := match.Compile(tt.pattern, false)
			require.NoError(t, err)

			result := Replace(tt.content, m.FindAll(tt.content), func(mt match.Match) string {
				return m.Expand(tt.template, tt.content, mt)
			})

			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Len(t, result.Replacements, tt.wantCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestReplace_RecordsInMatchOrder(t *testing.T) {
	content := "b=2 a=1 c=3"
	m, err := match.Compile(`(\w)=(\d)`, false)
	require.NoError(t, err)

	var calls []int
	result := Replace(content, m.FindAll(content), func(mt match.Match) string {
		calls = append(calls, mt.Start)
		return strings.ToUpper(mt.Text)
	})

	assert.Equal(t, []int{0, 4, 8}, calls, "expand should be called in offset order")
	require.Len(t, result.Replacements, 3)
	assert.Equal(t, "a=1", result.Replacements[1].Match.Text)
	assert.Equal(t, "A=1", result.Replacements[1].Result)
	assert.Equal(t, "B=2 A=1 C=3", string(result.ModifiedContent))
}
