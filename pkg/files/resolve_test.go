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

package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTree creates:
//
//	root/a.txt
//	root/b.md
//	root/noext
//	root/sub/c.txt
//	root/sub/deep/d.txt
func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range []string{"a.txt", "b.md", "noext", "sub/c.txt", "sub/deep/d.txt"} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(rel), 0644))
	}
	return root
}

func TestResolveTargets(t *testing.T) {
	root := setupTree(t)
	dirArg := root + "/"
	join := func(rel string) string {
		return filepath.Join(root, filepath.FromSlash(rel))
	}

	tests := []struct {
		name      string
		args      []string
		opts      ResolveOptions
		want      []string
		wantError string
	}{
		{
			name: "literal_paths_kept_verbatim",
			args: []string{"x.txt", "missing/y.txt"},
			opts: ResolveOptions{Filter: "*.*"},
			want: []string{"x.txt", "missing/y.txt"},
		},
		{
			name: "direct_children_only",
			args: []string{dirArg},
			opts: ResolveOptions{Filter: "*.txt"},
			want: []string{join("a.txt")},
		},
		{
			name: "recursive",
			args: []string{dirArg},
			opts: ResolveOptions{Filter: "*.txt", Recursive: true},
			want: []string{join("a.txt"), join("sub/c.txt"), join("sub/deep/d.txt")},
		},
		{
			name: "match_all_includes_names_without_dot",
			args: []string{dirArg},
			opts: ResolveOptions{Filter: "*.*"},
			want: []string{join("a.txt"), join("b.md"), join("noext")},
		},
		{
			name: "mixed_arguments",
			args: []string{"first.txt", dirArg, "last.txt"},
			opts: ResolveOptions{Filter: "*.md"},
			want: []string{"first.txt", join("b.md"), "last.txt"},
		},
		{
			name:      "missing_directory",
			args:      []string{filepath.Join(root, "nope") + "/"},
			opts:      ResolveOptions{Filter: "*.*"},
			wantError: "expanding directory",
		},
		{
			name:      "invalid_filter",
			args:      []string{dirArg},
			opts:      ResolveOptions{Filter: "[a-"},
			wantError: "invalid filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTargets(context.Background(), tt.args, tt.opts)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestIsDirArg(t *testing.T) {
	assert.True(t, IsDirArg("dir/"))
	assert.True(t, IsDirArg("dir"+string(os.PathSeparator)))
	assert.False(t, IsDirArg("dir"))
	assert.False(t, IsDirArg("file.txt"))
}
