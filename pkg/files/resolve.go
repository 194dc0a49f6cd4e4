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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// MatchAllFilter is the legacy wildcard that selects every file, with or
// without an extension.
const MatchAllFilter = "*.*"

// 🎯 ResolveOptions controls how directory arguments are expanded
type ResolveOptions struct {
	Filter    string // Wildcard matched against file base names
	Recursive bool   // Include files in subdirectories
}

// IsDirArg reports whether arg names a directory, i.e. ends with a path separator
func IsDirArg(arg string) bool {
	return strings.HasSuffix(arg, "/") || strings.HasSuffix(arg, string(os.PathSeparator))
}

// 🔍 ResolveTargets expands args into the list of files to process, in order.
// Arguments ending with a path separator are directories and are replaced by
// their files matching opts.Filter. Any other argument is kept verbatim.
func ResolveTargets(ctx context.Context, args []string, opts ResolveOptions) ([]string, error) {
	pattern := normalizeFilter(opts.Filter)
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("invalid filter %q", opts.Filter)
	}

	var targets []string
	for _, arg := range args {
		if !IsDirArg(arg) {
			targets = append(targets, arg)
			continue
		}

		dir := arg[:len(arg)-1]
		if dir == "" {
			dir = arg
		}
		found, err := expandDir(dir, pattern, opts.Recursive)
		if err != nil {
			return nil, errors.Errorf("expanding directory %s: %w", arg, err)
		}
		zerolog.Ctx(ctx).Debug().
			Str("dir", dir).
			Str("filter", pattern).
			Bool("recursive", opts.Recursive).
			Int("files", len(found)).
			Msg("expanded directory")
		targets = append(targets, found...)
	}
	return targets, nil
}

func normalizeFilter(filter string) string {
	if filter == "" || filter == MatchAllFilter {
		return "*"
	}
	return filter
}

func expandDir(dir, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("not a directory: %s", dir)
	}

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Errorf("reading directory: %w", err)
		}
		var files []string
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
		return files, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "**/"+pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, errors.Errorf("walking directory: %w", err)
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return files, nil
}
