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

// Package files reads and rewrites target files and expands directory
// arguments into file lists.
package files

import (
	"context"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager handles the file system operations of a run
type FileManager interface {
	// FileExists reports whether path names an existing regular file
	FileExists(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile truncates path and writes content in place. Replace mode does
	// not call it for a file without replacements.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🔧 OSFileManager implements FileManager on the local file system
type OSFileManager struct{}

var _ FileManager = (*OSFileManager)(nil)

// 🏭 NewOSFileManager creates a new OSFileManager
func NewOSFileManager() *OSFileManager {
	return &OSFileManager{}
}

// FileExists treats any stat failure as a missing file, so a path such as
// "file.txt/child" is skipped rather than failing the run.
func (m *OSFileManager) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", path).Msg("stat failed")
		return false, nil
	}
	return info.Mode().IsRegular(), nil
}

func (m *OSFileManager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("read file")
	return content, nil
}

// WriteFile overwrites path in place, keeping its permission bits. The write
// is not atomic: a failure midway leaves a truncated file behind.
func (m *OSFileManager) WriteFile(ctx context.Context, path string, content []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, mode)
	if err != nil {
		return errors.Errorf("opening file for writing: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing file: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}
