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

package operation

import (
	"context"

	"github.com/walteh/rgx/pkg/config"
	"github.com/walteh/rgx/pkg/files"
	"github.com/walteh/rgx/pkg/match"
	"github.com/walteh/rgx/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// ErrIO marks a read or write failure on an existing file. It aborts the run.
var ErrIO = errors.Base("i/o failure")

// 🎯 Mode is the processing mode of a run
type Mode int

const (
	ModeSearch Mode = iota
	ModeReplace
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// 📊 State is a step of the per-file state machine
type State int

const (
	StateNotStarted State = iota
	StateReading
	StateSearch
	StateReplace
	StateDone
	StateSkipped
)

// String returns a string representation of State
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateReading:
		return "reading"
	case StateSearch:
		return "search"
	case StateReplace:
		return "replace"
	case StateDone:
		return "done"
	case StateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// 📄 Result is the outcome of processing one file
type Result struct {
	Path         string
	Mode         Mode
	State        State // StateDone or StateSkipped once processing returns
	Matches      int   // Search mode only
	Replacements int   // Replace mode only
	Modified     bool  // Whether replacing changed the file content
}

// 🔍 Matcher finds matches and expands replacement templates
type Matcher interface {
	FindAll(text string) []match.Match
	Expand(template, text string, m match.Match) string
}

var _ Matcher = (*match.Matcher)(nil)

// 🔌 FileProcessor processes a single file
type FileProcessor interface {
	ProcessFile(ctx context.Context, path string) (Result, error)
}

// 🔧 Options contains the collaborators of a Processor
type Options struct {
	// Config is the run configuration
	Config config.Config
	// Matcher is the compiled search pattern
	Matcher Matcher
	// Reporter renders matches and summaries
	Reporter *report.Reporter
	// Files reads and rewrites target files
	Files files.FileManager
}

// 🏭 New creates a processor with the given options
func New(opts Options) (*Processor, error) {
	if opts.Matcher == nil {
		return nil, errors.Errorf("matcher is required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return &Processor{
		cfg:      opts.Config,
		matcher:  opts.Matcher,
		reporter: opts.Reporter,
		files:    opts.Files,
	}, nil
}
