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

	"github.com/rs/zerolog"
	"github.com/walteh/rgx/pkg/config"
	"github.com/walteh/rgx/pkg/files"
	"github.com/walteh/rgx/pkg/match"
	"github.com/walteh/rgx/pkg/report"
	"github.com/walteh/rgx/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎮 Processor runs the search or replace pipeline on one file at a time
type Processor struct {
	cfg      config.Config
	matcher  Matcher
	reporter *report.Reporter
	files    files.FileManager
}

var _ FileProcessor = (*Processor)(nil)

// Mode returns the mode every file of this run is processed in
func (p *Processor) Mode() Mode {
	if p.cfg.IsReplace() {
		return ModeReplace
	}
	return ModeSearch
}

// 📄 ProcessFile searches or rewrites path. A missing file is reported and
// skipped without error.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	result := Result{Path: path, Mode: p.Mode(), State: StateNotStarted}

	exists, err := p.files.FileExists(ctx, path)
	if err != nil {
		return result, errors.Errorf("%w: %w", ErrIO, err)
	}
	if !exists {
		p.reporter.FileNotFound(path)
		result.State = StateSkipped
		return result, nil
	}

	result.State = StateReading
	if p.cfg.Verbose {
		p.reporter.Progressing(path)
	}
	raw, err := p.files.ReadFile(ctx, path)
	if err != nil {
		return result, errors.Errorf("%w: %w", ErrIO, err)
	}
	content := string(raw)
	matches := p.matcher.FindAll(content)
	logger.Debug().Int("bytes", len(raw)).Int("matches", len(matches)).Str("mode", result.Mode.String()).Msg("scanned file")

	if result.Mode == ModeReplace {
		result.State = StateReplace
		if err := p.replace(ctx, path, content, matches, &result); err != nil {
			return result, err
		}
	} else {
		result.State = StateSearch
		p.search(path, content, matches, &result)
	}

	result.State = StateDone
	return result, nil
}

func (p *Processor) search(path, content string, matches []match.Match, result *Result) {
	for _, m := range matches {
		p.reporter.Match(path, m.Start, text.Window(content, m.Start, m.Length))
	}
	result.Matches = len(matches)

	if p.cfg.Verbose || result.Matches > 0 {
		p.reporter.MatchSummary(path, result.Matches)
	}
}

func (p *Processor) replace(ctx context.Context, path, content string, matches []match.Match, result *Result) error {
	template := *p.cfg.Replace
	replaced := text.Replace(content, matches, func(m match.Match) string {
		return p.matcher.Expand(template, content, m)
	})

	if p.cfg.Verbose {
		for _, r := range replaced.Replacements {
			p.reporter.Replacement(path, r.Match.Start, r.Match.Text, r.Result)
		}
	}

	result.Replacements = replaced.ReplacementCount
	result.Modified = replaced.WasModified

	if replaced.ReplacementCount > 0 {
		if err := p.files.WriteFile(ctx, path, replaced.ModifiedContent); err != nil {
			return errors.Errorf("%w: %w", ErrIO, err)
		}
	}

	if p.cfg.Verbose || result.Replacements > 0 {
		p.reporter.ReplacementSummary(path, result.Replacements)
	}
	return nil
}
