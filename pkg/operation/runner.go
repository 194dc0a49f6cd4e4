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
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner processes a list of files one after another
type Runner struct {
	processor FileProcessor
}

// 🏗️ NewRunner creates a new runner
func NewRunner(processor FileProcessor) *Runner {
	return &Runner{
		processor: processor,
	}
}

// 🏃 Run processes paths in order and returns one result per processed path.
// The first error stops the batch; results gathered so far are returned with it.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	logger := zerolog.Ctx(ctx)
	results := make([]Result, 0, len(paths))

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, errors.Errorf("operation cancelled: %w", err)
		}

		res, err := r.processor.ProcessFile(ctx, path)
		if err != nil {
			logger.Debug().Err(err).Str("file", path).Int("remaining", len(paths)-i-1).Msg("stopping run")
			return results, errors.Errorf("processing file %s: %w", path, err)
		}
		results = append(results, res)
	}

	logger.Debug().Int("files", len(results)).Msg("run complete")
	return results, nil
}
