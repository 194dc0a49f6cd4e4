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

package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/walteh/rgx/cmd/rgx/opts"
	"github.com/walteh/rgx/pkg/config"
	"github.com/walteh/rgx/pkg/files"
	"github.com/walteh/rgx/pkg/match"
	"github.com/walteh/rgx/pkg/operation"
	"github.com/walteh/rgx/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// Handler runs the root command
type Handler struct {
	opts   opts.RootOpts
	stdout io.Writer
	stderr io.Writer
}

// NewCommand creates the root command writing results to stdout and logs to stderr
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	h := &Handler{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   programName + " " + usageArgs,
		Short: "Search and replace file contents with regular expressions",
		Long: `rgx searches every given file for a regular expression and prints each
match with the rest of its line. With --replace every match is substituted
with the expanded template and the file is rewritten in place.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := h.setupLogging(cmd.Context())
			return h.Run(ctx, args, cmd.Flags().Changed("replace"))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd.Flags(), &h.opts)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Errorf("%w: %w", config.ErrUsage, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeHelp(c.OutOrStdout(), c.Flags())
	})

	return cmd
}

// addRootFlags registers the command line options
func addRootFlags(flags *pflag.FlagSet, o *opts.RootOpts) {
	flags.SortFlags = false
	flags.StringVarP(&o.Replace, "replace", "R", "", "replacement pattern, may reference groups as $1, ${1}, $name or ${name}")
	flags.BoolVarP(&o.CaseSensitive, "case-sensitive", "c", false, "enables case-sensitive matching, matching ignores case by default")
	flags.StringVarP(&o.Filter, "filter", "f", config.DefaultFilter, "wildcard based file filter for directories, e.g. *.txt")
	flags.BoolVarP(&o.Recursive, "recursive", "r", false, "process all subdirectories")
	flags.IntVar(&o.OffsetWidth, "offset-width", config.DefaultOffsetWidth, "output formatting: number of characters used for the offset column")
	flags.BoolVarP(&o.OnlyMatching, "only-matching", "o", false, "print only the match")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "show additional information")
	flags.BoolVarP(&o.Version, "version", "V", false, "show version information")
	flags.BoolVar(&o.NoColor, "no-color", false, "disable match highlighting")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.BoolP("help", "h", false, "show this help")
}

// setupLogging stores a zerolog logger writing to stderr in ctx
func (h *Handler) setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if h.opts.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: h.stderr, NoColor: h.opts.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// Run resolves the pattern and targets from args and processes every file
func (h *Handler) Run(ctx context.Context, args []string, replaceSet bool) error {
	if h.opts.Version {
		writeVersion(h.stdout, h.opts.Verbose)
		return nil
	}

	if len(args) == 0 {
		return errors.Errorf("%w: missing regular expression pattern", config.ErrUsage)
	}
	pattern, paths := args[0], args[1:]

	cfg, err := h.opts.Config(replaceSet)
	if err != nil {
		return errors.Errorf("reading options: %w", err)
	}
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("pattern", pattern).Stringer("config", cfg).Msg("starting run")

	matcher, err := match.Compile(pattern, cfg.CaseSensitive)
	if err != nil {
		return err
	}
	if cfg.IsReplace() {
		if err := matcher.ValidateTemplate(*cfg.Replace); err != nil {
			return err
		}
	}

	targets, err := files.ResolveTargets(ctx, paths, files.ResolveOptions{
		Filter:    cfg.Filter,
		Recursive: cfg.Recursive,
	})
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	rep := report.New(ctx, h.stdout, report.Options{
		OffsetWidth:  cfg.OffsetWidth,
		OnlyMatching: cfg.OnlyMatching,
		Highlight:    report.NewStyle(!cfg.NoColor && !color.NoColor, color.FgGreen),
	})

	proc, err := operation.New(operation.Options{
		Config:   cfg,
		Matcher:  matcher,
		Reporter: rep,
		Files:    files.NewOSFileManager(),
	})
	if err != nil {
		return errors.Errorf("creating processor: %w", err)
	}

	results, err := operation.NewRunner(proc).Run(ctx, targets)
	if err != nil {
		return err
	}

	logger.Debug().Int("files", len(results)).Msg("done")
	return nil
}
