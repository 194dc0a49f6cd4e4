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

package config

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Defaults applied by New
const (
	DefaultFilter      = "*.*"
	DefaultOffsetWidth = 6
)

// ErrUsage marks errors caused by how the tool was invoked.
var ErrUsage = errors.Base("usage error")

// 📚 Config is the immutable run configuration shared by every file of a run
type Config struct {
	Replace       *string // Replacement template, nil in search mode
	CaseSensitive bool    // Disables the default ignore-case matching
	Recursive     bool    // Descend into subdirectories of directory arguments
	Filter        string  // Wildcard applied to directory entries
	OffsetWidth   int     // Minimum width of the offset column
	OnlyMatching  bool    // Print the match without its context
	Verbose       bool    // Per-file progress and per-replacement detail
	NoColor       bool    // Disable match highlighting
	Debug         bool    // Enable debug log records
}

// Option mutates a Config while it is being built
type Option func(*Config)

// WithReplace switches the run into replace mode
func WithReplace(template string) Option {
	return func(c *Config) { c.Replace = &template }
}

// 🏭 New builds a validated Config from the defaults and the given options
func New(opts ...Option) (Config, error) {
	cfg := Config{
		Filter:      DefaultFilter,
		OffsetWidth: DefaultOffsetWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.OffsetWidth < 0 {
		return errors.Errorf("%w: offset-width must not be negative, got %d", ErrUsage, c.OffsetWidth)
	}
	if strings.TrimSpace(c.Filter) == "" {
		return errors.Errorf("%w: filter must not be empty", ErrUsage)
	}
	return nil
}

// IsReplace reports whether matches are rewritten instead of printed
func (c Config) IsReplace() bool {
	return c.Replace != nil
}

// 📝 String returns a string representation of the config
func (c Config) String() string {
	mode := "search"
	if c.IsReplace() {
		mode = fmt.Sprintf("replace(%q)", *c.Replace)
	}
	return fmt.Sprintf("%s filter=%s recursive=%t case-sensitive=%t offset-width=%d",
		mode, c.Filter, c.Recursive, c.CaseSensitive, c.OffsetWidth)
}
