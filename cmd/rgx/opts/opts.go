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

package opts

import (
	"github.com/walteh/rgx/pkg/config"
)

// RootOpts holds the raw flag values of the root command
type RootOpts struct {
	Replace       string
	CaseSensitive bool
	Filter        string
	Recursive     bool
	OffsetWidth   int
	OnlyMatching  bool
	Verbose       bool
	Version       bool
	NoColor       bool
	Debug         bool
}

// Config converts the flag values into a validated run configuration.
// replaceSet reports whether --replace was given, since an empty template
// still selects replace mode.
func (o *RootOpts) Config(replaceSet bool) (config.Config, error) {
	var options []config.Option
	if replaceSet {
		options = append(options, config.WithReplace(o.Replace))
	}
	options = append(options, func(c *config.Config) {
		c.CaseSensitive = o.CaseSensitive
		c.Filter = o.Filter
		c.Recursive = o.Recursive
		c.OffsetWidth = o.OffsetWidth
		c.OnlyMatching = o.OnlyMatching
		c.Verbose = o.Verbose
		c.NoColor = o.NoColor
		c.Debug = o.Debug
	})
	return config.New(options...)
}
