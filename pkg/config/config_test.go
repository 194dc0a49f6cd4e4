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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		want      Config
		wantError string
	}{
		{
			name: "defaults",
			want: Config{Filter: "*.*", OffsetWidth: 6},
		},
		{
			name: "replace_mode",
			opts: []Option{WithReplace("id=${name}")},
			want: Config{Filter: "*.*", OffsetWidth: 6, Replace: ptr("id=${name}")},
		},
		{
			name: "zero_offset_width",
			opts: []Option{func(c *Config) { c.OffsetWidth = 0 }},
			want: Config{Filter: "*.*", OffsetWidth: 0},
		},
		{
			name:      "negative_offset_width",
			opts:      []Option{func(c *Config) { c.OffsetWidth = -1 }},
			wantError: "offset-width must not be negative",
		},
		{
			name:      "empty_filter",
			opts:      []Option{func(c *Config) { c.Filter = " " }},
			wantError: "filter must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(tt.opts...)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.True(t, errors.Is(err, ErrUsage), "should be a usage error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfig_IsReplace(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.False(t, cfg.IsReplace())

	// An empty template is still replace mode
	cfg, err = New(WithReplace(""))
	require.NoError(t, err)
	assert.True(t, cfg.IsReplace())
}

func TestConfig_String(t *testing.T) {
	cfg, err := New(WithReplace("x"))
	require.NoError(t, err)
	assert.Equal(t, `replace("x") filter=*.* recursive=false case-sensitive=false offset-width=6`, cfg.String())
}

func ptr(s string) *string {
	return &s
}
