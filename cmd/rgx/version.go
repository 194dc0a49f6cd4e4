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
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/fatih/color"
)

// Set at build time with -ldflags "-X main.version=... -X main.company=...".
var (
	version   = ""
	company   = "walteh"
	copyright = "Copyright 2025 walteh LLC"
)

// VersionInfo represents the version information of the binary
type VersionInfo struct {
	Company   string `json:"company"`
	Copyright string `json:"copyright"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Revision  string `json:"revision"`
	Modified  bool   `json:"modified"`
}

// GetVersionInfo returns the injected version information, falling back to build info
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Company:   company,
		Copyright: copyright,
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" && buildInfo.Main.Version != "" {
			info.Version = buildInfo.Main.Version
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
			case "vcs.modified":
				info.Modified = setting.Value == "true"
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	return info
}

// writeVersion prints the version banner, followed by build details when detailed is set
func writeVersion(w io.Writer, detailed bool) {
	info := GetVersionInfo()
	color.New(color.FgCyan).Fprintf(w, "%s %s Version %s\n", info.Company, programName, info.Version)
	fmt.Fprintln(w, info.Copyright)
	if !detailed {
		return
	}

	modified := ""
	if info.Modified {
		modified = " (modified)"
	}
	fmt.Fprintf(w, "Revision:  %s%s\nGo:        %s\nPlatform:  %s\n", info.Revision, modified, info.GoVersion, info.Platform)
}
