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

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

const (
	programName = "rgx"
	usageArgs   = "[option]... pattern (file|directory)..."
)

func writeUsage(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgCyan).Sprint(programName), usageArgs)
}

// writeMinimalUsage prints the short usage hint shown after errors
func writeMinimalUsage(w io.Writer) {
	fmt.Fprint(w, "Usage: ")
	writeUsage(w)
	fmt.Fprintf(w, "Type '%s --help' for more information.\n", programName)
}

// writeHelp prints the full help text
func writeHelp(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w)
	fmt.Fprint(w, "  ")
	writeUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  pattern           The search pattern as regular expression (RE2 syntax).")
	fmt.Fprintln(w, "  file              File to operate.")
	fmt.Fprintln(w, "  directory         Directory to operate. (Must end with a directory separator)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Description:")
	fmt.Fprintf(w, "  %s is a command-line frontend for regular expressions.\n", programName)
	fmt.Fprintln(w, "  It searches for a given search pattern in the file contents")
	fmt.Fprintln(w, "  in every given input file.")
	fmt.Fprintln(w, "  Optionally you can set a replace pattern that will be applied")
	fmt.Fprintln(w, "  on every match.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  1. Named groups:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s \"Name:(?<name>[A-Za-z]+)\" --replace \"id=${name}\" names.txt\n", programName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  2. Find 'Hello' in all *.txt files in this folder and all subfolders")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "    %s --recursive --filter *.txt Hello ./\n", programName)
}
