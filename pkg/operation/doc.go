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

/*
Package operation implements the per-file search and replace pipeline.

	+-------------+
	|   Runner    |
	| (file list) |
	+------+------+
	       |
	+------+------+
	|  Processor  |
	|  (one file) |
	+------+------+
	       |
	+------+------+------+
	|             |      |
	match       text   report

🔄 Flow (per file):
 1. NotStarted -> Skipped when the path is not an existing file
 2. NotStarted -> Reading: the whole file is loaded into memory
 3. Reading -> SearchMode when no replacement template is configured,
    every match is printed with its context window
 4. Reading -> ReplaceMode otherwise: matches are substituted in order,
    the new content overwrites the file in place
 5. Both modes end in Done after the summary line

⚡ Failure semantics:
A missing file is reported and skipped. Any read or write failure is
returned wrapped in ErrIO and the Runner stops the batch; files rewritten
before the failure are not rolled back.

🔍 Example:

	proc, err := operation.New(operation.Options{
		Config:   cfg,
		Matcher:  matcher,
		Reporter: reporter,
		Files:    files.NewOSFileManager(),
	})
	results, err := operation.NewRunner(proc).Run(ctx, paths)
*/
package operation
