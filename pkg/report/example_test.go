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

package report_test

import (
	"context"
	"os"

	"github.com/walteh/rgx/pkg/report"
	"github.com/walteh/rgx/pkg/text"
)

func ExampleReporter() {
	r := report.New(context.Background(), os.Stdout, report.Options{OffsetWidth: 6})

	content := "abc\ndef\nghi"
	r.Match("letters.txt", 4, text.Window(content, 4, 3))
	r.MatchSummary("letters.txt", 1)

	// Output:
	// Offset:4      def
	// letters.txt: found 1 match
}
