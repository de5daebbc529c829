// Copyright 2026 Benoit Pereira da Silva
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

package scan

import (
	"bufio"
	"bytes"
	"sort"
)

// ScanDelimited returns a bufio.SplitFunc that splits its input on any of the
// given delimiters.
//
// Matching rules:
//
//   - Delimiters are matched literally, byte for byte. They may be of any
//     length.
//   - When several delimiters match at the same position the longest one wins.
//   - The returned token never contains the delimiter that ended it.
//   - Empty delimiters are ignored. With no usable delimiter the whole input
//     is one token.
//
// Example:
//
//	scanner := bufio.NewScanner(strings.NewReader("1***2,3"))
//	scanner.Split(scan.ScanDelimited("***", ","))
//	for scanner.Scan() {
//	    token := scanner.Text() // "1", "2", "3"
//	}
func ScanDelimited(delimiters ...string) bufio.SplitFunc {
	delims := make([][]byte, 0, len(delimiters))
	longest := 0
	for _, d := range delimiters {
		if d == "" {
			continue
		}
		delims = append(delims, []byte(d))
		if len(d) > longest {
			longest = len(d)
		}
	}
	sort.SliceStable(delims, func(i, j int) bool {
		return len(delims[i]) > len(delims[j])
	})

	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		// No data and nothing more to read.
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		for i := 0; i < len(data); i++ {
			// A longer delimiter could still complete with more data.
			if !atEOF && i+longest > len(data) {
				return 0, nil, nil
			}
			for _, d := range delims {
				if bytes.HasPrefix(data[i:], d) {
					return i + len(d), data[:i], nil
				}
			}
		}

		if atEOF {
			return len(data), data, nil
		}

		// Request more data.
		return 0, nil, nil
	}
}
