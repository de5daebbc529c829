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

package calculator

import (
	"slices"
	"strings"
)

const directiveMarker = "//"

// directive is the outcome of reading the optional "//" first line.
type directive struct {
	custom    []string // Declared delimiters, nil when none were usable.
	malformed bool     // The line was present but could not be read.
	spec      string   // Raw directive line, without marker and terminator.
	payload   string   // Text left to tokenize.
	offset    int      // Byte offset of payload in the input.
}

// resolveDirective reads the delimiter directive of input, if any.
//
// Grammar of the directive line (after "//", up to the first '\n'):
//
//   - ""           no custom delimiter
//   - "[d1][d2]"   one delimiter per bracket group, each ending at the first ']'
//   - "d"          the whole line is the delimiter
//
// Unterminated or empty groups, or text after the last group, leave the
// directive malformed: it is skipped and the defaults apply. A missing line
// terminator or a delimiter that could be read as part of a number cannot be
// recovered from and yields an InputError.
func resolveDirective(input string) (directive, error) {
	if !strings.HasPrefix(input, directiveMarker) {
		return directive{payload: input}, nil
	}
	end := strings.IndexByte(input, '\n')
	if end < 0 {
		return directive{}, &InputError{Pos: 0, Err: ErrUnterminatedDirective}
	}
	spec := strings.TrimSuffix(input[len(directiveMarker):end], "\r")
	d := directive{
		spec:    spec,
		payload: input[end+1:],
		offset:  end + 1,
	}
	custom, ok := parseDirective(spec)
	if !ok {
		d.malformed = true
		return d, nil
	}
	for _, c := range custom {
		if ambiguous(c) {
			return directive{}, &InputError{Pos: len(directiveMarker), Token: c, Err: ErrAmbiguousDelimiter}
		}
	}
	d.custom = custom
	return d, nil
}

// parseDirective returns the delimiters declared by spec and whether spec is
// well formed.
func parseDirective(spec string) ([]string, bool) {
	if spec == "" {
		return nil, true
	}
	if spec[0] != '[' {
		return []string{spec}, true
	}
	var delims []string
	rest := spec
	for rest != "" {
		if rest[0] != '[' {
			return nil, false
		}
		closing := strings.IndexByte(rest, ']')
		if closing < 0 {
			return nil, false
		}
		d := rest[1:closing]
		if d == "" {
			return nil, false
		}
		delims = append(delims, d)
		rest = rest[closing+1:]
	}
	return delims, true
}

// ambiguous reports whether d could be mistaken for part of a number.
func ambiguous(d string) bool {
	return strings.ContainsAny(d, "-0123456789")
}

// lineDelimiters returns the delimiters active inside a line.
func (c Config) lineDelimiters(d directive) []string {
	if len(d.custom) == 0 {
		return c.Delimiters
	}
	if c.Mode == ModeReplace {
		return d.custom
	}
	delims := make([]string, 0, len(c.Delimiters)+len(d.custom))
	delims = append(delims, c.Delimiters...)
	for _, cd := range d.custom {
		if !slices.Contains(delims, cd) {
			delims = append(delims, cd)
		}
	}
	return delims
}
