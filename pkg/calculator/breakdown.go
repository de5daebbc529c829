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
	"strconv"
	"strings"
)

// Term is one number of the input.
type Term struct {
	Text     string `json:"text"`     // The token as written in the input.
	Value    int    `json:"value"`    // Its parsed value.
	Pos      int    `json:"pos"`      // The first char position in the input.
	Len      int    `json:"len"`      // The length of the token, in chars.
	Excluded bool   `json:"excluded"` // Above the upper bound, not counted.
}

// Breakdown describes how a sum was obtained.
type Breakdown struct {
	Input      string   `json:"input"`
	Delimiters []string `json:"delimiters"` // Active inside a line; newlines always separate lines.
	Terms      []Term   `json:"terms"`
	Sum        int      `json:"sum"`
}

// Included returns the terms counted in Sum, in input order.
func (b Breakdown) Included() []Term {
	return b.filter(false)
}

// Excluded returns the terms above the upper bound, in input order.
func (b Breakdown) Excluded() []Term {
	return b.filter(true)
}

func (b Breakdown) filter(excluded bool) []Term {
	terms := make([]Term, 0, len(b.Terms))
	for _, t := range b.Terms {
		if t.Excluded == excluded {
			terms = append(terms, t)
		}
	}
	return terms
}

// Render writes the sum as an addition of the included terms, for instance
// "1 + 2 + 3 = 6". Without included terms it returns "0".
func (b Breakdown) Render() string {
	included := b.Included()
	if len(included) == 0 {
		return "0"
	}
	var out strings.Builder
	for i, t := range included {
		if i > 0 {
			out.WriteString(" + ")
		}
		out.WriteString(strconv.Itoa(t.Value))
	}
	out.WriteString(" = ")
	out.WriteString(strconv.Itoa(b.Sum))
	return out.String()
}
