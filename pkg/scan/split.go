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

// Package scan provides split functions and a driver that tokenizes an
// in-memory string without mutating it and without any token size limit.
package scan

import (
	"bufio"
	"errors"
	"io"
)

// ErrTrailingDelimiter is returned by Split when the input ends right after a
// delimiter.
var ErrTrailingDelimiter = errors.New("input ends with a delimiter")

// Token is a piece of the input produced by a split function.
type Token struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"` // Byte offset of Text in the split string.
}

// Split runs split over the whole of s and returns the tokens in order.
//
// Unlike bufio.Scanner, Split has no maximum token size: the split function
// always sees the complete remaining input with atEOF set. The split function
// must return tokens that start at the beginning of the data it receives,
// which is the case for ScanLines and ScanDelimited.
//
// When the last token was followed by a delimiter (the advance went past the
// token) Split returns the tokens read so far and ErrTrailingDelimiter.
func Split(s string, split bufio.SplitFunc) ([]Token, error) {
	data := []byte(s)
	tokens := make([]Token, 0, 8)
	pos := 0
	terminated := false
	for pos < len(data) {
		advance, token, err := split(data[pos:], true)
		if err != nil {
			if errors.Is(err, bufio.ErrFinalToken) {
				if token != nil {
					tokens = append(tokens, Token{Text: string(token), Offset: pos})
				}
				return tokens, nil
			}
			return tokens, err
		}
		switch {
		case advance < 0:
			return tokens, bufio.ErrNegativeAdvance
		case advance == 0:
			return tokens, io.ErrNoProgress
		case advance > len(data)-pos:
			return tokens, bufio.ErrAdvanceTooFar
		}
		if token != nil {
			tokens = append(tokens, Token{Text: string(token), Offset: pos})
		}
		terminated = advance > len(token)
		pos += advance
	}
	if terminated {
		return tokens, ErrTrailingDelimiter
	}
	return tokens, nil
}
