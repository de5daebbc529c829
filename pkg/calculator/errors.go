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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds returned by Add and Explain. Match them with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNegativesNotAllowed = errors.New("negatives not allowed")
	ErrSumOverflow         = errors.New("sum overflows int")
)

// Reasons carried by an InputError next to ErrInvalidInput.
// scan.ErrTrailingDelimiter is reported the same way.
var (
	ErrEmptyToken            = errors.New("empty number")
	ErrNotInteger            = errors.New("not a decimal integer")
	ErrUnterminatedDirective = errors.New("delimiter directive has no line terminator")
	ErrAmbiguousDelimiter    = errors.New("delimiter contains a digit or a minus sign")
)

// InputError reports an input that cannot be summed.
type InputError struct {
	Pos   int    // Rune position in the input.
	Token string // Offending token, may be empty.
	Err   error  // Reason.
}

func (e *InputError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v at position %d (%q): %v", ErrInvalidInput, e.Pos, e.Token, e.Err)
	}
	return fmt.Sprintf("%v at position %d: %v", ErrInvalidInput, e.Pos, e.Err)
}

// Unwrap exposes both ErrInvalidInput and the reason to errors.Is.
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// NegativesError lists every negative value of an input, in the order they
// appear.
type NegativesError struct {
	Values []int
}

// Error renders "negatives not allowed: -2, -3".
func (e *NegativesError) Error() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = strconv.Itoa(v)
	}
	return ErrNegativesNotAllowed.Error() + ": " + strings.Join(parts, ", ")
}

func (e *NegativesError) Unwrap() error {
	return ErrNegativesNotAllowed
}

// Negatives returns the values carried by a NegativesError found in err's
// chain, or nil.
func Negatives(err error) []int {
	var ne *NegativesError
	if errors.As(err, &ne) {
		return ne.Values
	}
	return nil
}
