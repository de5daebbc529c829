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
	"fmt"
	"strconv"
)

// parseNumber converts a token to an int. Only an optional leading '-'
// followed by ASCII digits is accepted.
func parseNumber(token string) (int, error) {
	if token == "" {
		return 0, ErrEmptyToken
	}
	digits := token
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, ErrNotInteger
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrNotInteger
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		// Only strconv.ErrRange is possible here.
		return 0, fmt.Errorf("%w: %w", ErrNotInteger, err)
	}
	return n, nil
}
