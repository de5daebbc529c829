// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirective(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		custom    []string
		malformed bool
		payload   string
		offset    int
	}{
		{name: "no directive", input: "1,2", payload: "1,2"},
		{name: "single char", input: "//;\n1;2", custom: []string{";"}, payload: "1;2", offset: 4},
		{name: "bare multi char", input: "//ab\n1ab2", custom: []string{"ab"}, payload: "1ab2", offset: 5},
		{name: "bracket", input: "//[***]\n1***2", custom: []string{"***"}, payload: "1***2", offset: 8},
		{name: "brackets", input: "//[*][%%]\n1", custom: []string{"*", "%%"}, payload: "1", offset: 10},
		{name: "empty", input: "//\n1", payload: "1", offset: 3},
		{name: "crlf", input: "//;\r\n1", custom: []string{";"}, payload: "1", offset: 5},
		{name: "unterminated bracket", input: "//[***\n1", malformed: true, payload: "1", offset: 7},
		{name: "empty bracket", input: "//[]\n1", malformed: true, payload: "1", offset: 5},
		{name: "text after bracket", input: "//[*]x\n1", malformed: true, payload: "1", offset: 7},
		{name: "bracket in middle", input: "//[*]]\n1", malformed: true, payload: "1", offset: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := resolveDirective(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.custom, d.custom)
			assert.Equal(t, tc.malformed, d.malformed)
			assert.Equal(t, tc.payload, d.payload)
			assert.Equal(t, tc.offset, d.offset)
			assert.Equal(t, tc.input[tc.offset:], d.payload)
		})
	}
}

func TestResolveDirective_Errors(t *testing.T) {
	_, err := resolveDirective("//;")
	assert.ErrorIs(t, err, ErrUnterminatedDirective)

	_, err = resolveDirective("//[*][1]\n1")
	assert.ErrorIs(t, err, ErrAmbiguousDelimiter)
	var ie *InputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "1", ie.Token)
}

func TestLineDelimiters(t *testing.T) {
	layered := DefaultConfig()
	assert.Equal(t, []string{","}, layered.lineDelimiters(directive{}))
	assert.Equal(t, []string{",", ";"}, layered.lineDelimiters(directive{custom: []string{";"}}))
	assert.Equal(t, []string{","}, layered.lineDelimiters(directive{custom: []string{","}}))

	replace := DefaultConfig()
	replace.Mode = ModeReplace
	assert.Equal(t, []string{","}, replace.lineDelimiters(directive{}))
	assert.Equal(t, []string{";"}, replace.lineDelimiters(directive{custom: []string{";"}}))
}
