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

	"github.com/google/go-cmp/cmp"
)

func TestExplain(t *testing.T) {
	got, err := Explain("//;\n1;1001\n2,3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Breakdown{
		Input:      "//;\n1;1001\n2,3",
		Delimiters: []string{",", ";"},
		Terms: []Term{
			{Text: "1", Value: 1, Pos: 4, Len: 1},
			{Text: "1001", Value: 1001, Pos: 6, Len: 4, Excluded: true},
			{Text: "2", Value: 2, Pos: 11, Len: 1},
			{Text: "3", Value: 3, Pos: 13, Len: 1},
		},
		Sum: 6,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("breakdown mismatch (-want +got):\n%s", diff)
	}
	if r := got.Render(); r != "1 + 2 + 3 = 6" {
		t.Fatalf("unexpected render: %q", r)
	}
	if diff := cmp.Diff([]Term{want.Terms[1]}, got.Excluded()); diff != "" {
		t.Fatalf("excluded mismatch (-want +got):\n%s", diff)
	}
}

// TestExplain_RunePositions checks that positions are expressed in characters,
// not bytes.
func TestExplain_RunePositions(t *testing.T) {
	got, err := Explain("//[é]\n12é345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Term{
		{Text: "12", Value: 12, Pos: 6, Len: 2},
		{Text: "345", Value: 345, Pos: 9, Len: 3},
	}
	if diff := cmp.Diff(want, got.Terms); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_Empty(t *testing.T) {
	got, err := Explain("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Breakdown{Delimiters: []string{","}, Terms: []Term{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("breakdown mismatch (-want +got):\n%s", diff)
	}
	if r := got.Render(); r != "0" {
		t.Fatalf("unexpected render: %q", r)
	}
}

func TestExplain_ErrorReturnsZeroBreakdown(t *testing.T) {
	got, err := Explain("1,-2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if diff := cmp.Diff(Breakdown{}, got); diff != "" {
		t.Fatalf("expected zero breakdown (-want +got):\n%s", diff)
	}
}

func TestRender_OnlyExcluded(t *testing.T) {
	got, err := Explain("5000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := got.Render(); r != "0" {
		t.Fatalf("unexpected render: %q", r)
	}
	if len(got.Included()) != 0 {
		t.Fatalf("expected no included term, got %+v", got.Included())
	}
}
