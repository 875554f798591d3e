/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

import (
	"encoding"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  required  ", "required"},
		{"to lower", "FoRmAt", "format"},
		{"dash to underscore", "no-assoc", "no_assoc"},
		{"mixed", "  LESS-THAN  ", "less_than"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "required", Code("required")},
		{"with spaces", "  no_assoc  ", Code("no_assoc")},
		{"upper", "UNIQUE", Code("unique")},
		{"dash", "less-than", Code("less_than")},
		{"min length", "min", Code("min")},
		{"long comparison code", "greater_than_or_equal_to", Code("greater_than_or_equal_to")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1unique"},
		{"contains dash after normalize", "x-"},
		{"uppercase with dash giving too short", "-"},
		{"too long", "a_very_long_code_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		Required,
		Format,
		LessThanOrEqualTo,
		NoAssoc,
		"min",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",         // empty
		"is",       // too short
		"Required", // uppercase
		"no-assoc", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestCatalogIsCanonical(t *testing.T) {
	catalog := []Code{
		Cast, Required, Format, Inclusion, Exclusion, Subset, Acceptance,
		Confirmation, Length, Min, Max, LessThan, LessThanOrEqualTo,
		GreaterThan, GreaterThanOrEqualTo, EqualTo, Unique, Foreign, NoAssoc,
		Association, Unknown,
	}
	for _, c := range catalog {
		if err := Validate(c); err != nil {
			t.Fatalf("catalog code %q must be canonical: %v", c, err)
		}
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("INVALID CODE ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("no_assoc")
	if c != Code("no_assoc") {
		t.Fatalf("MustParse(valid) = %q, want %q", c, "no_assoc")
	}
}

func TestCode_String(t *testing.T) {
	c := Code("required")
	if c.String() != "required" {
		t.Fatalf("String() = %q, want %q", c.String(), "required")
	}
}

func TestCode_MarshalText(t *testing.T) {
	c := Code("required")
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "required" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "required")
	}

	// custom caller codes travel verbatim
	custom := Code("Custom-Code")
	text, err = custom.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() on custom code unexpected error: %v", err)
	}
	if string(text) != "Custom-Code" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "Custom-Code")
	}

	// the empty code is the one thing that must never reach the wire
	if _, err := Empty.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on empty code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  no_assoc  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != Code("no_assoc") {
		t.Fatalf("UnmarshalText() = %q, want %q", c, "no_assoc")
	}

	// custom codes round-trip verbatim, no normalization
	var custom Code
	if err := custom.UnmarshalText([]byte("Custom-Code")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if custom != Code("Custom-Code") {
		t.Fatalf("UnmarshalText() = %q, want %q", custom, "Custom-Code")
	}

	// empty
	var bad Code
	if err := bad.UnmarshalText([]byte("   ")); err == nil {
		t.Fatalf("UnmarshalText() expected error for empty input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	// sanity: codeFmt should enforce 3..64
	if MinLength != 3 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	// check a 64-char valid code: first char letter, rest letters
	long := "a"
	for len(long) < MaxLength {
		long += "a"
	}

	if len(long) != MaxLength {
		t.Fatalf("constructed long code has len=%d, want %d", len(long), MaxLength)
	}

	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	// now 65 chars
	longer := long + "a"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
