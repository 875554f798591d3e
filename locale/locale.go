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

package locale

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Tag is the canonical, validated identifier of a message-translation
// locale.
//
// Tags are a lowercase language code optionally followed by an underscore
// and a region code:
//
//   - "en"
//   - "en_us"
//   - "pt_br"
//   - "zh_cn"
//
// The tag selects one translation table in a Catalog. It is a process-wide,
// read-once-at-startup value: deployments pick the active tag when the
// parser is configured and never change it during request processing.
type Tag string

// MinLength and MaxLength define the allowed length range for a non-empty
// tag.
const (
	// MinLength is the bare two-letter language code ("en").
	MinLength = 2

	// MaxLength is a three-letter language code plus a two-letter region
	// ("yue_cn").
	MaxLength = 6
)

const (
	// tagFmt is the canonical regular expression used to validate tags.
	//
	// A 2-3 letter lowercase language code, optionally "_" plus a 2-letter
	// region code.
	//
	// Examples that match:
	//
	//	"en"
	//	"pt_br"
	//	"yue_cn"
	//
	// Examples that DO NOT match:
	//
	//	"EN" (uppercase)
	//	"en-US" (hyphen; Normalize fixes this one)
	//	"english" (too long)
	//	"en_" (empty region)
	//
	// NOTE: empty string ("") is treated separately as "untranslated" and
	// does not go through this regexp.
	tagFmt = `^[a-z]{2,3}(_[a-z]{2})?$`
)

var (
	// tagRe is the compiled regexp for the above pattern.
	tagRe = regexp.MustCompile(tagFmt)
)

var (
	// ErrTagInvalidFormat is returned when a tag does not conform to the
	// expected format.
	ErrTagInvalidFormat = errors.New("dpayload: invalid locale tag format")
	// ErrTagInvalidLength is returned when a tag is too short or too long.
	ErrTagInvalidLength = errors.New("dpayload: invalid locale tag length")
)

// Ensure Tag implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Tag)(nil)
	_ encoding.TextUnmarshaler = (*Tag)(nil)
)

// Untranslated is the zero-value tag. It means "no locale selected": message
// templates pass through as the validation layer produced them.
var Untranslated Tag = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical tag form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "-" to "_" (because BCP-47 tags use hyphens: "pt-BR")
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Tag value.
//
// Parse also accepts the empty string and returns locale.Untranslated
// without error, which is what makes the locale an optional part of parser
// configuration.
func Parse(s string) (Tag, error) {
	s = Normalize(s)
	if s == "" {
		return Untranslated, nil
	}
	if err := validate(s); err != nil {
		return Untranslated, err
	}
	return Tag(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level tag constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Tag {
	tag, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if tag == Untranslated {
		panic("dpayload: empty locale tag in MustParse")
	}
	return tag
}

// Validate checks whether the provided Tag is in canonical form.
//
// The empty tag ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(tag Tag) error {
	if tag == Untranslated {
		return nil
	}
	return validate(string(tag))
}

// String returns the canonical string representation of the tag.
func (tag Tag) String() string {
	return string(tag)
}

// Language returns the language code of the tag: "pt_br" → "pt". The empty
// tag has no language.
func (tag Tag) Language() Tag {
	s := string(tag)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return Tag(s[:i])
	}
	return tag
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty tag as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (tag Tag) MarshalText() ([]byte, error) {
	if err := Validate(tag); err != nil {
		return nil, err
	}
	if tag == Untranslated {
		return []byte{}, nil
	}
	return []byte(tag), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce locale.Untranslated.
func (tag *Tag) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*tag = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrTagInvalidLength
	}
	if !tagRe.MatchString(s) {
		return ErrTagInvalidFormat
	}
	return nil
}
