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

package fieldpath

import (
	"strconv"
	"strings"
	"unicode"
)

// Options carries the optional parts of one path-building step.
type Options struct {
	// Index is the zero-based position of the collection member the child
	// field belongs to; nil when the child is not a collection member.
	Index *int
}

// Index returns an Options value carrying a collection index.
func Index(i int) Options {
	return Options{Index: &i}
}

// Constructor is the pluggable path-building strategy.
//
// Implementations must be pure and safe for concurrent use: one Constructor
// is selected at configuration time and shared by every request thereafter.
//
// The contract, for any parent path already built by the same strategy:
//
//   - Build(parent, "", opts)  → parent unchanged (leaf reached);
//   - Build(parent, field, Index(i)) → parent, index and field composed;
//   - Build(parent, field, Options{}) → parent and field composed.
type Constructor interface {
	Build(parent, field string, opts Options) string
}

// ConstructorFunc adapts an ordinary function to the Constructor interface.
type ConstructorFunc func(parent, field string, opts Options) string

// Build implements Constructor.
func (f ConstructorFunc) Build(parent, field string, opts Options) string {
	return f(parent, field, opts)
}

// Default is the reference dot-syntax strategy:
//
//	Build("user", "", Options{})      = "user"
//	Build("tags", "name", Index(0))   = "tags.0.name"
//	Build("author", "name", Options{}) = "author.name"
var Default Constructor = Delimited(".")

// Delimited returns a Constructor with the Default composition rules but a
// custom separator, for deployments whose clients expect a different path
// syntax (for example "@" or "›").
func Delimited(sep string) Constructor {
	return ConstructorFunc(func(parent, field string, opts Options) string {
		if field == "" {
			return parent
		}
		if parent == "" {
			return field
		}
		if opts.Index != nil {
			return parent + sep + strconv.Itoa(*opts.Index) + sep + field
		}
		return parent + sep + field
	})
}

// Camelize converts a snake_case field identifier to lowerCamelCase:
// "title_lang" becomes "titleLang". Path separators are untouched, so a
// composed path camelizes per segment: "tags.0.long_name" becomes
// "tags.0.longName". The empty string stays empty, preserving "no field" on
// messages that have none.
func Camelize(s string) string {
	if s == "" || !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
