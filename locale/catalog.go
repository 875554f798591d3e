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
	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/changeset"
	"dirpx.dev/dpayload/interpolate"
)

// Table maps message templates to their translated form for one locale. Keys
// are the untranslated templates exactly as the validation layer produces
// them ("can't be blank"); values may reference the same %{name} placeholders
// as the original.
type Table map[string]string

// Catalog holds the translation tables of a deployment, keyed by locale tag.
//
// A Catalog is plain data: build it once at startup (typically from the
// settings file) and share it freely; nothing here mutates it afterwards.
type Catalog map[Tag]Table

// Lookup resolves the translated template for tag. Resolution is exact tag
// first, then the bare language ("pt_br" falls back to "pt"). The second
// return is false when neither table has the template.
func (c Catalog) Lookup(tag Tag, template string) (string, bool) {
	if t, ok := c[tag][template]; ok {
		return t, true
	}
	if lang := tag.Language(); lang != tag {
		if t, ok := c[lang][template]; ok {
			return t, true
		}
	}
	return "", false
}

// Translator builds the parser hook that rewrites message texts into tag's
// locale.
//
// The hook re-renders the translated template with the message's own emitted
// option pairs, so placeholders like %{count} survive translation. Only
// Message changes: Template keeps the untranslated pattern (it doubles as
// the stable lookup key for clients), and Field, Code and Options are never
// touched. Messages without a catalog entry pass through unchanged.
//
// An untranslated tag, or a tag the catalog has no tables for, yields a nil
// hook, which changeset.WithTranslator treats as "no translation".
func (c Catalog) Translator(tag Tag) changeset.Translator {
	if tag == Untranslated {
		return nil
	}
	if _, ok := c[tag]; !ok {
		if _, ok := c[tag.Language()]; !ok {
			return nil
		}
	}
	return func(m *dpayload.ValidationMessage) *dpayload.ValidationMessage {
		if m == nil {
			return m
		}
		translated, ok := c.Lookup(tag, m.Template)
		if !ok {
			return m
		}
		return m.WithMessage(interpolate.Render(translated, renderPairs(m.Options)))
	}
}

// renderPairs converts the emitted wire pairs back into interpolation
// options. Values were stringified at extraction time, which is exactly the
// form substitution needs.
func renderPairs(opts []dpayload.MessageOption) []interpolate.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]interpolate.Option, len(opts))
	for i, o := range opts {
		out[i] = interpolate.Option{Key: o.Key, Value: o.Value}
	}
	return out
}
