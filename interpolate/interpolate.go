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

package interpolate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Option is one named substitution variable attached to a validation
// failure. Options are carried as ordered slices, not maps: substitution is
// order-sensitive and the emitted wire shape preserves the order too.
type Option struct {
	Key   string
	Value any
}

// Render replaces placeholders in template with stringified option values.
//
// The pass is single and left-to-right over opts: for each option, every
// literal occurrence of "%{key}" in the running result is replaced with
// Stringify(value). Placeholders that match no option are left verbatim, and
// options that match no placeholder are ignored; neither is an error.
func Render(template string, opts []Option) string {
	msg := template
	for _, opt := range opts {
		msg = strings.ReplaceAll(msg, "%{"+opt.Key+"}", Stringify(opt.Value))
	}
	return msg
}

// RenderMap is Render for callers holding options as a plain map. Map
// iteration order is not stable in Go, so the pairs are applied in sorted
// key order; callers that need a specific substitution order supply ordered
// pairs to Render instead.
func RenderMap(template string, opts map[string]any) string {
	return Render(template, OptionsFromMap(opts))
}

// OptionsFromMap converts a plain options map into the ordered pair form,
// sorted by key for determinism.
func OptionsFromMap(opts map[string]any) []Option {
	if len(opts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Option, 0, len(keys))
	for _, k := range keys {
		out = append(out, Option{Key: k, Value: opts[k]})
	}
	return out
}

// Stringify converts one option value into its human-readable message form.
//
// The rules are structural, checked in order:
//
//   - nil → empty string;
//   - string → as-is;
//   - slice → elements stringified and joined with ",";
//   - fixed-size array (the tuple of the validation world, e.g. a numeric
//     range) → elements stringified and joined with "-";
//   - map with integer keys (an enumeration descriptor of ordinal → label
//     pairs) → labels joined with "," in ordinal order;
//   - everything else → default formatting via fmt.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice:
		return joinElements(rv, ",")
	case reflect.Array:
		return joinElements(rv, "-")
	case reflect.Map:
		if labels, ok := enumLabels(rv); ok {
			return strings.Join(labels, ",")
		}
	}

	return fmt.Sprint(rv.Interface())
}

func joinElements(rv reflect.Value, sep string) string {
	parts := make([]string, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts[i] = Stringify(rv.Index(i).Interface())
	}
	return strings.Join(parts, sep)
}

// enumLabels extracts the labels of an ordinal → label map in ordinal order.
// Maps with non-integer keys are not enumeration descriptors and report
// ok = false.
func enumLabels(rv reflect.Value) ([]string, bool) {
	type entry struct {
		ordinal int64
		label   string
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		var ord int64
		switch k.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ord = k.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			ord = int64(k.Uint())
		default:
			return nil, false
		}
		entries = append(entries, entry{ordinal: ord, label: Stringify(iter.Value().Interface())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ordinal < entries[j].ordinal })
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	return labels, true
}
