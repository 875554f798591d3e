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

package changeset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"dirpx.dev/dpayload/interpolate"
)

// ErrMalformedTree is returned when a raw error tree cannot be decoded into
// a Changeset.
var ErrMalformedTree = errors.New("dpayload: malformed error tree")

// rawChangeset is the decoded envelope of one (sub-)tree.
type rawChangeset struct {
	Action string         `mapstructure:"action"`
	Valid  *bool          `mapstructure:"valid"`
	Errors map[string]any `mapstructure:"errors"`
}

// rawFailure is the decoded form of one leaf failure descriptor.
type rawFailure struct {
	Template string         `mapstructure:"template"`
	Options  map[string]any `mapstructure:"options"`
}

// Decode builds a Changeset from a raw document as produced by json or yaml
// unmarshalling, for validators running out of process. The accepted shape,
// per field of the "errors" object:
//
//   - a list of descriptors, or a single descriptor for convenience;
//   - a leaf descriptor is an object with "template" (and optional
//     "options"), or a bare string standing for its template;
//   - a sub-object descriptor is an object without "template", carrying its
//     own "errors"/"valid"/"action";
//   - a collection descriptor is a nested array of sub-objects, null
//     entries marking members without errors;
//   - a null field value records "nil where a collection was expected".
//
// When the "valid" flag is absent it is derived from the decoded content.
// Raw objects carry no field order, so fields decode in sorted name order;
// producers that need a specific output order build trees with New/AddError
// instead.
func Decode(raw map[string]any) (*Changeset, error) {
	return decodeTree(raw, "")
}

func decodeTree(raw map[string]any, at string) (*Changeset, error) {
	var rc rawChangeset
	if err := mapstructure.Decode(raw, &rc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedTree, describeAt(at), err)
	}

	cs := New()
	if rc.Action != "" {
		cs.SetAction(Action(strings.ToLower(rc.Action)))
	}

	fields := make([]string, 0, len(rc.Errors))
	for f := range rc.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if err := decodeField(cs, field, rc.Errors[field], childAt(at, field)); err != nil {
			return nil, err
		}
	}

	// The explicit flag wins over the derived one.
	if rc.Valid != nil {
		cs.valid = *rc.Valid
	}
	return cs, nil
}

// decodeField decodes one field's descriptor list. A list value is always
// the descriptor list itself; a collection travels as a nested array inside
// it. Any other value is a single descriptor given without the list.
func decodeField(cs *Changeset, field string, v any, at string) error {
	if list, ok := v.([]any); ok {
		for _, el := range list {
			if err := decodeDescriptor(cs, field, el, at); err != nil {
				return err
			}
		}
		return nil
	}
	return decodeDescriptor(cs, field, v, at)
}

func decodeDescriptor(cs *Changeset, field string, el any, at string) error {
	switch d := el.(type) {
	case nil:
		cs.PutCollection(field, nil)
		return nil

	case string:
		cs.AddError(field, d)
		return nil

	case map[string]any:
		if _, ok := d["template"]; ok {
			var rf rawFailure
			if err := mapstructure.Decode(d, &rf); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrMalformedTree, describeAt(at), err)
			}
			cs.AddError(field, rf.Template, interpolate.OptionsFromMap(rf.Options)...)
			return nil
		}
		child, err := decodeTree(d, at)
		if err != nil {
			return err
		}
		cs.PutChange(field, child)
		return nil

	case []any:
		members := make(Collection, 0, len(d))
		for i, m := range d {
			switch mv := m.(type) {
			case nil:
				members = append(members, nil)
			case map[string]any:
				child, err := decodeTree(mv, fmt.Sprintf("%s[%d]", at, i))
				if err != nil {
					return err
				}
				members = append(members, child)
			default:
				return fmt.Errorf("%w: %s[%d]: collection member of unsupported type %T", ErrMalformedTree, describeAt(at), i, m)
			}
		}
		cs.PutCollection(field, members)
		return nil
	}

	return fmt.Errorf("%w: %s: descriptor of unsupported type %T", ErrMalformedTree, describeAt(at), el)
}

func childAt(at, field string) string {
	if at == "" {
		return field
	}
	return at + "." + field
}

func describeAt(at string) string {
	if at == "" {
		return "root"
	}
	return "field " + at
}
