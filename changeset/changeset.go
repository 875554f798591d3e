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
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/interpolate"
)

// Action describes what the validation layer intended to do with the change
// that produced a (sub-)tree. Only ActionReplace carries semantics here: a
// replaced sub-tree is discarded during flattening.
type Action string

const (
	// ActionInsert marks a change that creates its entity.
	ActionInsert Action = "insert"

	// ActionUpdate marks a change that updates its entity.
	ActionUpdate Action = "update"

	// ActionDelete marks a change that deletes its entity.
	ActionDelete Action = "delete"

	// ActionReplace marks an association entry that was swapped out rather
	// than validated. Its errors never reach the flattened output.
	ActionReplace Action = "replace"
)

// Descriptor is one entry in a field's failure list. The set of
// implementations is closed: Failure (leaf), *Changeset (sub-object) and
// Collection (per-member sub-trees).
type Descriptor interface {
	isDescriptor()
}

// Failure is a leaf failure: the raw template and the options the validator
// attached to it. Options carry both substitution variables (count, fields)
// and classification tags (validation, kind, type); the parser separates the
// two when it emits a message.
type Failure struct {
	Template string
	Options  []interpolate.Option
}

func (Failure) isDescriptor() {}

// Collection is the per-member error form of a has-many association: one
// changeset per collection element, in element order, nil (or an empty
// changeset) for members without errors.
//
// A nil Collection is distinct from an empty one. It records "a collection
// was expected and nil was given" and flattens through the leaf path into an
// association failure instead of being skipped.
type Collection []*Changeset

func (Collection) isDescriptor() {}

func (*Changeset) isDescriptor() {}

// Changeset is a nested validation-error tree: an ordered mapping from field
// name to failure descriptors, plus the validity flag and the action of the
// change that produced it.
//
// The zero value is not usable; construct with New. Builder methods mutate
// the receiver and return it for chaining:
//
//	cs := changeset.New().
//	    AddError("title", "has invalid format",
//	        interpolate.Option{Key: "validation", Value: "format"}).
//	    PutChange("author", author)
type Changeset struct {
	action Action
	valid  bool
	errors *orderedmap.OrderedMap[string, []Descriptor]
}

// New returns an empty, valid changeset.
func New() *Changeset {
	return &Changeset{
		valid:  true,
		errors: orderedmap.New[string, []Descriptor](),
	}
}

// AddError appends a leaf failure for field and marks the changeset invalid.
// Field order is first-insertion order; repeated fields append to the
// existing list.
func (c *Changeset) AddError(field, template string, opts ...interpolate.Option) *Changeset {
	c.valid = false
	return c.add(field, Failure{Template: template, Options: opts})
}

// PutChange attaches a nested sub-object tree under field. An invalid child
// invalidates this changeset too, unless the child is marked replaced — a
// replaced sub-tree is dead weight that the parser will drop.
func (c *Changeset) PutChange(field string, child *Changeset) *Changeset {
	if child != nil && child.action != ActionReplace && !child.valid {
		c.valid = false
	}
	return c.add(field, child)
}

// PutCollection attaches per-member error trees under field, one entry per
// collection element in element order. Pass nil members (or empty
// changesets) for elements without errors. Passing a nil Collection records
// the "nil where a collection was expected" failure instead.
func (c *Changeset) PutCollection(field string, members Collection) *Changeset {
	if members == nil {
		// The parser turns a nil collection into a failure on the field, so
		// the tree is no longer clean.
		c.valid = false
	}
	for _, m := range members {
		if m != nil && m.action != ActionReplace && !m.valid {
			c.valid = false
			break
		}
	}
	return c.add(field, members)
}

// SetAction records the action of the change that produced this tree.
func (c *Changeset) SetAction(a Action) *Changeset {
	c.action = a
	return c
}

func (c *Changeset) add(field string, d Descriptor) *Changeset {
	existing, _ := c.errors.Get(field)
	c.errors.Set(field, append(existing, d))
	return c
}

// Action returns the recorded action, if any.
func (c *Changeset) Action() Action {
	return c.action
}

// Valid reports whether the change passed validation. It also satisfies the
// dpayload.MessageTree interface: valid trees travel through envelopes as
// successful results.
func (c *Changeset) Valid() bool {
	return c.valid
}

// Fields returns the field names in insertion order.
func (c *Changeset) Fields() []string {
	out := make([]string, 0, c.errors.Len())
	for pair := c.errors.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Descriptors returns the failure descriptors recorded for field, in
// insertion order, or nil when the field has none.
func (c *Changeset) Descriptors(field string) []Descriptor {
	descs, _ := c.errors.Get(field)
	return descs
}

// Messages flattens the tree with the default parser (dot-syntax paths, no
// translator). Deployments with a custom field-path strategy use
// Parser.ExtractMessages or Parser.Bind instead.
func (c *Changeset) Messages() []*dpayload.ValidationMessage {
	return defaultParser.ExtractMessages(c)
}

var _ dpayload.MessageTree = (*Changeset)(nil)
