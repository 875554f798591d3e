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
	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/code"
	"dirpx.dev/dpayload/fieldpath"
	"dirpx.dev/dpayload/interpolate"
)

// Translator rewrites one freshly built message before it is emitted. It is
// the hook for deployments that localize message texts; it runs after
// classification and interpolation, so Code and Options are already final.
type Translator func(*dpayload.ValidationMessage) *dpayload.ValidationMessage

// Parser flattens changesets into validation messages. A Parser is immutable
// after NewParser and safe for concurrent use; build one at configuration
// time and share it.
type Parser struct {
	constructor fieldpath.Constructor
	translate   Translator
}

// Option configures a Parser under construction.
type Option func(*Parser)

// WithConstructor selects the field-path strategy. The default is
// fieldpath.Default (dot syntax).
func WithConstructor(c fieldpath.Constructor) Option {
	return func(p *Parser) {
		if c != nil {
			p.constructor = c
		}
	}
}

// WithTranslator installs a message translation hook.
func WithTranslator(t Translator) Option {
	return func(p *Parser) {
		p.translate = t
	}
}

// NewParser builds a Parser with the given options applied in order.
func NewParser(opts ...Option) *Parser {
	p := &Parser{constructor: fieldpath.Default}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// ExtractMessages flattens cs with the default parser: dot-syntax field
// paths, no translation.
func ExtractMessages(cs *Changeset) []*dpayload.ValidationMessage {
	return defaultParser.ExtractMessages(cs)
}

// ExtractMessages flattens the tree into one message per leaf failure.
//
// The walk is depth-first, visiting fields in insertion order and collection
// members in element order, so the output order mirrors the input order —
// clients rely on it. Replaced sub-trees are discarded before traversal:
// they describe association entries the caller swapped out rather than
// validated, and their failures must not surface.
func (p *Parser) ExtractMessages(cs *Changeset) []*dpayload.ValidationMessage {
	if cs == nil {
		return nil
	}
	var out []*dpayload.ValidationMessage
	p.walk(cs, "", &out)
	return out
}

// Bind couples the parser with a tree so the pair can travel as one outcome
// value. The returned dpayload.MessageTree flattens with this parser's
// strategy instead of the default one:
//
//	payload, err := dpayload.From(parser.Bind(cs))
func (p *Parser) Bind(cs *Changeset) dpayload.MessageTree {
	return boundTree{parser: p, cs: cs}
}

type boundTree struct {
	parser *Parser
	cs     *Changeset
}

func (b boundTree) Valid() bool {
	return b.cs.Valid()
}

func (b boundTree) Messages() []*dpayload.ValidationMessage {
	return b.parser.ExtractMessages(b.cs)
}

var _ dpayload.MessageTree = boundTree{}

// walk emits messages for every descriptor of cs. parent is the composed
// path naming cs itself; it is empty at the root, where field names stand
// alone.
func (p *Parser) walk(cs *Changeset, parent string, out *[]*dpayload.ValidationMessage) {
	for pair := cs.errors.Oldest(); pair != nil; pair = pair.Next() {
		p.flattenField(parent, pair.Key, fieldpath.Options{}, pair.Value, out)
	}
}

// flattenField handles all descriptors recorded for one field. opts carries
// the collection index when the field belongs to a collection member.
func (p *Parser) flattenField(parent, field string, opts fieldpath.Options, descs []Descriptor, out *[]*dpayload.ValidationMessage) {
	path := p.compose(parent, field, opts)
	for _, d := range descs {
		switch v := d.(type) {
		case Failure:
			*out = append(*out, p.message(path, v))

		case *Changeset:
			if v == nil || v.action == ActionReplace {
				continue
			}
			p.walk(v, path, out)

		case Collection:
			if v == nil {
				// nil where a collection was expected: classify through the
				// leaf path rather than skipping silently
				*out = append(*out, p.message(path, nilCollectionFailure()))
				continue
			}
			members := make([]*Changeset, 0, len(v))
			for _, m := range v {
				if m != nil && m.action == ActionReplace {
					continue
				}
				members = append(members, m)
			}
			for i, member := range members {
				if member == nil {
					continue
				}
				for pair := member.errors.Oldest(); pair != nil; pair = pair.Next() {
					p.flattenField(path, pair.Key, fieldpath.Index(i), pair.Value, out)
				}
			}
		}
	}
}

// compose builds the path for field under parent. At the root the path is
// the field itself — the constructor contract guarantees identity there, so
// no call is needed.
func (p *Parser) compose(parent, field string, opts fieldpath.Options) string {
	if parent == "" {
		return field
	}
	return p.constructor.Build(parent, field, opts)
}

// message converts one leaf failure at its final path into a normalized
// message: classification, interpolation, option emission, then the
// translation hook.
func (p *Parser) message(path string, f Failure) *dpayload.ValidationMessage {
	template := f.Template
	if template == "" {
		template = dpayload.DefaultTemplate
	}

	lookup := make(map[string]any, len(f.Options))
	for _, o := range f.Options {
		lookup[o.Key] = o.Value
	}

	m := &dpayload.ValidationMessage{
		Code:     code.Classify(template, lookup),
		Template: template,
		Message:  interpolate.Render(template, f.Options),
		Options:  emittedPairs(f.Options),
	}
	m = m.WithField(path)
	if p.translate != nil {
		m = p.translate(m)
	}
	return m
}

// reservedOptionKeys are classification metadata, not substitution
// variables; they never appear in a message's emitted option pairs.
// Interpolation still sees them, so a template may reference any key.
var reservedOptionKeys = map[string]struct{}{
	"validation":      {},
	"kind":            {},
	"type":            {},
	"code":            {},
	"constraint":      {},
	"constraint_name": {},
}

func emittedPairs(opts []interpolate.Option) []dpayload.MessageOption {
	pairs := make([]dpayload.MessageOption, 0, len(opts))
	for _, o := range opts {
		if _, ok := reservedOptionKeys[o.Key]; ok {
			continue
		}
		pairs = append(pairs, dpayload.MessageOption{
			Key:   o.Key,
			Value: interpolate.Stringify(o.Value),
		})
	}
	return pairs
}

// nilCollectionFailure is the leaf form of "a collection was expected and
// nil was given": the default template with a type tag, which classifies as
// an association failure.
func nilCollectionFailure() Failure {
	return Failure{
		Template: dpayload.DefaultTemplate,
		Options:  []interpolate.Option{{Key: "type", Value: "collection"}},
	}
}
