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

package dpayload

import (
	"fmt"

	"dirpx.dev/dpayload/code"
)

// ValidationMessage is the canonical normalized validation error unit.
//
// Every failure the library touches — whether it came out of a nested error
// tree, a plain string, or a hand-built value — converges to this shape
// before it reaches a client. The JSON form
//
//	{field, key, code, template, message, options: [{key, value}]}
//
// is a stable wire contract; fields are never renamed or reshaped.
//
// All mutation helpers (WithX) return a shallow copy, so messages can be
// safely shared and rewritten in a functional style.
type ValidationMessage struct {
	// Field names the offending input location. It may be a simple name
	// ("title"), a dotted/indexed path ("tags.0.name"), or a custom-delimited
	// path when an alternate fieldpath.Constructor is configured. Empty means
	// no field applies (message-level failures).
	Field string `json:"field"`

	// Key is the legacy alias of Field, kept for wire compatibility with
	// older clients. It is never set independently: WithField writes both in
	// lockstep. Do not assign it directly.
	Key string `json:"key"`

	// Code is the stable machine-readable classification, e.g. "required",
	// "min", "unique". Always present; "unknown" is the universal fallback.
	// Custom caller codes travel verbatim.
	Code code.Code `json:"code"`

	// Template is the unsubstituted message pattern with %{name}-style
	// placeholders, e.g. "should be at least %{count} character(s)".
	Template string `json:"template"`

	// Message is the fully interpolated human-readable string built from
	// Template and Options.
	Message string `json:"message"`

	// Options holds the substitution variables used to build Message from
	// Template, values pre-stringified, in substitution order. Construction
	// through this package always leaves it non-nil, so the wire shows []
	// rather than null when there were no substitutions.
	Options []MessageOption `json:"options"`
}

// MessageOption is one emitted {key, value} substitution pair. The value is
// stringified at construction time (see interpolate.Stringify); clients never
// receive raw typed values.
type MessageOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DefaultTemplate is the template and message a failure falls back to when
// the validation layer supplied none.
const DefaultTemplate = "is invalid"

// NewMessage constructs a ValidationMessage with Message and Template both
// set to template, then applies the provided options in order.
//
// Usage:
//
//	return dpayload.NewMessage(code.Required, "can't be blank",
//	    dpayload.WithFieldOption("title"),
//	)
//
// Messages coming out of a validation-error tree are built by the changeset
// parser instead, which interpolates Message from Template; NewMessage is for
// hand-built errors where the two coincide.
func NewMessage(c code.Code, template string, opts ...Option) *ValidationMessage {
	if template == "" {
		template = DefaultTemplate
	}
	m := &ValidationMessage{
		Code:     c,
		Template: template,
		Message:  template,
		Options:  []MessageOption{},
	}
	for _, opt := range opts {
		m = opt(m)
	}
	return m
}

// Error implements the built-in error interface, so a single message can
// travel through ordinary Go error returns and be recovered by the payload
// builder on the other side.
//
// The format is:
//
//	<code>: <message>
//
// or, when Field is present:
//
//	<code>:<field>: <message>
func (m *ValidationMessage) Error() string {
	if m == nil {
		return "<nil>"
	}
	if m.Field != "" {
		return fmt.Sprintf("%s:%s: %s", m.Code, m.Field, m.Message)
	}
	return fmt.Sprintf("%s: %s", m.Code, m.Message)
}

// ErrorCode returns the message code as a plain string. Together with Error
// it lets a *ValidationMessage cross transport boundaries that probe for
// coded errors without this package importing them.
func (m *ValidationMessage) ErrorCode() string {
	return string(m.Code)
}

// ErrorField returns the field path the failure applies to. Empty for
// messages that do not concern a specific input location.
func (m *ValidationMessage) ErrorField() string {
	return m.Field
}

// WithField returns a shallow copy of m with Field set and Key mirrored to
// the same value. This is the only supported way to change either of them.
func (m *ValidationMessage) WithField(field string) *ValidationMessage {
	cp := *m
	cp.Field = field
	cp.Key = field
	return &cp
}

// WithCode returns a shallow copy of m with a replaced code.
func (m *ValidationMessage) WithCode(c code.Code) *ValidationMessage {
	cp := *m
	cp.Code = c
	return &cp
}

// WithMessage returns a shallow copy of m with a replaced human message.
// Template and Options are kept, so the substitution provenance survives
// message rewording (translation, redaction).
func (m *ValidationMessage) WithMessage(msg string) *ValidationMessage {
	cp := *m
	cp.Message = msg
	return &cp
}

// WithOptions returns a shallow copy of m with the given substitution pairs.
// The slice is copied to preserve immutability of the original.
func (m *ValidationMessage) WithOptions(pairs ...MessageOption) *ValidationMessage {
	cp := *m
	cp.Options = make([]MessageOption, len(pairs))
	copy(cp.Options, pairs)
	return &cp
}
