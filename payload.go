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
	"errors"
	"fmt"

	"dirpx.dev/dpayload/code"
)

// Payload is the uniform mutation-outcome envelope.
//
// Exactly one side of it is ever populated:
//
//	Successful == true  ⇔ Messages is empty (Result carries the outcome);
//	Successful == false ⇔ Result is nil    (Messages carry the failures).
//
// Construction goes through Success, Errors, From or Resolve, which maintain
// the invariant; the zero value is not a meaningful envelope.
type Payload struct {
	Successful bool                 `json:"successful"`
	Messages   []*ValidationMessage `json:"messages"`
	Result     any                  `json:"result,omitempty"`
}

// Success wraps a domain value into a successful envelope.
func Success(result any) Payload {
	return Payload{
		Successful: true,
		Messages:   []*ValidationMessage{},
		Result:     result,
	}
}

// Errors wraps validation messages into a failure envelope. Callers supply
// at least one message; an empty failure envelope has no defined meaning.
func Errors(msgs ...*ValidationMessage) Payload {
	if msgs == nil {
		msgs = []*ValidationMessage{}
	}
	return Payload{
		Successful: false,
		Messages:   msgs,
	}
}

// MessageTree is implemented by nested validation-error-tree values that can
// flatten themselves into messages. The changeset package provides the
// canonical implementation; the interface exists so this package never
// depends on a concrete tree representation.
type MessageTree interface {
	// Valid reports whether the underlying change passed validation. Valid
	// trees are treated as successful outcomes and travel through the
	// envelope as results, errors and all.
	Valid() bool

	// Messages flattens the tree into normalized messages, in tree order.
	Messages() []*ValidationMessage
}

// InvalidMessageKindError is the library's only contract violation: a value
// inside an error list matched none of the recognized message shapes. It
// indicates a resolver returning unsupported values — a bug in the caller,
// not a runtime condition — so it is meant to surface in logs and crash
// reports, never in a client-facing envelope.
type InvalidMessageKindError struct {
	// Value is the offending element, kept for diagnostics.
	Value any
}

// Error implements the built-in error interface.
func (e *InvalidMessageKindError) Error() string {
	return fmt.Sprintf("dpayload: unexpected validation message kind: %#v", e.Value)
}

// From classifies an arbitrary resolver outcome and builds the envelope.
//
// The recognized shapes, tried in order:
//
//  1. *ValidationMessage (or a plain ValidationMessage value) → failure
//     envelope with that single message.
//  2. An error wrapping a *ValidationMessage (errors.As) → same.
//  3. Any other error, or a plain string → failure envelope with one generic
//     message: code "unknown", message and template set to the text.
//  4. A code.Code token → its string form via rule 3.
//  5. A list ([]*ValidationMessage, []string, []error or []any) → every
//     element normalized per the rules above; an element of any other kind
//     aborts with *InvalidMessageKindError.
//  6. A MessageTree that is not Valid → flattened into a failure envelope.
//  7. Anything else — including a Valid MessageTree — → success envelope
//     with the outcome as Result.
//
// The returned payload's field casing is untouched; Resolve applies the
// outbound camelization at the transport seam.
func From(outcome any) (Payload, error) {
	switch v := outcome.(type) {
	case *ValidationMessage:
		return Errors(v), nil
	case ValidationMessage:
		return Errors(&v), nil
	case error:
		var vm *ValidationMessage
		if errors.As(v, &vm) {
			return Errors(vm), nil
		}
		return Errors(generic(v.Error())), nil
	case string:
		return Errors(generic(v)), nil
	case code.Code:
		return Errors(generic(v.String())), nil
	case []*ValidationMessage:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return FromList(out)
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return FromList(out)
	case []error:
		out := make([]any, len(v))
		for i, err := range v {
			out[i] = err
		}
		return FromList(out)
	case []code.Code:
		out := make([]any, len(v))
		for i, c := range v {
			out[i] = c
		}
		return FromList(out)
	case []any:
		return FromList(v)
	case MessageTree:
		if !v.Valid() {
			return Errors(v.Messages()...), nil
		}
		return Success(outcome), nil
	}
	return Success(outcome), nil
}

// FromList normalizes a list of outcome elements into one failure envelope.
// ValidationMessage elements pass through; strings, code.Code tokens and
// errors become generic messages per From's rules 2–4; an element of any
// other kind is a contract violation and returns *InvalidMessageKindError
// with a zero payload.
func FromList(outcomes []any) (Payload, error) {
	msgs := make([]*ValidationMessage, 0, len(outcomes))
	for _, el := range outcomes {
		switch v := el.(type) {
		case *ValidationMessage:
			msgs = append(msgs, v)
		case ValidationMessage:
			msgs = append(msgs, &v)
		case error:
			var vm *ValidationMessage
			if errors.As(v, &vm) {
				msgs = append(msgs, vm)
				continue
			}
			msgs = append(msgs, generic(v.Error()))
		case string:
			msgs = append(msgs, generic(v))
		case code.Code:
			msgs = append(msgs, generic(v.String()))
		default:
			return Payload{}, &InvalidMessageKindError{Value: el}
		}
	}
	return Errors(msgs...), nil
}

// generic builds the fallback message used for plain strings and foreign
// errors: code "unknown", message and template both set to the text.
func generic(text string) *ValidationMessage {
	return NewMessage(code.Unknown, text)
}
