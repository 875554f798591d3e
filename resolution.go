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

import "dirpx.dev/dpayload/fieldpath"

// Resolution is the integration seam with the surrounding request-handling
// framework: the raw outcome of one resolver invocation before envelope
// normalization. This is the only place that shape is interpreted.
type Resolution struct {
	// Value is the resolver's outcome when it produced one: a domain value,
	// a message, an error tree — anything From can classify.
	Value any

	// Errors is the framework-level error list. When non-empty, Value is
	// ignored and every element is normalized per FromList.
	Errors []any
}

// Resolve rewrites a resolution into its envelope form: the returned wrapper
// carries the built Payload as its Value and an empty error list.
//
// Resolve never mutates its input; it is a pure function, safe to call
// concurrently from any number of resolver goroutines. Outbound field-name
// camelization is applied here — this is the point of transmission to the
// transport layer.
//
// The error return is the contract violation from FromList; frameworks are
// expected to let it crash the request, not to serialize it.
func Resolve(res Resolution) (Resolution, error) {
	var (
		p   Payload
		err error
	)
	if len(res.Errors) > 0 {
		p, err = FromList(res.Errors)
	} else {
		p, err = From(res.Value)
	}
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Value: p.CamelizedFields()}, nil
}

// CamelizedFields returns a copy of the payload with every message's
// Field/Key rewritten together from snake_case to lowerCamelCase. Codes,
// messages, templates and options are untouched; messages without a field
// stay without one. The receiver is not modified.
func (p Payload) CamelizedFields() Payload {
	if len(p.Messages) == 0 {
		return p
	}
	msgs := make([]*ValidationMessage, len(p.Messages))
	for i, m := range p.Messages {
		if m == nil || m.Field == "" {
			msgs[i] = m
			continue
		}
		msgs[i] = m.WithField(fieldpath.Camelize(m.Field))
	}
	cp := p
	cp.Messages = msgs
	return cp
}
