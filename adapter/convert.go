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

// Package adapter bridges validation messages and the transport-facing
// contracts in dirpx.dev/dpayload/apis. Transport writers (httpx, grpcx)
// use it to turn messages into details, descriptors, and views without
// the core package ever importing the transport side.
package adapter

import (
	"errors"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
)

// ToDetail converts a single validation message into a transport detail.
// Substitution options are flattened into a plain map; clients rebuild
// localized messages from Code, the raw template is not carried here.
func ToDetail(m *dpayload.ValidationMessage) apis.Detail {
	if m == nil {
		return apis.Detail{}
	}
	d := apis.Detail{
		Field:   m.Field,
		Code:    string(m.Code),
		Message: m.Message,
	}
	if len(m.Options) > 0 {
		d.Options = make(map[string]string, len(m.Options))
		for _, o := range m.Options {
			d.Options[o.Key] = o.Value
		}
	}
	return d
}

// ToDetails converts a message list into transport details, preserving
// order. Nil messages are skipped.
func ToDetails(msgs []*dpayload.ValidationMessage) []apis.Detail {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]apis.Detail, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, ToDetail(m))
	}
	return out
}

// ToDescriptor converts a validation message together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical code/field and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(m *dpayload.ValidationMessage, st apis.Status) apis.ErrorDescriptor {
	if m == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(m.Code),
		Field:      m.Field,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    m.Message,
	}
}

// ViewOf converts an arbitrary error into a public ErrorView by probing the
// apis error contracts. This function performs no automatic redaction or
// filtering; it exposes exactly what the error instance provides. It is up
// to the caller or API layer to decide whether to redact sensitive fields.
//
// Probe order:
//
//  1. apis.ViewProvider — the error renders itself, taken verbatim;
//  2. apis.CodedError / FieldedError / DetailedError — assembled piecewise;
//  3. otherwise the view carries code.Unknown and the error text.
func ViewOf(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}

	v := apis.ErrorView{
		Code:    string(code.Unknown),
		Message: err.Error(),
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		v.Code = ce.ErrorCode()
	}
	var fe apis.FieldedError
	if errors.As(err, &fe) {
		v.Field = fe.ErrorField()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	// A validation message renders its human message, not the error string.
	var vm *dpayload.ValidationMessage
	if errors.As(err, &vm) && vm != nil {
		v.Message = vm.Message
	}
	return v
}
