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

package apis

// ErrorDescriptor is a flat, transport-friendly description of a known
// (code, field) pair and how it should surface on the wire.
//
// This type intentionally uses strings (not the internal Code value type) so
// that it can live in the public "apis" layer and be used by adapters (HTTP,
// gRPC), configuration loaders and user-defined registries. The mapper
// accepts descriptors directly when building its rule set.
//
// Implementations may choose to store a richer descriptor internally, but
// this shape is what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Code is the classification code the rule applies to, e.g. "required",
	// "unique", or a caller-defined custom code.
	Code string `json:"code"`

	// Field is an optional field-path prefix the rule is scoped to, e.g.
	// "author.profile" or "tags.*.name". When empty the rule applies to the
	// code as a whole.
	Field string `json:"field,omitempty"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// (code, field) is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this (code, field) is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly default message or template that
	// can be used when the error instance itself did not provide one.
	Message string `json:"message,omitempty"`
}
