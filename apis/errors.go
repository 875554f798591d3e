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

// CodedError represents an error that is classified into a well-defined,
// machine-readable error *code*.
//
// A code usually denotes a broad validation category, such as:
//   - "required" — a mandatory value is missing,
//   - "format"   — the value does not match the expected pattern,
//   - "unique"   — a uniqueness constraint was violated,
//   - "unknown"  — the failure could not be classified.
//
// Codes are intended to be stable and enumerable. They are the primary value
// that higher-level adapters (HTTP, gRPC) will use to decide which status
// code to return to the client.
//
// Implementations are expected to return a *canonicalized* code string for
// catalog codes — normalized to the format enforced by the dpayload/code
// package (lowercase, underscores, length limits, etc.). Caller-supplied
// custom codes travel verbatim; adapters should map unrecognized codes via
// their configured fallback.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty. Callers should not try to "fix"
	// or "guess" the value here — unrecognized codes are resolved by the
	// mapper's fallback at the boundary.
	ErrorCode() string
}

// FieldedError represents an error that points at a specific input location
// in addition to the classification code.
//
// While the code answers the question "what kind of failure is this?", the
// field answers "where in the submitted document did it happen?".
//
// Examples:
//
//	code:  "required"
//	field: "title" -> the title value is missing
//
//	code:  "min"
//	field: "tags.0.name" -> the first tag's name is too short
//
// Fields are dot-separated paths (collection indexes are ordinary segments),
// produced by a fieldpath.Constructor during tree flattening.
//
// Having a separate interface for fields allows code to gracefully degrade:
// if an error does not provide a field, the caller can still act on the code.
type FieldedError interface {
	error

	// ErrorField returns the field path the failure applies to.
	//
	// The returned value MAY be empty when the failure does not concern a
	// specific input location. Callers should be prepared to handle the
	// empty case.
	ErrorField() string
}

// DetailedError represents an error that exposes zero or more structured
// details. This is especially useful for validation scenarios where multiple
// fields may fail at once and the caller needs to show *all* of them.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
