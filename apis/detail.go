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

// Detail represents a single structured violation attached to an error. This
// is a *view type* — small, transport-friendly, and suitable for JSON or
// proto mapping.
//
// We keep it in apis so that different parts of the system (validators,
// HTTP/gRPC adapters, loggers) can speak about "details" without importing
// the concrete message implementation.
//
// Typical usages:
//   - report which field failed validation;
//   - report the classification of each failure;
//   - carry the substitution variables that produced the message.
type Detail struct {
	// Field carries the logical path to the failing field, e.g.
	// "title" or "tags.0.name". For non-field errors this may be empty.
	Field string `json:"field,omitempty"`

	// Code is the machine-readable classification of this violation, e.g.
	// "required", "min", "unique".
	Code string `json:"code,omitempty"`

	// Message is the interpolated human-readable description.
	Message string `json:"message,omitempty"`

	// Options carries the substitution variables of the message (already
	// stringified), e.g. {"count": "3"}. Keys and values should be chosen so
	// that they survive JSON/proto round-trips.
	Options map[string]string `json:"options,omitempty"`
}
