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

// Package mapper provides deterministic, immutable mappings from validation
// codes (dirpx.dev/dpayload/code) and optional field paths to transport-level
// statuses for HTTP and gRPC.
//
// # Overview
//
// In dpayload a validation failure is expressed in two parts:
//
//  1. a machine-readable Code (e.g. code.Required, code.Unique),
//  2. an optional field path locating the failure (e.g. "tags.0.name").
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// this pair into concrete status codes. Package mapper does that in a way that
// is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Code;
//   - prefix-aware — callers can add fine-grained rules for specific fields;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code longest-prefix-match (LPM) on the field path;
//  3. per-Code default (library or user-adjusted);
//  4. global fallback (400 / codes.InvalidArgument).
//
// Prefix rules are segment-aware: field paths are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix(code.Unique, "tags", http.StatusConflict)
//	WithHTTPPrefix(code.Unique, "tags.*.name", http.StatusConflict)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for every cataloged dpayload code, mapping
// them to standard net/http constants and grpc/codes values (e.g. code.Required
// -> 400 / InvalidArgument, code.Unique -> 409 / AlreadyExists, code.Foreign ->
// 422 / FailedPrecondition). These can be adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.NoAssoc, http.StatusLocked),
//	    mapper.WithHTTPPrefix(code.Unique, "tags.*.name", http.StatusConflict),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status(code.Unique, "tags.0.name")
//	// st.HTTP == 409, st.GRPC == codes.AlreadyExists
//
// Custom codes produced by application validators have no library default;
// they resolve to the global fallback unless a rule is registered for them.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of how
// a particular (code, field) was resolved, including which tier matched and, for
// prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the Mapper
// does not observe further changes to the caller's maps or slices. This makes it
// safe to share a single instance across handlers, goroutines, and requests.
package mapper
