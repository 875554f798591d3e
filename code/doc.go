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

// Package code classifies validation failures and provides parsing,
// normalization and validation for dpayload validation codes.
//
// A "code" is the stable, machine-readable classification of a validation
// failure, such as "required", "format", "unique" or "unknown". Codes are
// meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in client display
//     tables.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every validation message MUST
// carry a non-empty code.
//
// The package defines the canonical representation, the functions that
// convert arbitrary user input to that canonical form, and Classify, which
// resolves the code for one raw validation failure. Caller-supplied custom
// codes (the explicit `code` option, Classify rule 1) are exempt from the
// canonical form and travel verbatim.
package code
