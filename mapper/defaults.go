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

package mapper

import (
	"net/http"

	"dirpx.dev/dpayload/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the validation
// code catalog. These are only defaults: callers are expected to wrap or
// override them at the boundary where HTTP is actually produced (REST
// gateway, HTTP handler, etc.).
//
// The intent is to stay close to common REST conventions: failures a client
// can fix by editing the submitted document are 400, failures that need the
// data store's verdict (uniqueness, referential integrity) land on 409/422.
var defaultHTTP = map[code.Code]int{
	// Structural / presence — the submitted document itself is wrong.
	code.Cast:         http.StatusBadRequest, // Value could not be cast to the declared type.
	code.Required:     http.StatusBadRequest, // Mandatory value missing.
	code.Format:       http.StatusBadRequest, // Pattern mismatch.
	code.Inclusion:    http.StatusBadRequest, // Value outside the allowed set.
	code.Exclusion:    http.StatusBadRequest, // Value inside the forbidden set.
	code.Subset:       http.StatusBadRequest, // Collection not a subset of the allowed set.
	code.Acceptance:   http.StatusBadRequest, // Terms/flag not accepted.
	code.Confirmation: http.StatusBadRequest, // Confirmation value does not match.

	// Length.
	code.Length: http.StatusBadRequest, // Exact-length violation.
	code.Min:    http.StatusBadRequest, // Too short / too few.
	code.Max:    http.StatusBadRequest, // Too long / too many.

	// Numeric comparison.
	code.LessThan:             http.StatusBadRequest,
	code.LessThanOrEqualTo:    http.StatusBadRequest,
	code.GreaterThan:          http.StatusBadRequest,
	code.GreaterThanOrEqualTo: http.StatusBadRequest,
	code.EqualTo:              http.StatusBadRequest,

	// Constraint / association — the document is fine, the data disagrees.
	code.Unique:      http.StatusConflict,            // Uniqueness clash with an existing row.
	code.Foreign:     http.StatusUnprocessableEntity, // Referenced row does not exist.
	code.NoAssoc:     http.StatusConflict,            // Row still referenced; cannot proceed.
	code.Association: http.StatusUnprocessableEntity, // Associated structure invalid or missing.

	// Fallback classification. Still a validation failure: the client sent it.
	code.Unknown: http.StatusBadRequest,
}

// defaultGRPC defines the library's built-in gRPC mappings for the validation
// code catalog. These values align with canonical gRPC status semantics while
// preserving the distinction between document-shape failures and data-store
// constraint failures. As with HTTP, callers may override these at the
// transport edge if a different policy is required.
var defaultGRPC = map[code.Code]codes.Code{
	// Structural / presence.
	code.Cast:         codes.InvalidArgument,
	code.Required:     codes.InvalidArgument,
	code.Format:       codes.InvalidArgument,
	code.Inclusion:    codes.InvalidArgument,
	code.Exclusion:    codes.InvalidArgument,
	code.Subset:       codes.InvalidArgument,
	code.Acceptance:   codes.InvalidArgument,
	code.Confirmation: codes.InvalidArgument,

	// Length.
	code.Length: codes.InvalidArgument,
	code.Min:    codes.InvalidArgument,
	code.Max:    codes.InvalidArgument,

	// Numeric comparison.
	code.LessThan:             codes.InvalidArgument,
	code.LessThanOrEqualTo:    codes.InvalidArgument,
	code.GreaterThan:          codes.InvalidArgument,
	code.GreaterThanOrEqualTo: codes.InvalidArgument,
	code.EqualTo:              codes.InvalidArgument,

	// Constraint / association.
	code.Unique:      codes.AlreadyExists,      // Create/update clashed with an existing row.
	code.Foreign:     codes.FailedPrecondition, // Referenced row must exist first.
	code.NoAssoc:     codes.FailedPrecondition, // Dependent rows must be removed first.
	code.Association: codes.FailedPrecondition, // Associated structure not in the required state.

	// Fallback classification.
	code.Unknown: codes.InvalidArgument,
}
