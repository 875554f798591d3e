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

package code

// Structural / presence validation codes
//
// These codes describe failures detected while casting and checking the raw
// shape of an input value. They are resolved from the `validation` tag of the
// failure metadata (see Classify).
const (
	// Cast indicates that the raw input value could not be converted to the
	// declared field type (string where an integer was expected, malformed
	// date, and so on).
	// Resolved from the `validation: cast` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Cast Code = "cast"

	// Required indicates that a mandatory field is empty, nil, or not
	// supplied at all.
	// Resolved from the `validation: required` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Required Code = "required"

	// Format indicates that the value does not match the expected pattern
	// (regular expression, email shape, URL shape, and so on).
	// Resolved from the `validation: format` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Format Code = "format"

	// Inclusion indicates that the value is not a member of the allowed set.
	// Resolved from the `validation: inclusion` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Inclusion Code = "inclusion"

	// Exclusion indicates that the value is a member of a forbidden set
	// (reserved names, blocked words).
	// Resolved from the `validation: exclusion` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Exclusion Code = "exclusion"

	// Subset indicates that a list-valued field contains elements outside
	// the allowed set.
	// Resolved from the `validation: subset` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Subset Code = "subset"

	// Acceptance indicates that a field that must be affirmatively accepted
	// (terms of service, consent flags) was not.
	// Resolved from the `validation: acceptance` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Acceptance Code = "acceptance"

	// Confirmation indicates that a field and its confirmation counterpart
	// (password / password_confirmation) do not match.
	// Resolved from the `validation: confirmation` tag.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Confirmation Code = "confirmation"
)

// Length validation codes
//
// These codes describe failures of exact / minimum / maximum length checks.
// They are resolved from the `validation: length` tag combined with the
// `kind` tag of the failure metadata.
const (
	// Length indicates that the value does not have the exact required
	// length.
	// Resolved from `validation: length` with `kind: is`.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Length Code = "length"

	// Min indicates that the value is shorter than the allowed minimum
	// length.
	// Resolved from `validation: length` with `kind: min`.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Min Code = "min"

	// Max indicates that the value is longer than the allowed maximum
	// length.
	// Resolved from `validation: length` with `kind: max`.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Max Code = "max"
)

// Numeric comparison validation codes
//
// These codes describe failures of numeric bound checks. The upstream
// validator family does not expose a structured kind for them, so they are
// resolved by substring search within the message template, in a fixed
// priority order (see Classify). The code names mirror the comparison
// wording exactly.
const (
	// LessThan indicates that the value must be strictly less than a bound.
	// Resolved from `validation: number` with a template containing
	// "less than" (and not "less than or equal to").
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	LessThan Code = "less_than"

	// LessThanOrEqualTo indicates that the value must be less than or equal
	// to a bound.
	// Resolved from `validation: number` with a template containing
	// "less than or equal to".
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	LessThanOrEqualTo Code = "less_than_or_equal_to"

	// GreaterThan indicates that the value must be strictly greater than a
	// bound.
	// Resolved from `validation: number` with a template containing
	// "greater than" (and not "greater than or equal to").
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	GreaterThan Code = "greater_than"

	// GreaterThanOrEqualTo indicates that the value must be greater than or
	// equal to a bound.
	// Resolved from `validation: number` with a template containing
	// "greater than or equal to".
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	GreaterThanOrEqualTo Code = "greater_than_or_equal_to"

	// EqualTo indicates that the value must be exactly equal to a bound.
	// Resolved from `validation: number` with a template containing
	// "equal to" (after the two or-equal forms have been ruled out).
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	EqualTo Code = "equal_to"
)

// Constraint / association validation codes
//
// These codes describe failures reported by the storage layer (uniqueness,
// referential integrity) or by nested-association handling. They are
// resolved from fixed sentinel message templates, since constraint errors
// carry no structured validation tag.
const (
	// Unique indicates a uniqueness constraint violation: an entity with the
	// same value already exists.
	// Resolved from the sentinel template "has already been taken".
	//
	// Transport mapper is framework-specific.
	// Often mapped to HTTP 409.
	Unique Code = "unique"

	// Foreign indicates a foreign-key constraint violation: the referenced
	// entity does not exist.
	// Resolved from the sentinel template "does not exist".
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 422 or 404 depending on policy.
	Foreign Code = "foreign"

	// NoAssoc indicates that an entity cannot be deleted or detached because
	// other entries still reference it.
	// Resolved from the sentinel template "is still associated with this
	// entry".
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 409.
	NoAssoc Code = "no_assoc"

	// Association indicates that a nested association field is invalid as a
	// whole, typically because a collection was expected and nil was given,
	// or a nested value could not be cast.
	// Resolved from the template "is invalid" combined with the presence of
	// a `type` tag in the failure metadata.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Association Code = "association"
)

// Fallback
const (
	// Unknown is the universal fallback code: the failure metadata matched
	// no classification rule. Messages built from plain strings and foreign
	// errors also carry it.
	// Classify never returns an empty code; when in doubt it returns
	// Unknown.
	//
	// Transport mapper is framework-specific.
	// Can be mapped to an HTTP 400.
	Unknown Code = "unknown"
)
