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

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// failureMeta is the classification-relevant slice of a failure's options.
// Upstream validators attach these keys alongside the substitution variables;
// anything else in the options map is ignored here.
type failureMeta struct {
	Validation string `mapstructure:"validation"`
	Kind       string `mapstructure:"kind"`
}

// Classify maps one validation failure — its message template plus the raw
// options attached by the validator — to a stable Code.
//
// The resolution order is a contract, not an implementation detail; clients
// key retry and display logic off these codes. First match wins:
//
//  1. An explicit `code` option is used verbatim. This is the escape hatch
//     for fully custom caller codes; the value is NOT normalized or
//     validated, so it may fall outside the canonical form.
//  2. A `validation` tag of cast, required, format, inclusion, exclusion,
//     subset, acceptance or confirmation maps to the same-named code.
//  3. `validation: length` branches on the `kind` tag: is → Length,
//     min → Min, max → Max. An unrecognized kind falls through to the
//     remaining rules.
//  4. `validation: number` classifies by substring search within the
//     template, in priority order: "less than or equal to",
//     "greater than or equal to", "less than", "greater than", "equal to";
//     anything else yields Unknown. This couples classification to message
//     wording — a known fragility, kept because the validator family exposes
//     no structured kind for numeric checks. The substrings and their order
//     must not change.
//  5. The exact template "is invalid" with a `type` option present yields
//     Association.
//  6. Sentinel templates: "has already been taken" → Unique,
//     "does not exist" → Foreign,
//     "is still associated with this entry" → NoAssoc.
//  7. Unknown.
//
// Classify never fails: malformed metadata simply falls through to Unknown.
func Classify(template string, opts map[string]any) Code {
	if raw, ok := opts["code"]; ok && raw != nil {
		if s := fmt.Sprint(raw); s != "" {
			return Code(s)
		}
	}

	var meta failureMeta
	if dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true,
	}); err == nil {
		// Best effort: a key that cannot be coerced leaves its field zero,
		// which reads as "tag absent" below.
		_ = dec.Decode(opts)
	}

	switch meta.Validation {
	case "cast":
		return Cast
	case "required":
		return Required
	case "format":
		return Format
	case "inclusion":
		return Inclusion
	case "exclusion":
		return Exclusion
	case "subset":
		return Subset
	case "acceptance":
		return Acceptance
	case "confirmation":
		return Confirmation
	case "length":
		switch meta.Kind {
		case "is":
			return Length
		case "min":
			return Min
		case "max":
			return Max
		}
	case "number":
		return classifyNumber(template)
	}

	if template == "is invalid" {
		if _, ok := opts["type"]; ok {
			return Association
		}
	}

	switch template {
	case "has already been taken":
		return Unique
	case "does not exist":
		return Foreign
	case "is still associated with this entry":
		return NoAssoc
	}

	return Unknown
}

// classifyNumber resolves numeric comparison failures from the template
// wording. The or-equal forms must be checked before their strict prefixes:
// "must be less than or equal to 5" contains "less than" too.
func classifyNumber(template string) Code {
	switch {
	case strings.Contains(template, "less than or equal to"):
		return LessThanOrEqualTo
	case strings.Contains(template, "greater than or equal to"):
		return GreaterThanOrEqualTo
	case strings.Contains(template, "less than"):
		return LessThan
	case strings.Contains(template, "greater than"):
		return GreaterThan
	case strings.Contains(template, "equal to"):
		return EqualTo
	}
	return Unknown
}
