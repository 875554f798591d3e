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

// Package interpolate substitutes %{name}-style placeholders in validation
// message templates.
//
// Validation layers report failures as a template plus a set of named
// substitution variables, for example:
//
//	template: "should be at least %{count} character(s)"
//	options:  count = 4
//
// Render performs the substitution in a single pass and Stringify converts
// one option value into its message form using structural rules (lists join
// with ",", fixed-size arrays join with "-", ordinal-label maps join their
// labels). There is no escaping and no recursion: a substituted value that
// itself contains "%{...}" stays as-is unless a later option in the same
// pass happens to name it.
package interpolate
