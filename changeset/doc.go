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

// Package changeset models the nested validation-error tree produced by a
// data-validation layer and flattens it into normalized messages.
//
// A Changeset maps field names to lists of failure descriptors. A descriptor
// is one of three things: a leaf Failure (template plus options), a nested
// *Changeset (sub-object errors), or a Collection of per-member changesets
// (one entry per collection element). Field insertion order and collection
// element order are preserved end to end — the order of the flattened output
// is part of the library's contract, not an accident of iteration.
//
// Parser walks a tree depth-first and converts every leaf into one
// dpayload.ValidationMessage: the code comes from code.Classify, the human
// message from interpolate.Render, and the field path from the configured
// fieldpath.Constructor. Sub-trees whose change was replaced rather than
// validated are discarded before traversal and never reach the output.
//
// Trees built in-process use New/AddError/PutChange/PutCollection; trees
// arriving as decoded JSON or YAML from out-of-process validators go through
// Decode.
package changeset
