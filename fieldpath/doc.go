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

// Package fieldpath composes nested field identifiers into path strings.
//
// When a validation failure sits inside a nested sub-object or a collection
// member, its location is reported as a composed path such as
// "tags.0.name": parent field, collection index, child field. The syntax of
// that composition is a deployment choice, so it is expressed as a
// Constructor strategy that is injected once at configuration time; Default
// provides the dot syntax shown above and Delimited builds variants with a
// custom separator.
//
// The package also provides Camelize, the snake_case → lowerCamelCase
// transform applied to field names on the outbound wire path.
package fieldpath
