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

// Package locale localizes validation message texts.
//
// A Tag names one locale ("en", "pt_br"); a Catalog maps tags to
// template-translation tables. Catalog.Translator turns the pair into the
// changeset parser's translation hook: every freshly extracted message whose
// template has a catalog entry gets its human-readable Message re-rendered
// in the selected locale, placeholders and all. Codes, field paths, options
// and the untranslated template are never touched, so the machine-readable
// side of the wire contract is locale-independent.
//
// Like the field-path strategy, the active tag is process-wide configuration:
// chosen once at startup (usually via the settings file) and read-only
// afterwards.
//
// Tag is intentionally optional: the zero value ("") is allowed and means
// messages stay exactly as the validation layer produced them.
package locale
