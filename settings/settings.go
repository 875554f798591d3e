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

// Package settings loads optional process-wide configuration for the parser
// and the status mapper from a YAML, JSON, or TOML file.
//
// Everything here is read once at startup and translated into the functional
// options of the respective packages; malformed files, unknown codes, and
// unknown gRPC code names fail at startup, never at request time.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/changeset"
	"dirpx.dev/dpayload/code"
	"dirpx.dev/dpayload/fieldpath"
	"dirpx.dev/dpayload/locale"
	"dirpx.dev/dpayload/mapper"
	"github.com/pelletier/go-toml/v2"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"
)

// Settings mirrors the configuration file. All fields are optional; the zero
// value configures nothing and both option lists come back empty.
type Settings struct {
	// PathStyle selects the field-path constructor: "dotted" (default) or
	// "delimited", which joins segments with PathSeparator.
	PathStyle string `json:"path_style" yaml:"path_style" toml:"path_style"`

	// PathSeparator is the separator used by the "delimited" style,
	// for example "/" or "›".
	PathSeparator string `json:"path_separator" yaml:"path_separator" toml:"path_separator"`

	// CamelizeFields, when true, rewrites field paths to lowerCamel as
	// messages are extracted from the tree. Unset keeps paths verbatim
	// internally; the resolution boundary still camelizes outbound values.
	CamelizeFields *bool `json:"camelize_fields" yaml:"camelize_fields" toml:"camelize_fields"`

	// Locale selects the message-translation locale, e.g. "pt_br". Empty
	// leaves message texts as the validation layer produced them.
	Locale string `json:"locale" yaml:"locale" toml:"locale"`

	// Translations holds the template-translation tables keyed by locale
	// tag. Ignored unless Locale is set.
	Translations map[string]map[string]string `json:"translations" yaml:"translations" toml:"translations"`

	// HTTPOverrides pins the HTTP status for a code, e.g. {"unique": 409}.
	HTTPOverrides map[string]int `json:"http_overrides" yaml:"http_overrides" toml:"http_overrides"`

	// GRPCOverrides pins the gRPC code by canonical name, e.g.
	// {"unique": "ALREADY_EXISTS"}.
	GRPCOverrides map[string]string `json:"grpc_overrides" yaml:"grpc_overrides" toml:"grpc_overrides"`

	// FallbackHTTP and FallbackGRPC replace the mapper's last-resort
	// statuses (400 / INVALID_ARGUMENT). Zero values keep the defaults.
	FallbackHTTP int    `json:"fallback_http" yaml:"fallback_http" toml:"fallback_http"`
	FallbackGRPC string `json:"fallback_grpc" yaml:"fallback_grpc" toml:"fallback_grpc"`
}

// Load reads and decodes a settings file. The format is inferred from the
// file extension: .yaml/.yml, .json, or .toml.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}

	s := &Settings{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("settings: parse YAML file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("settings: parse JSON file %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("settings: parse TOML file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("settings: unsupported file format %q (supported: yaml, json, toml)", ext)
	}
	return s, nil
}

// ParserOptions translates the file into changeset parser options.
func (s *Settings) ParserOptions() ([]changeset.Option, error) {
	var opts []changeset.Option

	switch s.PathStyle {
	case "", "dotted":
		// library default
	case "delimited":
		if s.PathSeparator == "" {
			return nil, fmt.Errorf("settings: path_style %q requires path_separator", s.PathStyle)
		}
		opts = append(opts, changeset.WithConstructor(fieldpath.Delimited(s.PathSeparator)))
	default:
		return nil, fmt.Errorf("settings: unknown path_style %q", s.PathStyle)
	}

	var hooks []changeset.Translator
	if s.Locale != "" {
		tag, err := locale.Parse(s.Locale)
		if err != nil {
			return nil, fmt.Errorf("settings: locale %q: %w", s.Locale, err)
		}
		catalog, err := s.catalog()
		if err != nil {
			return nil, err
		}
		if hook := catalog.Translator(tag); hook != nil {
			hooks = append(hooks, hook)
		}
	}
	if s.CamelizeFields != nil && *s.CamelizeFields {
		hooks = append(hooks, camelizeFields)
	}
	if len(hooks) > 0 {
		opts = append(opts, changeset.WithTranslator(chain(hooks)))
	}
	return opts, nil
}

// catalog converts the decoded translation tables into the locale package's
// form. Tags are parsed so a typo in the file fails at startup.
func (s *Settings) catalog() (locale.Catalog, error) {
	c := make(locale.Catalog, len(s.Translations))
	for name, table := range s.Translations {
		tag, err := locale.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("settings: translations: bad locale tag %q: %w", name, err)
		}
		if tag == locale.Untranslated {
			return nil, fmt.Errorf("settings: translations: empty locale tag")
		}
		c[tag] = locale.Table(table)
	}
	return c, nil
}

// chain composes translation hooks left to right into one.
func chain(hooks []changeset.Translator) changeset.Translator {
	if len(hooks) == 1 {
		return hooks[0]
	}
	return func(m *dpayload.ValidationMessage) *dpayload.ValidationMessage {
		for _, h := range hooks {
			m = h(m)
		}
		return m
	}
}

// MapperOptions translates the file into status mapper options.
func (s *Settings) MapperOptions() ([]mapper.Option, error) {
	var opts []mapper.Option

	for _, name := range sortedKeys(s.HTTPOverrides) {
		c, err := code.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("settings: http_overrides: bad code %q: %w", name, err)
		}
		v := s.HTTPOverrides[name]
		if v < 100 || v > 599 {
			return nil, fmt.Errorf("settings: http_overrides[%s]: status %d out of range", name, v)
		}
		opts = append(opts, mapper.WithHTTPOverride(c, v))
	}

	for _, name := range sortedKeys(s.GRPCOverrides) {
		c, err := code.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("settings: grpc_overrides: bad code %q: %w", name, err)
		}
		gc, err := parseGRPCCode(s.GRPCOverrides[name])
		if err != nil {
			return nil, fmt.Errorf("settings: grpc_overrides[%s]: %w", name, err)
		}
		opts = append(opts, mapper.WithGRPCOverride(c, int(gc)))
	}

	if s.FallbackHTTP != 0 || s.FallbackGRPC != "" {
		h, g := 400, codes.InvalidArgument
		if s.FallbackHTTP != 0 {
			if s.FallbackHTTP < 100 || s.FallbackHTTP > 599 {
				return nil, fmt.Errorf("settings: fallback_http: status %d out of range", s.FallbackHTTP)
			}
			h = s.FallbackHTTP
		}
		if s.FallbackGRPC != "" {
			gc, err := parseGRPCCode(s.FallbackGRPC)
			if err != nil {
				return nil, fmt.Errorf("settings: fallback_grpc: %w", err)
			}
			g = gc
		}
		opts = append(opts, mapper.WithFallback(h, g))
	}

	return opts, nil
}

// camelizeFields is the translator installed by CamelizeFields.
func camelizeFields(m *dpayload.ValidationMessage) *dpayload.ValidationMessage {
	if m == nil || m.Field == "" {
		return m
	}
	return m.WithField(fieldpath.Camelize(m.Field))
}

// parseGRPCCode resolves a canonical gRPC code name ("ALREADY_EXISTS",
// "failed_precondition") to its codes.Code value.
func parseGRPCCode(name string) (codes.Code, error) {
	canonical := strings.ToUpper(strings.TrimSpace(name))
	var gc codes.Code
	if err := gc.UnmarshalJSON([]byte(strconv.Quote(canonical))); err != nil {
		return 0, fmt.Errorf("unknown grpc code %q", name)
	}
	return gc, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
