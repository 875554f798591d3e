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
	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given error code. This affects the fallback value used when
// no per-field override is found.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given error code. This affects the fallback value used when
// no per-field override is found.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides are the highest-priority rule: they win over per-field prefix
// matches (LPM) and defaults for that code.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides are the highest-priority rule: they win over per-field prefix
// matches (LPM) and defaults for that code.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for the given code.
// The rule is evaluated against the field path (dot-separated). A more
// specific prefix wins. Use "*" to match a single segment, e.g. "tags.*.name"
// to cover every collection index.
func WithHTTPPrefix(c code.Code, prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for the given code.
// The rule is evaluated against the field path (dot-separated). A more
// specific prefix wins. Use "*" to match a single segment.
func WithGRPCPrefix(c code.Code, prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{prefix, grpc}) }
}

// WithFallback replaces the global fallback statuses used when a code has no
// rule at any tier. The library default is 400 / codes.InvalidArgument; a
// deployment that treats unrecognized codes as server bugs can raise this to
// 500 / codes.Internal here.
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}

// WithDescriptors registers a batch of declarative rules, typically loaded
// from configuration. A descriptor without a Field becomes an exact per-code
// override; one with a Field becomes a prefix rule. Zero statuses are
// skipped ("not specified"), so a descriptor may set only one transport.
func WithDescriptors(descs ...apis.ErrorDescriptor) Option {
	return func(b *builder) {
		for _, d := range descs {
			c := code.Code(d.Code)
			if d.Field == "" {
				if d.HTTPStatus != 0 {
					b.httpOverride[c] = d.HTTPStatus
				}
				if d.GRPCCode != 0 {
					b.grpcOverride[c] = d.GRPCCode
				}
				continue
			}
			if d.HTTPStatus != 0 {
				b.httpPrefixes[c] = append(b.httpPrefixes[c], prefixRule{d.Field, d.HTTPStatus})
			}
			if d.GRPCCode != 0 {
				b.grpcPrefixes[c] = append(b.grpcPrefixes[c], prefixRule{d.Field, d.GRPCCode})
			}
		}
	}
}
