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

package dpayload

// Option is a functional option for constructing or transforming a
// ValidationMessage. It always takes a *ValidationMessage and returns a
// (possibly new) *ValidationMessage.
type Option func(*ValidationMessage) *ValidationMessage

// WithFieldOption sets Field (and its Key alias) on the message being
// constructed. Intended to be used with NewMessage(...).
func WithFieldOption(field string) Option {
	return func(m *ValidationMessage) *ValidationMessage {
		return m.WithField(field)
	}
}

// WithMessageOption replaces the human message while keeping the template.
// Intended to be used with NewMessage(...) when the interpolated form is
// already known.
func WithMessageOption(msg string) Option {
	return func(m *ValidationMessage) *ValidationMessage {
		return m.WithMessage(msg)
	}
}

// WithPairsOption attaches the emitted substitution pairs on construction.
// Intended to be used with NewMessage(...).
func WithPairsOption(pairs ...MessageOption) Option {
	return func(m *ValidationMessage) *ValidationMessage {
		return m.WithOptions(pairs...)
	}
}
