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

import (
	"encoding/json"
	"reflect"
	"testing"

	"dirpx.dev/dpayload/code"
)

func TestNewMessage(t *testing.T) {
	m := NewMessage(code.Required, "can't be blank")
	if m.Code != code.Required {
		t.Fatalf("code = %s, want %s", m.Code, code.Required)
	}
	if m.Template != "can't be blank" || m.Message != "can't be blank" {
		t.Fatalf("template/message = %q/%q", m.Template, m.Message)
	}
	if m.Options == nil || len(m.Options) != 0 {
		t.Fatalf("options = %#v, want empty non-nil", m.Options)
	}
	if m.Field != "" || m.Key != "" {
		t.Fatalf("field/key = %q/%q, want empty", m.Field, m.Key)
	}
}

func TestNewMessageEmptyTemplate(t *testing.T) {
	m := NewMessage(code.Unknown, "")
	if m.Template != DefaultTemplate || m.Message != DefaultTemplate {
		t.Fatalf("template/message = %q/%q, want %q", m.Template, m.Message, DefaultTemplate)
	}
}

func TestNewMessageOptions(t *testing.T) {
	m := NewMessage(code.Min, "should be at least %{count} character(s)",
		WithFieldOption("title"),
		WithMessageOption("should be at least 3 character(s)"),
		WithPairsOption(MessageOption{Key: "count", Value: "3"}),
	)
	if m.Field != "title" || m.Key != "title" {
		t.Fatalf("field/key = %q/%q, want title/title", m.Field, m.Key)
	}
	if m.Message != "should be at least 3 character(s)" {
		t.Fatalf("message = %q", m.Message)
	}
	if m.Template != "should be at least %{count} character(s)" {
		t.Fatalf("template = %q", m.Template)
	}
	want := []MessageOption{{Key: "count", Value: "3"}}
	if !reflect.DeepEqual(m.Options, want) {
		t.Fatalf("options = %v, want %v", m.Options, want)
	}
}

func TestMessageError(t *testing.T) {
	tests := []struct {
		name string
		m    *ValidationMessage
		want string
	}{
		{"nil", nil, "<nil>"},
		{"no field", NewMessage(code.Unknown, "boom"), "unknown: boom"},
		{"with field", NewMessage(code.Required, "can't be blank", WithFieldOption("title")), "required:title: can't be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageErrorAccessors(t *testing.T) {
	m := NewMessage(code.Unique, "has already been taken", WithFieldOption("tags.0.name"))
	if got := m.ErrorCode(); got != "unique" {
		t.Fatalf("ErrorCode() = %q, want %q", got, "unique")
	}
	if got := m.ErrorField(); got != "tags.0.name" {
		t.Fatalf("ErrorField() = %q, want %q", got, "tags.0.name")
	}
	if got := NewMessage(code.Unknown, "boom").ErrorField(); got != "" {
		t.Fatalf("ErrorField() on fieldless message = %q, want empty", got)
	}
}

func TestWithFieldCopies(t *testing.T) {
	orig := NewMessage(code.Required, "can't be blank")
	titled := orig.WithField("title")
	if orig.Field != "" || orig.Key != "" {
		t.Fatalf("original mutated: field/key = %q/%q", orig.Field, orig.Key)
	}
	if titled.Field != "title" || titled.Key != "title" {
		t.Fatalf("copy field/key = %q/%q", titled.Field, titled.Key)
	}
}

func TestWithOptionsCopies(t *testing.T) {
	pairs := []MessageOption{{Key: "count", Value: "3"}}
	m := NewMessage(code.Min, "x").WithOptions(pairs...)
	pairs[0].Value = "mutated"
	if m.Options[0].Value != "3" {
		t.Fatalf("options share backing storage: %v", m.Options)
	}
}

func TestMessageJSONShape(t *testing.T) {
	m := NewMessage(code.Min, "should be at least %{count} character(s)",
		WithFieldOption("title"),
		WithMessageOption("should be at least 3 character(s)"),
		WithPairsOption(MessageOption{Key: "count", Value: "3"}),
	)
	got, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"field":"title","key":"title","code":"min",` +
		`"template":"should be at least %{count} character(s)",` +
		`"message":"should be at least 3 character(s)",` +
		`"options":[{"key":"count","value":"3"}]}`
	if string(got) != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}

func TestMessageJSONEmptyOptions(t *testing.T) {
	got, err := json.Marshal(NewMessage(code.Required, "can't be blank"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"field":"","key":"","code":"required","template":"can't be blank",` +
		`"message":"can't be blank","options":[]}`
	if string(got) != want {
		t.Fatalf("json = %s, want %s", got, want)
	}
}
