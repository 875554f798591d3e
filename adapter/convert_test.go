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

package adapter

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
	"google.golang.org/grpc/codes"
)

// Compile-time checks: a validation message satisfies the apis error
// contracts without the core package importing apis.
var (
	_ apis.CodedError   = (*dpayload.ValidationMessage)(nil)
	_ apis.FieldedError = (*dpayload.ValidationMessage)(nil)
)

func TestToDetail(t *testing.T) {
	m := dpayload.NewMessage(code.GreaterThan, "must be greater than %{count}",
		dpayload.WithFieldOption("age"),
		dpayload.WithPairsOption(dpayload.MessageOption{Key: "count", Value: "18"}),
	).WithMessage("must be greater than 18")

	d := ToDetail(m)
	want := apis.Detail{
		Field:   "age",
		Code:    "greater_than",
		Message: "must be greater than 18",
		Options: map[string]string{"count": "18"},
	}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("ToDetail() = %+v, want %+v", d, want)
	}

	if got := ToDetail(nil); !reflect.DeepEqual(got, apis.Detail{}) {
		t.Fatalf("ToDetail(nil) = %+v, want zero", got)
	}
}

func TestToDetailsOrderAndNil(t *testing.T) {
	msgs := []*dpayload.ValidationMessage{
		dpayload.NewMessage(code.Required, "can't be blank", dpayload.WithFieldOption("title")),
		nil,
		dpayload.NewMessage(code.Unique, "has already been taken", dpayload.WithFieldOption("tags.0.name")),
	}
	ds := ToDetails(msgs)
	if len(ds) != 2 {
		t.Fatalf("ToDetails() len = %d, want 2", len(ds))
	}
	if ds[0].Field != "title" || ds[1].Field != "tags.0.name" {
		t.Fatalf("ToDetails() order broken: %+v", ds)
	}
	if ds := ToDetails(nil); ds != nil {
		t.Fatalf("ToDetails(nil) = %+v, want nil", ds)
	}
}

func TestToDescriptor(t *testing.T) {
	m := dpayload.NewMessage(code.Unique, "has already been taken", dpayload.WithFieldOption("tags.0.name"))
	st := apis.Status{HTTP: 409, GRPC: codes.AlreadyExists}

	got := ToDescriptor(m, st)
	want := apis.ErrorDescriptor{
		Code:       "unique",
		Field:      "tags.0.name",
		HTTPStatus: 409,
		GRPCCode:   int(codes.AlreadyExists),
		Message:    "has already been taken",
	}
	if got != want {
		t.Fatalf("ToDescriptor() = %+v, want %+v", got, want)
	}

	if got := ToDescriptor(nil, st); got != (apis.ErrorDescriptor{}) {
		t.Fatalf("ToDescriptor(nil) = %+v, want zero", got)
	}
}

type selfViewErr struct {
	v apis.ErrorView
}

func (e selfViewErr) Error() string             { return "boom" }
func (e selfViewErr) ErrorView() apis.ErrorView { return e.v }

func TestViewOf(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if got := ViewOf(nil); !reflect.DeepEqual(got, apis.ErrorView{}) {
			t.Fatalf("ViewOf(nil) = %+v, want zero", got)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		got := ViewOf(errors.New("disk on fire"))
		if got.Code != "unknown" || got.Message != "disk on fire" || got.Field != "" {
			t.Fatalf("ViewOf(plain) = %+v", got)
		}
	})

	t.Run("validation message", func(t *testing.T) {
		m := dpayload.NewMessage(code.Required, "can't be blank", dpayload.WithFieldOption("title"))
		got := ViewOf(m)
		if got.Code != "required" || got.Field != "title" {
			t.Fatalf("ViewOf(message) = %+v", got)
		}
		// The human message, not the error-string rendering.
		if got.Message != "can't be blank" {
			t.Fatalf("ViewOf(message).Message = %q", got.Message)
		}
	})

	t.Run("wrapped validation message", func(t *testing.T) {
		m := dpayload.NewMessage(code.Required, "can't be blank", dpayload.WithFieldOption("title"))
		got := ViewOf(fmt.Errorf("saving book: %w", m))
		if got.Code != "required" || got.Field != "title" || got.Message != "can't be blank" {
			t.Fatalf("ViewOf(wrapped) = %+v", got)
		}
	})

	t.Run("view provider wins", func(t *testing.T) {
		own := apis.ErrorView{Code: "totp_mismatch", Message: "one-time code expired"}
		got := ViewOf(selfViewErr{v: own})
		if !reflect.DeepEqual(got, own) {
			t.Fatalf("ViewOf(provider) = %+v, want %+v", got, own)
		}
	})
}
