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

package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/adapter"
	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
	"dirpx.dev/dpayload/mapper"
)

// Meta carries extra context that the HTTP layer can add on top of a payload.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a dpayload.Payload or an
// arbitrary error into an HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// envelope is the wire form of a payload response plus optional meta.
// The payload fields are embedded so clients keep seeing the stable
// {successful, messages, result} shape at the top level.
type envelope struct {
	dpayload.Payload
	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"traceId,omitempty"`
	SpanID            string `json:"spanId,omitempty"`
	RetryAfterSeconds int32  `json:"retryAfterSeconds,omitempty"`
}

// errorEnvelope is the wire form of a standalone error response.
type errorEnvelope struct {
	apis.ErrorView
	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"traceId,omitempty"`
	SpanID            string `json:"spanId,omitempty"`
	RetryAfterSeconds int32  `json:"retryAfterSeconds,omitempty"`
}

// WritePayload serializes the payload envelope and writes it to the response
// writer. Successful payloads are written with 200 OK; failed payloads resolve
// their HTTP status via the Mapper from the leading message's code and field.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the payload and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) WritePayload(rw http.ResponseWriter, p dpayload.Payload, meta Meta) {
	status := mapper.PayloadStatus(w.Mapper, p).HTTP

	writeJSON(rw, status, meta, envelope{
		Payload:           p,
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		SpanID:            meta.SpanID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	})
}

// WriteResolution resolves a raw resolver outcome and writes the resulting
// envelope: dpayload.Resolve composed with WritePayload.
//
// The returned error is the contract violation from Resolve. Nothing has
// been written when it is non-nil; it indicates a resolver returning an
// unsupported shape, so callers let it crash the request rather than
// serialize it.
func (w Writer) WriteResolution(rw http.ResponseWriter, res dpayload.Resolution, meta Meta) error {
	resolved, err := dpayload.Resolve(res)
	if err != nil {
		return err
	}
	w.WritePayload(rw, resolved.Value.(dpayload.Payload), meta)
	return nil
}

// WriteError serializes an arbitrary error as a standalone error body.
// The error is converted through adapter.ViewOf, so errors implementing the
// apis contracts (ViewProvider, CodedError, FieldedError, DetailedError)
// surface their structure; everything else degrades to code "unknown" with
// the error text.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}

	view := adapter.ViewOf(err)
	status := w.Mapper.HTTPStatus(code.Code(view.Code), view.Field)

	writeJSON(rw, status, meta, errorEnvelope{
		ErrorView:         view,
		Correlation:       meta.Correlation,
		TraceID:           meta.TraceID,
		SpanID:            meta.SpanID,
		RetryAfterSeconds: meta.RetryAfterSeconds,
	})
}

func writeJSON(rw http.ResponseWriter, status int, meta Meta, body any) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(status)

	// The payload wire shape is plain JSON; messages marshal through their
	// stable struct tags.
	b, _ := json.Marshal(body)
	_, _ = rw.Write(b)
}
