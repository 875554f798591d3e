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

package grpcx

import (
	"context"
	"errors"
	"fmt"

	"dirpx.dev/dpayload/apis"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/adapter"
	"dirpx.dev/dpayload/code"
	"dirpx.dev/dpayload/mapper"
)

// Error wraps a failed payload so it can travel through a gRPC handler's
// ordinary error return. The wrapper exposes the apis error contracts
// (CodedError, FieldedError, DetailedError), keyed by the payload's leading
// message. Returns nil when the payload is successful.
func Error(p dpayload.Payload) error {
	if p.Successful {
		return nil
	}
	return &payloadError{p: p}
}

// payloadError carries a failed payload through the error return path.
type payloadError struct {
	p dpayload.Payload
}

func (e *payloadError) Error() string {
	first := e.first()
	if first == nil {
		return "dpayload: validation failed"
	}
	if n := len(e.p.Messages); n > 1 {
		return fmt.Sprintf("%s (and %d more)", first.Error(), n-1)
	}
	return first.Error()
}

// ErrorCode returns the leading message's code, or "unknown" when the
// payload carries no messages.
func (e *payloadError) ErrorCode() string {
	if first := e.first(); first != nil {
		return string(first.Code)
	}
	return string(code.Unknown)
}

// ErrorField returns the leading message's field path; may be empty.
func (e *payloadError) ErrorField() string {
	if first := e.first(); first != nil {
		return first.Field
	}
	return ""
}

// ErrorDetails exposes every message as a transport detail.
func (e *payloadError) ErrorDetails() []apis.Detail {
	return adapter.ToDetails(e.p.Messages)
}

// Payload returns the wrapped payload.
func (e *payloadError) Payload() dpayload.Payload {
	return e.p
}

func (e *payloadError) first() *dpayload.ValidationMessage {
	for _, m := range e.p.Messages {
		if m != nil {
			return m
		}
	}
	return nil
}

// Option configures the interceptor.
type Option func(*interceptorOptions)

type interceptorOptions struct {
	logger *zap.Logger
}

// WithLogger installs a logger for the interceptor. Mapped validation
// failures log at Debug level; resolver contract violations log at Error
// level before being masked as Internal. Pass zap.NewNop() (or nothing)
// to keep it silent.
func WithLogger(l *zap.Logger) Option {
	return func(o *interceptorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// failed payloads into gRPC errors with google.rpc.BadRequest details.
//
// Handlers opt in by returning Error(payload) (or a bare
// *dpayload.ValidationMessage). The provided apis.Mapper resolves the
// transport status from the leading message's code and field. Errors that
// carry no payload are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := interceptorOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		p, ok := payloadOf(err)
		if !ok {
			var violation *dpayload.InvalidMessageKindError
			if errors.As(err, &violation) {
				// A resolver returned an unsupported shape: a bug, not a
				// user-facing condition. Log the offending value, hide it
				// from the client.
				o.logger.Error("resolver contract violation",
					zap.String("method", info.FullMethod),
					zap.Error(violation),
				)
				return nil, gstatus.Error(gcodes.Internal, "internal error")
			}
			// Not ours — return as-is.
			return nil, err
		}

		st := StatusFromPayload(m, p)
		o.logger.Debug("validation failure mapped to grpc status",
			zap.String("method", info.FullMethod),
			zap.String("grpc_code", st.Code().String()),
			zap.Int("violations", len(p.Messages)),
		)
		return nil, st.Err()
	}
}

// payloadOf recovers a failed payload from a handler error.
func payloadOf(err error) (dpayload.Payload, bool) {
	var pe *payloadError
	if errors.As(err, &pe) {
		return pe.p, true
	}
	var vm *dpayload.ValidationMessage
	if errors.As(err, &vm) && vm != nil {
		return dpayload.Errors(vm), true
	}
	return dpayload.Payload{}, false
}

// StatusFromPayload builds a gRPC status for a payload. Successful payloads
// produce codes.OK. Failed payloads resolve their code via the Mapper from
// the leading message and carry every message as a
// google.rpc.BadRequest.FieldViolation detail.
func StatusFromPayload(m apis.Mapper, p dpayload.Payload) *gstatus.Status {
	if p.Successful {
		return gstatus.New(gcodes.OK, "")
	}

	msg := ""
	for _, vm := range p.Messages {
		if vm != nil {
			msg = vm.Message
			break
		}
	}

	base := gstatus.New(mapper.PayloadStatus(m, p).GRPC, msg)

	br := &errdetails.BadRequest{FieldViolations: violations(p.Messages)}
	if len(br.FieldViolations) == 0 {
		return base
	}

	// Try to attach violations as details. If it fails — return base.
	if with, err := base.WithDetails(br); err == nil {
		return with
	}

	return base
}

// ExtractViolations pulls google.rpc.BadRequest field violations out of a
// gRPC error, if present. Useful in tests and client code.
func ExtractViolations(err error) ([]*errdetails.BadRequest_FieldViolation, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, a := range st.Proto().GetDetails() {
		br := &errdetails.BadRequest{}
		if !a.MessageIs(br) {
			continue
		}
		if uerr := a.UnmarshalTo(br); uerr == nil {
			return br.FieldViolations, true
		}
	}
	return nil, false
}

func violations(msgs []*dpayload.ValidationMessage) []*errdetails.BadRequest_FieldViolation {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]*errdetails.BadRequest_FieldViolation, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, &errdetails.BadRequest_FieldViolation{
			Field:       m.Field,
			Description: m.Message,
		})
	}
	return out
}
