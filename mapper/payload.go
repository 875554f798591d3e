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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/dpayload"
	"dirpx.dev/dpayload/apis"
	"dirpx.dev/dpayload/code"
)

// PayloadStatus resolves the transport status pair for a payload envelope.
//
// Successful payloads map to 200/OK without consulting the mapper. Failed
// payloads resolve through m from the leading message's code and field —
// message order is meaningful, so the first message decides. A failed
// payload carrying no messages resolves as code "unknown" with no field.
//
// The httpx and grpcx writers both route through this helper; use it
// directly when wiring a transport of your own.
func PayloadStatus(m apis.Mapper, p dpayload.Payload) apis.Status {
	if p.Successful {
		return apis.Status{HTTP: http.StatusOK, GRPC: codes.OK}
	}

	c, field := code.Unknown, ""
	for _, vm := range p.Messages {
		if vm != nil {
			c, field = vm.Code, vm.Field
			break
		}
	}
	return m.Status(c, field)
}
