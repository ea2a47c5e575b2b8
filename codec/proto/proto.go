// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package proto provides a Protocol Buffers body codec for endpoint
// descriptions.
//
// This package extends rivaas.dev/endpoint/codec with protobuf payload
// support, using google.golang.org/protobuf for the wire format.
//
// Example:
//
//	body := endpoint.BodyOf(proto.Of[*pb.CreateUserRequest]())
package proto

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"rivaas.dev/endpoint/codec"
)

// Of returns a body codec that decodes protobuf wire payloads into T.
// T must be a pointer to a generated message type.
//
// An empty payload is a valid encoding of the zero message in the protobuf
// wire format, so absence cannot be detected here; pair the codec with a
// transport that reports missing bodies if that distinction matters.
//
// Errors:
//   - [*codec.DecodeError]: the payload is not a valid wire encoding of T
func Of[T proto.Message]() codec.Codec[[]byte, T] {
	return codec.Codec[[]byte, T]{
		Mapping: codec.NewMapping(
			func(b []byte) (T, error) {
				var zero T
				msg, ok := zero.ProtoReflect().New().Interface().(T)
				if !ok {
					return zero, &codec.DecodeError{
						Original: fmt.Sprintf("%x", b),
						Err:      fmt.Errorf("proto: cannot instantiate %T", zero),
					}
				}
				if err := proto.Unmarshal(b, msg); err != nil {
					return zero, &codec.DecodeError{Original: fmt.Sprintf("%x", b), Err: err}
				}

				return msg, nil
			},
			func(msg T) []byte {
				b, err := proto.Marshal(msg)
				if err != nil {
					panic(fmt.Sprintf("proto: encode of %T failed: %v", msg, err))
				}

				return b
			},
		),
		Format: codec.FormatProto,
	}
}
