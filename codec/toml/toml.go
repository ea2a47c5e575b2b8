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

// Package toml provides a TOML body codec for endpoint descriptions.
//
// This package extends rivaas.dev/endpoint/codec with TOML payload support,
// using github.com/BurntSushi/toml for parsing.
//
// Example:
//
//	type Config struct {
//	    Name string `toml:"name"`
//	}
//
//	body := endpoint.BodyOf(toml.Of[Config]())
package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"rivaas.dev/endpoint/codec"
)

// Of returns a body codec that decodes TOML payloads into T.
//
// Errors:
//   - [codec.ErrMissing]: the payload is empty
//   - [*codec.DecodeError]: the payload is not valid TOML for T
func Of[T any]() codec.Codec[[]byte, T] {
	return codec.Codec[[]byte, T]{
		Mapping: codec.NewMapping(
			func(b []byte) (T, error) {
				var value T
				if len(bytes.TrimSpace(b)) == 0 {
					return value, codec.ErrMissing
				}
				if err := toml.Unmarshal(b, &value); err != nil {
					return value, &codec.DecodeError{Original: string(b), Err: err}
				}

				return value, nil
			},
			func(value T) []byte {
				var buf bytes.Buffer
				if err := toml.NewEncoder(&buf).Encode(value); err != nil {
					panic(fmt.Sprintf("toml: encode of %T failed: %v", value, err))
				}

				return buf.Bytes()
			},
		),
		Format: codec.FormatTOML,
	}
}
