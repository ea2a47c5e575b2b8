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

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONOption configures JSON codec behavior.
type JSONOption func(*jsonConfig)

// jsonConfig holds JSON-specific codec configuration.
type jsonConfig struct {
	disallowUnknown bool
}

// WithDisallowUnknownFields enables strict decoding that fails when the
// payload contains fields not present in the target struct.
func WithDisallowUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.disallowUnknown = true
	}
}

// JSONOf returns a body codec that decodes JSON payloads into T.
//
// Example:
//
//	type CreateUser struct {
//	    Name string `json:"name"`
//	}
//
//	body := endpoint.BodyOf(codec.JSONOf[CreateUser]())
//
// Errors:
//   - [ErrMissing]: the payload is empty
//   - [*DecodeError]: the payload is not valid JSON for T
func JSONOf[T any](opts ...JSONOption) Codec[[]byte, T] {
	cfg := &jsonConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return Codec[[]byte, T]{
		Mapping: NewMapping(
			func(b []byte) (T, error) {
				var value T
				if len(bytes.TrimSpace(b)) == 0 {
					return value, ErrMissing
				}

				dec := json.NewDecoder(bytes.NewReader(b))
				if cfg.disallowUnknown {
					dec.DisallowUnknownFields()
				}
				if err := dec.Decode(&value); err != nil {
					return value, &DecodeError{Original: string(b), Err: err}
				}

				return value, nil
			},
			func(value T) []byte {
				b, err := json.Marshal(value)
				if err != nil {
					// Encode is total for any T an endpoint description may
					// carry; an unmarshalable T is a defect, not a modeled error.
					panic(fmt.Sprintf("codec: JSON encode of %T failed: %v", value, err))
				}

				return b
			},
		),
		Format: FormatJSON,
	}
}
