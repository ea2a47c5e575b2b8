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

package endpoint

import "fmt"

// ExchangeError describes a failed request/response exchange: the request
// could not be sent, or the response could not be decoded against the
// endpoint's descriptions. It carries the method and URL for diagnostics
// and wraps the underlying cause.
type ExchangeError struct {
	Method string
	URL    string
	Err    error
}

// Error returns a formatted error message.
func (e *ExchangeError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ExchangeError) Unwrap() error {
	return e.Err
}
