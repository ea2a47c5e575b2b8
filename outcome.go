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

// Outcome is the result of a successfully decoded response exchange:
// either the success value or the domain failure, together with the status
// code that selected between them. A transport error or an undecodable
// response never produces an Outcome; those surface as ordinary errors.
type Outcome[E, O any] struct {
	status  int
	ok      bool
	value   O
	failure E
}

// Success wraps a success value.
func Success[E, O any](status int, value O) Outcome[E, O] {
	return Outcome[E, O]{status: status, ok: true, value: value}
}

// Failure wraps a domain failure.
func Failure[E, O any](status int, failure E) Outcome[E, O] {
	return Outcome[E, O]{status: status, failure: failure}
}

// StatusCode returns the HTTP status that selected this outcome.
func (o Outcome[E, O]) StatusCode() int {
	return o.status
}

// IsSuccess reports whether the outcome carries a success value.
func (o Outcome[E, O]) IsSuccess() bool {
	return o.ok
}

// Value returns the success value, if any.
func (o Outcome[E, O]) Value() (O, bool) {
	return o.value, o.ok
}

// Failure returns the domain failure, if any.
func (o Outcome[E, O]) Failure() (E, bool) {
	return o.failure, !o.ok
}
