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
	"errors"
	"fmt"
	"strings"

	"rivaas.dev/endpoint/validate"
)

// ErrMissing is returned when no value is present at the wire location a
// codec reads from. It is the one failure the schema default can correct:
// a codec with a declared default substitutes it for a missing value.
var ErrMissing = errors.New("no value provided")

// MultipleError is returned when a single-valued codec finds more than one
// value. It carries every value found for diagnostics.
//
// Use [errors.As] to check for MultipleError:
//
//	var multi *MultipleError
//	if errors.As(err, &multi) {
//	    fmt.Printf("got %d values\n", len(multi.Values))
//	}
type MultipleError struct {
	Values []any // All values found at the wire location
}

// Error returns a formatted error message.
func (e *MultipleError) Error() string {
	rendered := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		rendered = append(rendered, fmt.Sprint(v))
	}

	return fmt.Sprintf("expected a single value, got %d: [%s]", len(e.Values), strings.Join(rendered, ", "))
}

// Code returns a stable machine-readable error code.
func (e *MultipleError) Code() string {
	return "multiple_values"
}

// HTTPStatus reports the HTTP status conventionally associated with a
// malformed request value.
func (e *MultipleError) HTTPStatus() int {
	return 400 // Bad Request
}

// MismatchError is returned when a raw value does not have the shape the
// codec expects (e.g. "abc" where an integer is required).
type MismatchError struct {
	Expected string // What the codec expects (e.g. "integer")
	Actual   string // The raw value found
}

// Error returns a formatted error message.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %q", e.Expected, e.Actual)
}

// Code returns a stable machine-readable error code.
func (e *MismatchError) Code() string {
	return "type_mismatch"
}

// HTTPStatus reports the HTTP status conventionally associated with a
// malformed request value.
func (e *MismatchError) HTTPStatus() int {
	return 400 // Bad Request
}

// InvalidValueError is returned when a value decoded successfully but was
// rejected by the codec's validator. It retains every violation.
type InvalidValueError struct {
	Fields []validate.FieldError // All validation violations
}

// Error returns a formatted error message.
func (e *InvalidValueError) Error() string {
	return validate.Error{Fields: e.Fields}.Error()
}

// Unwrap returns [validate.ErrValidation] for errors.Is compatibility.
func (e *InvalidValueError) Unwrap() error {
	return validate.ErrValidation
}

// Code returns a stable machine-readable error code.
func (e *InvalidValueError) Code() string {
	return "invalid_value"
}

// HTTPStatus reports the HTTP status conventionally associated with a
// rejected-but-well-formed value.
func (e *InvalidValueError) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Details returns the violations for structured error rendering.
func (e *InvalidValueError) Details() any {
	return e.Fields
}

// DecodeError wraps an underlying parse or runtime fault together with the
// original raw representation, for diagnostics. Panics raised inside a
// decode function surface as a DecodeError, never as a panic of the caller.
type DecodeError struct {
	Original string // The raw value that failed to decode
	Err      error  // Underlying cause
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	original := e.Original
	if len(original) > 128 {
		original = original[:128] + "…"
	}

	return fmt.Sprintf("failed to decode %q: %v", original, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Code returns a stable machine-readable error code.
func (e *DecodeError) Code() string {
	return "decode_error"
}

// HTTPStatus reports the HTTP status conventionally associated with a
// malformed request value.
func (e *DecodeError) HTTPStatus() int {
	return 400 // Bad Request
}

// IsFailure reports whether err belongs to the decode failure taxonomy.
// Errors outside the taxonomy returned by raw decode functions are wrapped
// into a [DecodeError] at the mapping boundary, so interpreter code only
// ever observes taxonomy errors.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMissing) {
		return true
	}

	var (
		multi    *MultipleError
		mismatch *MismatchError
		invalid  *InvalidValueError
		decode   *DecodeError
	)

	return errors.As(err, &multi) ||
		errors.As(err, &mismatch) ||
		errors.As(err, &invalid) ||
		errors.As(err, &decode)
}

// originalString renders a raw value for inclusion in a [DecodeError].
func originalString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}

	return fmt.Sprint(v)
}
