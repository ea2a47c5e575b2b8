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

package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is a sentinel error for validation failures.
// Use errors.Is(err, ErrValidation) to check if an error is a validation error.
var ErrValidation = errors.New("validation")

// FieldError represents a single validation error for a specific field.
// Multiple FieldError values are collected in an [Error].
//
// Example:
//
//	err := FieldError{
//	    Path:    "email",
//	    Code:    "rule.required",
//	    Message: "is required",
//	}
type FieldError struct {
	Path    string         `json:"path"`           // Value path (e.g., "items.2.price"); empty for scalar values
	Code    string         `json:"code"`           // Stable code (e.g., "rule.min", "tag.required", "schema")
	Message string         `json:"message"`        // Human-readable message
	Meta    map[string]any `json:"meta,omitempty"` // Additional metadata (rule parameter, offending value, etc.)
}

// Error returns a formatted error message as "path: message" or just "message" if path is empty.
func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (e FieldError) Unwrap() error {
	return ErrValidation
}

// HTTPStatus reports the HTTP status conventionally associated with a
// rejected-but-well-formed value.
func (e FieldError) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Error represents validation errors for one or more fields.
// Error implements error and can be used with errors.Is/errors.As.
//
// Example:
//
//	var verr *Error
//	if errors.As(err, &verr) {
//	    for _, fieldErr := range verr.Fields {
//	        fmt.Printf("%s: %s\n", fieldErr.Path, fieldErr.Message)
//	    }
//	}
//
//nolint:recvcheck // Error must use value receiver for error interface compatibility, mutating methods use pointer
type Error struct {
	Fields []FieldError `json:"errors"` // List of field errors
}

// Error returns a formatted error message.
func (v Error) Error() string {
	if len(v.Fields) == 0 {
		return ""
	}
	if len(v.Fields) == 1 {
		return v.Fields[0].Error()
	}

	msgs := make([]string, 0, len(v.Fields))
	for _, err := range v.Fields {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (v Error) Unwrap() error {
	return ErrValidation
}

// HTTPStatus reports the HTTP status conventionally associated with a
// rejected-but-well-formed value.
func (v Error) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Details returns the field errors for structured error rendering.
func (v Error) Details() any {
	return v.Fields
}

// Code returns a stable machine-readable error code.
func (v Error) Code() string {
	return "validation_error"
}

// Add adds a new [FieldError] to the collection.
func (v *Error) Add(path, code, message string, meta map[string]any) {
	v.Fields = append(v.Fields, FieldError{
		Path:    path,
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// HasErrors returns true if there are any errors.
func (v Error) HasErrors() bool {
	return len(v.Fields) > 0
}

// HasCode returns true if any error has the given code.
func (v Error) HasCode(code string) bool {
	for _, e := range v.Fields {
		if e.Code == code {
			return true
		}
	}

	return false
}

// Has checks if a specific field path has an error.
func (v Error) Has(path string) bool {
	for _, f := range v.Fields {
		if f.Path == path {
			return true
		}
	}

	return false
}

// Sort sorts errors by path, then by code.
// Sort modifies the error in place and is useful for consistent error presentation.
func (v *Error) Sort() {
	sort.Slice(v.Fields, func(i, j int) bool {
		if v.Fields[i].Path != v.Fields[j].Path {
			return v.Fields[i].Path < v.Fields[j].Path
		}

		return v.Fields[i].Code < v.Fields[j].Code
	})
}
