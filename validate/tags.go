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
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// tagValidator is shared across all Tags instantiations; go-playground's
// validator caches struct metadata internally and is safe for concurrent use.
var tagValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Tags returns a validator for struct type T driven by `validate` struct
// tags, using go-playground/validator.
//
// Example:
//
//	type CreateUser struct {
//	    Email string `validate:"required,email"`
//	    Age   int    `validate:"gte=0,lte=150"`
//	}
//
//	v := validate.Tags[CreateUser]()
//	fields := v.Validate(CreateUser{Age: -1})
func Tags[T any]() Validator[T] {
	return func(value T) []FieldError {
		err := tagValidator().Struct(value)
		if err == nil {
			return nil
		}

		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			// Non-struct types reach here; treat as pass rather than fault.
			return nil
		}

		fields := make([]FieldError, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, FieldError{
				Path:    tagPath(e.Namespace()),
				Code:    "tag." + e.Tag(),
				Message: tagMessage(e),
				Meta: map[string]any{
					"tag":   e.Tag(),
					"param": e.Param(),
					"value": fmt.Sprint(e.Value()),
				},
			})
		}

		return fields
	}
}

// tagPath strips the leading struct type name from a namespace like
// "CreateUser.Address.City", yielding "Address.City".
func tagPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}

// tagMessage renders a human-readable message for common tags.
func tagMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "len":
		return fmt.Sprintf("must have length %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "uuid":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %q validation", e.Tag())
	}
}
