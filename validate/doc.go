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

// Package validate provides composable, typed validation rules for decoded
// endpoint values.
//
// A [Validator] is a pure function from a value to a list of [FieldError]
// values; an empty list means the value passed. Validators compose with
// logical AND and can be adapted across type boundaries with [Contramap],
// which is how a validator written for a high-level type is reused by the
// codec that produces it.
//
// Basic usage:
//
//	age := validate.Min(0).And(validate.Max(150))
//	if fields := age.Validate(42); len(fields) > 0 {
//	    // handle violations
//	}
//
// Struct validation via go-playground/validator tags:
//
//	type CreateUser struct {
//	    Email string `validate:"required,email"`
//	    Age   int    `validate:"gte=0,lte=150"`
//	}
//
//	v := validate.Tags[CreateUser]()
//
// Raw JSON document validation via JSON Schema:
//
//	v, err := validate.Schema("user.json", schemaJSON)
package validate
