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
	"cmp"
	"fmt"
	"regexp"
	"strings"
)

// Validator is a composable validation rule over values of type A.
// It returns the list of violations; an empty (or nil) list means the value
// passed. A nil Validator accepts every value.
//
// Validators are pure and hold no mutable state; they are freely shared
// across goroutines.
type Validator[A any] func(A) []FieldError

// Validate runs the validator against a value. It is nil-safe: a nil
// validator accepts everything.
func (v Validator[A]) Validate(a A) []FieldError {
	if v == nil {
		return nil
	}

	return v(a)
}

// And combines this validator with others. All validators run and the
// result is the union of every violation, not just the first.
//
// Example:
//
//	port := validate.Min(1).And(validate.Max(65535))
func (v Validator[A]) And(others ...Validator[A]) Validator[A] {
	return func(a A) []FieldError {
		fields := v.Validate(a)
		for _, other := range others {
			fields = append(fields, other.Validate(a)...)
		}

		return fields
	}
}

// Contramap adapts a validator for type A into a validator for type B using
// a projection from B to A. This is how validators travel across codec
// mappings: the rule stays written against the type it understands.
//
// Example:
//
//	nonEmptyName := validate.Contramap(validate.NonEmpty(), func(u User) string { return u.Name })
func Contramap[A, B any](v Validator[A], f func(B) A) Validator[B] {
	if v == nil {
		return nil
	}

	return func(b B) []FieldError {
		return v(f(b))
	}
}

// Rule builds a validator from a predicate. The code and message describe
// the violation when the predicate reports false.
func Rule[A any](predicate func(A) bool, code, message string) Validator[A] {
	return func(a A) []FieldError {
		if predicate(a) {
			return nil
		}

		return []FieldError{{Code: code, Message: message}}
	}
}

// Min validates that a value is greater than or equal to the bound.
func Min[A cmp.Ordered](bound A) Validator[A] {
	return func(a A) []FieldError {
		if a >= bound {
			return nil
		}

		return []FieldError{{
			Code:    "rule.min",
			Message: fmt.Sprintf("must be at least %v", bound),
			Meta:    map[string]any{"min": bound, "value": a},
		}}
	}
}

// Max validates that a value is less than or equal to the bound.
func Max[A cmp.Ordered](bound A) Validator[A] {
	return func(a A) []FieldError {
		if a <= bound {
			return nil
		}

		return []FieldError{{
			Code:    "rule.max",
			Message: fmt.Sprintf("must be at most %v", bound),
			Meta:    map[string]any{"max": bound, "value": a},
		}}
	}
}

// NonEmpty validates that a string is not empty after trimming whitespace.
func NonEmpty() Validator[string] {
	return func(s string) []FieldError {
		if strings.TrimSpace(s) != "" {
			return nil
		}

		return []FieldError{{Code: "rule.non_empty", Message: "must not be empty"}}
	}
}

// MaxLen validates that a string is at most n bytes long.
func MaxLen(n int) Validator[string] {
	return func(s string) []FieldError {
		if len(s) <= n {
			return nil
		}

		return []FieldError{{
			Code:    "rule.max_len",
			Message: fmt.Sprintf("must be at most %d characters", n),
			Meta:    map[string]any{"max_len": n, "len": len(s)},
		}}
	}
}

// Pattern validates that a string matches the regular expression.
func Pattern(re *regexp.Regexp) Validator[string] {
	return func(s string) []FieldError {
		if re.MatchString(s) {
			return nil
		}

		return []FieldError{{
			Code:    "rule.pattern",
			Message: fmt.Sprintf("must match %s", re.String()),
			Meta:    map[string]any{"pattern": re.String(), "value": s},
		}}
	}
}

// OneOf validates that a value is one of the allowed values. The encode
// function renders values in the violation message, so enum types with
// opaque representations still produce readable errors.
//
// Example:
//
//	color := validate.OneOf(Color.String, Red, Green, Blue)
func OneOf[A comparable](encode func(A) string, allowed ...A) Validator[A] {
	return func(a A) []FieldError {
		for _, candidate := range allowed {
			if a == candidate {
				return nil
			}
		}

		rendered := make([]string, 0, len(allowed))
		for _, candidate := range allowed {
			rendered = append(rendered, encode(candidate))
		}

		return []FieldError{{
			Code:    "rule.one_of",
			Message: fmt.Sprintf("must be one of [%s], got %q", strings.Join(rendered, ", "), encode(a)),
			Meta:    map[string]any{"allowed": rendered, "value": encode(a)},
		}}
	}
}
