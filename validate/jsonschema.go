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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema compiles a JSON Schema document and returns a validator for raw
// JSON payloads. The id names the schema in compile errors; any non-empty
// string works.
//
// The returned validator reports one [FieldError] per leaf schema violation,
// with the instance location as the field path.
//
// Example:
//
//	v, err := validate.Schema("user.json", []byte(`{
//	    "type": "object",
//	    "required": ["name"],
//	    "properties": {"name": {"type": "string", "minLength": 1}}
//	}`))
func Schema(id string, schemaJSON []byte) (Validator[[]byte], error) {
	if id == "" {
		id = "schema.json"
	}

	var doc any
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	compiler.AssertContent()
	if err := compiler.AddResource(id, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return func(payload []byte) []FieldError {
		var instance any
		if err := json.Unmarshal(payload, &instance); err != nil {
			return []FieldError{{Code: "schema.unmarshal", Message: err.Error()}}
		}

		err := schema.Validate(instance)
		if err == nil {
			return nil
		}

		if verr, ok := err.(*jsonschema.ValidationError); ok {
			return flattenSchemaError(verr, nil)
		}

		return []FieldError{{Code: "schema", Message: err.Error()}}
	}, nil
}

// MustSchema is like [Schema] but panics on compile errors. Intended for
// schemas embedded in the program, where a compile failure is a defect.
func MustSchema(id string, schemaJSON []byte) Validator[[]byte] {
	v, err := Schema(id, schemaJSON)
	if err != nil {
		panic(fmt.Sprintf("validate: MustSchema(%q): %v", id, err))
	}

	return v
}

// flattenSchemaError collects leaf causes of a validation error into flat
// field errors, one per violated keyword.
func flattenSchemaError(verr *jsonschema.ValidationError, acc []FieldError) []FieldError {
	if len(verr.Causes) == 0 {
		acc = append(acc, FieldError{
			Path:    strings.Join(verr.InstanceLocation, "."),
			Code:    "schema",
			Message: verr.Error(),
		})

		return acc
	}

	for _, cause := range verr.Causes {
		acc = flattenSchemaError(cause, acc)
	}

	return acc
}
