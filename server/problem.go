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

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"rivaas.dev/endpoint"
	"rivaas.dev/endpoint/codec"
)

// problemContentType is the RFC 9457 media type.
const problemContentType = "application/problem+json"

// problem is an RFC 9457 problem document, extended with a stable machine
// code and structured violation details.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Code   string `json:"code,omitempty"`
	Errors any    `json:"errors,omitempty"`
}

// writeProblem renders a request decode failure as a problem document. The
// status and code come from the failure taxonomy when the error provides
// them.
func writeProblem(buf *Buffer, err error) {
	p := problem{
		Status: http.StatusBadRequest,
		Detail: err.Error(),
	}
	if errors.Is(err, codec.ErrMissing) {
		p.Code = "missing_value"
	}

	var withStatus interface {
		error
		HTTPStatus() int
	}
	if errors.As(err, &withStatus) {
		p.Status = withStatus.HTTPStatus()
	}

	var withCode interface {
		error
		Code() string
	}
	if errors.As(err, &withCode) {
		p.Code = withCode.Code()
	}

	var withDetails interface {
		error
		Details() any
	}
	if errors.As(err, &withDetails) {
		p.Errors = withDetails.Details()
	}

	p.Title = http.StatusText(p.Status)
	writeProblemBody(buf, p)
}

// writeInternalProblem renders an unexpected implementation error without
// leaking its message.
func writeInternalProblem(buf *Buffer) {
	writeProblemBody(buf, problem{
		Title:  http.StatusText(http.StatusInternalServerError),
		Status: http.StatusInternalServerError,
		Code:   "internal_error",
	})
}

// writeProblemBody serializes the document into the buffer.
func writeProblemBody(buf *Buffer, p problem) {
	body, err := json.Marshal(p)
	if err != nil {
		// Details carried unserializable values; degrade to the bare
		// document rather than failing the response.
		p.Errors = nil
		body, _ = json.Marshal(p)
	}

	buf.SetStatus(p.Status)
	buf.SetBody(endpoint.Body{Bytes: body, ContentType: problemContentType})
}
