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
	"context"
	"net/http"

	"rivaas.dev/endpoint"
)

// Buffer accumulates a response before it is written to a transport. It
// implements endpoint.ResponseSink; after [Exchange] returns, StatusCode
// is always set and adapters write the fields out verbatim.
type Buffer struct {
	StatusCode int
	Header     http.Header
	Body       *endpoint.Body

	statusSet bool
}

// NewBuffer creates an empty response buffer.
func NewBuffer() *Buffer {
	return &Buffer{Header: http.Header{}}
}

// SetStatus records the response status code.
func (b *Buffer) SetStatus(code int) {
	b.StatusCode = code
	b.statusSet = true
}

// AddHeader records response header values.
func (b *Buffer) AddHeader(name string, values []string) {
	for _, v := range values {
		b.Header.Add(name, v)
	}
}

// SetBody records the response body.
func (b *Buffer) SetBody(body endpoint.Body) {
	b.Body = &body
}

// defaultStatus fills in a fallback when the response description did not
// set a status.
func (b *Buffer) defaultStatus(code int) {
	if !b.statusSet {
		b.StatusCode = code
		b.statusSet = true
	}
}

// Exchange runs one full server-side exchange: decode the request, invoke
// impl, encode the result. It never fails; every path produces a complete
// response buffer.
//
//   - an undecodable request is answered with an RFC 9457 problem document
//     at the status the failure taxonomy assigns
//   - a [Fail]-wrapped domain failure is encoded through the endpoint's
//     failure description, defaulting to 400 when the description carries
//     no status
//   - any other implementation error is answered with a generic 500
//     problem document, its detail withheld from the wire
//
// A success response defaults to 200 when the description carries no
// status.
func Exchange[I, E, O any](ctx context.Context, ep endpoint.Endpoint[I, E, O], impl func(context.Context, I) (O, error), src endpoint.RequestSource, logger endpoint.Logger) *Buffer {
	buf := NewBuffer()

	in, err := ep.DecodeRequest(src)
	if err != nil {
		logger.Debug("request decode failed", "method", ep.Method(), "path", ep.PathTemplate(), "error", err)
		writeProblem(buf, err)

		return buf
	}

	out, err := impl(ctx, in)
	if err != nil {
		if failure, ok := asFailure[E](err); ok {
			ep.EncodeErrorResponse(failure, buf)
			buf.defaultStatus(http.StatusBadRequest)

			return buf
		}

		logger.Error("handler failed", "method", ep.Method(), "path", ep.PathTemplate(), "error", err)
		writeInternalProblem(buf)

		return buf
	}

	ep.EncodeResponse(out, buf)
	buf.defaultStatus(http.StatusOK)

	return buf
}
