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

import (
	"net/http"
	"strings"
)

// Docs carries documentation metadata for an endpoint. It has no effect on
// the wire behavior.
type Docs struct {
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Deprecated  bool
}

// Option configures endpoint documentation metadata.
type Option func(*Docs)

// WithOperationID sets a stable identifier for the endpoint, used for span
// names and documentation.
func WithOperationID(id string) Option {
	return func(d *Docs) {
		d.OperationID = id
	}
}

// WithSummary sets a one-line summary.
func WithSummary(summary string) Option {
	return func(d *Docs) {
		d.Summary = summary
	}
}

// WithDescription sets a longer description.
func WithDescription(description string) Option {
	return func(d *Docs) {
		d.Description = description
	}
}

// WithTags sets grouping tags.
func WithTags(tags ...string) Option {
	return func(d *Docs) {
		d.Tags = tags
	}
}

// Deprecated marks the endpoint as deprecated.
func Deprecated() Option {
	return func(d *Docs) {
		d.Deprecated = true
	}
}

// Endpoint ties together a request description, a success response
// description and a failure response description. The same value drives
// all four interpretations: clients build requests and parse responses,
// servers parse requests and build responses.
//
// I is the input carried by the request, O the success output, E the
// domain failure. Endpoints that cannot fail use [None] for E together
// with [VoidResponse].
//
// Example:
//
//	userByID := endpoint.New(
//	    endpoint.Get(endpoint.Lead(endpoint.Static("users"), endpoint.PathVar("id", codec.Int()))),
//	    endpoint.OK(endpoint.JSONResponse[User]()),
//	    endpoint.Status(404, endpoint.TextResponse()),
//	    endpoint.WithOperationID("getUser"),
//	)
type Endpoint[I, E, O any] struct {
	request Request[I]
	success Response[O]
	failure Response[E]
	docs    Docs
}

// New assembles an endpoint from its three descriptions.
func New[I, E, O any](request Request[I], success Response[O], failure Response[E], opts ...Option) Endpoint[I, E, O] {
	e := Endpoint[I, E, O]{
		request: request,
		success: success,
		failure: failure,
	}
	for _, opt := range opts {
		opt(&e.docs)
	}

	return e
}

// Method returns the HTTP method of the request description, defaulting to
// GET when none was fixed.
func (e Endpoint[I, E, O]) Method() string {
	if e.request.method == "" {
		return http.MethodGet
	}

	return e.request.method
}

// Docs returns the documentation metadata.
func (e Endpoint[I, E, O]) Docs() Docs {
	return e.docs
}

// PathTemplate renders the request path with variables in "{name}" form,
// as understood by net/http's ServeMux patterns.
func (e Endpoint[I, E, O]) PathTemplate() string {
	return "/" + strings.Join(templateSegments(e.request.tree, func(name string) string {
		return "{" + name + "}"
	}), "/")
}

// PathTemplateColon renders the request path with variables in ":name"
// form, as understood by gin and echo routers.
func (e Endpoint[I, E, O]) PathTemplateColon() string {
	return "/" + strings.Join(templateSegments(e.request.tree, func(name string) string {
		return ":" + name
	}), "/")
}

// EncodeRequest writes the input value into the URL and entity sinks.
// Encoding is total; a panic here indicates a defect in the description.
func (e Endpoint[I, E, O]) EncodeRequest(in I, url URLSink, entity EntitySink) {
	buildRequest(e.request.tree, e.request.pack(in), url, entity)
}

// DecodeRequest recovers the input value from an incoming request.
//
// Errors belong to the decode failure taxonomy of package codec, annotated
// with the wire location that failed.
func (e Endpoint[I, E, O]) DecodeRequest(src RequestSource) (I, error) {
	var zero I
	ps, err := parseRequest(e.request.tree, src)
	if err != nil {
		return zero, err
	}

	return e.request.unpack(ps)
}

// EncodeResponse writes a success value into the response sink. Sinks
// whose status is never set should default to 200.
func (e Endpoint[I, E, O]) EncodeResponse(out O, sink ResponseSink) {
	buildResponse(e.success.tree, e.success.pack(out), sink)
}

// EncodeErrorResponse writes a domain failure into the response sink.
// Sinks whose status is never set should default to a non-2xx code so that
// clients dispatch the response to the failure description.
func (e Endpoint[I, E, O]) EncodeErrorResponse(failure E, sink ResponseSink) {
	buildResponse(e.failure.tree, e.failure.pack(failure), sink)
}

// DecodeResponse interprets a received response. A 2xx status selects the
// success description, anything else the failure description; the selected
// description must then parse cleanly or the whole decode fails.
func (e Endpoint[I, E, O]) DecodeResponse(src ResponseSource) (Outcome[E, O], error) {
	status := src.StatusCode()
	if status >= 200 && status < 300 {
		ps, err := parseResponse(e.success.tree, src)
		if err != nil {
			return Outcome[E, O]{}, err
		}
		out, err := e.success.unpack(ps)
		if err != nil {
			return Outcome[E, O]{}, err
		}

		return Success[E, O](status, out), nil
	}

	ps, err := parseResponse(e.failure.tree, src)
	if err != nil {
		return Outcome[E, O]{}, err
	}
	failure, err := e.failure.unpack(ps)
	if err != nil {
		return Outcome[E, O]{}, err
	}

	return Failure[E, O](status, failure), nil
}

// templateSegments collects the path parts of a request tree in order.
func templateSegments(n node, wrap func(string) string) []string {
	switch t := n.(type) {
	case *pairNode:
		return append(templateSegments(t.first, wrap), templateSegments(t.second, wrap)...)
	case staticSegment:
		return []string{t.value}
	case pathCapture:
		return []string{wrap(t.name)}
	default:
		return nil
	}
}
