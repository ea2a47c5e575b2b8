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

import "io"

// Body is an entity payload handed to a sink. Exactly one of Bytes or
// Reader is populated; IsStream distinguishes them so adapters can avoid
// buffering streamed payloads.
type Body struct {
	Bytes       []byte
	Reader      io.Reader
	ContentType string
	IsStream    bool
}

// URLSink receives the address parts of an outgoing request. Implemented by
// transport adapters; the interpreter calls AppendPath in left-to-right
// tree order.
type URLSink interface {
	AppendPath(segment string)
	AddQuery(name string, values []string)
}

// EntitySink receives the entity parts of an outgoing request.
type EntitySink interface {
	AddHeader(name string, values []string)
	AddCookie(name, value string)
	SetBody(body Body)
}

// RequestSource exposes an incoming request to the server-side parser.
// PathVar and Cookie report presence explicitly; the multi-valued accessors
// return nil for absent names.
type RequestSource interface {
	PathVar(name string) (string, bool)
	QueryValues(name string) []string
	HeaderValues(name string) []string
	Cookie(name string) (string, bool)
	BodyBytes() ([]byte, error)
	BodyReader() (io.Reader, error)
}

// ResponseSource exposes a received response to the client-side parser.
type ResponseSource interface {
	StatusCode() int
	HeaderValues(name string) []string
	BodyBytes() ([]byte, error)
	BodyReader() (io.Reader, error)
}

// ResponseSink receives the parts of an outgoing response. Adapters must
// tolerate SetStatus never being called and fall back to their own default.
type ResponseSink interface {
	SetStatus(code int)
	AddHeader(name string, values []string)
	SetBody(body Body)
}
