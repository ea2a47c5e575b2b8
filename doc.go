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

// Package endpoint provides typed, composable descriptions of HTTP
// endpoints that are written once and interpreted many times: clients use
// a description to build requests and parse responses, servers use the
// same description to parse requests and build responses, and both sides
// are guaranteed to agree because there is only one description.
//
// A description is assembled from small pieces. Each piece states where a
// value lives on the wire (a path segment, a query parameter, a header, a
// cookie, the body, the status code) and which codec converts between the
// raw wire shape and the typed value:
//
//	type User struct {
//	    ID   int    `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	getUser := endpoint.New(
//	    endpoint.Get(endpoint.Lead(
//	        endpoint.Static("users"),
//	        endpoint.PathVar("id", codec.Int()),
//	    )),
//	    endpoint.OK(endpoint.JSONResponse[User]()),
//	    endpoint.Status(404, endpoint.TextResponse()),
//	    endpoint.WithOperationID("getUser"),
//	)
//
// Descriptions compose with [Zip], [Zip2], [And] and [Lead]; values
// transform with [MapRequest] and [MapResponse] through the bidirectional
// mappings of package codec. Decoding failures are ordinary Go errors from
// the codec failure taxonomy, so callers dispatch on them with errors.Is
// and errors.As.
//
// Transport adapters live in the client and server subpackages; the
// interfaces they implement ([URLSink], [EntitySink], [RequestSource],
// [ResponseSource], [ResponseSink]) are exported so additional transports
// can be plugged in without touching descriptions.
package endpoint
