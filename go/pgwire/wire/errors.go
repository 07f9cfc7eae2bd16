// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import "errors"

var (
	// ErrMalformed reports a message whose framing was intact but whose
	// payload violates the expected sub-format: a missing string
	// terminator, a truncated field, a column count mismatch, or a
	// non-numeric row count where a number is required.
	ErrMalformed = errors.New("malformed protocol message")

	// ErrUnsupportedValue reports a parameter value for which no wire
	// representation exists. This is a programming error on the caller's
	// side, not a protocol condition.
	ErrUnsupportedValue = errors.New("parameter value has no wire representation")

	// ErrBinaryUnsupported is returned by TypeCodec implementations when
	// a type/value pairing cannot be encoded in binary format. Parameter
	// encoding treats it as a signal to fall back to text format.
	ErrBinaryUnsupported = errors.New("binary format not supported for type")
)
