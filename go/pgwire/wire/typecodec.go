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

// DataType identifies a semantic PostgreSQL type by its pg_type OID and
// canonical name. The zero value means "unspecified"; it encodes as OID 0
// in type lists, which lets the server infer the type.
type DataType struct {
	OID  uint32
	Name string
}

// IsZero reports whether t is the unspecified type.
func (t DataType) IsZero() bool {
	return t.OID == 0 && t.Name == ""
}

// TypeCodec is the injected type catalog and per-type (de)serializer the
// codec consults for OID resolution and binary format negotiation. It is
// a capability, not global state: callers may run multiple catalogs side
// by side (for example, for servers with different type inventories).
//
// Implementations must be safe for concurrent use; the codec only ever
// performs read-style lookups against them.
type TypeCodec interface {
	// TypeForOID resolves a type OID from a RowDescription. An OID the
	// catalog does not know is an error, never a silent fallback.
	TypeForOID(oid uint32) (DataType, error)

	// OIDForType returns the OID to put on the wire for t.
	OIDForType(t DataType) uint32

	// SupportsBinary reports whether values of type t can travel in
	// binary format. This is the single source of truth for format
	// negotiation, consulted symmetrically by row decoding and by
	// parameter and column-format encoding.
	SupportsBinary(t DataType) bool

	// EncodeBinary renders value in the binary format of type t.
	// It returns an error wrapping ErrBinaryUnsupported when the
	// type/value pairing has no binary encoding.
	EncodeBinary(t DataType, value any) ([]byte, error)

	// DecodeBinary interprets src as a binary-format value of type t.
	DecodeBinary(t DataType, src []byte) (any, error)
}
