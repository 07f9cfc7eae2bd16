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

// Package typemap provides a built-in, text-only type catalog covering
// the standard pg_type inventory. It resolves OIDs to named types in
// both directions but declares binary support for nothing, so every
// value travels in text format. Callers that want binary round-trips
// inject a richer wire.TypeCodec (see the pgxtypes package).
package typemap

import (
	"fmt"

	"github.com/pgwirekit/pgwire/go/pgwire/wire"
)

// UnknownOIDError reports a type OID absent from the catalog.
type UnknownOIDError struct {
	OID uint32
}

func (e *UnknownOIDError) Error() string {
	return fmt.Sprintf("unknown type OID %d", e.OID)
}

// Map is an immutable OID <-> name catalog implementing wire.TypeCodec.
// The zero value is not usable; construct one with New. A Map is safe
// for concurrent lookups from any number of connections.
type Map struct {
	byOID  map[uint32]string
	byName map[string]uint32
}

// New returns a catalog of the built-in pg_type entries.
func New() *Map {
	m := &Map{
		byOID:  make(map[uint32]string, len(builtinTypes)),
		byName: make(map[string]uint32, len(builtinTypes)),
	}
	for oid, name := range builtinTypes {
		m.byOID[oid] = name
		m.byName[name] = oid
	}
	return m
}

// TypeForOID implements wire.TypeCodec.
func (m *Map) TypeForOID(oid uint32) (wire.DataType, error) {
	name, ok := m.byOID[oid]
	if !ok {
		return wire.DataType{}, &UnknownOIDError{OID: oid}
	}
	return wire.DataType{OID: oid, Name: name}, nil
}

// OIDForType implements wire.TypeCodec. A type constructed by name
// alone resolves through the catalog; an unknown name yields OID 0,
// leaving type inference to the server.
func (m *Map) OIDForType(t wire.DataType) uint32 {
	if t.OID != 0 {
		return t.OID
	}
	return m.byName[t.Name]
}

// SupportsBinary implements wire.TypeCodec. The built-in catalog is
// text-only.
func (m *Map) SupportsBinary(wire.DataType) bool {
	return false
}

// EncodeBinary implements wire.TypeCodec.
func (m *Map) EncodeBinary(t wire.DataType, _ any) ([]byte, error) {
	return nil, fmt.Errorf("type %s: %w", t.Name, wire.ErrBinaryUnsupported)
}

// DecodeBinary implements wire.TypeCodec.
func (m *Map) DecodeBinary(t wire.DataType, _ []byte) (any, error) {
	return nil, fmt.Errorf("type %s: %w", t.Name, wire.ErrBinaryUnsupported)
}

var _ wire.TypeCodec = (*Map)(nil)
