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

// Package pgxtypes adapts a pgtype.Map from jackc/pgx into a
// wire.TypeCodec, giving the codec real binary (de)serialization for
// every type pgtype knows. Each Codec wraps its own pgtype.Map, so
// catalogs for servers with different type inventories can coexist.
package pgxtypes

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgwirekit/pgwire/go/pgwire/wire"
)

// Codec implements wire.TypeCodec on top of a pgtype.Map.
type Codec struct {
	m *pgtype.Map
}

// New returns a Codec over the default pgtype catalog.
func New() *Codec {
	return &Codec{m: pgtype.NewMap()}
}

// NewWithMap returns a Codec over a caller-customized pgtype.Map, for
// example one extended with server-specific types.
func NewWithMap(m *pgtype.Map) *Codec {
	return &Codec{m: m}
}

// TypeForOID implements wire.TypeCodec.
func (c *Codec) TypeForOID(oid uint32) (wire.DataType, error) {
	t, ok := c.m.TypeForOID(oid)
	if !ok {
		return wire.DataType{}, fmt.Errorf("type OID %d not registered in pgtype map", oid)
	}
	return wire.DataType{OID: t.OID, Name: t.Name}, nil
}

// OIDForType implements wire.TypeCodec.
func (c *Codec) OIDForType(t wire.DataType) uint32 {
	if t.OID != 0 {
		return t.OID
	}
	if pt, ok := c.m.TypeForName(t.Name); ok {
		return pt.OID
	}
	return 0
}

// SupportsBinary implements wire.TypeCodec.
func (c *Codec) SupportsBinary(t wire.DataType) bool {
	pt, ok := c.m.TypeForOID(t.OID)
	return ok && pt.Codec.FormatSupported(pgtype.BinaryFormatCode)
}

// EncodeBinary implements wire.TypeCodec. A value pgtype cannot plan a
// binary encoding for reports wire.ErrBinaryUnsupported, which drops
// parameter encoding back to text format.
func (c *Codec) EncodeBinary(t wire.DataType, value any) ([]byte, error) {
	plan := c.m.PlanEncode(t.OID, pgtype.BinaryFormatCode, value)
	if plan == nil {
		return nil, fmt.Errorf("type %s with value %T: %w", t.Name, value, wire.ErrBinaryUnsupported)
	}
	buf, err := plan.Encode(value, nil)
	if err != nil {
		return nil, fmt.Errorf("encode %T as binary %s: %w", value, t.Name, err)
	}
	return buf, nil
}

// DecodeBinary implements wire.TypeCodec.
func (c *Codec) DecodeBinary(t wire.DataType, src []byte) (any, error) {
	pt, ok := c.m.TypeForOID(t.OID)
	if !ok {
		return nil, fmt.Errorf("type OID %d not registered in pgtype map", t.OID)
	}
	v, err := pt.Codec.DecodeValue(c.m, t.OID, pgtype.BinaryFormatCode, src)
	if err != nil {
		return nil, fmt.Errorf("decode binary %s: %w", t.Name, err)
	}
	return v, nil
}

var _ wire.TypeCodec = (*Codec)(nil)
