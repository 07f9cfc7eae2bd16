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

import (
	"encoding/binary"
	"fmt"
)

// OIDs the fake catalog knows.
const (
	oidBool = 16
	oidInt4 = 23
	oidText = 25
)

// fakeCodec is a test double for TypeCodec. It resolves three types and
// implements binary encoding only for int4 (values of type int) and
// binary decoding for int4 and bool.
type fakeCodec struct {
	// binaryOIDs lists the types the codec claims binary support for.
	binaryOIDs map[uint32]bool
}

func newFakeCodec(binaryOIDs ...uint32) *fakeCodec {
	c := &fakeCodec{binaryOIDs: make(map[uint32]bool)}
	for _, oid := range binaryOIDs {
		c.binaryOIDs[oid] = true
	}
	return c
}

var fakeTypeNames = map[uint32]string{
	oidBool: "bool",
	oidInt4: "int4",
	oidText: "text",
}

func (c *fakeCodec) TypeForOID(oid uint32) (DataType, error) {
	name, ok := fakeTypeNames[oid]
	if !ok {
		return DataType{}, fmt.Errorf("unknown type OID %d", oid)
	}
	return DataType{OID: oid, Name: name}, nil
}

func (c *fakeCodec) OIDForType(t DataType) uint32 {
	return t.OID
}

func (c *fakeCodec) SupportsBinary(t DataType) bool {
	return c.binaryOIDs[t.OID]
}

func (c *fakeCodec) EncodeBinary(t DataType, value any) ([]byte, error) {
	if t.OID == oidInt4 {
		if v, ok := value.(int); ok {
			var buf [4]byte
			binary.BigEndian.PutUint32(buf[:], uint32(int32(v)))
			return buf[:], nil
		}
	}
	return nil, fmt.Errorf("type %s with value %T: %w", t.Name, value, ErrBinaryUnsupported)
}

func (c *fakeCodec) DecodeBinary(t DataType, src []byte) (any, error) {
	switch t.OID {
	case oidInt4:
		if len(src) != 4 {
			return nil, fmt.Errorf("int4 binary value has %d bytes", len(src))
		}
		return int32(binary.BigEndian.Uint32(src)), nil
	case oidBool:
		if len(src) != 1 {
			return nil, fmt.Errorf("bool binary value has %d bytes", len(src))
		}
		return src[0] == 1, nil
	default:
		return nil, fmt.Errorf("no binary decoder for type %s", t.Name)
	}
}
