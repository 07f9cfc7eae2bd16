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

package command

import "github.com/pgwirekit/pgwire/go/pgwire/wire"

// lenientCodec wraps a TypeCodec so that unknown OIDs resolve to a
// placeholder type instead of failing. A dump should show every message
// it can, even for types the catalog has never heard of; the strict
// unresolved-OID behavior belongs to drivers, not to a debugging tool.
type lenientCodec struct {
	wire.TypeCodec
}

// Lenient returns codec with unknown-OID resolution softened to a
// placeholder "unknown" type.
func Lenient(codec wire.TypeCodec) wire.TypeCodec {
	return lenientCodec{TypeCodec: codec}
}

func (c lenientCodec) TypeForOID(oid uint32) (wire.DataType, error) {
	t, err := c.TypeCodec.TypeForOID(oid)
	if err != nil {
		return wire.DataType{OID: oid, Name: "unknown"}, nil
	}
	return t, nil
}
