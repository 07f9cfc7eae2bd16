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

package typemap

// builtinTypes maps the standard pg_type OIDs to their catalog names,
// lower-cased as they appear in pg_type.typname. Array types carry the
// leading underscore per PostgreSQL convention.
var builtinTypes = map[uint32]string{
	// Boolean type
	16: "bool",

	// Binary type
	17: "bytea",

	// Character types
	18: "char",
	19: "name",
	25: "text",

	// Integer types
	20: "int8",
	21: "int2",
	22: "int2vector",
	23: "int4",

	// System types
	24: "regproc",
	26: "oid",
	27: "tid",
	28: "xid",
	29: "cid",
	30: "oidvector",

	// JSON types
	114:  "json",
	3802: "jsonb",

	// XML type
	142: "xml",

	// Geometric types
	600: "point",
	601: "lseg",
	602: "path",
	603: "box",
	604: "polygon",
	628: "line",
	718: "circle",

	// Floating point types
	700: "float4",
	701: "float8",

	// Money type
	790: "money",

	// Network types
	650: "cidr",
	774: "macaddr8",
	829: "macaddr",
	869: "inet",

	// Date/time types
	1082: "date",
	1083: "time",
	1114: "timestamp",
	1184: "timestamptz",
	1266: "timetz",

	// Interval type
	1186: "interval",

	// Bit string types
	1560: "bit",
	1562: "varbit",

	// Numeric type
	1700: "numeric",

	// Character varying types
	1042: "bpchar",
	1043: "varchar",

	// UUID type
	2950: "uuid",

	// Range types
	3904: "int4range",
	3906: "numrange",
	3908: "tsrange",
	3910: "tstzrange",
	3912: "daterange",
	3926: "int8range",

	// Full transaction ID
	5069: "xid8",

	// PostgreSQL LSN type
	3220: "pg_lsn",

	// Array types
	199:  "_json",
	1000: "_bool",
	1001: "_bytea",
	1002: "_char",
	1003: "_name",
	1005: "_int2",
	1007: "_int4",
	1009: "_text",
	1015: "_varchar",
	1016: "_int8",
	1021: "_float4",
	1022: "_float8",
	1115: "_timestamp",
	1182: "_date",
	1183: "_time",
	1185: "_timestamptz",
	3807: "_jsonb",
}
