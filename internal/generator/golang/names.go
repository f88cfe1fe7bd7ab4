// Package golang generates Go source implementing the bytewire codec
// contracts (Encoder/Decoder/SizedEncoder) for every struct and enum in a
// parsed schema.
package golang

import (
	"strings"
	"unicode"
)

// ToGoName converts a schema identifier (snake_case or already PascalCase)
// to an exported Go identifier.
func ToGoName(name string) string {
	if name == "" {
		return name
	}
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	if b.Len() == 0 {
		return name
	}
	return b.String()
}

// primitiveGoType maps a schema primitive keyword to its Go representation.
var primitiveGoType = map[string]string{
	"u8": "uint8", "i8": "int8",
	"u16": "uint16", "i16": "int16",
	"u32": "uint32", "i32": "int32",
	"u64": "uint64", "i64": "int64",
	"u128": "codec.Uint128", "i128": "codec.Int128",
	"u": "uint", "i": "int",
	"f32": "float32", "f64": "float64",
	"bool": "bool", "char": "rune",
	"str": "string", "cstr": "string",
}

// primitiveEncodeFunc maps a schema primitive keyword to the codec package
// function that encodes it.
var primitiveEncodeFunc = map[string]string{
	"u8": "codec.EncodeUint8", "i8": "codec.EncodeInt8",
	"u16": "codec.EncodeUint16", "i16": "codec.EncodeInt16",
	"u32": "codec.EncodeUint32", "i32": "codec.EncodeInt32",
	"u64": "codec.EncodeUint64", "i64": "codec.EncodeInt64",
	"u128": "codec.EncodeUint128", "i128": "codec.EncodeInt128",
	"u": "codec.EncodeUint", "i": "codec.EncodeInt",
	"f32": "codec.EncodeFloat32", "f64": "codec.EncodeFloat64",
	"bool": "codec.EncodeBool", "char": "codec.EncodeChar",
	"str": "codec.EncodeString", "cstr": "codec.EncodeCString",
}

// primitiveDecodeFunc maps a schema primitive keyword to the codec package
// function that decodes it.
var primitiveDecodeFunc = map[string]string{
	"u8": "codec.DecodeUint8", "i8": "codec.DecodeInt8",
	"u16": "codec.DecodeUint16", "i16": "codec.DecodeInt16",
	"u32": "codec.DecodeUint32", "i32": "codec.DecodeInt32",
	"u64": "codec.DecodeUint64", "i64": "codec.DecodeInt64",
	"u128": "codec.DecodeUint128", "i128": "codec.DecodeInt128",
	"u": "codec.DecodeUint", "i": "codec.DecodeInt",
	"f32": "codec.DecodeFloat32", "f64": "codec.DecodeFloat64",
	"bool": "codec.DecodeBool", "char": "codec.DecodeChar",
	"str": "codec.DecodeString", "cstr": "codec.DecodeCString",
}

// primitiveMaxSize maps a schema primitive keyword to its fixed wire size,
// or -1 if the type is variable-length (str, cstr).
var primitiveMaxSize = map[string]int{
	"u8": 1, "i8": 1,
	"u16": 2, "i16": 2,
	"u32": 4, "i32": 4,
	"u64": 8, "i64": 8,
	"u128": 16, "i128": 16,
	"u": 2, "i": 2,
	"f32": 4, "f64": 8,
	"bool": 1, "char": 4,
	"str": -1, "cstr": -1,
}
