// Package codec defines the bytewire Encode/Decode/SizedEncode contracts
// and provides blanket coverage of primitives, composites, standard
// collections, smart-pointer-likes, networking types, and concurrency
// primitives, all operating on the wire.Input/wire.Output cursors.
//
// Go cannot attach methods to types it does not define, so "blanket impl"
// here takes two forms: generated struct and enum types implement Encoder/
// Decoder/SizedEncoder as methods (see the golang generator), while every
// built-in, standard-library, or otherwise foreign type is served by the
// free generic functions in this package instead.
package codec

import "github.com/shaban/bytewire/wire"

// Encoder is implemented by generated struct and enum types. It is the Go
// rendering of the Encode trait.
type Encoder interface {
	Encode(out *wire.Output) error
}

// Decoder is implemented by generated struct and enum types via a pointer
// receiver, decoding into *Self. It is the Go rendering of the Decode
// trait and is intentionally independent of Encoder (no embedding), so
// that a type can implement one without the other.
type Decoder interface {
	Decode(in *wire.Input) error
}

// SizedEncoder refines Encoder with a runtime upper bound on encoded size.
// Generated structs whose size is statically bounded implement it with a
// MaxEncodedSize method returning a fixed number; no separate const is
// generated, and generated enums do not implement it.
type SizedEncoder interface {
	Encoder
	MaxEncodedSize() int
}

// DecodeBorrowed declares that a type's Decode form is compatible with the
// Encode form of the unsized type B it borrows. It exists so that Cow[B]
// can choose an owned type to decode into.
type DecodeBorrowed[B any] interface {
	Decoder
	Borrow() B
}

// PrimitiveDiscriminant is the closed set of integer types admissible as an
// enum's repr. Go cannot express a sealed marker trait for predeclared
// types (methods cannot be attached to a type outside its own package), so
// the set is instead captured as a generic type constraint satisfied by
// exactly these ten underlying types (u128/i128 have no native Go type;
// see Uint128/Int128).
type PrimitiveDiscriminant interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 | ~uint | ~int
}

// Uint128 is the Go stand-in for Rust's u128: a 128-bit unsigned integer
// with no native Go type. Lo holds the low 64 bits, Hi the high 64 bits.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is the Go stand-in for Rust's i128: a 128-bit signed integer with
// no native Go type, in two's-complement form across Hi:Lo.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// ToUint128 widens any PrimitiveDiscriminant value to a Uint128 with
// Hi always zero, mirroring PrimitiveDiscriminant::to_u128's zero-extension
// contract in the original trait.
func ToUint128[T PrimitiveDiscriminant](v T) Uint128 {
	return Uint128{Lo: uint64(v), Hi: 0}
}
