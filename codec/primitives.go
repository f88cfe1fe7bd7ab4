package codec

import (
	"encoding/binary"
	"math"

	"github.com/shaban/bytewire/wire"
)

// Integer is the set of Go integer types (and anything sharing their
// underlying representation) servable by EncodeInteger/DecodeInteger.
type Integer interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64 | ~uint | ~int
}

// MaxEncodedSizeUint8 etc. are the const upper bounds for the fixed-width
// primitives, mirroring the constants a derived SizedEncode implementation
// emits for a user type.
const (
	MaxEncodedSizeUint8   = 1
	MaxEncodedSizeInt8    = 1
	MaxEncodedSizeUint16  = 2
	MaxEncodedSizeInt16   = 2
	MaxEncodedSizeUint32  = 4
	MaxEncodedSizeInt32   = 4
	MaxEncodedSizeUint64  = 8
	MaxEncodedSizeInt64   = 8
	MaxEncodedSizeUint128 = 16
	MaxEncodedSizeInt128  = 16
	MaxEncodedSizeFloat32 = 4
	MaxEncodedSizeFloat64 = 8
	MaxEncodedSizeBool    = 1
	MaxEncodedSizeChar    = 4
	MaxEncodedSizeUint    = 2 // narrowed to u16 on the wire
	MaxEncodedSizeInt     = 2 // narrowed to i16 on the wire
	MaxEncodedSizeUnit    = 0
)

// EncodeUint8 writes v as a single byte.
func EncodeUint8(out *wire.Output, v uint8) error { return out.WriteByte(v) }

// DecodeUint8 reads a single byte.
func DecodeUint8(in *wire.Input) (uint8, error) {
	b, err := in.ReadByte()
	return b, err
}

// EncodeInt8 writes v as a single byte (its bit pattern, unchanged).
func EncodeInt8(out *wire.Output, v int8) error { return out.WriteByte(uint8(v)) }

// DecodeInt8 reads a single byte as an int8.
func DecodeInt8(in *wire.Input) (int8, error) {
	b, err := in.ReadByte()
	return int8(b), err
}

// EncodeUint16 writes v little-endian.
func EncodeUint16(out *wire.Output, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return out.Write(b[:])
}

// DecodeUint16 reads a little-endian uint16.
func DecodeUint16(in *wire.Input) (uint16, error) {
	b, err := in.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// EncodeInt16 writes v little-endian.
func EncodeInt16(out *wire.Output, v int16) error { return EncodeUint16(out, uint16(v)) }

// DecodeInt16 reads a little-endian int16.
func DecodeInt16(in *wire.Input) (int16, error) {
	v, err := DecodeUint16(in)
	return int16(v), err
}

// EncodeUint32 writes v little-endian.
func EncodeUint32(out *wire.Output, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return out.Write(b[:])
}

// DecodeUint32 reads a little-endian uint32.
func DecodeUint32(in *wire.Input) (uint32, error) {
	b, err := in.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// EncodeInt32 writes v little-endian.
func EncodeInt32(out *wire.Output, v int32) error { return EncodeUint32(out, uint32(v)) }

// DecodeInt32 reads a little-endian int32.
func DecodeInt32(in *wire.Input) (int32, error) {
	v, err := DecodeUint32(in)
	return int32(v), err
}

// EncodeUint64 writes v little-endian.
func EncodeUint64(out *wire.Output, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return out.Write(b[:])
}

// DecodeUint64 reads a little-endian uint64.
func DecodeUint64(in *wire.Input) (uint64, error) {
	b, err := in.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// EncodeInt64 writes v little-endian.
func EncodeInt64(out *wire.Output, v int64) error { return EncodeUint64(out, uint64(v)) }

// DecodeInt64 reads a little-endian int64.
func DecodeInt64(in *wire.Input) (int64, error) {
	v, err := DecodeUint64(in)
	return int64(v), err
}

// EncodeUint128 writes v as sixteen little-endian bytes, low word first.
func EncodeUint128(out *wire.Output, v Uint128) error {
	if err := EncodeUint64(out, v.Lo); err != nil {
		return err
	}
	return EncodeUint64(out, v.Hi)
}

// DecodeUint128 reads sixteen little-endian bytes into a Uint128.
func DecodeUint128(in *wire.Input) (Uint128, error) {
	lo, err := DecodeUint64(in)
	if err != nil {
		return Uint128{}, err
	}
	hi, err := DecodeUint64(in)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Lo: lo, Hi: hi}, nil
}

// EncodeInt128 writes v as sixteen little-endian bytes, low word first.
func EncodeInt128(out *wire.Output, v Int128) error {
	if err := EncodeUint64(out, v.Lo); err != nil {
		return err
	}
	return EncodeUint64(out, v.Hi)
}

// DecodeInt128 reads sixteen little-endian bytes into an Int128.
func DecodeInt128(in *wire.Input) (Int128, error) {
	lo, err := DecodeUint64(in)
	if err != nil {
		return Int128{}, err
	}
	hi, err := DecodeUint64(in)
	if err != nil {
		return Int128{}, err
	}
	return Int128{Lo: lo, Hi: hi}, nil
}

// EncodeFloat32 writes v's IEEE-754 binary32 bit pattern little-endian.
func EncodeFloat32(out *wire.Output, v float32) error {
	return EncodeUint32(out, math.Float32bits(v))
}

// DecodeFloat32 reads a little-endian IEEE-754 binary32 bit pattern.
func DecodeFloat32(in *wire.Input) (float32, error) {
	bits, err := DecodeUint32(in)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// EncodeFloat64 writes v's IEEE-754 binary64 bit pattern little-endian.
func EncodeFloat64(out *wire.Output, v float64) error {
	return EncodeUint64(out, math.Float64bits(v))
}

// DecodeFloat64 reads a little-endian IEEE-754 binary64 bit pattern.
func DecodeFloat64(in *wire.Input) (float64, error) {
	bits, err := DecodeUint64(in)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// EncodeBool writes the canonical 0/1 byte for v.
func EncodeBool(out *wire.Output, v bool) error {
	if v {
		return out.WriteByte(1)
	}
	return out.WriteByte(0)
}

// DecodeBool reads a byte and treats any nonzero value as true. This is a
// deliberately lossy decode (see SPEC_FULL.md §11): a hostile nonzero byte
// round-trips as true, not as its original value.
func DecodeBool(in *wire.Input) (bool, error) {
	b, err := in.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// EncodeChar writes r's code point as a little-endian u32.
func EncodeChar(out *wire.Output, r rune) error {
	return EncodeUint32(out, uint32(r))
}

// DecodeChar reads a little-endian u32 code point and rejects UTF-16
// surrogates and values beyond U+10FFFF.
func DecodeChar(in *wire.Input) (rune, error) {
	cp, err := DecodeUint32(in)
	if err != nil {
		return 0, err
	}
	if (cp >= 0xD800 && cp <= 0xDFFF) || cp > 0x10FFFF {
		return 0, &CharDecodeError{CodePoint: cp}
	}
	return rune(cp), nil
}

// EncodeInt writes v narrowed to an i16, the Go analogue of isize. It
// fails with IntEncodeError if v is out of i16 range; this 16-bit bound is
// a deliberate portability constraint for embedded peers, not a bug.
func EncodeInt(out *wire.Output, v int) error {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return &IntEncodeError{Value: v}
	}
	return EncodeInt16(out, int16(v))
}

// DecodeInt reads an i16 and widens it to int, the Go analogue of isize.
func DecodeInt(in *wire.Input) (int, error) {
	v, err := DecodeInt16(in)
	return int(v), err
}

// EncodeUint writes v narrowed to a u16, the Go analogue of usize. It
// fails with UintEncodeError if v is out of u16 range.
func EncodeUint(out *wire.Output, v uint) error {
	if v > math.MaxUint16 {
		return &UintEncodeError{Value: v}
	}
	return EncodeUint16(out, uint16(v))
}

// DecodeUint reads a u16 and widens it to uint, the Go analogue of usize.
func DecodeUint(in *wire.Input) (uint, error) {
	v, err := DecodeUint16(in)
	return uint(v), err
}

// EncodeInteger writes v using the wire form of its underlying Go integer
// type. It is the generic dispatch point a composite's generated Encode
// method calls for an integer-typed field of unknown concrete width.
func EncodeInteger[T Integer](out *wire.Output, v T) error {
	switch x := any(v).(type) {
	case uint8:
		return EncodeUint8(out, x)
	case int8:
		return EncodeInt8(out, x)
	case uint16:
		return EncodeUint16(out, x)
	case int16:
		return EncodeInt16(out, x)
	case uint32:
		return EncodeUint32(out, x)
	case int32:
		return EncodeInt32(out, x)
	case uint64:
		return EncodeUint64(out, x)
	case int64:
		return EncodeInt64(out, x)
	case uint:
		return EncodeUint(out, x)
	case int:
		return EncodeInt(out, x)
	default:
		panic("codec: unreachable integer kind")
	}
}

// DecodeInteger reads a value of the wire form matching T's underlying Go
// integer type.
func DecodeInteger[T Integer](in *wire.Input) (T, error) {
	var zero T
	switch any(zero).(type) {
	case uint8:
		v, err := DecodeUint8(in)
		return T(v), err
	case int8:
		v, err := DecodeInt8(in)
		return T(v), err
	case uint16:
		v, err := DecodeUint16(in)
		return T(v), err
	case int16:
		v, err := DecodeInt16(in)
		return T(v), err
	case uint32:
		v, err := DecodeUint32(in)
		return T(v), err
	case int32:
		v, err := DecodeInt32(in)
		return T(v), err
	case uint64:
		v, err := DecodeUint64(in)
		return T(v), err
	case int64:
		v, err := DecodeInt64(in)
		return T(v), err
	case uint:
		v, err := DecodeUint(in)
		return T(v), err
	case int:
		v, err := DecodeInt(in)
		return T(v), err
	default:
		panic("codec: unreachable integer kind")
	}
}

// Unit is the wire rendering of Rust's () and of zero-sized marker types
// (PhantomData, PhantomPinned, RangeFull): all four encode and decode as
// zero bytes.
type Unit struct{}

// Encode writes nothing.
func (Unit) Encode(out *wire.Output) error { return nil }

// Decode reads nothing.
func (*Unit) Decode(in *wire.Input) error { return nil }

// MaxEncodedSize is always zero.
func (Unit) MaxEncodedSize() int { return 0 }
