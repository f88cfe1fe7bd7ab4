package codec

import (
	"fmt"

	"github.com/shaban/bytewire/wire"
)

// BoolDecodeError is reserved for a future, stricter bool decode policy.
// The current wire form (see Decode for bool) treats any nonzero byte as
// true and never returns this error; it is kept so that a future revision
// tightening bool decoding does not need a new exported type.
type BoolDecodeError struct {
	Value uint8
}

func (e *BoolDecodeError) Error() string {
	return fmt.Sprintf("byte 0x%02X is not a valid bool", e.Value)
}

// CharDecodeError is returned when a decoded u32 code point does not name a
// valid Unicode scalar value (a UTF-16 surrogate, or greater than U+10FFFF).
type CharDecodeError struct {
	CodePoint uint32
}

func (e *CharDecodeError) Error() string {
	return fmt.Sprintf("code point U+%04X is not defined", e.CodePoint)
}

// CStringDecodeError is returned when a NUL-terminated string's declared
// length contains an embedded NUL byte before its end.
type CStringDecodeError struct {
	Index int
}

func (e *CStringDecodeError) Error() string {
	return fmt.Sprintf("expected C string but found null value within bounds at %d", e.Index)
}

// NonZeroDecodeError is returned when a non-zero integer type decodes a
// zero bit pattern.
type NonZeroDecodeError struct{}

func (e *NonZeroDecodeError) Error() string {
	return "expected a nonzero value but found zero"
}

// Utf8Error is returned when a byte sequence declared as UTF-8 is not
// well-formed.
type Utf8Error struct {
	Value uint8
	Index int
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("byte 0x%02X at index %d is not valid UTF-8", e.Value, e.Index)
}

// LengthError is returned when a declared collection length exceeds a
// fixed-capacity container's capacity.
type LengthError struct {
	Capacity int
	Len      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("collection of capacity %d cannot hold %d element(s)", e.Capacity, e.Len)
}


// IntEncodeError is returned when a Go int (the isize analogue) is out of
// the i16 range the wire form narrows it to.
type IntEncodeError struct {
	Value int
}

func (e *IntEncodeError) Error() string {
	return fmt.Sprintf("value %d is out of range for i16", e.Value)
}

// UintEncodeError is returned when a Go uint (the usize analogue) is out
// of the u16 range the wire form narrows it to.
type UintEncodeError struct {
	Value uint
}

func (e *UintEncodeError) Error() string {
	return fmt.Sprintf("value %d is out of range for u16", e.Value)
}

// RefCellEncodeError is returned by interior-mutability wrappers (Cell,
// RefCell-like Guarded, Mutex, RWMutex) when either the guard could not be
// acquired or the guarded value itself failed to encode.
type RefCellEncodeError[E any] struct {
	// BadBorrow is set when the guard could not be acquired (Kind ==
	// RefCellBadBorrow); BadValue is unset.
	BadBorrow error
	// BadValue is set when the guard was acquired but the inner value
	// failed to encode (Kind == RefCellBadValue); BadBorrow is unset.
	BadValue E
	Kind     RefCellErrorKind
}

// RefCellErrorKind distinguishes the two RefCellEncodeError cases.
type RefCellErrorKind int

const (
	RefCellBadBorrow RefCellErrorKind = iota
	RefCellBadValue
)

func (e *RefCellEncodeError[E]) Error() string {
	switch e.Kind {
	case RefCellBadBorrow:
		return fmt.Sprintf("could not acquire guard: %v", e.BadBorrow)
	default:
		return fmt.Sprintf("guarded value failed to encode: %v", any(e.BadValue))
	}
}

func (e *RefCellEncodeError[E]) Unwrap() error {
	if e.Kind == RefCellBadBorrow {
		return e.BadBorrow
	}
	if err, ok := any(e.BadValue).(error); ok {
		return err
	}
	return nil
}

// CollectionDecodeError is the sum of the two ways decoding a
// variable-length collection can fail: its length prefix failed to decode
// (BadLength), or one of its items failed to decode (BadItem).
type CollectionDecodeError[L, I any] struct {
	BadLength L
	BadItem   I
	IsLength  bool
}

func (e *CollectionDecodeError[L, I]) Error() string {
	if e.IsLength {
		return fmt.Sprintf("bad collection length: %v", any(e.BadLength))
	}
	return fmt.Sprintf("bad collection item: %v", any(e.BadItem))
}

func (e *CollectionDecodeError[L, I]) Unwrap() error {
	if e.IsLength {
		if err, ok := any(e.BadLength).(error); ok {
			return err
		}
		return nil
	}
	if err, ok := any(e.BadItem).(error); ok {
		return err
	}
	return nil
}

// NewBadLength constructs a CollectionDecodeError in its BadLength state.
func NewBadLength[L, I any](err L) *CollectionDecodeError[L, I] {
	return &CollectionDecodeError[L, I]{BadLength: err, IsLength: true}
}

// NewBadItem constructs a CollectionDecodeError in its BadItem state.
func NewBadItem[L, I any](err I) *CollectionDecodeError[L, I] {
	return &CollectionDecodeError[L, I]{BadItem: err, IsLength: false}
}

// CollectionEncodeError mirrors CollectionDecodeError for the encode
// direction: either the length prefix failed to encode, or an item did.
type CollectionEncodeError[L, I any] struct {
	BadLength L
	BadItem   I
	IsLength  bool
}

func (e *CollectionEncodeError[L, I]) Error() string {
	if e.IsLength {
		return fmt.Sprintf("bad collection length: %v", any(e.BadLength))
	}
	return fmt.Sprintf("bad collection item: %v", any(e.BadItem))
}

func (e *CollectionEncodeError[L, I]) Unwrap() error {
	if e.IsLength {
		if err, ok := any(e.BadLength).(error); ok {
			return err
		}
		return nil
	}
	if err, ok := any(e.BadItem).(error); ok {
		return err
	}
	return nil
}

// ItemDecodeError wraps a collection item's decode error with its index.
type ItemDecodeError[I, E any] struct {
	Index I
	Err   E
}

func (e *ItemDecodeError[I, E]) Error() string {
	return fmt.Sprintf("item %v: %v", any(e.Index), any(e.Err))
}

func (e *ItemDecodeError[I, E]) Unwrap() error {
	if err, ok := any(e.Err).(error); ok {
		return err
	}
	return nil
}

// ItemEncodeError wraps a collection item's encode error with its index.
type ItemEncodeError[I, E any] struct {
	Index I
	Err   E
}

func (e *ItemEncodeError[I, E]) Error() string {
	return fmt.Sprintf("item %v: %v", any(e.Index), any(e.Err))
}

func (e *ItemEncodeError[I, E]) Unwrap() error {
	if err, ok := any(e.Err).(error); ok {
		return err
	}
	return nil
}

// EnumDecodeError is returned when decoding a derived enum fails, either
// because the discriminant itself failed to decode, because the decoded
// discriminant does not name any known variant, or because a field of the
// matched variant failed to decode.
type EnumDecodeError[D, F any] struct {
	InvalidDiscriminant    D
	UnassignedDiscriminant Uint128
	BadField               F
	hasInvalidDiscriminant bool
	hasUnassignedDiscrim   bool
}

func (e *EnumDecodeError[D, F]) Error() string {
	switch {
	case e.hasInvalidDiscriminant:
		return fmt.Sprintf("invalid discriminant: %v", any(e.InvalidDiscriminant))
	case e.hasUnassignedDiscrim:
		return fmt.Sprintf("unassigned discriminant: %v", e.UnassignedDiscriminant)
	default:
		return fmt.Sprintf("bad field: %v", any(e.BadField))
	}
}

func (e *EnumDecodeError[D, F]) Unwrap() error {
	if e.hasInvalidDiscriminant {
		if err, ok := any(e.InvalidDiscriminant).(error); ok {
			return err
		}
		return nil
	}
	if e.hasUnassignedDiscrim {
		return nil
	}
	if err, ok := any(e.BadField).(error); ok {
		return err
	}
	return nil
}

// NewInvalidDiscriminant constructs an EnumDecodeError whose discriminant
// itself failed to decode.
func NewInvalidDiscriminant[D, F any](err D) *EnumDecodeError[D, F] {
	return &EnumDecodeError[D, F]{InvalidDiscriminant: err, hasInvalidDiscriminant: true}
}

// NewUnassignedDiscriminant constructs an EnumDecodeError whose decoded
// discriminant did not match any known variant. value is widened to a
// uint128 (Hi=0) so that it can be carried regardless of the concrete
// PrimitiveDiscriminant representation type.
func NewUnassignedDiscriminant[D, F any, R PrimitiveDiscriminant](value R) *EnumDecodeError[D, F] {
	return &EnumDecodeError[D, F]{UnassignedDiscriminant: ToUint128(value), hasUnassignedDiscrim: true}
}

// NewUnassignedDiscriminantFromUint128 is NewUnassignedDiscriminant's
// counterpart for a u128/i128 repr, whose discriminant is already 128 bits
// wide and so cannot satisfy PrimitiveDiscriminant's native-integer
// constraint; the caller widens an i128 to Uint128 itself (by
// reinterpreting its two's-complement Lo/Hi, matching ToUint128's
// zero-extension contract for the unsigned case).
func NewUnassignedDiscriminantFromUint128[D, F any](value Uint128) *EnumDecodeError[D, F] {
	return &EnumDecodeError[D, F]{UnassignedDiscriminant: value, hasUnassignedDiscrim: true}
}

// NewBadField constructs an EnumDecodeError whose matched variant's field
// failed to decode.
func NewBadField[D, F any](err F) *EnumDecodeError[D, F] {
	return &EnumDecodeError[D, F]{BadField: err}
}

// EnumEncodeError mirrors EnumDecodeError for the encode direction: either
// the discriminant failed to encode, or a field did.
type EnumEncodeError[D, F any] struct {
	BadDiscriminant    D
	BadField           F
	hasBadDiscriminant bool
}

func (e *EnumEncodeError[D, F]) Error() string {
	if e.hasBadDiscriminant {
		return fmt.Sprintf("bad discriminant: %v", any(e.BadDiscriminant))
	}
	return fmt.Sprintf("bad field: %v", any(e.BadField))
}

func (e *EnumEncodeError[D, F]) Unwrap() error {
	if e.hasBadDiscriminant {
		if err, ok := any(e.BadDiscriminant).(error); ok {
			return err
		}
		return nil
	}
	if err, ok := any(e.BadField).(error); ok {
		return err
	}
	return nil
}

// NewBadDiscriminant constructs an EnumEncodeError whose discriminant
// failed to encode.
func NewBadDiscriminant[D, F any](err D) *EnumEncodeError[D, F] {
	return &EnumEncodeError[D, F]{BadDiscriminant: err, hasBadDiscriminant: true}
}

// UnassignedDiscriminantError reports that a Kind value about to be
// encoded names no known variant. Unlike the decode side's
// EnumDecodeError.UnassignedDiscriminant, EnumEncodeError has no dedicated
// field for this case, so a generated Encode wraps one of these as its
// BadDiscriminant.
type UnassignedDiscriminantError struct {
	Value Uint128
}

func (e *UnassignedDiscriminantError) Error() string {
	return fmt.Sprintf("unassigned discriminant: %v", e.Value)
}

// NewEnumBadField constructs an EnumEncodeError whose field failed to
// encode.
func NewEnumBadField[D, F any](err F) *EnumEncodeError[D, F] {
	return &EnumEncodeError[D, F]{BadField: err}
}

// GenericErrorKind tags which leaf variant a GenericDecodeError or
// GenericEncodeError wraps. Generated struct/enum Encode/Decode methods
// use these generic join types as their Error so that a type with many
// fields does not need a bespoke combinatorial error type.
type GenericErrorKind int

const (
	GenericErrUnknown GenericErrorKind = iota
	GenericErrBool
	GenericErrChar
	GenericErrCString
	GenericErrNonZero
	GenericErrUtf8
	GenericErrLength
	GenericErrInt
	GenericErrUint
	GenericErrInput
	GenericErrOutput
	GenericErrField
)

// GenericDecodeError is the flat join of every leaf decode error, used as
// the Error type of derived struct and enum Decode implementations.
type GenericDecodeError struct {
	Kind  GenericErrorKind
	Field string
	Err   error
}

func (e *GenericDecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *GenericDecodeError) Unwrap() error { return e.Err }

// WrapDecode converts any leaf decode error into a GenericDecodeError,
// tagging it with the field name that produced it (empty if not
// applicable). This is the Go stand-in for the From conversions a Rust
// derive macro emits to bridge a field's associated Error type into the
// struct's own.
func WrapDecode(field string, err error) error {
	if err == nil {
		return nil
	}
	kind := GenericErrUnknown
	switch err.(type) {
	case *BoolDecodeError:
		kind = GenericErrBool
	case *CharDecodeError:
		kind = GenericErrChar
	case *CStringDecodeError:
		kind = GenericErrCString
	case *NonZeroDecodeError:
		kind = GenericErrNonZero
	case *Utf8Error:
		kind = GenericErrUtf8
	case *LengthError:
		kind = GenericErrLength
	case *wire.InputError:
		kind = GenericErrInput
	}
	return &GenericDecodeError{Kind: kind, Field: field, Err: err}
}

// GenericEncodeError is the flat join of every leaf encode error, used as
// the Error type of derived struct and enum Encode implementations.
type GenericEncodeError struct {
	Kind  GenericErrorKind
	Field string
	Err   error
}

func (e *GenericEncodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q: %v", e.Field, e.Err)
	}
	return e.Err.Error()
}

func (e *GenericEncodeError) Unwrap() error { return e.Err }

// WrapEncode converts any leaf encode error into a GenericEncodeError,
// tagging it with the field name that produced it (empty if not
// applicable).
func WrapEncode(field string, err error) error {
	if err == nil {
		return nil
	}
	kind := GenericErrUnknown
	switch err.(type) {
	case *IntEncodeError:
		kind = GenericErrInt
	case *UintEncodeError:
		kind = GenericErrUint
	case *wire.OutputError:
		kind = GenericErrOutput
	}
	return &GenericEncodeError{Kind: kind, Field: field, Err: err}
}
