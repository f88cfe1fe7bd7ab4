package codec

import "github.com/shaban/bytewire/wire"

// BoundKind tags which of Rust's three std::ops::Bound variants a Bound
// carries.
type BoundKind uint8

const (
	BoundIncluded BoundKind = iota
	BoundExcluded
	BoundUnbounded
)

// Bound is the Go rendering of Rust's Bound<T>: a variant byte followed by
// the encoded value for the Included and Excluded variants, nothing for
// Unbounded.
type Bound[T any] struct {
	Value T
	Kind  BoundKind
}

// EncodeBound writes b's variant byte, and its value for Included/Excluded.
func EncodeBound[T any](out *wire.Output, b Bound[T], encodeVal func(*wire.Output, T) error) error {
	if err := out.WriteByte(uint8(b.Kind)); err != nil {
		return err
	}
	if b.Kind == BoundUnbounded {
		return nil
	}
	return encodeVal(out, b.Value)
}

// DecodeBound reads a variant byte, decoding the value for Included/Excluded.
func DecodeBound[T any](in *wire.Input, decodeVal func(*wire.Input) (T, error)) (Bound[T], error) {
	kind, err := in.ReadByte()
	if err != nil {
		return Bound[T]{}, err
	}
	if BoundKind(kind) == BoundUnbounded {
		return Bound[T]{Kind: BoundUnbounded}, nil
	}
	v, err := decodeVal(in)
	if err != nil {
		return Bound[T]{}, err
	}
	return Bound[T]{Value: v, Kind: BoundKind(kind)}, nil
}
