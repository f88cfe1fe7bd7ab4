package codec

import "github.com/shaban/bytewire/wire"

// NonZero wraps an Integer value that is never zero, the Go analogue of
// Rust's NonZeroU8/NonZeroI32/etc. family. Its wire form is identical to
// the bare integer; only decode enforces the nonzero invariant.
type NonZero[T Integer] struct {
	v T
}

// NewNonZero returns (NonZero[T]{v}, true), or the zero value and false if
// v is zero.
func NewNonZero[T Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T { return n.v }

// Encode writes the wrapped value using its underlying integer wire form.
func (n NonZero[T]) Encode(out *wire.Output) error {
	return EncodeInteger(out, n.v)
}

// Decode reads an integer and rejects a zero bit pattern with
// NonZeroDecodeError.
func (n *NonZero[T]) Decode(in *wire.Input) error {
	v, err := DecodeInteger[T](in)
	if err != nil {
		return err
	}
	if v == 0 {
		return &NonZeroDecodeError{}
	}
	n.v = v
	return nil
}
