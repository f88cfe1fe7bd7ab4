package codec

import "github.com/shaban/bytewire/wire"

// Option is the Go rendering of Rust's Option<T>: a presence byte (0 for
// None, 1 for Some) followed by the encoded value when present.
type Option[T any] struct {
	Value T
	Some  bool
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Some: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// EncodeOption writes opt's presence byte, and its value if present.
func EncodeOption[T any](out *wire.Output, opt Option[T], encodeVal func(*wire.Output, T) error) error {
	if !opt.Some {
		return out.WriteByte(0)
	}
	if err := out.WriteByte(1); err != nil {
		return err
	}
	return encodeVal(out, opt.Value)
}

// DecodeOption reads a presence byte, decoding the value only if it is
// nonzero.
func DecodeOption[T any](in *wire.Input, decodeVal func(*wire.Input) (T, error)) (Option[T], error) {
	present, err := in.ReadByte()
	if err != nil {
		return Option[T]{}, err
	}
	if present == 0 {
		return Option[T]{}, nil
	}
	v, err := decodeVal(in)
	if err != nil {
		return Option[T]{}, err
	}
	return Option[T]{Value: v, Some: true}, nil
}
