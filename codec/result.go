package codec

import "github.com/shaban/bytewire/wire"

// Result is the Go rendering of Rust's Result<T, E>: a variant byte (0 for
// Ok, 1 for Err) followed by the encoded Ok value or Err value.
type Result[T, E any] struct {
	Ok    T
	Err   E
	IsErr bool
}

// Ok wraps v as a successful Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{Ok: v} }

// Err wraps err as a failed Result.
func Err[T, E any](err E) Result[T, E] { return Result[T, E]{Err: err, IsErr: true} }

// EncodeResult writes r's variant byte followed by the matching payload.
func EncodeResult[T, E any](out *wire.Output, r Result[T, E], encodeOk func(*wire.Output, T) error, encodeErr func(*wire.Output, E) error) error {
	if !r.IsErr {
		if err := out.WriteByte(0); err != nil {
			return err
		}
		return encodeOk(out, r.Ok)
	}
	if err := out.WriteByte(1); err != nil {
		return err
	}
	return encodeErr(out, r.Err)
}

// DecodeResult reads a variant byte and the matching payload.
func DecodeResult[T, E any](in *wire.Input, decodeOk func(*wire.Input) (T, error), decodeErr func(*wire.Input) (E, error)) (Result[T, E], error) {
	variant, err := in.ReadByte()
	if err != nil {
		return Result[T, E]{}, err
	}
	if variant == 0 {
		v, err := decodeOk(in)
		if err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{Ok: v}, nil
	}
	e, err := decodeErr(in)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Result[T, E]{Err: e, IsErr: true}, nil
}
