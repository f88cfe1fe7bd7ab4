package codec

import "github.com/shaban/bytewire/wire"

// Tuple2 is the Go rendering of a Rust (A, B) tuple: its elements are
// encoded back to back in order, with no length prefix or padding.
type Tuple2[A, B any] struct {
	F0 A
	F1 B
}

// EncodeTuple2 writes t's elements in order.
func EncodeTuple2[A, B any](out *wire.Output, t Tuple2[A, B], encodeA func(*wire.Output, A) error, encodeB func(*wire.Output, B) error) error {
	if err := encodeA(out, t.F0); err != nil {
		return err
	}
	return encodeB(out, t.F1)
}

// DecodeTuple2 reads elements in order.
func DecodeTuple2[A, B any](in *wire.Input, decodeA func(*wire.Input) (A, error), decodeB func(*wire.Input) (B, error)) (Tuple2[A, B], error) {
	a, err := decodeA(in)
	if err != nil {
		return Tuple2[A, B]{}, err
	}
	b, err := decodeB(in)
	if err != nil {
		return Tuple2[A, B]{}, err
	}
	return Tuple2[A, B]{F0: a, F1: b}, nil
}

// Tuple3 is the three-element analogue of Tuple2.
type Tuple3[A, B, C any] struct {
	F0 A
	F1 B
	F2 C
}

// EncodeTuple3 writes t's elements in order.
func EncodeTuple3[A, B, C any](out *wire.Output, t Tuple3[A, B, C], encodeA func(*wire.Output, A) error, encodeB func(*wire.Output, B) error, encodeC func(*wire.Output, C) error) error {
	if err := encodeA(out, t.F0); err != nil {
		return err
	}
	if err := encodeB(out, t.F1); err != nil {
		return err
	}
	return encodeC(out, t.F2)
}

// DecodeTuple3 reads elements in order.
func DecodeTuple3[A, B, C any](in *wire.Input, decodeA func(*wire.Input) (A, error), decodeB func(*wire.Input) (B, error), decodeC func(*wire.Input) (C, error)) (Tuple3[A, B, C], error) {
	a, err := decodeA(in)
	if err != nil {
		return Tuple3[A, B, C]{}, err
	}
	b, err := decodeB(in)
	if err != nil {
		return Tuple3[A, B, C]{}, err
	}
	c, err := decodeC(in)
	if err != nil {
		return Tuple3[A, B, C]{}, err
	}
	return Tuple3[A, B, C]{F0: a, F1: b, F2: c}, nil
}

// Tuple4 is the four-element analogue of Tuple2.
type Tuple4[A, B, C, D any] struct {
	F0 A
	F1 B
	F2 C
	F3 D
}

// EncodeTuple4 writes t's elements in order.
func EncodeTuple4[A, B, C, D any](out *wire.Output, t Tuple4[A, B, C, D], encodeA func(*wire.Output, A) error, encodeB func(*wire.Output, B) error, encodeC func(*wire.Output, C) error, encodeD func(*wire.Output, D) error) error {
	if err := encodeA(out, t.F0); err != nil {
		return err
	}
	if err := encodeB(out, t.F1); err != nil {
		return err
	}
	if err := encodeC(out, t.F2); err != nil {
		return err
	}
	return encodeD(out, t.F3)
}

// DecodeTuple4 reads elements in order.
func DecodeTuple4[A, B, C, D any](in *wire.Input, decodeA func(*wire.Input) (A, error), decodeB func(*wire.Input) (B, error), decodeC func(*wire.Input) (C, error), decodeD func(*wire.Input) (D, error)) (Tuple4[A, B, C, D], error) {
	a, err := decodeA(in)
	if err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	b, err := decodeB(in)
	if err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	c, err := decodeC(in)
	if err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	d, err := decodeD(in)
	if err != nil {
		return Tuple4[A, B, C, D]{}, err
	}
	return Tuple4[A, B, C, D]{F0: a, F1: b, F2: c, F3: d}, nil
}
