// Package sizedcol provides runtime-capacity-bounded collections: the Go
// analogues of bzipper's SizedSlice and SizedStr, which carry their
// capacity as a runtime value (distinct from arrays, whose length is part
// of the Go type) and reject a decode that would overrun it.
package sizedcol

import (
	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// SizedSlice is a slice bounded to at most Capacity elements. Unlike a
// plain Go slice (the Vec<T> analogue in codec.EncodeSlice/DecodeSlice),
// its wire form still carries a usize length prefix, but decode rejects
// any declared length exceeding Capacity (a codec.CollectionDecodeError
// whose BadLength is a codec.LengthError) rather than allocating past it.
type SizedSlice[T any] struct {
	Capacity int
	items    []T
}

// NewSizedSlice returns an empty SizedSlice with room for at most capacity
// elements.
func NewSizedSlice[T any](capacity int) *SizedSlice[T] {
	return &SizedSlice[T]{Capacity: capacity}
}

// Push appends v, reporting codec.LengthError if the slice is already at
// capacity.
func (s *SizedSlice[T]) Push(v T) error {
	if len(s.items) >= s.Capacity {
		return &codec.LengthError{Capacity: s.Capacity, Len: len(s.items) + 1}
	}
	s.items = append(s.items, v)
	return nil
}

// Items returns the current elements.
func (s *SizedSlice[T]) Items() []T { return s.items }

// Len returns the current element count.
func (s *SizedSlice[T]) Len() int { return len(s.items) }

// Encode writes a usize length prefix followed by each element.
func (s *SizedSlice[T]) Encode(out *wire.Output, encodeElem func(*wire.Output, T) error) error {
	if err := codec.EncodeUint(out, uint(len(s.items))); err != nil {
		return err
	}
	for i, v := range s.items {
		if err := encodeElem(out, v); err != nil {
			return &codec.ItemEncodeError[int, error]{Index: i, Err: err}
		}
	}
	return nil
}

// Decode reads a usize length prefix and, if it exceeds Capacity, fails
// with a codec.CollectionDecodeError whose BadLength is a codec.LengthError,
// without allocating. Otherwise it reads that many elements into a fresh
// backing slice.
func (s *SizedSlice[T]) Decode(in *wire.Input, decodeElem func(*wire.Input) (T, error)) error {
	n, err := codec.DecodeUint(in)
	if err != nil {
		return err
	}
	if int(n) > s.Capacity {
		return codec.NewBadLength[error, error](&codec.LengthError{Capacity: s.Capacity, Len: int(n)})
	}
	items := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := decodeElem(in)
		if err != nil {
			return &codec.ItemDecodeError[int, error]{Index: i, Err: err}
		}
		items = append(items, v)
	}
	s.items = items
	return nil
}

// SizedStr is a UTF-8 string bounded to at most Capacity bytes, the
// fixed-capacity analogue of codec's length-prefixed String.
type SizedStr struct {
	Capacity int
	value    string
}

// NewSizedStr returns an empty SizedStr with room for at most capacity
// bytes.
func NewSizedStr(capacity int) *SizedStr {
	return &SizedStr{Capacity: capacity}
}

// Set replaces the string, reporting codec.LengthError if it exceeds
// Capacity bytes.
func (s *SizedStr) Set(v string) error {
	if len(v) > s.Capacity {
		return &codec.LengthError{Capacity: s.Capacity, Len: len(v)}
	}
	s.value = v
	return nil
}

// String returns the current value.
func (s *SizedStr) String() string { return s.value }

// Encode writes a usize length prefix followed by the raw UTF-8 bytes.
func (s *SizedStr) Encode(out *wire.Output) error {
	return codec.EncodeString(out, s.value)
}

// Decode reads a usize length prefix and, if it exceeds Capacity, fails
// with a codec.CollectionDecodeError whose BadLength is a codec.LengthError,
// without reading further. Otherwise it reads and UTF-8-validates that many
// bytes.
func (s *SizedStr) Decode(in *wire.Input) error {
	n, err := codec.DecodeUint(in)
	if err != nil {
		return err
	}
	if int(n) > s.Capacity {
		return codec.NewBadLength[error, error](&codec.LengthError{Capacity: s.Capacity, Len: int(n)})
	}
	b, err := in.Read(int(n))
	if err != nil {
		return err
	}
	v, err := validateUTF8(b)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}
