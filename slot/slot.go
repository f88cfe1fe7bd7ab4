// Package slot provides owned-buffer convenience wrappers around
// codec.Encoder/codec.Decoder: Buf is a fixed-capacity owned byte buffer, and
// Slot[T] pairs a fixed-capacity buffer with a typed value, the Go
// analogue of bzipper's Buf/Slot helpers for callers who would rather not
// manage a wire.Output/wire.Input cursor pair themselves.
package slot

import (
	"fmt"

	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// Buf is an owned byte buffer sized to a type's MaxEncodedSize, used as
// scratch storage for a single Encode/Decode round trip.
type Buf struct {
	data []byte
}

// NewBuf allocates a Buf with room for exactly capacity bytes.
func NewBuf(capacity int) *Buf {
	return &Buf{data: make([]byte, capacity)}
}

// Write encodes v into the buffer from the start and returns the written
// portion.
func (b *Buf) Write(v codec.Encoder) ([]byte, error) {
	out := wire.NewOutput(b.data)
	if err := v.Encode(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Read decodes into v from the buffer's full contents.
func (b *Buf) Read(v codec.Decoder) error {
	in := wire.NewInput(b.data)
	return v.Decode(in)
}

// Bytes returns the buffer's full backing storage.
func (b *Buf) Bytes() []byte { return b.data }

// Slot pairs a fixed-capacity Buf with a value of type T, the generic
// with_capacity/write/read trio from bzipper's Slot<T>.
type Slot[T codec.SizedEncoder] struct {
	buf *Buf
}

// NewSlot allocates a Slot sized to capacity bytes (typically a type's
// MaxEncodedSize).
func NewSlot[T codec.SizedEncoder](capacity int) *Slot[T] {
	return &Slot[T]{buf: NewBuf(capacity)}
}

// Write encodes v into the slot's buffer and returns the encoded bytes.
func (s *Slot[T]) Write(v T) ([]byte, error) {
	return s.buf.Write(v)
}

// Read decodes a T from the slot's buffer using decode.
func (s *Slot[T]) Read(decode func(*wire.Input) (T, error)) (T, error) {
	in := wire.NewInput(s.buf.data)
	return decode(in)
}

// SlotOverrunError is returned by Reserve when a value's MaxEncodedSize
// exceeds the capacity a Buf was constructed with.
type SlotOverrunError struct {
	Capacity int
	Needed   int
}

func (e *SlotOverrunError) Error() string {
	return fmt.Sprintf("value needs %d byte(s) but slot has capacity %d", e.Needed, e.Capacity)
}

// Reserve returns buf unchanged if its capacity is at least
// v.MaxEncodedSize(), and SlotOverrunError otherwise. It never allocates a
// new Buf, and never grows, shrinks or mutates buf.
func Reserve(buf *Buf, v codec.SizedEncoder) (*Buf, error) {
	needed := v.MaxEncodedSize()
	if len(buf.data) >= needed {
		return buf, nil
	}
	return nil, &SlotOverrunError{Capacity: len(buf.data), Needed: needed}
}
