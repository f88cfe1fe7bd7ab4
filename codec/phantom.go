package codec

import "github.com/shaban/bytewire/wire"

// PhantomData is the zero-sized Go stand-in for Rust's PhantomData<T>: a
// pure compile-time marker carrying no runtime bytes. Its type parameter is
// never used and exists only so that generated code preserves the original
// field's variance/ownership documentation value.
type PhantomData[T any] struct{}

// Encode writes nothing.
func (PhantomData[T]) Encode(out *wire.Output) error { return nil }

// Decode reads nothing.
func (*PhantomData[T]) Decode(in *wire.Input) error { return nil }

// MaxEncodedSize is always zero.
func (PhantomData[T]) MaxEncodedSize() int { return 0 }

// PhantomPinned is the Go stand-in for Rust's PhantomPinned, which removes
// a type's ability to be moved once pinned. Go has no Pin/move-semantics
// equivalent, so this is carried as a zero-sized marker only, encoded and
// decoded exactly like Unit.
type PhantomPinned = Unit

// RangeFull is the Go stand-in for Rust's RangeFull (`..`), which carries
// no data of its own.
type RangeFull = Unit
