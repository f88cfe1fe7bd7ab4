package codec

import (
	"sync/atomic"

	"github.com/shaban/bytewire/wire"
)

// AtomicUint32 is the wire rendering of Rust's AtomicU32: its Encode reads
// with a relaxed load (sync/atomic's LoadUint32 gives no weaker guarantee
// than Rust's Relaxed ordering would) and its Decode stores with the
// equivalent relaxed store.
type AtomicUint32 struct {
	v atomic.Uint32
}

// NewAtomicUint32 wraps an initial value.
func NewAtomicUint32(v uint32) *AtomicUint32 {
	a := &AtomicUint32{}
	a.v.Store(v)
	return a
}

// Load reads the current value.
func (a *AtomicUint32) Load() uint32 { return a.v.Load() }

// Encode writes the current value's u32 wire form.
func (a *AtomicUint32) Encode(out *wire.Output) error { return EncodeUint32(out, a.v.Load()) }

// Decode reads a u32 and stores it.
func (a *AtomicUint32) Decode(in *wire.Input) error {
	v, err := DecodeUint32(in)
	if err != nil {
		return err
	}
	a.v.Store(v)
	return nil
}

// AtomicUint64 is the 64-bit analogue of AtomicUint32, serving AtomicU64.
// It always writes and reads the full 8-byte u64 wire form; it does not
// narrow to usize's u16 wire form the way EncodeUint does.
type AtomicUint64 struct {
	v atomic.Uint64
}

// NewAtomicUint64 wraps an initial value.
func NewAtomicUint64(v uint64) *AtomicUint64 {
	a := &AtomicUint64{}
	a.v.Store(v)
	return a
}

// Load reads the current value.
func (a *AtomicUint64) Load() uint64 { return a.v.Load() }

// Encode writes the current value's u64 wire form.
func (a *AtomicUint64) Encode(out *wire.Output) error { return EncodeUint64(out, a.v.Load()) }

// Decode reads a u64 and stores it.
func (a *AtomicUint64) Decode(in *wire.Input) error {
	v, err := DecodeUint64(in)
	if err != nil {
		return err
	}
	a.v.Store(v)
	return nil
}

// AtomicBool is the wire rendering of Rust's AtomicBool.
type AtomicBool struct {
	v atomic.Bool
}

// NewAtomicBool wraps an initial value.
func NewAtomicBool(v bool) *AtomicBool {
	a := &AtomicBool{}
	a.v.Store(v)
	return a
}

// Load reads the current value.
func (a *AtomicBool) Load() bool { return a.v.Load() }

// Encode writes the current value's bool wire form.
func (a *AtomicBool) Encode(out *wire.Output) error { return EncodeBool(out, a.v.Load()) }

// Decode reads a bool and stores it.
func (a *AtomicBool) Decode(in *wire.Input) error {
	v, err := DecodeBool(in)
	if err != nil {
		return err
	}
	a.v.Store(v)
	return nil
}
