package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestAtomicUint32RoundTrip(t *testing.T) {
	a := NewAtomicUint32(123)
	buf := make([]byte, 4)
	out := wire.NewOutput(buf)
	if err := a.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got AtomicUint32
	if err := got.Decode(in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Load() != 123 {
		t.Errorf("got %d, want 123", got.Load())
	}
}

func TestAtomicBoolRoundTrip(t *testing.T) {
	a := NewAtomicBool(true)
	buf := make([]byte, 1)
	out := wire.NewOutput(buf)
	if err := a.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got AtomicBool
	if err := got.Decode(in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Load() {
		t.Error("expected true")
	}
}
