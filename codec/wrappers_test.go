package codec

import (
	"errors"
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestCellRoundTrip(t *testing.T) {
	c := NewCell[uint32](7)
	buf := make([]byte, 4)
	out := wire.NewOutput(buf)
	if err := c.Encode(out, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got Cell[uint32]
	if err := got.Decode(in, DecodeUint32); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Get() != 7 {
		t.Errorf("got %d, want 7", got.Get())
	}
}

func TestMutexEncodeRecoversFromPanic(t *testing.T) {
	m := NewMutex[uint32](0)
	buf := make([]byte, 4)
	out := wire.NewOutput(buf)

	err := m.Encode(out, func(*wire.Output, uint32) error {
		panic(errors.New("boom"))
	})
	if err == nil {
		t.Fatal("expected RefCellEncodeError from recovered panic")
	}
	rc, ok := err.(*RefCellEncodeError[error])
	if !ok {
		t.Fatalf("expected *RefCellEncodeError, got %T", err)
	}
	if rc.Kind != RefCellBadValue {
		t.Errorf("kind = %v, want RefCellBadValue", rc.Kind)
	}
}

func TestGuardedRejectsConcurrentBorrow(t *testing.T) {
	g := NewGuarded[uint32](1)
	g.mu.Lock() // simulate a held borrow
	defer g.mu.Unlock()

	buf := make([]byte, 4)
	out := wire.NewOutput(buf)
	err := g.Encode(out, EncodeUint32)
	if err == nil {
		t.Fatal("expected RefCellEncodeError for a held borrow")
	}
	rc, ok := err.(*RefCellEncodeError[error])
	if !ok {
		t.Fatalf("expected *RefCellEncodeError, got %T", err)
	}
	if rc.Kind != RefCellBadBorrow {
		t.Errorf("kind = %v, want RefCellBadBorrow", rc.Kind)
	}
}

func TestLazyCellForcesOnEncode(t *testing.T) {
	calls := 0
	l := NewLazyCell(func() uint32 {
		calls++
		return 42
	})

	buf := make([]byte, 4)
	out := wire.NewOutput(buf)
	if err := l.Encode(out, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if calls != 1 {
		t.Errorf("init called %d times, want 1", calls)
	}

	// A second Encode must not re-run init.
	out2 := wire.NewOutput(make([]byte, 4))
	if err := l.Encode(out2, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if calls != 1 {
		t.Errorf("init called %d times after second encode, want 1", calls)
	}
}

func TestWrappingRoundTrip(t *testing.T) {
	w := Wrapping[uint16]{V: 65535}
	buf := make([]byte, 2)
	out := wire.NewOutput(buf)
	if err := w.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got Wrapping[uint16]
	if err := got.Decode(in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.V != 65535 {
		t.Errorf("got %d", got.V)
	}
}
