package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestSliceRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	out := wire.NewOutput(buf)
	s := []uint32{1, 2, 3, 4, 5}
	if err := EncodeSlice(out, s, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeSlice(in, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(s) {
		t.Fatalf("len = %d, want %d", len(got), len(s))
	}
	for i := range s {
		if got[i] != s[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], s[i])
		}
	}
}

func TestSliceItemErrorWrapsIndex(t *testing.T) {
	buf := make([]byte, 32)
	out := wire.NewOutput(buf)
	s := []int{1, 2, 1 << 20}
	err := EncodeSlice(out, s, EncodeInt)
	if err == nil {
		t.Fatal("expected error for out-of-range element")
	}
	ce, ok := err.(*CollectionEncodeError[error, error])
	if !ok {
		t.Fatalf("expected *CollectionEncodeError, got %T", err)
	}
	ie, ok := ce.BadItem.(*ItemEncodeError[int, error])
	if !ok {
		t.Fatalf("expected *ItemEncodeError, got %T", ce.BadItem)
	}
	if ie.Index != 2 {
		t.Errorf("index = %d, want 2", ie.Index)
	}
}

func TestArrayRoundTripNoLengthPrefix(t *testing.T) {
	buf := make([]byte, 12)
	out := wire.NewOutput(buf)
	a := []uint32{10, 20, 30}
	if err := EncodeArray(out, a, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.Position() != 12 {
		t.Errorf("position = %d, want 12 (no length prefix)", out.Position())
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeArray(in, 3, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for i := range a {
		if got[i] != a[i] {
			t.Errorf("[%d] = %d, want %d", i, got[i], a[i])
		}
	}
}

func TestMapRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	out := wire.NewOutput(buf)
	m := map[uint16]uint32{1: 10, 2: 20, 3: 30}
	if err := EncodeMap(out, m, EncodeUint16, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeMap(in, DecodeUint16, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(m) {
		t.Fatalf("len = %d, want %d", len(got), len(m))
	}
	for k, v := range m {
		if got[k] != v {
			t.Errorf("[%d] = %d, want %d", k, got[k], v)
		}
	}
}

func TestSetRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	out := wire.NewOutput(buf)
	s := map[uint32]struct{}{1: {}, 2: {}, 3: {}}
	if err := EncodeSet(out, s, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeSet(in, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(s) {
		t.Fatalf("len = %d, want %d", len(got), len(s))
	}
	for k := range s {
		if _, ok := got[k]; !ok {
			t.Errorf("missing member %d", k)
		}
	}
}
