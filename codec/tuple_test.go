package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestTuple2RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	want := Tuple2[uint32, bool]{F0: 7, F1: true}
	if err := EncodeTuple2(out, want, EncodeUint32, EncodeBool); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeTuple2(in, DecodeUint32, DecodeBool)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestTuple3RoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	want := Tuple3[uint16, uint32, uint8]{F0: 1, F1: 2, F2: 3}
	if err := EncodeTuple3(out, want, EncodeUint16, EncodeUint32, EncodeUint8); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeTuple3(in, DecodeUint16, DecodeUint32, DecodeUint8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
