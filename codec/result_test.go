package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestResultOkRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	r := Ok[uint32, uint8](5)
	if err := EncodeResult(out, r, EncodeUint32, EncodeUint8); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeResult(in, DecodeUint32, DecodeUint8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.IsErr || got.Ok != 5 {
		t.Errorf("got %+v", got)
	}
}

func TestResultErrRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	r := Err[uint32, uint8](9)
	if err := EncodeResult(out, r, EncodeUint32, EncodeUint8); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeResult(in, DecodeUint32, DecodeUint8)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsErr || got.Err != 9 {
		t.Errorf("got %+v", got)
	}
}
