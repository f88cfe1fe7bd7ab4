package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestOptionSomeRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	if err := EncodeOption(out, Some[uint32](99), EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeOption(in, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Some || got.Value != 99 {
		t.Errorf("got %+v", got)
	}
}

func TestOptionNoneRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	if err := EncodeOption(out, None[uint32](), EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.Position() != 1 {
		t.Errorf("position = %d, want 1 (no value bytes for None)", out.Position())
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeOption(in, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Some {
		t.Error("expected None")
	}
}
