package codec

import (
	"testing"

	"github.com/google/uuid"

	"github.com/shaban/bytewire/wire"
)

func TestUUIDRoundTrip(t *testing.T) {
	want := uuid.New()
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	if err := EncodeUUID(out, want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeUUID(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
