package codec

import (
	"testing"
	"time"

	"github.com/shaban/bytewire/wire"
)

func TestDurationRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	want := 90*time.Second + 250*time.Millisecond
	if err := EncodeDuration(out, want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeDuration(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemTimeRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	want := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	if err := EncodeSystemTime(out, want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeSystemTime(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemTimeEpochIsEightZeroBytes(t *testing.T) {
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	if err := EncodeSystemTime(out, time.Unix(0, 0).UTC()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := out.Bytes()
	want := make([]byte, 8)
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b != want[i] {
			t.Errorf("byte %d = %#x, want 0", i, b)
		}
	}
}

func TestSystemTimeNegativeSecondsRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	out := wire.NewOutput(buf)
	want := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := EncodeSystemTime(out, want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeSystemTime(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
