package codec

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestBoundUnboundedEncodesNoValue(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	if err := EncodeBound(out, Bound[uint32]{Kind: BoundUnbounded}, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out.Position() != 1 {
		t.Errorf("position = %d, want 1", out.Position())
	}
}

func TestBoundDiscriminantBytes(t *testing.T) {
	cases := []struct {
		kind BoundKind
		want byte
	}{
		{BoundIncluded, 0},
		{BoundExcluded, 1},
		{BoundUnbounded, 2},
	}
	for _, c := range cases {
		buf := make([]byte, 8)
		out := wire.NewOutput(buf)
		if err := EncodeBound(out, Bound[uint32]{Kind: c.kind}, EncodeUint32); err != nil {
			t.Fatalf("encode %v: %v", c.kind, err)
		}
		if got := out.Bytes()[0]; got != c.want {
			t.Errorf("kind %v discriminant byte = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestBoundIncludedRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	out := wire.NewOutput(buf)
	want := Bound[uint32]{Value: 42, Kind: BoundIncluded}
	if err := EncodeBound(out, want, EncodeUint32); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeBound(in, DecodeUint32)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
