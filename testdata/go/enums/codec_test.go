package enums

import (
	"testing"

	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

func TestShapeRoundTrip(t *testing.T) {
	cases := []Shape{
		{Kind: ShapePoint},
		{Kind: ShapeCircle, Circle: 3.5},
		{Kind: ShapeSquare, Square: 9},
	}

	for _, want := range cases {
		buf := make([]byte, 32)
		out := wire.NewOutput(buf)
		if err := want.Encode(out); err != nil {
			t.Fatalf("encode %+v: %v", want, err)
		}

		in := wire.NewInput(out.Bytes())
		var got Shape
		if err := got.Decode(in); err != nil {
			t.Fatalf("decode %+v: %v", want, err)
		}

		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestShapeRejectsUnassignedDiscriminant(t *testing.T) {
	buf := make([]byte, 1)
	out := wire.NewOutput(buf)
	out.WriteByte(200)

	in := wire.NewInput(out.Bytes())
	var got Shape
	err := got.Decode(in)
	if err == nil {
		t.Fatal("expected an error for an unassigned discriminant")
	}
	derr, ok := err.(*codec.EnumDecodeError[error, error])
	if !ok {
		t.Fatalf("expected *codec.EnumDecodeError[error, error], got %T", err)
	}
	if derr.UnassignedDiscriminant.Lo != 200 {
		t.Errorf("UnassignedDiscriminant = %v, want Lo=200", derr.UnassignedDiscriminant)
	}
}

func TestShapeEncodeRejectsUnassignedDiscriminant(t *testing.T) {
	buf := make([]byte, 32)
	out := wire.NewOutput(buf)
	bad := Shape{Kind: ShapeKind(200)}
	err := bad.Encode(out)
	if err == nil {
		t.Fatal("expected an error for an unassigned discriminant")
	}
	eerr, ok := err.(*codec.EnumEncodeError[error, error])
	if !ok {
		t.Fatalf("expected *codec.EnumEncodeError[error, error], got %T", err)
	}
	if _, ok := eerr.BadDiscriminant.(*codec.UnassignedDiscriminantError); !ok {
		t.Fatalf("BadDiscriminant = %T, want *codec.UnassignedDiscriminantError", eerr.BadDiscriminant)
	}
}
