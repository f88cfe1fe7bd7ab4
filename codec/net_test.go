package codec

import (
	"net"
	"testing"

	"github.com/shaban/bytewire/wire"
)

func TestIpAddrRoundTripV4(t *testing.T) {
	buf := make([]byte, 32)
	out := wire.NewOutput(buf)
	want := net.IPv4(192, 168, 1, 1)
	if err := EncodeIpAddr(out, want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	got, err := DecodeIpAddr(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIpAddrDiscriminantBytes(t *testing.T) {
	buf := make([]byte, 32)

	outV4 := wire.NewOutput(buf)
	if err := EncodeIpAddr(outV4, net.IPv4(1, 2, 3, 4)); err != nil {
		t.Fatalf("encode v4: %v", err)
	}
	if got := outV4.Bytes()[0]; got != 4 {
		t.Errorf("v4 discriminant byte = %d, want 4", got)
	}

	outV6 := wire.NewOutput(buf)
	if err := EncodeIpAddr(outV6, net.ParseIP("::1")); err != nil {
		t.Fatalf("encode v6: %v", err)
	}
	if got := outV6.Bytes()[0]; got != 6 {
		t.Errorf("v6 discriminant byte = %d, want 6", got)
	}
}

func TestSocketAddrV4RoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	out := wire.NewOutput(buf)
	want := SocketAddrV4{Addr: [4]byte{10, 0, 0, 1}, Port: 8080}
	if err := want.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got SocketAddrV4
	if err := got.Decode(in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSocketAddrV6RoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	out := wire.NewOutput(buf)
	want := SocketAddrV6{Port: 443, FlowInfo: 1, ScopeID: 2}
	copy(want.Addr[:], []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})
	if err := want.Encode(out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	in := wire.NewInput(out.Bytes())
	var got SocketAddrV6
	if err := got.Decode(in); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
