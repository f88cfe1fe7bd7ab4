package slot

import (
	"testing"

	"github.com/shaban/bytewire/wire"
)

type fakeU32 struct {
	v uint32
}

func (f fakeU32) Encode(out *wire.Output) error {
	var b [4]byte
	b[0] = byte(f.v)
	b[1] = byte(f.v >> 8)
	b[2] = byte(f.v >> 16)
	b[3] = byte(f.v >> 24)
	return out.Write(b[:])
}

func (f *fakeU32) Decode(in *wire.Input) error {
	b, err := in.Read(4)
	if err != nil {
		return err
	}
	f.v = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return nil
}

func (f fakeU32) MaxEncodedSize() int { return 4 }

func TestBufWriteRead(t *testing.T) {
	buf := NewBuf(4)
	bytesOut, err := buf.Write(fakeU32{v: 0xAABBCCDD})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(bytesOut) != 4 {
		t.Fatalf("len = %d, want 4", len(bytesOut))
	}

	var got fakeU32
	if err := buf.Read(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.v != 0xAABBCCDD {
		t.Errorf("got %#x", got.v)
	}
}

func TestReserveReportsOverrun(t *testing.T) {
	buf := NewBuf(2)
	if _, err := Reserve(buf, fakeU32{}); err == nil {
		t.Fatal("expected SlotOverrunError")
	}
}

func TestCompressedBufRoundTrip(t *testing.T) {
	c := NewCompressedBuf(4)
	compressed, err := c.WriteCompressed(fakeU32{v: 42})
	if err != nil {
		t.Fatalf("write compressed: %v", err)
	}

	var got fakeU32
	if err := c.ReadCompressed(compressed, &got); err != nil {
		t.Fatalf("read compressed: %v", err)
	}
	if got.v != 42 {
		t.Errorf("got %d, want 42", got.v)
	}
}

func TestChecksumDetectsCorruption(t *testing.T) {
	cs, err := NewChecksum(fakeU32{v: 7}, 4)
	if err != nil {
		t.Fatalf("new checksum: %v", err)
	}
	if err := cs.Verify(); err != nil {
		t.Fatalf("unexpected verify failure: %v", err)
	}

	cs.Wire[0] ^= 0xFF
	if err := cs.Verify(); err == nil {
		t.Fatal("expected ChecksumMismatchError after corruption")
	}
}
