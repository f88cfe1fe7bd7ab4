package slot

import (
	"bytes"

	"golang.org/x/crypto/blake2b"

	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// ChecksumMismatchError is returned when a decoded value's stored checksum
// does not match the checksum recomputed over its wire bytes.
type ChecksumMismatchError struct {
	Want [blake2b.Size256]byte
	Got  [blake2b.Size256]byte
}

func (e *ChecksumMismatchError) Error() string {
	return "checksum mismatch: wire bytes were corrupted or truncated"
}

// Checksum pairs a value's encoded wire bytes with a BLAKE2b-256 digest
// over them, for callers storing or transmitting encoded bytes somewhere
// that can silently corrupt them (a filesystem, an unreliable link). Like
// CompressedBuf, this sits outside the core wire format: the digest itself
// never appears in a SPEC_FULL.md-defined struct or enum's own encoding.
type Checksum struct {
	Wire   []byte
	Digest [blake2b.Size256]byte
}

// NewChecksum encodes v and computes its digest.
func NewChecksum(v codec.Encoder, capacity int) (*Checksum, error) {
	buf := NewBuf(capacity)
	wireBytes, err := buf.Write(v)
	if err != nil {
		return nil, err
	}
	cp := append([]byte(nil), wireBytes...)
	return &Checksum{Wire: cp, Digest: blake2b.Sum256(cp)}, nil
}

// Verify recomputes the digest over c.Wire and compares it against
// c.Digest, returning ChecksumMismatchError on any discrepancy.
func (c *Checksum) Verify() error {
	got := blake2b.Sum256(c.Wire)
	if !bytes.Equal(got[:], c.Digest[:]) {
		return &ChecksumMismatchError{Want: c.Digest, Got: got}
	}
	return nil
}

// Decode verifies the checksum and then decodes v from the wire bytes.
func (c *Checksum) Decode(v codec.Decoder) error {
	if err := c.Verify(); err != nil {
		return err
	}
	in := wire.NewInput(c.Wire)
	return v.Decode(in)
}
