package slot

import (
	"github.com/klauspost/compress/zstd"

	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// CompressedBuf wraps Buf with a zstd compression pass between the wire
// bytes and whatever is persisted or sent over the network: it exists
// outside the core wire format described by SPEC_FULL.md's data model, as
// an optional transport-level layer for callers holding many encoded
// values whose wire form compresses well (repeated struct shapes, sparse
// enums).
type CompressedBuf struct {
	scratch *Buf
}

// NewCompressedBuf allocates scratch storage sized to capacity bytes for
// the uncompressed wire form.
func NewCompressedBuf(capacity int) *CompressedBuf {
	return &CompressedBuf{scratch: NewBuf(capacity)}
}

// WriteCompressed encodes v into the scratch buffer, then returns its
// zstd-compressed form.
func (c *CompressedBuf) WriteCompressed(v codec.Encoder) ([]byte, error) {
	raw, err := c.scratch.Write(v)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

// ReadCompressed decompresses compressed and decodes v from the result.
func (c *CompressedBuf) ReadCompressed(compressed []byte, v codec.Decoder) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return err
	}
	in := wire.NewInput(raw)
	return v.Decode(in)
}
