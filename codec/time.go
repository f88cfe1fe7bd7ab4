package codec

import (
	"time"

	"github.com/shaban/bytewire/wire"
)

// EncodeDuration writes d as a whole-seconds u64 followed by a sub-second
// nanoseconds u32, mirroring Rust's Duration{secs, nanos} layout.
func EncodeDuration(out *wire.Output, d time.Duration) error {
	secs := uint64(d / time.Second)
	nanos := uint32(d % time.Second)
	if err := EncodeUint64(out, secs); err != nil {
		return err
	}
	return EncodeUint32(out, nanos)
}

// DecodeDuration reads a whole-seconds u64 followed by a nanoseconds u32.
func DecodeDuration(in *wire.Input) (time.Duration, error) {
	secs, err := DecodeUint64(in)
	if err != nil {
		return 0, err
	}
	nanos, err := DecodeUint32(in)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}

// EncodeSystemTime writes t as a plain signed i64 count of whole seconds
// since the Unix epoch (UNIX_EPOCH encodes as 8 zero bytes), with no
// sub-second component on the wire: unlike Duration, a negative count is
// allowed, for instants before 1970.
func EncodeSystemTime(out *wire.Output, t time.Time) error {
	return EncodeInt64(out, t.Unix())
}

// DecodeSystemTime reads a signed i64 seconds count and reconstructs a
// time.Time at that second, with a zero sub-second component.
func DecodeSystemTime(in *wire.Input) (time.Time, error) {
	secs, err := DecodeInt64(in)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0).UTC(), nil
}
