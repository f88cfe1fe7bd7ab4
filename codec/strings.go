package codec

import (
	"unicode/utf8"

	"github.com/shaban/bytewire/wire"
)

// EncodeString writes s as a usize length prefix followed by its raw UTF-8
// bytes. Go strings are already guaranteed-valid UTF-8, so no validation is
// needed on the encode side.
func EncodeString(out *wire.Output, s string) error {
	if err := EncodeUint(out, uint(len(s))); err != nil {
		return err
	}
	return out.Write([]byte(s))
}

// DecodeString reads a usize length prefix followed by that many bytes and
// validates them as UTF-8, matching the original Rust String decode, which
// rejects invalid byte sequences rather than replacing them.
func DecodeString(in *wire.Input) (string, error) {
	n, err := DecodeUint(in)
	if err != nil {
		return "", err
	}
	b, err := in.Read(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		idx := firstInvalidUTF8Index(b)
		return "", &Utf8Error{Value: b[idx], Index: idx}
	}
	return string(b), nil
}

func firstInvalidUTF8Index(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return 0
}

// NewCString validates that s contains no interior NUL byte, mirroring
// Rust's CString::new. CStringDecodeError is reused here as the
// construction-time error, reporting the index of the offending byte.
func NewCString(s string) (string, error) {
	if i := indexByte(s, 0); i >= 0 {
		return "", &CStringDecodeError{Index: i}
	}
	return s, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// EncodeCString writes s as a usize length prefix (byte count, excluding any
// terminator) followed by its raw bytes. The terminator itself is never
// transmitted. s must not contain an interior NUL; use NewCString to
// validate before calling.
func EncodeCString(out *wire.Output, s string) error {
	if err := EncodeUint(out, uint(len(s))); err != nil {
		return err
	}
	return out.Write([]byte(s))
}

// DecodeCString reads a usize length prefix followed by that many bytes,
// then rejects an embedded NUL found anywhere within them. No terminator is
// read off the wire.
func DecodeCString(in *wire.Input) (string, error) {
	n, err := DecodeUint(in)
	if err != nil {
		return "", err
	}
	b, err := in.Read(int(n))
	if err != nil {
		return "", err
	}
	for i, c := range b {
		if c == 0 {
			return "", &CStringDecodeError{Index: i}
		}
	}
	return string(b), nil
}
