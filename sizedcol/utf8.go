package sizedcol

import (
	"unicode/utf8"

	"github.com/shaban/bytewire/codec"
)

func validateUTF8(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &codec.Utf8Error{Value: b[i], Index: i}
		}
		i += size
	}
	return string(b), nil
}
