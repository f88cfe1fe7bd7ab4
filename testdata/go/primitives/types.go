package primitives

import (
	"github.com/shaban/bytewire/codec"
)

// AllPrimitives exercises every primitive keyword the schema language
// supports, one field per keyword.
type AllPrimitives struct {
	AU8   uint8
	AI8   int8
	AU16  uint16
	AI16  int16
	AU32  uint32
	AI32  int32
	AU64  uint64
	AI64  int64
	AU128 codec.Uint128
	AI128 codec.Int128
	AU    uint
	AI    int
	AF32  float32
	AF64  float64
	ABool bool
	AChar rune
	AStr  string
	ACstr string
}
