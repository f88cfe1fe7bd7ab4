package enums

import (
	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// Encode writes Shape's discriminant followed by its active variant's payload, if any.
func (v *Shape) Encode(out *wire.Output) error {
	if err := codec.EncodeUint8(out, uint8(v.Kind)); err != nil {
		return codec.NewBadDiscriminant[error, error](err)
	}
	switch v.Kind {
	case ShapePoint:
	case ShapeCircle:
		if err := codec.EncodeFloat64(out, v.Circle); err != nil {
			return codec.NewEnumBadField[error, error](codec.WrapEncode("Circle", err))
		}
	case ShapeSquare:
		if err := codec.EncodeFloat64(out, v.Square); err != nil {
			return codec.NewEnumBadField[error, error](codec.WrapEncode("Square", err))
		}
	default:
		return codec.NewBadDiscriminant[error, error](&codec.UnassignedDiscriminantError{Value: codec.ToUint128(v.Kind)})
	}
	return nil
}

// Decode reads a Shape's discriminant and its matching variant's payload, replacing v in place.
func (v *Shape) Decode(in *wire.Input) error {
	kind, err := codec.DecodeUint8(in)
	if err != nil {
		return codec.NewInvalidDiscriminant[error, error](err)
	}
	*v = Shape{}
	v.Kind = ShapeKind(kind)
	switch v.Kind {
	case ShapePoint:
	case ShapeCircle:
		{
			val, err := func(in *wire.Input) (float64, error) {
				return codec.DecodeFloat64(in)
			}(in)
			if err != nil {
				return codec.NewBadField[error, error](codec.WrapDecode("Circle", err))
			}
			v.Circle = val
		}
	case ShapeSquare:
		{
			val, err := func(in *wire.Input) (float64, error) {
				return codec.DecodeFloat64(in)
			}(in)
			if err != nil {
				return codec.NewBadField[error, error](codec.WrapDecode("Square", err))
			}
			v.Square = val
		}
	default:
		return codec.NewUnassignedDiscriminant[error, error](kind)
	}
	return nil
}
