package primitives

import (
	"github.com/shaban/bytewire/codec"
	"github.com/shaban/bytewire/wire"
)

// Encode writes AllPrimitives to out in field declaration order.
func (v *AllPrimitives) Encode(out *wire.Output) error {
	if err := codec.EncodeUint8(out, v.AU8); err != nil {
		return codec.WrapEncode("a_u8", err)
	}
	if err := codec.EncodeInt8(out, v.AI8); err != nil {
		return codec.WrapEncode("a_i8", err)
	}
	if err := codec.EncodeUint16(out, v.AU16); err != nil {
		return codec.WrapEncode("a_u16", err)
	}
	if err := codec.EncodeInt16(out, v.AI16); err != nil {
		return codec.WrapEncode("a_i16", err)
	}
	if err := codec.EncodeUint32(out, v.AU32); err != nil {
		return codec.WrapEncode("a_u32", err)
	}
	if err := codec.EncodeInt32(out, v.AI32); err != nil {
		return codec.WrapEncode("a_i32", err)
	}
	if err := codec.EncodeUint64(out, v.AU64); err != nil {
		return codec.WrapEncode("a_u64", err)
	}
	if err := codec.EncodeInt64(out, v.AI64); err != nil {
		return codec.WrapEncode("a_i64", err)
	}
	if err := codec.EncodeUint128(out, v.AU128); err != nil {
		return codec.WrapEncode("a_u128", err)
	}
	if err := codec.EncodeInt128(out, v.AI128); err != nil {
		return codec.WrapEncode("a_i128", err)
	}
	if err := codec.EncodeUint(out, v.AU); err != nil {
		return codec.WrapEncode("a_u", err)
	}
	if err := codec.EncodeInt(out, v.AI); err != nil {
		return codec.WrapEncode("a_i", err)
	}
	if err := codec.EncodeFloat32(out, v.AF32); err != nil {
		return codec.WrapEncode("a_f32", err)
	}
	if err := codec.EncodeFloat64(out, v.AF64); err != nil {
		return codec.WrapEncode("a_f64", err)
	}
	if err := codec.EncodeBool(out, v.ABool); err != nil {
		return codec.WrapEncode("a_bool", err)
	}
	if err := codec.EncodeChar(out, v.AChar); err != nil {
		return codec.WrapEncode("a_char", err)
	}
	if err := codec.EncodeString(out, v.AStr); err != nil {
		return codec.WrapEncode("a_str", err)
	}
	if err := codec.EncodeCString(out, v.ACstr); err != nil {
		return codec.WrapEncode("a_cstr", err)
	}
	return nil
}

// Decode reads a AllPrimitives from in, replacing v's fields in place.
func (v *AllPrimitives) Decode(in *wire.Input) error {
	{
		val, err := func(in *wire.Input) (uint8, error) {
			return codec.DecodeUint8(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u8", err)
		}
		v.AU8 = val
	}
	{
		val, err := func(in *wire.Input) (int8, error) {
			return codec.DecodeInt8(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i8", err)
		}
		v.AI8 = val
	}
	{
		val, err := func(in *wire.Input) (uint16, error) {
			return codec.DecodeUint16(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u16", err)
		}
		v.AU16 = val
	}
	{
		val, err := func(in *wire.Input) (int16, error) {
			return codec.DecodeInt16(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i16", err)
		}
		v.AI16 = val
	}
	{
		val, err := func(in *wire.Input) (uint32, error) {
			return codec.DecodeUint32(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u32", err)
		}
		v.AU32 = val
	}
	{
		val, err := func(in *wire.Input) (int32, error) {
			return codec.DecodeInt32(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i32", err)
		}
		v.AI32 = val
	}
	{
		val, err := func(in *wire.Input) (uint64, error) {
			return codec.DecodeUint64(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u64", err)
		}
		v.AU64 = val
	}
	{
		val, err := func(in *wire.Input) (int64, error) {
			return codec.DecodeInt64(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i64", err)
		}
		v.AI64 = val
	}
	{
		val, err := func(in *wire.Input) (codec.Uint128, error) {
			return codec.DecodeUint128(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u128", err)
		}
		v.AU128 = val
	}
	{
		val, err := func(in *wire.Input) (codec.Int128, error) {
			return codec.DecodeInt128(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i128", err)
		}
		v.AI128 = val
	}
	{
		val, err := func(in *wire.Input) (uint, error) {
			return codec.DecodeUint(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_u", err)
		}
		v.AU = val
	}
	{
		val, err := func(in *wire.Input) (int, error) {
			return codec.DecodeInt(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_i", err)
		}
		v.AI = val
	}
	{
		val, err := func(in *wire.Input) (float32, error) {
			return codec.DecodeFloat32(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_f32", err)
		}
		v.AF32 = val
	}
	{
		val, err := func(in *wire.Input) (float64, error) {
			return codec.DecodeFloat64(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_f64", err)
		}
		v.AF64 = val
	}
	{
		val, err := func(in *wire.Input) (bool, error) {
			return codec.DecodeBool(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_bool", err)
		}
		v.ABool = val
	}
	{
		val, err := func(in *wire.Input) (rune, error) {
			return codec.DecodeChar(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_char", err)
		}
		v.AChar = val
	}
	{
		val, err := func(in *wire.Input) (string, error) {
			return codec.DecodeString(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_str", err)
		}
		v.AStr = val
	}
	{
		val, err := func(in *wire.Input) (string, error) {
			return codec.DecodeCString(in)
		}(in)
		if err != nil {
			return codec.WrapDecode("a_cstr", err)
		}
		v.ACstr = val
	}
	return nil
}
