package golang

import (
	"fmt"
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// reprGoType maps an enum's repr to the Go type its Kind constants use.
func reprGoType(r schema.ReprKind) string {
	switch r {
	case schema.ReprU8:
		return "uint8"
	case schema.ReprI8:
		return "int8"
	case schema.ReprU16:
		return "uint16"
	case schema.ReprI16:
		return "int16"
	case schema.ReprU32:
		return "uint32"
	case schema.ReprI32:
		return "int32"
	case schema.ReprU64:
		return "uint64"
	case schema.ReprI64:
		return "int64"
	case schema.ReprU128:
		return "codec.Uint128"
	case schema.ReprI128:
		return "codec.Int128"
	case schema.ReprUsize:
		return "uint"
	default:
		return "int"
	}
}

// reprEncodeFunc maps an enum's repr to the codec function that writes its
// discriminant.
func reprEncodeFunc(r schema.ReprKind) string {
	switch r {
	case schema.ReprU8:
		return "codec.EncodeUint8"
	case schema.ReprI8:
		return "codec.EncodeInt8"
	case schema.ReprU16:
		return "codec.EncodeUint16"
	case schema.ReprI16:
		return "codec.EncodeInt16"
	case schema.ReprU32:
		return "codec.EncodeUint32"
	case schema.ReprI32:
		return "codec.EncodeInt32"
	case schema.ReprU64:
		return "codec.EncodeUint64"
	case schema.ReprI64:
		return "codec.EncodeInt64"
	case schema.ReprU128:
		return "codec.EncodeUint128"
	case schema.ReprI128:
		return "codec.EncodeInt128"
	case schema.ReprUsize:
		return "codec.EncodeUint"
	default:
		return "codec.EncodeInt"
	}
}

// reprDecodeFunc maps an enum's repr to the codec function that reads its
// discriminant.
func reprDecodeFunc(r schema.ReprKind) string {
	switch r {
	case schema.ReprU8:
		return "codec.DecodeUint8"
	case schema.ReprI8:
		return "codec.DecodeInt8"
	case schema.ReprU16:
		return "codec.DecodeUint16"
	case schema.ReprI16:
		return "codec.DecodeInt16"
	case schema.ReprU32:
		return "codec.DecodeUint32"
	case schema.ReprI32:
		return "codec.DecodeInt32"
	case schema.ReprU64:
		return "codec.DecodeUint64"
	case schema.ReprI64:
		return "codec.DecodeInt64"
	case schema.ReprU128:
		return "codec.DecodeUint128"
	case schema.ReprI128:
		return "codec.DecodeInt128"
	case schema.ReprUsize:
		return "codec.DecodeUint"
	default:
		return "codec.DecodeInt"
	}
}

// repr128 reports whether r's Kind type is a codec.Uint128/Int128 struct
// rather than a native Go integer: those two reprs have no native Go
// equivalent, so their discriminant constants cannot be const (Go constants
// are limited to basic types) and their unassigned-discriminant diagnostics
// cannot go through ToUint128's PrimitiveDiscriminant constraint.
func repr128(r schema.ReprKind) bool {
	return r == schema.ReprU128 || r == schema.ReprI128
}

// reprUint128Expr renders a codec.Uint128-typed expression widening a Kind
// or raw discriminant value expr of type goType, for use in diagnostics
// that always carry a Uint128 regardless of repr.
func reprUint128Expr(r schema.ReprKind, expr string) string {
	switch r {
	case schema.ReprU128:
		return fmt.Sprintf("codec.Uint128(%s)", expr)
	case schema.ReprI128:
		return fmt.Sprintf("codec.Uint128{Lo: %s.Lo, Hi: %s.Hi}", expr, expr)
	default:
		return fmt.Sprintf("codec.ToUint128(%s)", expr)
	}
}

// reprUnassignedDecodeExpr renders the codec.EnumDecodeError constructor
// call for an unmatched discriminant value of type goType(r).
func reprUnassignedDecodeExpr(r schema.ReprKind, kindExpr string) string {
	if repr128(r) {
		return fmt.Sprintf("codec.NewUnassignedDiscriminantFromUint128[error, error](%s)", reprUint128Expr(r, kindExpr))
	}
	return fmt.Sprintf("codec.NewUnassignedDiscriminant[error, error](%s)", kindExpr)
}

// GenerateEnumTypes renders, for every enum in the schema, its Kind type,
// one constant per variant, and a struct carrying that Kind alongside one
// field per payload-bearing variant. A variant is active exactly when Kind
// names it; fields belonging to other variants hold their zero value.
func GenerateEnumTypes(s *schema.Schema) string {
	var b strings.Builder
	for i, en := range s.Enums {
		if i > 0 {
			b.WriteString("\n")
		}
		writeEnumType(&b, en)
	}
	return b.String()
}

func writeEnumType(b *strings.Builder, en schema.Enum) {
	name := ToGoName(en.Name)
	kindName := name + "Kind"
	goType := reprGoType(en.Repr)

	fmt.Fprintf(b, "// %s is the discriminant of %s, stored on the wire as a %s.\n", kindName, name, en.Repr.String())
	fmt.Fprintf(b, "type %s %s\n\n", kindName, goType)

	if repr128(en.Repr) {
		// codec.Uint128/Int128 are structs: Go constants are limited to
		// basic types, so these discriminants are package-level vars
		// instead. Equality and switch/case still work the same way.
		b.WriteString("var (\n")
		for _, v := range en.Variants {
			fmt.Fprintf(b, "\t%s%s = %s{Lo: %d}\n", name, ToGoName(v.Name), kindName, v.Discriminant)
		}
		b.WriteString(")\n\n")
	} else {
		b.WriteString("const (\n")
		for _, v := range en.Variants {
			fmt.Fprintf(b, "\t%s%s %s = %d\n", name, ToGoName(v.Name), kindName, v.Discriminant)
		}
		b.WriteString(")\n\n")
	}

	if en.Doc != "" {
		writeDoc(b, name, en.Doc)
	} else {
		fmt.Fprintf(b, "// %s is a generated bytewire enum.\n", name)
	}
	fmt.Fprintf(b, "type %s struct {\n", name)
	fmt.Fprintf(b, "\tKind %s\n", kindName)
	for _, v := range en.Variants {
		if !v.HasPayload {
			continue
		}
		if v.Doc != "" {
			writeDoc(b, "\t"+ToGoName(v.Name), v.Doc)
		}
		fmt.Fprintf(b, "\t%s %s\n", ToGoName(v.Name), GoType(v.Payload))
	}
	b.WriteString("}\n")
}

// GenerateEnumEncoders renders an Encode method for every enum.
func GenerateEnumEncoders(s *schema.Schema) string {
	var b strings.Builder
	for i, en := range s.Enums {
		if i > 0 {
			b.WriteString("\n")
		}
		writeEnumEncode(&b, en)
	}
	return b.String()
}

func writeEnumEncode(b *strings.Builder, en schema.Enum) {
	name := ToGoName(en.Name)

	fmt.Fprintf(b, "// Encode writes %s's discriminant followed by its active variant's payload, if any.\n", name)
	fmt.Fprintf(b, "func (v *%s) Encode(out *wire.Output) error {\n", name)
	fmt.Fprintf(b, "\tif err := %s(out, %s(v.Kind)); err != nil {\n\t\treturn codec.NewBadDiscriminant[error, error](err)\n\t}\n", reprEncodeFunc(en.Repr), reprGoType(en.Repr))
	b.WriteString("\tswitch v.Kind {\n")
	for _, v := range en.Variants {
		fmt.Fprintf(b, "\tcase %s%s:\n", name, ToGoName(v.Name))
		if v.HasPayload {
			fieldExpr := "v." + ToGoName(v.Name)
			fmt.Fprintf(b, "\t\tif err := %s; err != nil {\n\t\t\treturn codec.NewEnumBadField[error, error](codec.WrapEncode(%q, err))\n\t\t}\n", encodeExprCall(fieldExpr, v.Payload), v.Name)
		}
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn codec.NewBadDiscriminant[error, error](&codec.UnassignedDiscriminantError{Value: %s})\n", reprUint128Expr(en.Repr, "v.Kind"))
	b.WriteString("\t}\n")
	b.WriteString("\treturn nil\n}\n")
}

// GenerateEnumDecoders renders a Decode method for every enum.
func GenerateEnumDecoders(s *schema.Schema) string {
	var b strings.Builder
	for i, en := range s.Enums {
		if i > 0 {
			b.WriteString("\n")
		}
		writeEnumDecode(&b, en)
	}
	return b.String()
}

func writeEnumDecode(b *strings.Builder, en schema.Enum) {
	name := ToGoName(en.Name)
	kindName := name + "Kind"

	fmt.Fprintf(b, "// Decode reads a %s's discriminant and its matching variant's payload, replacing v in place.\n", name)
	fmt.Fprintf(b, "func (v *%s) Decode(in *wire.Input) error {\n", name)
	fmt.Fprintf(b, "\tkind, err := %s(in)\n", reprDecodeFunc(en.Repr))
	b.WriteString("\tif err != nil {\n\t\treturn codec.NewInvalidDiscriminant[error, error](err)\n\t}\n")
	b.WriteString("\t*v = " + name + "{}\n")
	fmt.Fprintf(b, "\tv.Kind = %s(kind)\n", kindName)
	b.WriteString("\tswitch v.Kind {\n")
	badField := func(s string) string { return fmt.Sprintf("codec.NewBadField[error, error](%s)", s) }
	for _, v := range en.Variants {
		fmt.Fprintf(b, "\tcase %s%s:\n", name, ToGoName(v.Name))
		if v.HasPayload {
			fieldExpr := "v." + ToGoName(v.Name)
			writeFieldDecode(b, fieldExpr, v.Name, v.Payload, badField)
		}
	}
	fmt.Fprintf(b, "\tdefault:\n\t\treturn %s\n", reprUnassignedDecodeExpr(en.Repr, "kind"))
	b.WriteString("\t}\n")
	b.WriteString("\treturn nil\n}\n")
}
