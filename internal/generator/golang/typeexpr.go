package golang

import (
	"fmt"
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// GoType renders a schema.TypeExpr as the Go type a struct field or
// closure parameter of that type would use.
func GoType(t schema.TypeExpr) string {
	if t.Optional {
		inner := t
		inner.Optional = false
		return "codec.Option[" + GoType(inner) + "]"
	}

	switch t.Kind {
	case schema.TypeKindPrimitive:
		return primitiveGoType[t.Name]

	case schema.TypeKindNamed:
		name := ToGoName(t.Name)
		if t.Boxed {
			return "*" + name
		}
		return name

	case schema.TypeKindArray:
		return "[]" + GoType(*t.Elem)

	case schema.TypeKindFixedArray:
		return fmt.Sprintf("[%d]%s", t.Size, GoType(*t.Elem))

	case schema.TypeKindMap:
		return "map[" + GoType(*t.Elem) + "]" + GoType(*t.Value)

	case schema.TypeKindSet:
		return "map[" + GoType(*t.Elem) + "]struct{}"

	case schema.TypeKindTuple:
		names := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			names[i] = GoType(e)
		}
		return fmt.Sprintf("codec.Tuple%d[%s]", len(t.Elems), strings.Join(names, ", "))

	case schema.TypeKindUnit:
		return "codec.Unit"

	default:
		return "any"
	}
}

// encodeFuncLiteral renders a `func(out *wire.Output, v T) error` literal
// that encodes a value of type t, used wherever a composite encode call
// (EncodeSlice, EncodeMap, EncodeOption, ...) needs an element encoder.
func encodeFuncLiteral(t schema.TypeExpr) string {
	goType := GoType(t)
	body := encodeExprCall("v", t)
	return fmt.Sprintf("func(out *wire.Output, v %s) error { return %s }", goType, body)
}

// decodeFuncLiteral renders a `func(in *wire.Input) (T, error)` literal
// that decodes a value of type t.
func decodeFuncLiteral(t schema.TypeExpr) string {
	goType := GoType(t)
	var b strings.Builder
	fmt.Fprintf(&b, "func(in *wire.Input) (%s, error) {\n", goType)
	b.WriteString(decodeReturnBlock(t))
	b.WriteString("}")
	return b.String()
}

// encodeExprCall renders a Go expression of type error that encodes the
// value held by valueExpr (of Go type GoType(t)) into `out`.
func encodeExprCall(valueExpr string, t schema.TypeExpr) string {
	if t.Optional {
		inner := t
		inner.Optional = false
		return fmt.Sprintf("codec.EncodeOption(out, %s, %s)", valueExpr, encodeFuncLiteral(inner))
	}

	switch t.Kind {
	case schema.TypeKindPrimitive:
		return fmt.Sprintf("%s(out, %s)", primitiveEncodeFunc[t.Name], valueExpr)

	case schema.TypeKindNamed:
		return fmt.Sprintf("%s.Encode(out)", valueExpr)

	case schema.TypeKindArray:
		return fmt.Sprintf("codec.EncodeSlice(out, %s, %s)", valueExpr, encodeFuncLiteral(*t.Elem))

	case schema.TypeKindFixedArray:
		return fmt.Sprintf("codec.EncodeArray(out, %s[:], %s)", valueExpr, encodeFuncLiteral(*t.Elem))

	case schema.TypeKindMap:
		return fmt.Sprintf("codec.EncodeMap(out, %s, %s, %s)", valueExpr, encodeFuncLiteral(*t.Elem), encodeFuncLiteral(*t.Value))

	case schema.TypeKindSet:
		return fmt.Sprintf("codec.EncodeSet(out, %s, %s)", valueExpr, encodeFuncLiteral(*t.Elem))

	case schema.TypeKindTuple:
		args := make([]string, 0, len(t.Elems)+1)
		args = append(args, valueExpr)
		for _, e := range t.Elems {
			args = append(args, encodeFuncLiteral(e))
		}
		return fmt.Sprintf("codec.EncodeTuple%d(out, %s)", len(t.Elems), strings.Join(args, ", "))

	case schema.TypeKindUnit:
		return fmt.Sprintf("%s.Encode(out)", valueExpr)

	default:
		return fmt.Sprintf("/* unsupported type %s */ nil", t.String())
	}
}

// decodeReturnBlock renders the body of a decode function literal: it
// declares and populates a local `v`, then returns it alongside any error.
func decodeReturnBlock(t schema.TypeExpr) string {
	var b strings.Builder
	goType := GoType(t)

	if t.Optional {
		inner := t
		inner.Optional = false
		fmt.Fprintf(&b, "\tvar zero %s\n", goType)
		fmt.Fprintf(&b, "\tval, err := codec.DecodeOption(in, %s)\n", decodeFuncLiteral(inner))
		b.WriteString("\tif err != nil {\n\t\treturn zero, err\n\t}\n")
		b.WriteString("\treturn val, nil\n")
		return b.String()
	}

	switch t.Kind {
	case schema.TypeKindPrimitive:
		fmt.Fprintf(&b, "\treturn %s(in)\n", primitiveDecodeFunc[t.Name])

	case schema.TypeKindNamed:
		name := ToGoName(t.Name)
		if t.Boxed {
			fmt.Fprintf(&b, "\tv := new(%s)\n", name)
			b.WriteString("\tif err := v.Decode(in); err != nil {\n\t\treturn nil, err\n\t}\n")
			b.WriteString("\treturn v, nil\n")
		} else {
			fmt.Fprintf(&b, "\tvar v %s\n", name)
			b.WriteString("\tif err := v.Decode(in); err != nil {\n\t\treturn v, err\n\t}\n")
			b.WriteString("\treturn v, nil\n")
		}

	case schema.TypeKindArray:
		fmt.Fprintf(&b, "\treturn codec.DecodeSlice(in, %s)\n", decodeFuncLiteral(*t.Elem))

	case schema.TypeKindFixedArray:
		fmt.Fprintf(&b, "\tvar v %s\n", goType)
		fmt.Fprintf(&b, "\telems, err := codec.DecodeArray(in, %d, %s)\n", t.Size, decodeFuncLiteral(*t.Elem))
		b.WriteString("\tif err != nil {\n\t\treturn v, err\n\t}\n")
		b.WriteString("\tcopy(v[:], elems)\n")
		b.WriteString("\treturn v, nil\n")

	case schema.TypeKindMap:
		fmt.Fprintf(&b, "\treturn codec.DecodeMap(in, %s, %s)\n", decodeFuncLiteral(*t.Elem), decodeFuncLiteral(*t.Value))

	case schema.TypeKindSet:
		fmt.Fprintf(&b, "\treturn codec.DecodeSet(in, %s)\n", decodeFuncLiteral(*t.Elem))

	case schema.TypeKindTuple:
		args := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			args[i] = decodeFuncLiteral(e)
		}
		fmt.Fprintf(&b, "\treturn codec.DecodeTuple%d(in, %s)\n", len(t.Elems), strings.Join(args, ", "))

	case schema.TypeKindUnit:
		fmt.Fprintf(&b, "\tvar v %s\n", goType)
		b.WriteString("\tif err := v.Decode(in); err != nil {\n\t\treturn v, err\n\t}\n")
		b.WriteString("\treturn v, nil\n")

	default:
		fmt.Fprintf(&b, "\treturn v, fmt.Errorf(\"unsupported type %s\")\n", t.String())
	}

	return b.String()
}

// maxEncodedSize returns t's fixed wire size, or -1 if it is variable
// length (a string, a dynamic array/map/set, or a named type whose own
// size is variable).
func maxEncodedSize(t schema.TypeExpr, named map[string]int) int {
	if t.Optional {
		inner := t
		inner.Optional = false
		size := maxEncodedSize(inner, named)
		if size < 0 {
			return -1
		}
		return 1 + size
	}

	switch t.Kind {
	case schema.TypeKindPrimitive:
		return primitiveMaxSize[t.Name]

	case schema.TypeKindNamed:
		if t.Boxed {
			return -1 // indirection: caller cannot bound a boxed recursive type statically
		}
		if size, ok := named[t.Name]; ok {
			return size
		}
		return -1

	case schema.TypeKindFixedArray:
		elemSize := maxEncodedSize(*t.Elem, named)
		if elemSize < 0 {
			return -1
		}
		return elemSize * t.Size

	case schema.TypeKindTuple:
		total := 0
		for _, e := range t.Elems {
			size := maxEncodedSize(e, named)
			if size < 0 {
				return -1
			}
			total += size
		}
		return total

	default:
		// Array, Map, Set all carry a runtime length prefix and an
		// unbounded element count: not statically sizeable.
		return -1
	}
}
