package golang

import (
	"fmt"
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// GenerateStructTypes renders the Go struct type declaration for every
// struct in the schema, in declaration order.
func GenerateStructTypes(s *schema.Schema) string {
	var b strings.Builder

	for i, st := range s.Structs {
		if i > 0 {
			b.WriteString("\n")
		}
		writeStructType(&b, st)
	}

	return b.String()
}

func writeStructType(b *strings.Builder, st schema.Struct) {
	name := ToGoName(st.Name)

	if st.Doc != "" {
		writeDoc(b, name, st.Doc)
	} else {
		fmt.Fprintf(b, "// %s is a generated bytewire struct.\n", name)
	}

	fmt.Fprintf(b, "type %s struct {\n", name)
	for _, f := range st.Fields {
		if f.Doc != "" {
			writeDoc(b, "\t"+ToGoName(f.Name), f.Doc)
		}
		fmt.Fprintf(b, "\t%s %s\n", ToGoName(f.Name), GoType(f.Type))
	}
	b.WriteString("}\n")
}

func writeDoc(b *strings.Builder, name, doc string) {
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		if i == 0 && !strings.HasPrefix(line, strings.TrimSpace(name)+" ") {
			fmt.Fprintf(b, "// %s %s\n", name, line)
		} else {
			fmt.Fprintf(b, "// %s\n", line)
		}
	}
}

// GenerateStructEncoders renders an Encode method for every struct.
func GenerateStructEncoders(s *schema.Schema) string {
	var b strings.Builder
	for i, st := range s.Structs {
		if i > 0 {
			b.WriteString("\n")
		}
		writeStructEncode(&b, st)
	}
	return b.String()
}

func writeStructEncode(b *strings.Builder, st schema.Struct) {
	name := ToGoName(st.Name)
	fmt.Fprintf(b, "// Encode writes %s to out in field declaration order.\n", name)
	fmt.Fprintf(b, "func (v *%s) Encode(out *wire.Output) error {\n", name)
	for _, f := range st.Fields {
		fieldExpr := "v." + ToGoName(f.Name)
		fmt.Fprintf(b, "\tif err := %s; err != nil {\n\t\treturn codec.WrapEncode(%q, err)\n\t}\n", encodeExprCall(fieldExpr, f.Type), f.Name)
	}
	b.WriteString("\treturn nil\n}\n")
}

// GenerateStructDecoders renders a Decode method for every struct.
func GenerateStructDecoders(s *schema.Schema) string {
	var b strings.Builder
	for i, st := range s.Structs {
		if i > 0 {
			b.WriteString("\n")
		}
		writeStructDecode(&b, st)
	}
	return b.String()
}

func writeStructDecode(b *strings.Builder, st schema.Struct) {
	name := ToGoName(st.Name)
	fmt.Fprintf(b, "// Decode reads a %s from in, replacing v's fields in place.\n", name)
	fmt.Fprintf(b, "func (v *%s) Decode(in *wire.Input) error {\n", name)
	identity := func(s string) string { return s }
	for _, f := range st.Fields {
		fieldExpr := "v." + ToGoName(f.Name)
		writeFieldDecode(b, fieldExpr, f.Name, f.Type, identity)
	}
	b.WriteString("\treturn nil\n}\n")
}

// writeFieldDecode renders the statements that decode into an already
// addressable destination (a struct field or, recursively, an
// already-declared local). Named, non-optional, non-boxed fields decode in place via
// their own Decode method; everything else goes through a codec free
// function and is then assigned. wrapErr renders the final `return ...`
// expression around a `codec.WrapDecode(fieldName, err)` call, letting a
// struct return that GenericDecodeError directly and an enum fold it
// further into an EnumDecodeError's BadField.
func writeFieldDecode(b *strings.Builder, fieldExpr, fieldName string, t schema.TypeExpr, wrapErr func(string) string) {
	if t.Kind == schema.TypeKindNamed && !t.Optional && !t.Boxed {
		fmt.Fprintf(b, "\tif err := %s.Decode(in); err != nil {\n\t\treturn %s\n\t}\n", fieldExpr, wrapErr(fmt.Sprintf("codec.WrapDecode(%q, err)", fieldName)))
		return
	}

	switch {
	case t.Kind == schema.TypeKindFixedArray && !t.Optional:
		fmt.Fprintf(b, "\t{\n\t\telems, err := codec.DecodeArray(in, %d, %s)\n\t\tif err != nil {\n\t\t\treturn %s\n\t\t}\n\t\tcopy(%s[:], elems)\n\t}\n", t.Size, decodeFuncLiteral(*t.Elem), wrapErr(fmt.Sprintf("codec.WrapDecode(%q, err)", fieldName)), fieldExpr)
	default:
		fmt.Fprintf(b, "\t{\n\t\tval, err := %s(in)\n\t\tif err != nil {\n\t\t\treturn %s\n\t\t}\n\t\t%s = val\n\t}\n", decodeFuncLiteral(t), wrapErr(fmt.Sprintf("codec.WrapDecode(%q, err)", fieldName)), fieldExpr)
	}
}

// GenerateStructSizers renders a MaxEncodedSize method for every struct
// whose wire size is statically bounded (no string, dynamic array/map/set,
// boxed, or enum-typed field anywhere in its shape). Structs that are not
// statically sizeable simply get no MaxEncodedSize method and so satisfy
// codec.Encoder/Decoder but not codec.SizedEncoder.
func GenerateStructSizers(s *schema.Schema) string {
	named := make(map[string]int)

	// Structs may reference each other; iterate to a fixed point so that
	// forward references to an already-sizeable struct still resolve.
	for pass := 0; pass < len(s.Structs)+1; pass++ {
		changed := false
		for _, st := range s.Structs {
			if _, done := named[st.Name]; done {
				continue
			}
			total := 0
			sizeable := true
			for _, f := range st.Fields {
				size := maxEncodedSize(f.Type, named)
				if size < 0 {
					sizeable = false
					break
				}
				total += size
			}
			if sizeable {
				named[st.Name] = total
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	var b strings.Builder
	first := true
	for _, st := range s.Structs {
		size, ok := named[st.Name]
		if !ok {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		name := ToGoName(st.Name)
		fmt.Fprintf(&b, "// MaxEncodedSize returns %s's fixed wire size in bytes.\n", name)
		fmt.Fprintf(&b, "func (v *%s) MaxEncodedSize() int { return %d }\n", name, size)
	}
	return b.String()
}
