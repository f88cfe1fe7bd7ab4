package schema

import "testing"

func TestParseStructWithFields(t *testing.T) {
	src := `
/// A device on the network.
struct Device {
    id: u32,
    name: str,
    tags: []str,
}
`
	s, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Structs) != 1 {
		t.Fatalf("got %d structs, want 1", len(s.Structs))
	}
	d := s.Structs[0]
	if d.Name != "Device" || d.Doc == "" {
		t.Fatalf("unexpected struct: %+v", d)
	}
	if len(d.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(d.Fields))
	}
	if d.Fields[2].Type.Kind != TypeKindArray || d.Fields[2].Type.Elem.Name != "str" {
		t.Errorf("tags field: %+v", d.Fields[2].Type)
	}
}

func TestParseOptionalBoxedField(t *testing.T) {
	src := `
struct Node {
    parent: Option<Box<Node>>,
}
`
	s, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f := s.Structs[0].Fields[0]
	if !f.Type.Optional || !f.Type.Boxed {
		t.Fatalf("expected Optional+Boxed, got %+v", f.Type)
	}
	if f.Type.Kind != TypeKindNamed || f.Type.Name != "Node" {
		t.Errorf("unexpected inner type: %+v", f.Type)
	}
}

func TestParseFixedArrayMapSetTuple(t *testing.T) {
	src := `
struct Blob {
    digest: [u8;32],
    scores: map<str,u32>,
    unique: set<u32>,
    pair: (u32, str),
}
`
	s, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fields := s.Structs[0].Fields

	if fields[0].Type.Kind != TypeKindFixedArray || fields[0].Type.Size != 32 {
		t.Errorf("digest: %+v", fields[0].Type)
	}
	if fields[1].Type.Kind != TypeKindMap || fields[1].Type.Elem.Name != "str" || fields[1].Type.Value.Name != "u32" {
		t.Errorf("scores: %+v", fields[1].Type)
	}
	if fields[2].Type.Kind != TypeKindSet || fields[2].Type.Elem.Name != "u32" {
		t.Errorf("unique: %+v", fields[2].Type)
	}
	if fields[3].Type.Kind != TypeKindTuple || len(fields[3].Type.Elems) != 2 {
		t.Errorf("pair: %+v", fields[3].Type)
	}
}

func TestParseEnumWithReprAndDiscriminants(t *testing.T) {
	src := `
#[repr(u16)]
enum Status {
    Active = 0,
    Paused = 5,
    Stopped,
}
`
	s, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(s.Enums) != 1 {
		t.Fatalf("got %d enums, want 1", len(s.Enums))
	}
	e := s.Enums[0]
	if e.Repr != ReprU16 {
		t.Errorf("repr = %v, want u16", e.Repr)
	}
	if e.Variants[2].Discriminant != 6 {
		t.Errorf("Stopped discriminant = %d, want 6", e.Variants[2].Discriminant)
	}
}

func TestParseEnumVariantWithPayload(t *testing.T) {
	src := `
enum Shape {
    Circle(f64),
    Point,
}
`
	s, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	e := s.Enums[0]
	if !e.Variants[0].HasPayload || e.Variants[0].Payload.Name != "f64" {
		t.Errorf("Circle: %+v", e.Variants[0])
	}
	if e.Variants[1].HasPayload {
		t.Errorf("Point should be a unit variant")
	}
}
