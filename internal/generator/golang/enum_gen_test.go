package golang

import (
	"strings"
	"testing"
)

func TestGenerateEnumTypesRendersKindAndVariants(t *testing.T) {
	s := mustParseSchema(t, `
#[repr(u16)]
enum Status {
    Active,
    Paused = 5,
    Stopped,
}
`)
	out := GenerateEnumTypes(s)
	for _, want := range []string{
		"type StatusKind uint16",
		"StatusActive StatusKind = 0",
		"StatusPaused StatusKind = 5",
		"StatusStopped StatusKind = 6",
		"type Status struct {",
		"Kind StatusKind",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateEnumTypes() missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerateEnumTypesAddsFieldOnlyForPayloadVariants(t *testing.T) {
	s := mustParseSchema(t, `
enum Shape {
    Point,
    Circle(f64),
}
`)
	out := GenerateEnumTypes(s)
	if !strings.Contains(out, "Circle float64") {
		t.Errorf("expected a Circle payload field, got:\n%s", out)
	}
	if strings.Contains(out, "\tPoint ") {
		t.Errorf("expected no field for the unit variant Point, got:\n%s", out)
	}
}

func TestGenerateEnumEncodersDispatchesOnKind(t *testing.T) {
	s := mustParseSchema(t, `
enum Shape {
    Point,
    Circle(f64),
}
`)
	out := GenerateEnumEncoders(s)
	if !strings.Contains(out, "codec.EncodeInt(out, int(v.Kind))") {
		t.Errorf("expected the discriminant to be written first, got:\n%s", out)
	}
	if !strings.Contains(out, "case ShapeCircle:") || !strings.Contains(out, "codec.EncodeFloat64(out, v.Circle)") {
		t.Errorf("expected the Circle payload to be encoded under its case, got:\n%s", out)
	}
}

func TestGenerateEnumDecodersRejectsUnassignedDiscriminant(t *testing.T) {
	s := mustParseSchema(t, `
enum Shape {
    Point,
    Circle(f64),
}
`)
	out := GenerateEnumDecoders(s)
	if !strings.Contains(out, "default:\n\t\treturn codec.NewUnassignedDiscriminant[error, error](kind)") {
		t.Errorf("expected a default case reporting an unassigned discriminant, got:\n%s", out)
	}
}
