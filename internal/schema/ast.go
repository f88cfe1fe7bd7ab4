// Package schema defines the abstract syntax tree for .bwire schema files
// and the lexer/parser that produce it.
package schema

import "fmt"

// Schema is the root of a parsed .bwire file: an ordered list of struct and
// enum declarations, plus the repr-less wire layout rules each implies.
type Schema struct {
	Structs []Struct
	Enums   []Enum
}

// Struct is a product type: a fixed, ordered set of named fields.
type Struct struct {
	Name   string
	Doc    string
	Fields []Field
}

// Field is one member of a struct. Enum variant payloads are not Fields;
// see Variant.Payload.
type Field struct {
	Name string
	Doc  string
	Type TypeExpr
}

// Enum is a sum type: one of several variants, selected on the wire by a
// leading discriminant whose width is fixed by Repr.
type Enum struct {
	Name     string
	Doc      string
	Repr     ReprKind
	Variants []Variant
}

// ReprKind fixes the wire width and signedness of an enum's discriminant.
// It has no equivalent on Struct: structs carry no discriminant at all. The
// closed set mirrors Rust's admissible #[repr(...)] integer types; isize is
// the default when a schema omits the attribute, matching Rust's own
// fieldless-enum default of isize.
type ReprKind int

const (
	ReprIsize ReprKind = iota
	ReprU8
	ReprI8
	ReprU16
	ReprI16
	ReprU32
	ReprI32
	ReprU64
	ReprI64
	ReprU128
	ReprI128
	ReprUsize
)

// Size reports the discriminant's width in bytes. usize/isize are sized as
// Go's platform-width uint/int, reported here as 8 (the width on every
// platform this generator targets).
func (r ReprKind) Size() int {
	switch r {
	case ReprU8, ReprI8:
		return 1
	case ReprU16, ReprI16:
		return 2
	case ReprU32, ReprI32:
		return 4
	case ReprU64, ReprI64, ReprUsize, ReprIsize:
		return 8
	case ReprU128, ReprI128:
		return 16
	default:
		return 8
	}
}

// Signed reports whether r's range includes negative values.
func (r ReprKind) Signed() bool {
	switch r {
	case ReprI8, ReprI16, ReprI32, ReprI64, ReprI128, ReprIsize:
		return true
	default:
		return false
	}
}

func (r ReprKind) String() string {
	switch r {
	case ReprU8:
		return "u8"
	case ReprI8:
		return "i8"
	case ReprU16:
		return "u16"
	case ReprI16:
		return "i16"
	case ReprU32:
		return "u32"
	case ReprI32:
		return "i32"
	case ReprU64:
		return "u64"
	case ReprI64:
		return "i64"
	case ReprU128:
		return "u128"
	case ReprI128:
		return "i128"
	case ReprUsize:
		return "usize"
	case ReprIsize:
		return "isize"
	default:
		return "isize"
	}
}

// Variant is one arm of an enum. A unit variant (HasPayload false, Payload
// left at its zero value) writes nothing beyond the discriminant; a variant
// with a payload writes the discriminant followed by that type's own wire
// form.
type Variant struct {
	Name          string
	Doc           string
	Discriminant  int
	Payload       TypeExpr
	HasPayload    bool
}

// TypeKind distinguishes the shapes a TypeExpr can take.
type TypeKind int

const (
	TypeKindPrimitive TypeKind = iota
	TypeKindNamed              // reference to a Struct or Enum declared in the same schema
	TypeKindArray              // dynamic length-prefixed sequence: []T
	TypeKindFixedArray         // compile-time-sized, no length prefix: [T;N]
	TypeKindMap                // map<K,V>
	TypeKindSet                // set<T>
	TypeKindTuple              // (A, B, ...)
	TypeKindUnit               // (); unit enum variants are marked by Variant.HasPayload, not by this kind
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindNamed:
		return "named"
	case TypeKindArray:
		return "array"
	case TypeKindFixedArray:
		return "fixed-array"
	case TypeKindMap:
		return "map"
	case TypeKindSet:
		return "set"
	case TypeKindTuple:
		return "tuple"
	case TypeKindUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// TypeExpr describes a field or variant payload's type. Optional and Boxed
// are orthogonal modifiers layered on top of Kind: Option<Box<Device>> sets
// both Optional and Boxed on a TypeKindNamed expr named "Device".
type TypeExpr struct {
	Kind TypeKind

	// Name holds the primitive keyword (u32, str, ...) or the referenced
	// struct/enum name, valid for TypeKindPrimitive and TypeKindNamed.
	Name string

	// Elem is the element type for Array, FixedArray and Set, and the
	// key type for Map.
	Elem *TypeExpr

	// Value is the value type for Map; unused otherwise.
	Value *TypeExpr

	// Size is the compile-time element count for TypeKindFixedArray.
	Size int

	// Elems holds each slot's type for TypeKindTuple.
	Elems []TypeExpr

	// Optional marks this type as wrapped in Option<...>: a presence
	// byte precedes the value on the wire, or replaces it entirely when
	// absent.
	Optional bool

	// Boxed marks this type as wrapped in Box<...>: purely a Go-side
	// pointer-indirection hint, since Box<T> is wire-transparent with T.
	Boxed bool
}

var primitiveNames = map[string]bool{
	"u8": true, "i8": true, "u16": true, "i16": true,
	"u32": true, "i32": true, "u64": true, "i64": true,
	"u128": true, "i128": true, "u": true, "i": true,
	"f32": true, "f64": true, "bool": true, "char": true,
	"str": true, "cstr": true,
}

// IsPrimitive reports whether name is a recognized primitive type keyword.
func IsPrimitive(name string) bool {
	return primitiveNames[name]
}

// String renders a TypeExpr approximately as it would appear in source,
// for error messages and generated doc comments.
func (t TypeExpr) String() string {
	inner := t.stringInner()
	if t.Boxed {
		inner = "Box<" + inner + ">"
	}
	if t.Optional {
		inner = "Option<" + inner + ">"
	}
	return inner
}

func (t TypeExpr) stringInner() string {
	switch t.Kind {
	case TypeKindPrimitive, TypeKindNamed:
		return t.Name
	case TypeKindArray:
		if t.Elem == nil {
			return "[]?"
		}
		return "[]" + t.Elem.String()
	case TypeKindFixedArray:
		if t.Elem == nil {
			return fmt.Sprintf("[?;%d]", t.Size)
		}
		return fmt.Sprintf("[%s;%d]", t.Elem.String(), t.Size)
	case TypeKindMap:
		if t.Elem == nil || t.Value == nil {
			return "map<?,?>"
		}
		return fmt.Sprintf("map<%s,%s>", t.Elem.String(), t.Value.String())
	case TypeKindSet:
		if t.Elem == nil {
			return "set<?>"
		}
		return "set<" + t.Elem.String() + ">"
	case TypeKindTuple:
		s := "("
		for i, e := range t.Elems {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + ")"
	case TypeKindUnit:
		return "()"
	default:
		return "?"
	}
}
