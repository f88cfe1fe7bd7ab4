package enums

// ShapeKind is the discriminant of Shape, stored on the wire as a u8.
type ShapeKind uint8

const (
	ShapePoint  ShapeKind = 0
	ShapeCircle ShapeKind = 1
	ShapeSquare ShapeKind = 5
)

// Shape is a tagged union of the drawable primitives a canvas accepts.
type Shape struct {
	Kind   ShapeKind
	Circle float64
	Square float64
}
