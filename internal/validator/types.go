package validator

import (
	"github.com/shaban/bytewire/internal/schema"
)

// ValidateTypeReferences checks that every field and variant-payload type
// resolves to a primitive, or a struct/enum declared in the same schema,
// and that Option<T>/Box<T>/map<K,V>/set<T> are used on shapes that can
// actually carry them. Returns every violation found, not just the first.
func ValidateTypeReferences(s *schema.Schema) []error {
	var errs []error

	named := make(map[string]bool)
	for _, st := range s.Structs {
		named[st.Name] = true
	}
	for _, en := range s.Enums {
		named[en.Name] = true
	}

	for _, st := range s.Structs {
		for _, f := range st.Fields {
			errs = append(errs, validateTypeExpr(&f.Type, named, "struct \""+st.Name+"\", field", f.Name)...)
		}
	}

	for _, en := range s.Enums {
		for _, v := range en.Variants {
			if v.HasPayload {
				errs = append(errs, validateTypeExpr(&v.Payload, named, "enum \""+en.Name+"\", variant", v.Name)...)
			}
		}
	}

	return errs
}

func validateTypeExpr(t *schema.TypeExpr, named map[string]bool, owner, field string) []error {
	var errs []error

	if t.Optional {
		switch t.Kind {
		case schema.TypeKindArray, schema.TypeKindFixedArray:
			errs = append(errs, errBadOptional(owner, field, "cannot wrap an array type (use a zero-length array to mean absent)"))
		}
	}

	if t.Boxed && t.Kind != schema.TypeKindNamed {
		errs = append(errs, errBadBox(owner, field))
	}

	switch t.Kind {
	case schema.TypeKindPrimitive:
		// already validated by the parser's keyword table

	case schema.TypeKindNamed:
		if !named[t.Name] {
			errs = append(errs, errUnknownType(owner, field, t.Name))
		}

	case schema.TypeKindArray, schema.TypeKindFixedArray:
		if t.Elem == nil {
			errs = append(errs, errUnknownType(owner, field, "<missing element type>"))
			break
		}
		errs = append(errs, validateTypeExpr(t.Elem, named, owner, field)...)

	case schema.TypeKindSet:
		if t.Elem == nil {
			errs = append(errs, errUnknownType(owner, field, "<missing element type>"))
			break
		}
		if !isKeyable(t.Elem) {
			errs = append(errs, errBadKeyType(owner, field, "set"))
		}
		errs = append(errs, validateTypeExpr(t.Elem, named, owner, field)...)

	case schema.TypeKindMap:
		if t.Elem == nil || t.Value == nil {
			errs = append(errs, errUnknownType(owner, field, "<missing map key/value type>"))
			break
		}
		if !isKeyable(t.Elem) {
			errs = append(errs, errBadKeyType(owner, field, "map"))
		}
		errs = append(errs, validateTypeExpr(t.Elem, named, owner, field)...)
		errs = append(errs, validateTypeExpr(t.Value, named, owner, field)...)

	case schema.TypeKindTuple:
		for i := range t.Elems {
			errs = append(errs, validateTypeExpr(&t.Elems[i], named, owner, field)...)
		}

	default:
		errs = append(errs, errUnknownType(owner, field, t.String()))
	}

	return errs
}

// isKeyable reports whether a type can serve as a Go map key or set
// element: a primitive or a named type.
func isKeyable(t *schema.TypeExpr) bool {
	switch t.Kind {
	case schema.TypeKindPrimitive, schema.TypeKindNamed:
		return true
	default:
		return false
	}
}
