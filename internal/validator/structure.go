package validator

import "github.com/shaban/bytewire/internal/schema"

// ValidateStructure checks schema-wide and per-type structural requirements:
// the schema must declare at least one struct or enum, no struct may be
// empty, and no enum may be empty. Returns every violation found, not just
// the first.
func ValidateStructure(s *schema.Schema) []error {
	var errs []error

	if len(s.Structs) == 0 && len(s.Enums) == 0 {
		return []error{errEmptySchema()}
	}

	for _, st := range s.Structs {
		if len(st.Fields) == 0 {
			errs = append(errs, errEmptyStruct(st.Name))
		}
	}

	for _, en := range s.Enums {
		if len(en.Variants) == 0 {
			errs = append(errs, errEmptyEnum(en.Name))
		}
	}

	return errs
}
