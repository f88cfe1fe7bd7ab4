package validator

import (
	"unicode"

	"github.com/shaban/bytewire/internal/schema"
)

// ValidateNaming checks identifier format, reserved-keyword collisions, and
// duplicate names across structs, enums, fields and variants. Returns every
// violation found, not just the first.
func ValidateNaming(s *schema.Schema) []error {
	var errs []error

	topNames := make(map[string]bool)
	checkTop := func(kind, name string) {
		if topNames[name] {
			errs = append(errs, errDuplicateName(kind, name))
		}
		topNames[name] = true
	}

	for _, st := range s.Structs {
		checkTop("struct", st.Name)
		if err := validateIdentifier(st.Name, "struct name"); err != nil {
			errs = append(errs, err)
		}
		if IsReserved(st.Name) {
			errs = append(errs, errReservedKeyword("struct", st.Name, GetReservedLanguages(st.Name)))
		}

		fieldNames := make(map[string]bool)
		for _, f := range st.Fields {
			if fieldNames[f.Name] {
				errs = append(errs, errDuplicateField("struct \""+st.Name+"\"", f.Name))
			}
			fieldNames[f.Name] = true

			if err := validateIdentifier(f.Name, "struct \""+st.Name+"\" field name"); err != nil {
				errs = append(errs, err)
			}
			if IsReserved(f.Name) {
				errs = append(errs, errReservedKeyword("field", f.Name, GetReservedLanguages(f.Name)))
			}
		}
	}

	for _, en := range s.Enums {
		checkTop("enum", en.Name)
		if err := validateIdentifier(en.Name, "enum name"); err != nil {
			errs = append(errs, err)
		}
		if IsReserved(en.Name) {
			errs = append(errs, errReservedKeyword("enum", en.Name, GetReservedLanguages(en.Name)))
		}

		variantNames := make(map[string]bool)
		for _, v := range en.Variants {
			if variantNames[v.Name] {
				errs = append(errs, errDuplicateVariant(en.Name, v.Name))
			}
			variantNames[v.Name] = true

			if err := validateIdentifier(v.Name, "enum \""+en.Name+"\" variant name"); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errs
}

// validateIdentifier enforces: non-empty, starts with a letter or
// underscore, and every subsequent rune is a letter, digit, or underscore.
func validateIdentifier(name, context string) error {
	if name == "" {
		return errInvalidIdentifier(context, name, "cannot be empty")
	}

	first := rune(name[0])
	if !unicode.IsLetter(first) && first != '_' {
		return errInvalidIdentifier(context, name, "must start with a letter or underscore")
	}

	for i, ch := range name {
		if i == 0 {
			continue
		}
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			return errInvalidIdentifier(context, name, "contains invalid character "+string(ch))
		}
	}

	return nil
}
