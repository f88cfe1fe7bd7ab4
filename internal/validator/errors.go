// Package validator runs structural, naming and type-reference checks over
// a parsed schema before any code is generated from it.
package validator

import "fmt"

// Stable bracketed error codes, the same shape across struct and enum
// validation so tooling can grep for a specific failure class.
const (
	ErrCodeEmptySchema       = "EMPTY_SCHEMA"
	ErrCodeEmptyStruct       = "EMPTY_STRUCT"
	ErrCodeEmptyEnum         = "EMPTY_ENUM"
	ErrCodeUnknownType       = "UNKNOWN_TYPE"
	ErrCodeCircularReference = "CIRCULAR_REFERENCE"
	ErrCodeInvalidIdentifier = "INVALID_IDENTIFIER"
	ErrCodeReservedKeyword   = "RESERVED_KEYWORD"
	ErrCodeDuplicateName     = "DUPLICATE_NAME"
	ErrCodeDuplicateField    = "DUPLICATE_FIELD"
	ErrCodeDuplicateVariant  = "DUPLICATE_VARIANT"
	ErrCodeBadDiscriminant   = "BAD_DISCRIMINANT"
	ErrCodeBadOptional       = "BAD_OPTIONAL"
	ErrCodeBadBox            = "BAD_BOX"
	ErrCodeBadKeyType        = "BAD_KEY_TYPE"
)

// ValidationError is a single validation failure. Its Message already
// carries the bracketed error code, so it needs no extra fields.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func errEmptySchema() ValidationError {
	return ValidationError{Message: "[" + ErrCodeEmptySchema + "] schema must define at least one struct or enum"}
}

func errEmptyStruct(name string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] struct %q cannot be empty (must have at least one field)", ErrCodeEmptyStruct, name)}
}

func errEmptyEnum(name string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] enum %q cannot be empty (must have at least one variant)", ErrCodeEmptyEnum, name)}
}

func errUnknownType(owner, field, typeName string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s %q: unknown type %q", ErrCodeUnknownType, owner, field, typeName)}
}

func errCircularReference(cyclePath string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] circular reference detected: %s", ErrCodeCircularReference, cyclePath)}
}

func errInvalidIdentifier(kind, name, reason string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s name %q is invalid: %s", ErrCodeInvalidIdentifier, kind, name, reason)}
}

func errReservedKeyword(kind, name string, languages []string) ValidationError {
	langs := ""
	if len(languages) > 0 {
		langs = fmt.Sprintf(" (reserved in: %v)", languages)
	}
	return ValidationError{Message: fmt.Sprintf("[%s] %s name %q is a reserved keyword%s", ErrCodeReservedKeyword, kind, name, langs)}
}

func errDuplicateName(kind, name string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] duplicate %s name %q", ErrCodeDuplicateName, kind, name)}
}

func errDuplicateField(owner, field string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s has duplicate field name %q", ErrCodeDuplicateField, owner, field)}
}

func errDuplicateVariant(enum, variant string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] enum %q has duplicate variant name %q", ErrCodeDuplicateVariant, enum, variant)}
}

func errBadDiscriminant(enum, variant string, discriminant int, repr string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] enum %q variant %q: discriminant %d does not fit in repr(%s)", ErrCodeBadDiscriminant, enum, variant, discriminant, repr)}
}

func errDuplicateDiscriminant(enum string, discriminant int) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] enum %q has two variants sharing discriminant %d", ErrCodeDuplicateVariant, enum, discriminant)}
}

func errBadOptional(owner, field, reason string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s %q: Option<T> %s", ErrCodeBadOptional, owner, field, reason)}
}

func errBadBox(owner, field string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s %q: Box<T> can only wrap a named struct or enum type", ErrCodeBadBox, owner, field)}
}

func errBadKeyType(owner, field, context string) ValidationError {
	return ValidationError{Message: fmt.Sprintf("[%s] %s %q: %s key/element type must be a primitive or named type", ErrCodeBadKeyType, owner, field, context)}
}
