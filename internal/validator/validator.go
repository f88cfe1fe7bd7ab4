package validator

import (
	"fmt"
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// Validate runs every validation pass over the schema and returns a single
// combined error if any of them failed, or nil if the schema is valid.
//
// Passes run in order, and every pass runs even if an earlier one fails,
// so a single invocation reports everything wrong with the schema at once:
//
//  1. ValidateStructure  - non-empty schema, non-empty structs/enums
//  2. ValidateTypeReferences - every field/payload type resolves, Option/Box/map/set usage
//  3. ValidateDiscriminants - enum discriminants fit their repr and don't collide
//  4. DetectCycles - no unboxed circular type reference
//  5. ValidateNaming - identifier format, reserved words, duplicate names
func Validate(s *schema.Schema) error {
	var all []error

	all = append(all, ValidateStructure(s)...)
	all = append(all, ValidateTypeReferences(s)...)
	all = append(all, ValidateDiscriminants(s)...)
	all = append(all, DetectCycles(s)...)
	all = append(all, ValidateNaming(s)...)

	if len(all) == 0 {
		return nil
	}

	messages := make([]string, len(all))
	for i, err := range all {
		messages[i] = err.Error()
	}
	return fmt.Errorf("schema validation failed:\n  %s", strings.Join(messages, "\n  "))
}
