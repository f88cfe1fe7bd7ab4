package schema

import (
	"fmt"
	"os"
	"strings"
)

// LoadSchemaFile reads and parses a .bwire schema file, normalizing line
// endings (CRLF -> LF) and wrapping any error with the source path.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %q: %w", path, err)
	}

	input := strings.ReplaceAll(string(data), "\r\n", "\n")

	schema, err := ParseSchema(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %q: %w", path, err)
	}

	return schema, nil
}
