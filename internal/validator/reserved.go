package validator

import "strings"

// Reserved keywords and problematic identifiers from every target this
// repository's generated code, or the schema's own source text, might
// collide with.

var (
	goKeywords = []string{
		"break", "default", "func", "interface", "select",
		"case", "defer", "go", "map", "struct",
		"chan", "else", "goto", "package", "switch",
		"const", "fallthrough", "if", "range", "type",
		"continue", "for", "import", "return", "var",
		"bool", "byte", "complex64", "complex128", "error",
		"float32", "float64", "int", "int8", "int16",
		"int32", "int64", "rune", "string", "uint",
		"uint8", "uint16", "uint32", "uint64", "uintptr",
		"true", "false", "iota", "nil",
		"append", "cap", "close", "complex", "copy",
		"delete", "imag", "len", "make", "new",
		"panic", "print", "println", "real", "recover",
		"main", "init",
	}

	reservedMap map[string][]string
)

func init() {
	reservedMap = make(map[string][]string)
	for _, kw := range goKeywords {
		lower := strings.ToLower(kw)
		reservedMap[lower] = append(reservedMap[lower], "Go")
	}
}

// IsReserved reports whether word collides with a Go keyword or built-in,
// case-insensitively.
func IsReserved(word string) bool {
	_, found := reservedMap[strings.ToLower(word)]
	return found
}

// GetReservedLanguages returns which languages reserve word, nil if none.
func GetReservedLanguages(word string) []string {
	return reservedMap[strings.ToLower(word)]
}
