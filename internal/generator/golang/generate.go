package golang

import (
	"fmt"
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// Generate renders a parsed schema into a set of Go source files, keyed by
// filename. The caller is responsible for writing them under packageName's
// output directory and running them through gofmt; this package only
// assembles syntactically complete, auto-import-annotated source text.
func Generate(s *schema.Schema, packageName string) (map[string]string, error) {
	if packageName == "" {
		packageName = "generated"
	}

	typesBody := GenerateStructTypes(s)
	if enumTypes := GenerateEnumTypes(s); enumTypes != "" {
		if typesBody != "" {
			typesBody += "\n"
		}
		typesBody += enumTypes
	}

	codecBody := joinNonEmpty(
		GenerateStructEncoders(s),
		GenerateStructDecoders(s),
		GenerateStructSizers(s),
		GenerateEnumEncoders(s),
		GenerateEnumDecoders(s),
	)

	files := map[string]string{
		"types.go": formatGoFileWithAutoImports(packageName, typesBody),
		"codec.go": formatGoFileWithAutoImports(packageName, codecBody),
	}
	return files, nil
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// formatGoFile assembles a complete Go source file from a package name, an
// import list, and a body.
func formatGoFile(packageName string, imports []string, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	if len(imports) > 0 {
		b.WriteString("import (\n")
		for _, imp := range imports {
			fmt.Fprintf(&b, "\t%q\n", imp)
		}
		b.WriteString(")\n\n")
	}
	b.WriteString(body)
	return b.String()
}

// formatGoFileWithAutoImports assembles a Go source file, detecting which
// of the generator's own fixed set of candidate imports the body actually
// uses by scanning for marker substrings it would emit.
func formatGoFileWithAutoImports(packageName, body string) string {
	importChecks := []struct {
		path   string
		marker string
	}{
		{"github.com/shaban/bytewire/wire", "wire."},
		{"github.com/shaban/bytewire/codec", "codec."},
		{"fmt", "fmt."},
	}

	var imports []string
	for _, c := range importChecks {
		if strings.Contains(body, c.marker) {
			imports = append(imports, c.path)
		}
	}

	return formatGoFile(packageName, imports, body)
}
