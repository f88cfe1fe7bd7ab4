package validator

import (
	"strings"

	"github.com/shaban/bytewire/internal/schema"
)

// DetectCycles finds circular references through named-type fields that
// are not broken by a Box<T> indirection. A direct or Option-only cycle
// (struct Node { next: Node }) makes both size calculation and encoding
// impossible and is rejected; Box<T> breaks the cycle the same way Rust's
// Box breaks an infinite-size struct, since Box<T> only needs to carry a
// pointer-sized indirection on the Go side, not T inline.
func DetectCycles(s *schema.Schema) []error {
	var errs []error

	graph := make(map[string][]string)
	for _, st := range s.Structs {
		graph[st.Name] = collectRefs(fieldTypes(st))
	}
	for _, en := range s.Enums {
		graph[en.Name] = collectRefs(variantTypes(en))
	}

	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	names := make([]string, 0, len(graph))
	for _, st := range s.Structs {
		names = append(names, st.Name)
	}
	for _, en := range s.Enums {
		names = append(names, en.Name)
	}

	for _, name := range names {
		if !visited[name] {
			if cycle := findCycle(name, graph, visited, recStack, nil); cycle != nil {
				errs = append(errs, errCircularReference(strings.Join(cycle, " -> ")))
			}
		}
	}

	return errs
}

func fieldTypes(st schema.Struct) []schema.TypeExpr {
	types := make([]schema.TypeExpr, len(st.Fields))
	for i, f := range st.Fields {
		types[i] = f.Type
	}
	return types
}

func variantTypes(en schema.Enum) []schema.TypeExpr {
	var types []schema.TypeExpr
	for _, v := range en.Variants {
		if v.HasPayload {
			types = append(types, v.Payload)
		}
	}
	return types
}

func collectRefs(types []schema.TypeExpr) []string {
	seen := make(map[string]bool)
	for _, t := range types {
		collectRefsInto(&t, seen)
	}
	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}
	return refs
}

func collectRefsInto(t *schema.TypeExpr, seen map[string]bool) {
	if t.Boxed {
		return
	}
	switch t.Kind {
	case schema.TypeKindNamed:
		seen[t.Name] = true
	case schema.TypeKindArray, schema.TypeKindFixedArray, schema.TypeKindSet:
		if t.Elem != nil {
			collectRefsInto(t.Elem, seen)
		}
	case schema.TypeKindMap:
		if t.Elem != nil {
			collectRefsInto(t.Elem, seen)
		}
		if t.Value != nil {
			collectRefsInto(t.Value, seen)
		}
	case schema.TypeKindTuple:
		for i := range t.Elems {
			collectRefsInto(&t.Elems[i], seen)
		}
	}
}

func findCycle(node string, graph map[string][]string, visited, recStack map[string]bool, path []string) []string {
	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, neighbor := range graph[node] {
		if !visited[neighbor] {
			if cycle := findCycle(neighbor, graph, visited, recStack, path); cycle != nil {
				return cycle
			}
		} else if recStack[neighbor] {
			start := -1
			for i, n := range path {
				if n == neighbor {
					start = i
					break
				}
			}
			if start >= 0 {
				return append(append([]string{}, path[start:]...), neighbor)
			}
		}
	}

	recStack[node] = false
	return nil
}
