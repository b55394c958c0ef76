package linker

import (
	"sort"

	"github.com/wireproto/wireproto/ast"
)

// Link runs the two-pass link process (spec §4.3) over every file in
// files (keyed by the resolved path the driver/resolver assigned it) and
// returns the resulting Schema. Per spec §5, this is globally sequential —
// name resolution across files must be deterministic regardless of how
// parsing was parallelized.
func Link(files map[string]*ast.File) (*Schema, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	tree := newDeclarationTree()
	for _, name := range names {
		if err := declareFile(tree, files[name]); err != nil {
			return nil, err
		}
	}

	lk := &linkCtx{tree: tree, visible: computeVisibility(files)}
	schema := &Schema{
		messages: map[string]*Message{},
		enums:    map[string]*Enum{},
		services: map[string]*Service{},
	}
	for _, name := range names {
		lf, err := lk.convertFile(files[name])
		if err != nil {
			return nil, err
		}
		schema.Files = append(schema.Files, lf)
		for _, m := range lf.Messages {
			indexMessage(schema, m)
		}
		for _, e := range lf.Enums {
			schema.enums[e.FQN] = e
		}
		for _, s := range lf.Services {
			schema.services[s.FQN] = s
		}
	}
	return schema, nil
}

func indexMessage(schema *Schema, m *Message) {
	schema.messages[m.FQN] = m
	for _, e := range m.Enums {
		schema.enums[e.FQN] = e
	}
	for _, nested := range m.Nested {
		indexMessage(schema, nested)
	}
}
