package linker

import "github.com/wireproto/wireproto/ast"

// declareFile runs Pass A (spec §4.3) for a single file against the shared
// declaration tree: every message/enum/service it defines becomes a named
// child of its package scope (or of its enclosing message's scope, for
// nested types).
func declareFile(t *declarationTree, f *ast.File) error {
	pkgScope, err := t.packageScope(f.Package, f.Start())
	if err != nil {
		return err
	}
	for _, m := range f.Messages {
		if err := declareMessage(t, pkgScope, f.Name, m); err != nil {
			return err
		}
	}
	for _, e := range f.Enums {
		node, err := t.declare(pkgScope, e.Name, symEnum, f.Name, e.Start())
		if err != nil {
			return err
		}
		node.astEnum = e
	}
	for _, s := range f.Services {
		node, err := t.declare(pkgScope, s.Name, symService, f.Name, s.Start())
		if err != nil {
			return err
		}
		node.astService = s
	}
	return nil
}

func declareMessage(t *declarationTree, parent *scopeNode, file string, m *ast.Message) error {
	node, err := t.declare(parent, m.Name, symMessage, file, m.Start())
	if err != nil {
		return err
	}
	node.astMessage = m
	for _, nested := range m.Nested {
		if err := declareMessage(t, node, file, nested); err != nil {
			return err
		}
	}
	for _, e := range m.Enums {
		enode, err := t.declare(node, e.Name, symEnum, file, e.Start())
		if err != nil {
			return err
		}
		enode.astEnum = e
	}
	return nil
}
