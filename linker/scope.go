package linker

import (
	"strings"

	"github.com/wireproto/wireproto/ast"
)

type symbolKind int

const (
	symPackage symbolKind = iota
	symMessage
	symEnum
	symService
)

// scopeNode is one node of the global declaration tree built in Pass A
// (spec §4.3). Package path segments and type declarations share the same
// tree: a package is just a scope whose children may include nested
// packages as well as message/enum/service declarations.
type scopeNode struct {
	name     string // this node's own simple name, "" for root
	fqn      string // full dotted name from root, "" for root
	parent   *scopeNode
	children map[string]*scopeNode
	kind     symbolKind

	declFile string // where this symbol was declared; irrelevant for symPackage
	declPos  ast.SourcePos

	astMessage *ast.Message
	astEnum    *ast.Enum
	astService *ast.Service
}

func newScopeNode(parent *scopeNode, name string, kind symbolKind) *scopeNode {
	fqn := name
	if parent != nil && parent.fqn != "" {
		fqn = parent.fqn + "." + name
	}
	return &scopeNode{
		name: name, fqn: fqn, parent: parent, kind: kind,
		children: make(map[string]*scopeNode),
	}
}

// declarationTree is the single global tree built across every file passed
// to Link; it is discarded after resolution (spec §3 "Lifecycle").
type declarationTree struct {
	root *scopeNode
}

func newDeclarationTree() *declarationTree {
	return &declarationTree{root: newScopeNode(nil, "", symPackage)}
}

// packageScope returns (creating as needed) the scope node for a dotted
// package path, verifying it does not collide with an already-declared
// message/enum/service along the way.
func (t *declarationTree) packageScope(pkg string, pos ast.SourcePos) (*scopeNode, error) {
	if pkg == "" {
		return t.root, nil
	}
	cur := t.root
	for _, seg := range strings.Split(pkg, ".") {
		child, ok := cur.children[seg]
		if !ok {
			child = newScopeNode(cur, seg, symPackage)
			cur.children[seg] = child
		} else if child.kind != symPackage {
			return nil, newErr(DuplicateName, pos,
				"%q is already declared as a %s, cannot also be used as a package", child.fqn, kindName(child.kind))
		}
		cur = child
	}
	return cur, nil
}

// declare inserts a message/enum/service declaration as a child of parent,
// failing with DuplicateName if the simple name already exists in this
// scope (spec §4.3 Pass A, and invariant 2: no sibling-name collisions).
func (t *declarationTree) declare(parent *scopeNode, name string, kind symbolKind, file string, pos ast.SourcePos) (*scopeNode, error) {
	if existing, ok := parent.children[name]; ok {
		return nil, newErr(DuplicateName, pos, "%q already declared (as %s) at %s", name, kindName(existing.kind), existing.declPos)
	}
	node := newScopeNode(parent, name, kind)
	node.declFile = file
	node.declPos = pos
	parent.children[name] = node
	return node, nil
}

func kindName(k symbolKind) string {
	switch k {
	case symPackage:
		return "package"
	case symMessage:
		return "message"
	case symEnum:
		return "enum"
	case symService:
		return "service"
	default:
		return "symbol"
	}
}

// lookupChild resolves a (possibly multi-segment) dotted name starting
// strictly as children of scope, requiring every segment to match; it does
// not search ancestors (that ancestor search is resolveTypeName's job).
func lookupChild(scope *scopeNode, dotted string) (*scopeNode, bool) {
	cur := scope
	for _, seg := range strings.Split(dotted, ".") {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
