package linker

import "github.com/wireproto/wireproto/ast"

const (
	minTag        = 1
	maxTag        = 1<<29 - 1
	reservedTagLo = 19000
	reservedTagHi = 19999
)

// resolveTypeName implements spec §4.3's C++-style lookup: search the
// innermost enclosing scope outward (via scopeNode.parent, which already
// threads message scopes through their package/root ancestors); a leading
// '.' forces an absolute lookup from the declaration tree's root.
func resolveTypeName(root, start *scopeNode, name string, visible map[string]bool) (*scopeNode, bool) {
	if len(name) > 0 && name[0] == '.' {
		node, ok := lookupChild(root, name[1:])
		return checkVisible(node, ok, visible)
	}
	for s := start; s != nil; s = s.parent {
		if node, ok := lookupChild(s, name); ok {
			if resolved, ok2 := checkVisible(node, true, visible); ok2 {
				return resolved, true
			}
		}
	}
	return nil, false
}

func checkVisible(node *scopeNode, ok bool, visible map[string]bool) (*scopeNode, bool) {
	if !ok || node == nil {
		return nil, false
	}
	if node.kind != symMessage && node.kind != symEnum {
		return nil, false
	}
	if node.declFile != "" && !visible[node.declFile] {
		return nil, false
	}
	return node, true
}

func validTagRange(tag int32) bool { return tag >= minTag && tag <= maxTag }
func isReservedTag(tag int32) bool { return tag >= reservedTagLo && tag <= reservedTagHi }

func mapKeyAllowed(k ast.ScalarKind) bool {
	switch k {
	case ast.ScalarFloat, ast.ScalarDouble, ast.ScalarBytes:
		return false
	default:
		return true
	}
}
