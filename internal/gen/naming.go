package gen

import "strings"

// goCamelCase converts a proto identifier (snake_case or already mixed)
// to an exported Go identifier: it drops underscores and uppercases the
// first rune of the string and of each segment that follows an
// underscore, leaving every other rune as is. A letter after a digit is
// not uppercased ("field_1a" becomes "Field1a").
func goCamelCase(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		switch {
		case r == '_':
			upperNext = true
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// goFieldName returns the exported Go struct field name for a proto
// field.
func goFieldName(protoName string) string { return goCamelCase(protoName) }

// goTypeName returns the exported Go type name for the last segment of
// a fully qualified proto message/enum name, qualifying nested types
// with their enclosing type names joined by underscore (protoc-gen-go's
// nested-type flattening convention, since Go has no nested named
// types).
func goTypeName(fqn string) string {
	segs := strings.Split(fqn, ".")
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = goCamelCase(s)
	}
	return strings.Join(parts, "_")
}

// localName strips a package prefix from a fully qualified name, used
// when referencing a type from within its own package's generated code.
func localName(fqn, pkg string) string {
	if pkg == "" {
		return fqn
	}
	return strings.TrimPrefix(fqn, pkg+".")
}

// unexport lower-cases the leading rune of an exported identifier, for
// the unexported concrete type backing an exported interface.
func unexport(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}
