package parser

import "github.com/wireproto/wireproto/ast"

// canonicalize applies the parser-level canonicalizations named in spec
// §4.2: every `map<K,V>` field is desugared into a synthetic nested message
// with fields key=1, value=2 and the map_entry option set, and the owning
// field's type is rewritten to point at it. Oneof field attachment is
// already done while parsing (parseOneof appends to both the oneof and the
// owning message's Fields).
func canonicalize(f *ast.File) {
	for _, m := range f.Messages {
		canonicalizeMessage(m)
	}
}

func canonicalizeMessage(m *ast.Message) {
	for _, fld := range m.Fields {
		if fld.MapType == nil {
			continue
		}
		entryName := mapEntryName(fld.Name)
		entry := &ast.Message{
			Name:     entryName,
			MapEntry: true,
			Options:  []*ast.OptionNode{{Name: "map_entry", Value: true}},
			Fields: []*ast.Field{
				{Name: "key", Tag: 1, Label: ast.LabelImplicit,
					Type: ast.FieldType{Kind: ast.FieldTypeScalar, Scalar: fld.MapType.KeyScalar}},
				{Name: "value", Tag: 2, Label: ast.LabelImplicit,
					Type: fld.MapType.ValueType},
			},
		}
		m.Nested = append(m.Nested, entry)
		fld.Type = ast.FieldType{Kind: ast.FieldTypeNamed, TypeName: entryName}
	}
	for _, nested := range m.Nested {
		// The synthetic entry message itself never carries a map field, so
		// recursing into it is a no-op; recursing into genuinely nested
		// messages handles maps declared at any depth.
		canonicalizeMessage(nested)
	}
}

// mapEntryName mirrors protoc's convention of naming the synthesized entry
// type after the field, PascalCased with an "Entry" suffix.
func mapEntryName(fieldName string) string {
	out := make([]byte, 0, len(fieldName)+6)
	upperNext := true
	for i := 0; i < len(fieldName); i++ {
		c := fieldName[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	return string(out) + "Entry"
}
