package gen

import (
	"fmt"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
)

// emitter holds the state shared across one generated Go package: the
// schema it draws from, the proto package whose messages/enums are being
// flattened into it, and the cross-file package registry needed to
// qualify a reference to a message/enum declared in a different proto
// package. Option interpretation beyond packed/default/deprecated/
// map_entry/go_package is out of scope (spec §4.5 non-goals on
// descriptor-proto self-hosting).
type emitter struct {
	schema   *linker.Schema
	pkg      string
	f        *file
	packages map[string]packageInfo // proto package -> generated Go package
	fqnPkg   map[string]string      // message/enum FQN -> declaring proto package
}

// goTypeRef returns the Go identifier that refers to the message/enum
// type named fqn from code being generated for e.pkg: the bare flattened
// name when fqn is declared in e.pkg's own file, or an import-qualified
// name (registering the foreign package's import alias as a side effect)
// when it is declared elsewhere.
func (e *emitter) goTypeRef(fqn string) string {
	declPkg := e.fqnPkg[fqn]
	name := goTypeName(localName(fqn, declPkg))
	if declPkg == e.pkg {
		return name
	}
	info := e.packages[declPkg]
	alias := e.f.importAlias(info.importPath, info.goPackage)
	return alias + "." + name
}

// fieldGoType returns the Go type of a resolved field's *value* (i.e.
// ignoring repeated/map/presence wrapping, which callers apply
// separately since they differ between struct-field position and
// oneof-wrapper position).
func (e *emitter) fieldGoType(ft linker.FieldType) string {
	switch ft.Kind {
	case linker.FieldScalar:
		return scalarGoType(ft.Scalar)
	case linker.FieldEnum:
		return "*" + e.goTypeRef(ft.FQN)
	case linker.FieldMessage:
		return "*" + e.goTypeRef(ft.FQN)
	default:
		panic(fmt.Sprintf("gen: fieldGoType called on kind %v", ft.Kind))
	}
}

// enumGoType is like fieldGoType for FieldEnum but without the leading
// pointer star, for contexts (slice elements, map values) that hold
// enums by value.
func (e *emitter) enumGoType(ft linker.FieldType) string {
	return e.goTypeRef(ft.FQN)
}

// structFieldType returns the Go type used for f's struct field,
// applying repeated/map/presence wrapping per spec §4.4's presence
// table.
func (e *emitter) structFieldType(f *linker.Field) string {
	if f.Type.Kind == linker.FieldMap {
		keyType := scalarGoType(f.Type.Scalar)
		var valType string
		if f.Type.MapValue.Kind == linker.FieldEnum {
			valType = e.enumGoType(*f.Type.MapValue)
		} else if f.Type.MapValue.Kind == linker.FieldMessage {
			valType = "*" + e.goTypeRef(f.Type.MapValue.FQN)
		} else {
			valType = scalarGoType(f.Type.MapValue.Scalar)
		}
		return fmt.Sprintf("map[%s]%s", keyType, valType)
	}

	if f.Label == ast.LabelRepeated {
		switch f.Type.Kind {
		case linker.FieldEnum:
			return "[]" + e.enumGoType(f.Type)
		case linker.FieldMessage:
			return "[]" + e.fieldGoType(f.Type)
		default:
			return "[]" + scalarGoType(f.Type.Scalar)
		}
	}

	switch f.Type.Kind {
	case linker.FieldMessage:
		return e.fieldGoType(f.Type) // always a pointer, message fields are always nullable
	case linker.FieldEnum:
		if f.Label == ast.LabelOptional {
			return e.fieldGoType(f.Type) // *EnumType
		}
		return e.enumGoType(f.Type)
	default: // scalar
		if f.Label == ast.LabelOptional {
			return "*" + scalarGoType(f.Type.Scalar)
		}
		return scalarGoType(f.Type.Scalar)
	}
}

// emitMessage writes the struct type and its encode/decode/calc_size/
// deinit methods for m. Synthetic map-entry messages are never passed
// here directly (the owning field's map type is flattened by the
// linker); emitMessage is only called for "real" messages.
func (e *emitter) emitMessage(m *linker.Message) {
	goName := goTypeName(localName(m.FQN, e.pkg))
	f := e.f

	e.emitOneofTypes(m, goName)

	f.P("// ", goName, " is the generated type for ", m.FQN, ".")
	f.P("type ", goName, " struct {")
	for _, fl := range m.Fields {
		if fl.OneofName != "" {
			continue
		}
		f.P("\t", goFieldName(fl.Name), " ", e.structFieldType(fl))
	}
	for _, o := range m.Oneofs {
		f.P("\t", goFieldName(o.Name), " is", goName, "_", goFieldName(o.Name))
	}
	f.P("\tUnknownFields []byte")
	f.P("}")
	f.P()

	e.emitCalcSize(m, goName)
	e.emitEncode(m, goName)
	e.emitDecode(m, goName)
	e.emitDeinit(m, goName)
}
