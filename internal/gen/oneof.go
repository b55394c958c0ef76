package gen

import "github.com/wireproto/wireproto/linker"

// emitOneofTypes writes the sealed-interface + per-variant wrapper
// structs for each of m's oneofs, protoc-gen-go's "isMessage_Oneof"
// pattern (spec §4.5: "tagged-union variant (with a None arm) for
// oneofs"). The None arm is the interface's nil value — no field set.
func (e *emitter) emitOneofTypes(m *linker.Message, goName string) {
	f := e.f
	for _, o := range m.Oneofs {
		ifaceName := "is" + goName + "_" + goFieldName(o.Name)
		f.P("type ", ifaceName, " interface {")
		f.P("\t", ifaceName, "()")
		f.P("}")
		f.P()

		for _, fl := range o.Fields {
			wrapperName := goName + "_" + goFieldName(fl.Name)
			f.P("type ", wrapperName, " struct {")
			f.P("\t", goFieldName(fl.Name), " ", e.oneofVariantType(fl))
			f.P("}")
			f.P()
			f.P("func (*", wrapperName, ") ", ifaceName, "() {}")
			f.P()
		}
	}
}

// oneofVariantType is like structFieldType but oneof members are never
// independently nullable-wrapped scalars — the wrapper struct itself is
// the presence signal — and are never repeated or map (disallowed in a
// oneof).
func (e *emitter) oneofVariantType(f *linker.Field) string {
	switch f.Type.Kind {
	case linker.FieldMessage:
		return e.fieldGoType(f.Type)
	case linker.FieldEnum:
		return e.enumGoType(f.Type)
	default:
		return scalarGoType(f.Type.Scalar)
	}
}
