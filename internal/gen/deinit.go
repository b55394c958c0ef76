package gen

import (
	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
)

// emitDeinit writes Deinit, the adaptation of the owned-buffer release
// described in spec §4.5 to a garbage-collected runtime: there is no
// manual allocator to return memory to, so Deinit recursively walks
// owned submessages and drops every reference this message holds,
// letting the collector reclaim them promptly instead of waiting on
// x itself to become unreachable. It is optional to call — a message
// that is simply dropped is still collected correctly — but it helps
// release large nested graphs (e.g. repeated submessages) without
// waiting for x's own enclosing message to go away too.
func (e *emitter) emitDeinit(m *linker.Message, goName string) {
	f := e.f
	f.P("func (x *", goName, ") Deinit() {")
	f.P("\tif x == nil {")
	f.P("\t\treturn")
	f.P("\t}")

	for _, fl := range m.Fields {
		if fl.OneofName != "" {
			continue
		}
		e.deinitField(fl)
	}
	for _, o := range m.Oneofs {
		e.deinitOneof(goName, o)
	}

	f.P("\tx.UnknownFields = nil")
	f.P("}")
	f.P()
}

func (e *emitter) deinitField(fl *linker.Field) {
	f := e.f
	expr := "x." + goFieldName(fl.Name)

	if fl.Type.Kind == linker.FieldMap {
		if fl.Type.MapValue.Kind == linker.FieldMessage {
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tv.Deinit()")
			f.P("\t}")
		}
		f.P("\t", expr, " = nil")
		return
	}

	if fl.Label == ast.LabelRepeated {
		if fl.Type.Kind == linker.FieldMessage {
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tv.Deinit()")
			f.P("\t}")
		}
		f.P("\t", expr, " = nil")
		return
	}

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\t", expr, ".Deinit()")
		f.P("\t", expr, " = nil")
	case linker.FieldEnum:
		if fl.Label == ast.LabelOptional {
			f.P("\t", expr, " = nil")
		}
	default: // scalar
		if fl.Label == ast.LabelOptional || fl.Type.Scalar == ast.ScalarBytes {
			f.P("\t", expr, " = nil")
		}
	}
}

func (e *emitter) deinitOneof(goName string, o *linker.Oneof) {
	f := e.f
	oneofExpr := "x." + goFieldName(o.Name)
	f.P("\tswitch v := ", oneofExpr, ".(type) {")
	for _, fl := range o.Fields {
		if fl.Type.Kind != linker.FieldMessage {
			continue
		}
		wrapper := goName + "_" + goFieldName(fl.Name)
		f.P("\tcase *", wrapper, ":")
		f.P("\t\tv.", goFieldName(fl.Name), ".Deinit()")
	}
	f.P("\t}")
	f.P("\t", oneofExpr, " = nil")
}
