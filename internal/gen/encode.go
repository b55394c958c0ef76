package gen

import (
	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
)

// emitEncode writes Encode, which appends x's wire representation to w:
// non-oneof fields in ascending tag order, skipping proto3 implicit fields
// at their zero default, then the set member of each oneof, and
// UnknownFields verbatim last (spec §4.4, §4.5).
func (e *emitter) emitEncode(m *linker.Message, goName string) {
	f := e.f
	f.P("func (x *", goName, ") Encode(w *wire.Writer) error {")
	f.P("\tif x == nil {")
	f.P("\t\treturn nil")
	f.P("\t}")

	for _, fl := range sortedFields(m) {
		if fl.OneofName != "" {
			continue
		}
		e.encodeField(fl)
	}
	for _, o := range m.Oneofs {
		e.encodeOneof(m, goName, o)
	}

	f.P("\tw.WriteRaw(x.UnknownFields)")
	f.P("\treturn nil")
	f.P("}")
	f.P()
}

func (e *emitter) encodeField(fl *linker.Field) {
	f := e.f
	expr := "x." + goFieldName(fl.Name)

	if fl.Type.Kind == linker.FieldMap {
		e.encodeMap(fl, expr)
		return
	}
	if fl.Label == ast.LabelRepeated {
		e.encodeRepeated(fl, expr)
		return
	}

	wt := fieldWireType(fl)
	wtLit := wireTypeLiteral(wt)

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\tif ", expr, " != nil {")
		f.P("\t\tw.WriteTag(", fl.Tag, ", ", wtLit, ")")
		f.P("\t\tsub := wire.NewWriter(make([]byte, 0, ", expr, ".CalcSize()))")
		f.P("\t\tif err := ", expr, ".Encode(sub); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\tw.WriteLenPrefixed(sub.Bytes())")
		f.P("\t}")

	case linker.FieldEnum:
		if fl.Label == ast.LabelOptional {
			f.P("\tif ", expr, " != nil {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.VarintType)")
			f.P("\t\tw.WriteVarint(uint64(int32(*", expr, ")))")
			f.P("\t}")
		} else {
			f.P("\tif ", expr, " != 0 {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.VarintType)")
			f.P("\t\tw.WriteVarint(uint64(int32(", expr, ")))")
			f.P("\t}")
		}

	default: // scalar
		switch fl.Label {
		case ast.LabelRequired:
			f.P("\tw.WriteTag(", fl.Tag, ", ", wtLit, ")")
			f.P("\t", writeScalarStmt(fl.Type.Scalar, expr))
		case ast.LabelOptional:
			f.P("\tif ", expr, " != nil {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", ", wtLit, ")")
			f.P("\t\t", writeScalarStmt(fl.Type.Scalar, "*"+expr))
			f.P("\t}")
		default: // implicit
			f.P("\tif ", expr, " != ", scalarZero(fl.Type.Scalar), " {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", ", wtLit, ")")
			f.P("\t\t", writeScalarStmt(fl.Type.Scalar, expr))
			f.P("\t}")
		}
	}
}

func (e *emitter) encodeRepeated(fl *linker.Field, expr string) {
	f := e.f

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\tfor _, v := range ", expr, " {")
		f.P("\t\tw.WriteTag(", fl.Tag, ", wire.LenType)")
		f.P("\t\tsub := wire.NewWriter(make([]byte, 0, v.CalcSize()))")
		f.P("\t\tif err := v.Encode(sub); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\tw.WriteLenPrefixed(sub.Bytes())")
		f.P("\t}")

	case linker.FieldEnum:
		if fl.Packed {
			f.P("\tif len(", expr, ") > 0 {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.LenType)")
			f.P("\t\tsub := wire.NewWriter(nil)")
			f.P("\t\tfor _, v := range ", expr, " {")
			f.P("\t\t\tsub.WriteVarint(uint64(int32(v)))")
			f.P("\t\t}")
			f.P("\t\tw.WriteLenPrefixed(sub.Bytes())")
			f.P("\t}")
		} else {
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.VarintType)")
			f.P("\t\tw.WriteVarint(uint64(int32(v)))")
			f.P("\t}")
		}

	default: // scalar
		if fl.Packed {
			f.P("\tif len(", expr, ") > 0 {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.LenType)")
			f.P("\t\tsub := wire.NewWriter(nil)")
			f.P("\t\tfor _, v := range ", expr, " {")
			f.P("\t\t\t", writeScalarStmtOnWriter(fl.Type.Scalar, "v", "sub"))
			f.P("\t\t}")
			f.P("\t\tw.WriteLenPrefixed(sub.Bytes())")
			f.P("\t}")
		} else {
			wt := wireTypeLiteral(fieldWireType(fl))
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tw.WriteTag(", fl.Tag, ", ", wt, ")")
			f.P("\t\t", writeScalarStmt(fl.Type.Scalar, "v"))
			f.P("\t}")
		}
	}
}

func (e *emitter) encodeMap(fl *linker.Field, expr string) {
	f := e.f
	keyWT := wireTypeLiteral(scalarWireType(fl.Type.Scalar))

	f.P("\tfor k, v := range ", expr, " {")
	f.P("\t\tentry := wire.NewWriter(nil)")
	f.P("\t\tentry.WriteTag(1, ", keyWT, ")")
	f.P("\t\t", writeScalarStmtOnWriter(fl.Type.Scalar, "k", "entry"))
	switch fl.Type.MapValue.Kind {
	case linker.FieldMessage:
		f.P("\t\tentry.WriteTag(2, wire.LenType)")
		f.P("\t\tvsub := wire.NewWriter(make([]byte, 0, v.CalcSize()))")
		f.P("\t\tif err := v.Encode(vsub); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\tentry.WriteLenPrefixed(vsub.Bytes())")
	case linker.FieldEnum:
		f.P("\t\tentry.WriteTag(2, wire.VarintType)")
		f.P("\t\tentry.WriteVarint(uint64(int32(v)))")
	default:
		valWT := wireTypeLiteral(scalarWireType(fl.Type.MapValue.Scalar))
		f.P("\t\tentry.WriteTag(2, ", valWT, ")")
		f.P("\t\t", writeScalarStmtOnWriter(fl.Type.MapValue.Scalar, "v", "entry"))
	}
	f.P("\t\tw.WriteTag(", fl.Tag, ", wire.LenType)")
	f.P("\t\tw.WriteLenPrefixed(entry.Bytes())")
	f.P("\t}")
}

func (e *emitter) encodeOneof(m *linker.Message, goName string, o *linker.Oneof) {
	f := e.f
	f.P("\tswitch v := x.", goFieldName(o.Name), ".(type) {")
	for _, fl := range o.Fields {
		wrapper := goName + "_" + goFieldName(fl.Name)
		wt := wireTypeLiteral(fieldWireType(fl))
		f.P("\tcase *", wrapper, ":")
		switch fl.Type.Kind {
		case linker.FieldMessage:
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.LenType)")
			f.P("\t\tsub := wire.NewWriter(make([]byte, 0, v.", goFieldName(fl.Name), ".CalcSize()))")
			f.P("\t\tif err := v.", goFieldName(fl.Name), ".Encode(sub); err != nil {")
			f.P("\t\t\treturn err")
			f.P("\t\t}")
			f.P("\t\tw.WriteLenPrefixed(sub.Bytes())")
		case linker.FieldEnum:
			f.P("\t\tw.WriteTag(", fl.Tag, ", wire.VarintType)")
			f.P("\t\tw.WriteVarint(uint64(int32(v.", goFieldName(fl.Name), ")))")
		default:
			f.P("\t\tw.WriteTag(", fl.Tag, ", ", wt, ")")
			f.P("\t\t", writeScalarStmt(fl.Type.Scalar, "v."+goFieldName(fl.Name)))
		}
	}
	f.P("\t}")
}
