package gen

import (
	"sort"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
	"github.com/wireproto/wireproto/wire"
)

func sortedFields(m *linker.Message) []*linker.Field {
	out := append([]*linker.Field(nil), m.Fields...)
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

// emitCalcSize writes CalcSize, the exact-byte-count pre-pass generated
// encoders use to size length-prefixed submessages and the optional
// caller-supplied output buffer (spec §4.5).
func (e *emitter) emitCalcSize(m *linker.Message, goName string) {
	f := e.f
	f.P("func (x *", goName, ") CalcSize() int {")
	f.P("\tif x == nil {")
	f.P("\t\treturn 0")
	f.P("\t}")
	f.P("\tvar n int")

	for _, fl := range sortedFields(m) {
		if fl.OneofName != "" {
			continue
		}
		e.calcSizeField(fl)
	}
	for _, o := range m.Oneofs {
		e.calcSizeOneof(m, goName, o)
	}

	f.P("\tn += len(x.UnknownFields)")
	f.P("\treturn n")
	f.P("}")
	f.P()
}

func (e *emitter) calcSizeField(fl *linker.Field) {
	f := e.f
	name := goFieldName(fl.Name)
	expr := "x." + name

	if fl.Type.Kind == linker.FieldMap {
		e.calcSizeMap(fl, expr)
		return
	}

	if fl.Label == ast.LabelRepeated {
		e.calcSizeRepeated(fl, expr)
		return
	}

	wt := fieldWireType(fl)
	tagSz := tagSizeLiteral(fl.Tag, wt)

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\tif ", expr, " != nil {")
		f.P("\t\tsub := ", expr, ".CalcSize()")
		f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(sub)) + sub")
		f.P("\t}")

	case linker.FieldEnum:
		if fl.Label == ast.LabelOptional {
			f.P("\tif ", expr, " != nil {")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(int32(*", expr, ")))")
			f.P("\t}")
		} else {
			f.P("\tif ", expr, " != 0 {")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(int32(", expr, ")))")
			f.P("\t}")
		}

	default: // scalar
		switch fl.Label {
		case ast.LabelRequired:
			f.P("\tn += ", tagSz, " + ", sizeScalarExpr(fl.Type.Scalar, expr))
		case ast.LabelOptional:
			f.P("\tif ", expr, " != nil {")
			f.P("\t\tn += ", tagSz, " + ", sizeScalarExpr(fl.Type.Scalar, "*"+expr))
			f.P("\t}")
		default: // implicit
			f.P("\tif ", expr, " != ", scalarZero(fl.Type.Scalar), " {")
			f.P("\t\tn += ", tagSz, " + ", sizeScalarExpr(fl.Type.Scalar, expr))
			f.P("\t}")
		}
	}
}

func (e *emitter) calcSizeRepeated(fl *linker.Field, expr string) {
	f := e.f
	elemWT := fieldWireType(fl)

	switch fl.Type.Kind {
	case linker.FieldMessage:
		tagSz := tagSizeLiteral(fl.Tag, elemWT)
		f.P("\tfor _, v := range ", expr, " {")
		f.P("\t\tsub := v.CalcSize()")
		f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(sub)) + sub")
		f.P("\t}")

	case linker.FieldEnum:
		if fl.Packed {
			tagSz := tagSizeLiteral(fl.Tag, wire.LenType)
			f.P("\tif len(", expr, ") > 0 {")
			f.P("\t\tvar body int")
			f.P("\t\tfor _, v := range ", expr, " {")
			f.P("\t\t\tbody += wire.SizeVarint(uint64(int32(v)))")
			f.P("\t\t}")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(body)) + body")
			f.P("\t}")
		} else {
			tagSz := tagSizeLiteral(fl.Tag, wire.VarintType)
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(int32(v)))")
			f.P("\t}")
		}

	default: // scalar
		if fl.Packed {
			tagSz := tagSizeLiteral(fl.Tag, wire.LenType)
			f.P("\tif len(", expr, ") > 0 {")
			f.P("\t\tvar body int")
			f.P("\t\tfor _, v := range ", expr, " {")
			f.P("\t\t\tbody += ", sizeScalarExpr(fl.Type.Scalar, "v"))
			f.P("\t\t}")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(body)) + body")
			f.P("\t}")
		} else {
			tagSz := tagSizeLiteral(fl.Tag, elemWT)
			f.P("\tfor _, v := range ", expr, " {")
			f.P("\t\tn += ", tagSz, " + ", sizeScalarExpr(fl.Type.Scalar, "v"))
			f.P("\t}")
		}
	}
}

func (e *emitter) calcSizeMap(fl *linker.Field, expr string) {
	f := e.f
	tagSz := tagSizeLiteral(fl.Tag, wire.LenType)
	keyTagSz := tagSizeLiteral(1, scalarWireType(fl.Type.Scalar))

	f.P("\tfor k, v := range ", expr, " {")
	f.P("\t\tentry := ", keyTagSz, " + ", sizeScalarExpr(fl.Type.Scalar, "k"))
	switch fl.Type.MapValue.Kind {
	case linker.FieldMessage:
		valTagSz := tagSizeLiteral(2, wire.LenType)
		f.P("\t\tvsub := v.CalcSize()")
		f.P("\t\tentry += ", valTagSz, " + wire.SizeVarint(uint64(vsub)) + vsub")
	case linker.FieldEnum:
		valTagSz := tagSizeLiteral(2, wire.VarintType)
		f.P("\t\tentry += ", valTagSz, " + wire.SizeVarint(uint64(int32(v)))")
	default:
		valTagSz := tagSizeLiteral(2, scalarWireType(fl.Type.MapValue.Scalar))
		f.P("\t\tentry += ", valTagSz, " + ", sizeScalarExpr(fl.Type.MapValue.Scalar, "v"))
	}
	f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(entry)) + entry")
	f.P("\t}")
}

func (e *emitter) calcSizeOneof(m *linker.Message, goName string, o *linker.Oneof) {
	f := e.f
	f.P("\tswitch v := x.", goFieldName(o.Name), ".(type) {")
	for _, fl := range o.Fields {
		wrapper := goName + "_" + goFieldName(fl.Name)
		tagSz := tagSizeLiteral(fl.Tag, fieldWireType(fl))
		f.P("\tcase *", wrapper, ":")
		switch fl.Type.Kind {
		case linker.FieldMessage:
			f.P("\t\tsub := v.", goFieldName(fl.Name), ".CalcSize()")
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(sub)) + sub")
		case linker.FieldEnum:
			f.P("\t\tn += ", tagSz, " + wire.SizeVarint(uint64(int32(v.", goFieldName(fl.Name), ")))")
		default:
			f.P("\t\tn += ", tagSz, " + ", sizeScalarExpr(fl.Type.Scalar, "v."+goFieldName(fl.Name)))
		}
	}
	f.P("\t}")
}
