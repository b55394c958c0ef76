package gen

import (
	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
)

func requiredFields(m *linker.Message) []*linker.Field {
	var out []*linker.Field
	for _, fl := range m.Fields {
		if fl.Label == ast.LabelRequired {
			out = append(out, fl)
		}
	}
	return out
}

// emitDecode writes Decode, which consumes r field-by-field and populates
// x, accepting both packed and unpacked wire forms for repeated scalar
// and enum fields, tracking proto2 required fields, and preserving any
// field whose number or wire type it doesn't recognize verbatim in
// UnknownFields (spec §4.4, §4.5).
func (e *emitter) emitDecode(m *linker.Message, goName string) {
	f := e.f
	required := requiredFields(m)

	f.P("func (x *", goName, ") Decode(r *wire.Reader) error {")
	for _, fl := range required {
		f.P("\tvar seen", goFieldName(fl.Name), " bool")
	}
	f.P("\tfor !r.Done() {")
	f.P("\t\tfn, val, err := r.Next()")
	f.P("\t\tif err != nil {")
	f.P("\t\t\treturn err")
	f.P("\t\t}")
	f.P("\t\tswitch fn {")

	for _, fl := range sortedFields(m) {
		if fl.OneofName != "" {
			continue
		}
		e.decodeField(fl)
	}
	for _, o := range m.Oneofs {
		for _, fl := range o.Fields {
			e.decodeOneofField(goName, o, fl)
		}
	}

	f.P("\t\tdefault:")
	f.P("\t\t\tif val.Type == wire.SGroupType {")
	f.P("\t\t\t\tif err := r.SkipGroup(fn); err != nil {")
	f.P("\t\t\t\t\treturn err")
	f.P("\t\t\t\t}")
	f.P("\t\t\t} else {")
	f.P("\t\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
	f.P("\t\t\t}")
	f.P("\t\t}")
	f.P("\t}")

	for _, fl := range required {
		f.P("\tif !seen", goFieldName(fl.Name), " {")
		f.P("\t\treturn wire.ErrMissingRequired")
		f.P("\t}")
	}
	f.P("\treturn nil")
	f.P("}")
	f.P()
}

func (e *emitter) decodeField(fl *linker.Field) {
	f := e.f
	name := goFieldName(fl.Name)
	expr := "x." + name

	if fl.Type.Kind == linker.FieldMap {
		f.P("\tcase ", fl.Tag, ":")
		e.decodeMap(fl, expr)
		return
	}

	if fl.Label == ast.LabelRepeated {
		f.P("\tcase ", fl.Tag, ":")
		e.decodeRepeated(fl, expr)
		return
	}

	f.P("\tcase ", fl.Tag, ":")

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\t\tif val.Type != wire.LenType {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		goType := e.fieldGoType(fl.Type)
		f.P("\t\tv := new(", goType[1:], ")") // strip leading "*"
		f.P("\t\tif err := v.Decode(wire.NewReader(val.Len)); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\t", expr, " = v")

	case linker.FieldEnum:
		f.P("\t\tif val.Type != wire.VarintType {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		enumType := e.enumGoType(fl.Type)
		if fl.Label == ast.LabelOptional {
			f.P("\t\tv := ", enumType, "(int32(val.Varint))")
			f.P("\t\t", expr, " = &v")
		} else {
			f.P("\t\t", expr, " = ", enumType, "(int32(val.Varint))")
		}

	default: // scalar
		wt := wireTypeLiteral(scalarWireType(fl.Type.Scalar))
		f.P("\t\tif val.Type != ", wt, " {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		if fl.Label == ast.LabelOptional {
			f.P("\t\tv := ", decodeScalarExpr(fl.Type.Scalar, "val"))
			f.P("\t\t", expr, " = &v")
		} else {
			f.P("\t\t", expr, " = ", decodeScalarExpr(fl.Type.Scalar, "val"))
		}
	}

	if fl.Label == ast.LabelRequired {
		f.P("\t\tseen", name, " = true")
	}
}

func (e *emitter) decodeRepeated(fl *linker.Field, expr string) {
	f := e.f

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\t\tif val.Type != wire.LenType {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		goType := e.fieldGoType(fl.Type)
		f.P("\t\tv := new(", goType[1:], ")")
		f.P("\t\tif err := v.Decode(wire.NewReader(val.Len)); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\t", expr, " = append(", expr, ", v)")

	case linker.FieldEnum:
		f.P("\t\tswitch val.Type {")
		f.P("\t\tcase wire.LenType:")
		f.P("\t\t\tsub := wire.NewReader(val.Len)")
		f.P("\t\t\tfor !sub.Done() {")
		f.P("\t\t\t\t_, elemVal, err := sub.Next()")
		f.P("\t\t\t\tif err != nil {")
		f.P("\t\t\t\t\treturn err")
		f.P("\t\t\t\t}")
		f.P("\t\t\t\t", expr, " = append(", expr, ", ", e.enumGoType(fl.Type), "(int32(elemVal.Varint)))")
		f.P("\t\t\t}")
		f.P("\t\tcase wire.VarintType:")
		f.P("\t\t\t", expr, " = append(", expr, ", ", e.enumGoType(fl.Type), "(int32(val.Varint)))")
		f.P("\t\tdefault:")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t}")

	default: // scalar
		elemWT := wireTypeLiteral(scalarWireType(fl.Type.Scalar))
		if fl.Packed {
			f.P("\t\tswitch val.Type {")
			f.P("\t\tcase wire.LenType:")
			f.P("\t\t\tsub := wire.NewReader(val.Len)")
			f.P("\t\t\tfor !sub.Done() {")
			f.P("\t\t\t\t_, elemVal, err := sub.Next()")
			f.P("\t\t\t\tif err != nil {")
			f.P("\t\t\t\t\treturn err")
			f.P("\t\t\t\t}")
			f.P("\t\t\t\t", expr, " = append(", expr, ", ", decodeScalarExpr(fl.Type.Scalar, "elemVal"), ")")
			f.P("\t\t\t}")
			f.P("\t\tcase ", elemWT, ":")
			f.P("\t\t\t", expr, " = append(", expr, ", ", decodeScalarExpr(fl.Type.Scalar, "val"), ")")
			f.P("\t\tdefault:")
			f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
			f.P("\t\t}")
		} else {
			f.P("\t\tif val.Type != ", elemWT, " {")
			f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
			f.P("\t\t\tcontinue")
			f.P("\t\t}")
			f.P("\t\t", expr, " = append(", expr, ", ", decodeScalarExpr(fl.Type.Scalar, "val"), ")")
		}
	}
}

func (e *emitter) decodeMap(fl *linker.Field, expr string) {
	f := e.f
	keyZero := scalarZero(fl.Type.Scalar)

	f.P("\t\tif val.Type != wire.LenType {")
	f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
	f.P("\t\t\tcontinue")
	f.P("\t\t}")
	f.P("\t\tk := ", keyZero)

	switch fl.Type.MapValue.Kind {
	case linker.FieldMessage:
		goType := e.fieldGoType(*fl.Type.MapValue)
		f.P("\t\tvar v ", goType)
	case linker.FieldEnum:
		f.P("\t\tvar v ", e.enumGoType(*fl.Type.MapValue))
	default:
		f.P("\t\tv := ", scalarZero(fl.Type.MapValue.Scalar))
	}

	f.P("\t\tentry := wire.NewReader(val.Len)")
	f.P("\t\tfor !entry.Done() {")
	f.P("\t\t\tefn, eval, err := entry.Next()")
	f.P("\t\t\tif err != nil {")
	f.P("\t\t\t\treturn err")
	f.P("\t\t\t}")
	f.P("\t\t\tswitch efn {")
	f.P("\t\t\tcase 1:")
	f.P("\t\t\t\tk = ", decodeScalarExpr(fl.Type.Scalar, "eval"))
	f.P("\t\t\tcase 2:")
	switch fl.Type.MapValue.Kind {
	case linker.FieldMessage:
		goType := e.fieldGoType(*fl.Type.MapValue)
		f.P("\t\t\t\tv = new(", goType[1:], ")")
		f.P("\t\t\t\tif err := v.Decode(wire.NewReader(eval.Len)); err != nil {")
		f.P("\t\t\t\t\treturn err")
		f.P("\t\t\t\t}")
	case linker.FieldEnum:
		f.P("\t\t\t\tv = ", e.enumGoType(*fl.Type.MapValue), "(int32(eval.Varint))")
	default:
		f.P("\t\t\t\tv = ", decodeScalarExpr(fl.Type.MapValue.Scalar, "eval"))
	}
	f.P("\t\t\t}")
	f.P("\t\t}")
	f.P("\t\tif ", expr, " == nil {")
	f.P("\t\t\t", expr, " = make(", e.structFieldType(fl), ")")
	f.P("\t\t}")
	f.P("\t\t", expr, "[k] = v")
}

func (e *emitter) decodeOneofField(goName string, o *linker.Oneof, fl *linker.Field) {
	f := e.f
	oneofExpr := "x." + goFieldName(o.Name)
	wrapper := goName + "_" + goFieldName(fl.Name)

	f.P("\tcase ", fl.Tag, ":")

	switch fl.Type.Kind {
	case linker.FieldMessage:
		f.P("\t\tif val.Type != wire.LenType {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		goType := e.fieldGoType(fl.Type)
		f.P("\t\tv := new(", goType[1:], ")")
		f.P("\t\tif err := v.Decode(wire.NewReader(val.Len)); err != nil {")
		f.P("\t\t\treturn err")
		f.P("\t\t}")
		f.P("\t\t", oneofExpr, " = &", wrapper, "{", goFieldName(fl.Name), ": v}")

	case linker.FieldEnum:
		f.P("\t\tif val.Type != wire.VarintType {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		f.P("\t\t", oneofExpr, " = &", wrapper, "{", goFieldName(fl.Name), ": ", e.enumGoType(fl.Type), "(int32(val.Varint))}")

	default: // scalar
		wt := wireTypeLiteral(scalarWireType(fl.Type.Scalar))
		f.P("\t\tif val.Type != ", wt, " {")
		f.P("\t\t\tx.UnknownFields = append(x.UnknownFields, r.Token()...)")
		f.P("\t\t\tcontinue")
		f.P("\t\t}")
		f.P("\t\t", oneofExpr, " = &", wrapper, "{", goFieldName(fl.Name), ": ", decodeScalarExpr(fl.Type.Scalar, "val"), "}")
	}
}
