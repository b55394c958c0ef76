package gen

import (
	"fmt"

	"github.com/wireproto/wireproto/ast"
)

// sizeScalarExpr returns a Go expression computing the wire-body size
// (not including the tag) of one value of kind held in expr.
func sizeScalarExpr(k ast.ScalarKind, expr string) string {
	switch k {
	case ast.ScalarInt32, ast.ScalarUint32, ast.ScalarInt64, ast.ScalarUint64:
		return fmt.Sprintf("wire.SizeVarint(uint64(%s))", expr)
	case ast.ScalarSint32:
		return fmt.Sprintf("wire.SizeVarint(uint64(wire.EncodeZigZag32(%s)))", expr)
	case ast.ScalarSint64:
		return fmt.Sprintf("wire.SizeVarint(wire.EncodeZigZag64(%s))", expr)
	case ast.ScalarBool:
		return "1"
	case ast.ScalarFixed32, ast.ScalarSfixed32, ast.ScalarFloat:
		return "4"
	case ast.ScalarFixed64, ast.ScalarSfixed64, ast.ScalarDouble:
		return "8"
	case ast.ScalarString:
		return fmt.Sprintf("wire.SizeVarint(uint64(len(%s))) + len(%s)", expr, expr)
	case ast.ScalarBytes:
		return fmt.Sprintf("wire.SizeVarint(uint64(len(%s))) + len(%s)", expr, expr)
	default:
		panic(fmt.Sprintf("gen: sizeScalarExpr: unknown scalar kind %v", k))
	}
}

// writeScalarStmt returns a Go statement writing one value of kind held
// in expr to the writer variable "w". The field's tag must already have
// been written by the caller.
func writeScalarStmt(k ast.ScalarKind, expr string) string {
	return writeScalarStmtOnWriter(k, expr, "w")
}

// writeScalarStmtOnWriter is writeScalarStmt against an explicit writer
// variable, for the nested Writer used by packed repeated fields and
// map entries.
func writeScalarStmtOnWriter(k ast.ScalarKind, expr, w string) string {
	switch k {
	case ast.ScalarInt32, ast.ScalarUint32, ast.ScalarInt64, ast.ScalarUint64:
		return fmt.Sprintf("%s.WriteVarint(uint64(%s))", w, expr)
	case ast.ScalarSint32:
		return fmt.Sprintf("%s.WriteVarint(uint64(wire.EncodeZigZag32(%s)))", w, expr)
	case ast.ScalarSint64:
		return fmt.Sprintf("%s.WriteVarint(wire.EncodeZigZag64(%s))", w, expr)
	case ast.ScalarBool:
		return fmt.Sprintf("if %s { %s.WriteVarint(1) } else { %s.WriteVarint(0) }", expr, w, w)
	case ast.ScalarFixed32:
		return fmt.Sprintf("%s.WriteFixed32(uint32(%s))", w, expr)
	case ast.ScalarSfixed32:
		return fmt.Sprintf("%s.WriteFixed32(uint32(%s))", w, expr)
	case ast.ScalarFloat:
		return fmt.Sprintf("%s.WriteFixed32(wire.Float32ToBits(%s))", w, expr)
	case ast.ScalarFixed64:
		return fmt.Sprintf("%s.WriteFixed64(uint64(%s))", w, expr)
	case ast.ScalarSfixed64:
		return fmt.Sprintf("%s.WriteFixed64(uint64(%s))", w, expr)
	case ast.ScalarDouble:
		return fmt.Sprintf("%s.WriteFixed64(wire.Float64ToBits(%s))", w, expr)
	case ast.ScalarString:
		return fmt.Sprintf("%s.WriteString(%s)", w, expr)
	case ast.ScalarBytes:
		return fmt.Sprintf("%s.WriteLenPrefixed(%s)", w, expr)
	default:
		panic(fmt.Sprintf("gen: writeScalarStmt: unknown scalar kind %v", k))
	}
}

// decodeScalarExpr returns a Go expression converting an already-decoded
// wire.Value held in the variable named valVar into a value of kind k.
func decodeScalarExpr(k ast.ScalarKind, valVar string) string {
	switch k {
	case ast.ScalarInt32:
		return fmt.Sprintf("int32(%s.Varint)", valVar)
	case ast.ScalarInt64:
		return fmt.Sprintf("int64(%s.Varint)", valVar)
	case ast.ScalarUint32:
		return fmt.Sprintf("uint32(%s.Varint)", valVar)
	case ast.ScalarUint64:
		return fmt.Sprintf("%s.Varint", valVar)
	case ast.ScalarSint32:
		return fmt.Sprintf("wire.DecodeZigZag32(uint32(%s.Varint))", valVar)
	case ast.ScalarSint64:
		return fmt.Sprintf("wire.DecodeZigZag64(%s.Varint)", valVar)
	case ast.ScalarBool:
		return fmt.Sprintf("%s.Varint != 0", valVar)
	case ast.ScalarFixed32:
		return fmt.Sprintf("%s.I32", valVar)
	case ast.ScalarSfixed32:
		return fmt.Sprintf("int32(%s.I32)", valVar)
	case ast.ScalarFloat:
		return fmt.Sprintf("wire.Float32FromBits(%s.I32)", valVar)
	case ast.ScalarFixed64:
		return fmt.Sprintf("%s.I64", valVar)
	case ast.ScalarSfixed64:
		return fmt.Sprintf("int64(%s.I64)", valVar)
	case ast.ScalarDouble:
		return fmt.Sprintf("wire.Float64FromBits(%s.I64)", valVar)
	case ast.ScalarString:
		return fmt.Sprintf("string(%s.Len)", valVar)
	case ast.ScalarBytes:
		return fmt.Sprintf("append([]byte(nil), %s.Len...)", valVar)
	default:
		panic(fmt.Sprintf("gen: decodeScalarExpr: unknown scalar kind %v", k))
	}
}
