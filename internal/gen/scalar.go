package gen

import (
	"fmt"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/wire"
)

// scalarInfo is everything the emitter needs to encode/decode one
// scalar kind without a big type switch sprinkled through message.go.
type scalarInfo struct {
	goType  string
	zero    string
	wire    wire.Type
	zigzag  bool
	fixed   bool // fixed32/fixed64/sfixed32/sfixed64/float/double
	bits64  bool // selects I64 vs I32 for fixed types, or the varint width
	isBytes bool
}

var scalars = map[ast.ScalarKind]scalarInfo{
	ast.ScalarInt32:    {goType: "int32", zero: "0", wire: wire.VarintType},
	ast.ScalarInt64:    {goType: "int64", zero: "0", wire: wire.VarintType, bits64: true},
	ast.ScalarUint32:   {goType: "uint32", zero: "0", wire: wire.VarintType},
	ast.ScalarUint64:   {goType: "uint64", zero: "0", wire: wire.VarintType, bits64: true},
	ast.ScalarSint32:   {goType: "int32", zero: "0", wire: wire.VarintType, zigzag: true},
	ast.ScalarSint64:   {goType: "int64", zero: "0", wire: wire.VarintType, zigzag: true, bits64: true},
	ast.ScalarFixed32:  {goType: "uint32", zero: "0", wire: wire.I32Type, fixed: true},
	ast.ScalarFixed64:  {goType: "uint64", zero: "0", wire: wire.I64Type, fixed: true, bits64: true},
	ast.ScalarSfixed32: {goType: "int32", zero: "0", wire: wire.I32Type, fixed: true},
	ast.ScalarSfixed64: {goType: "int64", zero: "0", wire: wire.I64Type, fixed: true, bits64: true},
	ast.ScalarFloat:    {goType: "float32", zero: "0", wire: wire.I32Type, fixed: true},
	ast.ScalarDouble:   {goType: "float64", zero: "0", wire: wire.I64Type, fixed: true, bits64: true},
	ast.ScalarBool:     {goType: "bool", zero: "false", wire: wire.VarintType},
	ast.ScalarString:   {goType: "string", zero: `""`, wire: wire.LenType},
	ast.ScalarBytes:    {goType: "[]byte", zero: "nil", wire: wire.LenType, isBytes: true},
}

func scalarGoType(k ast.ScalarKind) string {
	info, ok := scalars[k]
	if !ok {
		panic(fmt.Sprintf("gen: unknown scalar kind %v", k))
	}
	return info.goType
}

func scalarZero(k ast.ScalarKind) string {
	return scalars[k].zero
}

func scalarWireType(k ast.ScalarKind) wire.Type {
	return scalars[k].wire
}
