package gen

import (
	"fmt"

	"github.com/wireproto/wireproto/linker"
	"github.com/wireproto/wireproto/wire"
)

// fieldWireType returns the wire type a field's single element is
// encoded with — its "unpacked" wire type, which is what decode must
// also accept even for fields resolved as packed (spec §4.4).
func fieldWireType(f *linker.Field) wire.Type {
	switch f.Type.Kind {
	case linker.FieldScalar:
		return scalarWireType(f.Type.Scalar)
	case linker.FieldEnum:
		return wire.VarintType
	case linker.FieldMessage, linker.FieldMap:
		return wire.LenType
	default:
		panic(fmt.Sprintf("gen: fieldWireType: unexpected kind %v", f.Type.Kind))
	}
}

// tagLiteral renders the (field_number, wire_type) tag as a Go integer
// literal — tags are known at generation time, so generated code never
// needs to call EncodeTag/DecodeTag at runtime for its own fields.
func tagLiteral(fieldNumber int32, wt wire.Type) string {
	return fmt.Sprintf("%d", wire.EncodeTag(fieldNumber, wt))
}

// tagSizeLiteral renders the number of bytes the tag itself occupies as
// a varint, also precomputed at generation time.
func tagSizeLiteral(fieldNumber int32, wt wire.Type) string {
	return fmt.Sprintf("%d", wire.SizeVarint(wire.EncodeTag(fieldNumber, wt)))
}

func wireTypeLiteral(wt wire.Type) string {
	switch wt {
	case wire.VarintType:
		return "wire.VarintType"
	case wire.I32Type:
		return "wire.I32Type"
	case wire.I64Type:
		return "wire.I64Type"
	case wire.LenType:
		return "wire.LenType"
	default:
		panic(fmt.Sprintf("gen: wireTypeLiteral: unexpected %v", wt))
	}
}
