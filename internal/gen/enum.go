package gen

import (
	"strconv"

	"github.com/wireproto/wireproto/linker"
)

// emitEnum writes an integer-backed enum type: a named int32, one
// constant per declared value, and name/value lookup maps, following
// protoc-gen-go's generated shape. An enum value absent from the
// source — a number decoded off the wire that no declared constant
// names — is not coerced or rejected: it simply is that int32, still a
// valid value of the type, with String() falling back to its numeric
// form. That is this representation's open-enum guarantee (spec §4.5,
// §8 REDESIGN FLAGS): unknown values round-trip losslessly without a
// separate catch-all arm.
func (e *emitter) emitEnum(en *linker.Enum) {
	f := e.f
	f.importAlias("strconv", "")
	goName := goTypeName(localName(en.FQN, e.pkg))

	f.P("type ", goName, " int32")
	f.P()
	f.P("const (")
	for _, v := range en.Values {
		f.P("\t", goName, "_", v.Name, " ", goName, " = ", v.Number)
	}
	f.P(")")
	f.P()

	f.P("var ", goName, "_name = map[int32]string{")
	seen := map[int32]bool{}
	for _, v := range en.Values {
		if seen[v.Number] { // AllowAlias: keep only the first name for a reused number
			continue
		}
		seen[v.Number] = true
		f.P("\t", v.Number, ": ", strconv.Quote(v.Name), ",")
	}
	f.P("}")
	f.P()

	f.P("var ", goName, "_value = map[string]int32{")
	for _, v := range en.Values {
		f.P("\t", strconv.Quote(v.Name), ": ", v.Number, ",")
	}
	f.P("}")
	f.P()

	f.P("func (x ", goName, ") String() string {")
	f.P("\tif s, ok := ", goName, "_name[int32(x)]; ok {")
	f.P("\t\treturn s")
	f.P("\t}")
	f.P("\treturn strconv.Itoa(int(x))")
	f.P("}")
	f.P()
}
