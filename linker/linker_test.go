package linker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/linker"
	"github.com/wireproto/wireproto/parser"
)

func mustParse(t *testing.T, name, src string) *ast.File {
	t.Helper()
	f, err := parser.Parse(name, []byte(src))
	require.NoError(t, err)
	return f
}

func TestLinkScalarMessage(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
package pkg;
message M {
  int32 a = 1;
  string b = 2;
}
`)
	schema, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.NoError(t, err)
	m, ok := schema.Message("pkg.M")
	require.True(t, ok)
	require.Equal(t, "pkg.M", m.FQN)
	require.Len(t, m.Fields, 2)
	require.Equal(t, linker.FieldScalar, m.Fields[0].Type.Kind)
}

func TestLinkDuplicateTag(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M {
  int32 a = 1;
  string b = 1;
}
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.DuplicateTag, lerr.Kind)
}

func TestLinkProto3EnumFirstValueNotZero(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
enum E {
  A = 1;
  B = 2;
}
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.Proto3EnumFirstValueNotZero, lerr.Kind)
}

func TestLinkRequiredInProto3Rejected(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M {
  required int32 a = 1;
}
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.RequiredInProto3, lerr.Kind)
}

func TestLinkUnresolvedType(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M {
  DoesNotExist x = 1;
}
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.UnresolvedType, lerr.Kind)
}

func TestLinkCrossFileImportVisibility(t *testing.T) {
	dep := mustParse(t, "dep.proto", `
syntax = "proto3";
package dep;
message Shared { int32 id = 1; }
`)
	main := mustParse(t, "main.proto", `
syntax = "proto3";
package main;
import "dep.proto";
message M { dep.Shared s = 1; }
`)
	schema, err := linker.Link(map[string]*ast.File{"dep.proto": dep, "main.proto": main})
	require.NoError(t, err)
	m, ok := schema.Message("main.M")
	require.True(t, ok)
	require.Equal(t, linker.FieldMessage, m.Fields[0].Type.Kind)
	require.Equal(t, "dep.Shared", m.Fields[0].Type.FQN)
}

func TestLinkMissingImportRejected(t *testing.T) {
	dep := mustParse(t, "dep.proto", `
syntax = "proto3";
package dep;
message Shared { int32 id = 1; }
`)
	main := mustParse(t, "main.proto", `
syntax = "proto3";
package main;
message M { dep.Shared s = 1; }
`)
	_, err := linker.Link(map[string]*ast.File{"dep.proto": dep, "main.proto": main})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.UnresolvedType, lerr.Kind)
}

func TestLinkNameShadowing(t *testing.T) {
	// C++-style scoping: the innermost "Foo" (nested inside Outer) should
	// win over the top-level "Foo" when resolved from inside Outer.
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message Foo { int32 top = 1; }
message Outer {
  message Foo { int32 nested = 1; }
  Foo f = 1;
}
`)
	schema, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.NoError(t, err)
	outer, ok := schema.Message("Outer")
	require.True(t, ok)
	require.Equal(t, "Outer.Foo", outer.Fields[0].Type.FQN)
}

func TestLinkMapField(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M {
  map<string, int32> m = 1;
}
`)
	schema, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.NoError(t, err)
	m, ok := schema.Message("M")
	require.True(t, ok)
	require.Equal(t, linker.FieldMap, m.Fields[0].Type.Kind)
	require.Equal(t, ast.ScalarString, m.Fields[0].Type.Scalar)
	require.NotNil(t, m.Fields[0].Type.MapValue)
	require.Equal(t, linker.FieldScalar, m.Fields[0].Type.MapValue.Kind)
}

func TestLinkBadMapKeyRejected(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M {
  map<double, int32> m = 1;
}
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.BadMapKey, lerr.Kind)
}

func TestLinkPackedDefaults(t *testing.T) {
	p3 := mustParse(t, "a.proto", `
syntax = "proto3";
message M { repeated int32 xs = 1; }
`)
	schema, err := linker.Link(map[string]*ast.File{"a.proto": p3})
	require.NoError(t, err)
	m, _ := schema.Message("M")
	require.True(t, m.Fields[0].Packed)

	p2 := mustParse(t, "b.proto", `
syntax = "proto2";
message M { repeated int32 xs = 1; }
`)
	schema2, err := linker.Link(map[string]*ast.File{"b.proto": p2})
	require.NoError(t, err)
	m2, _ := schema2.Message("M")
	require.False(t, m2.Fields[0].Packed)
}

func TestLinkReservedTagRejected(t *testing.T) {
	f := mustParse(t, "a.proto", `
syntax = "proto3";
message M { int32 a = 19500; }
`)
	_, err := linker.Link(map[string]*ast.File{"a.proto": f})
	require.Error(t, err)
	var lerr *linker.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, linker.TagReserved, lerr.Kind)
}
