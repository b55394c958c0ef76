package parser_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/parser"
)

func TestParseSampleFile(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.proto")
	require.NoError(t, err)

	f, err := parser.Parse("sample.proto", data)
	require.NoError(t, err)
	require.Equal(t, ast.SyntaxProto3, f.Syntax)
	require.Equal(t, "example.v1", f.Package)
	require.Len(t, f.Messages, 2)
	require.Len(t, f.Enums, 1)
	require.Len(t, f.Services, 1)

	outer := f.Messages[1]
	require.Equal(t, "Outer", outer.Name)
	require.Len(t, outer.Oneofs, 1)
	require.Equal(t, "which", outer.Oneofs[0].Name)
	require.Len(t, outer.Oneofs[0].Fields, 2)

	var mapField *ast.Field
	for _, fld := range outer.Fields {
		if fld.Name == "m" {
			mapField = fld
		}
	}
	require.NotNil(t, mapField)
	require.Equal(t, ast.FieldTypeNamed, mapField.Type.Kind)
	require.Equal(t, "MEntry", mapField.Type.TypeName)
	require.Len(t, outer.Nested, 1)
	require.True(t, outer.Nested[0].MapEntry)
	require.Equal(t, "key", outer.Nested[0].Fields[0].Name)
	require.Equal(t, "value", outer.Nested[0].Fields[1].Name)

	svc := f.Services[0]
	require.Equal(t, "SayHello", svc.Methods[0].Name)
	require.False(t, svc.Methods[0].ClientStreaming)
	require.True(t, svc.Methods[1].ClientStreaming)
	require.True(t, svc.Methods[1].ServerStreaming)
}

func TestParseProto2RequiredField(t *testing.T) {
	src := `
syntax = "proto2";
message M {
  required int32 a = 1;
  optional string b = 2 [default = "x"];
}
`
	f, err := parser.Parse("m.proto", []byte(src))
	require.NoError(t, err)
	m := f.Messages[0]
	require.Equal(t, ast.LabelRequired, m.Fields[0].Label)
	def, ok := m.Fields[1].Default()
	require.True(t, ok)
	require.Equal(t, "x", def)
}

func TestParseRejectsDuplicateSyntax(t *testing.T) {
	_, err := parser.Parse("bad.proto", []byte(`syntax = "proto3"; syntax = "proto3";`))
	require.Error(t, err)
}

func TestParseReservedRanges(t *testing.T) {
	src := `
syntax = "proto3";
message M {
  reserved 2, 15, 9 to 11;
  reserved "foo", "bar";
  int32 a = 1;
}
`
	f, err := parser.Parse("m.proto", []byte(src))
	require.NoError(t, err)
	m := f.Messages[0]
	require.Len(t, m.Reserved, 3)
	require.Equal(t, []string{"foo", "bar"}, m.ReservedNames)
}

func TestParseUnterminatedMessage(t *testing.T) {
	_, err := parser.Parse("bad.proto", []byte(`message M { int32 a = 1; `))
	require.Error(t, err)
}
