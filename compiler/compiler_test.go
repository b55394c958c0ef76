package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/compiler"
	"github.com/wireproto/wireproto/reporter"
	"github.com/wireproto/wireproto/resolver"
)

func TestCompileSingleFile(t *testing.T) {
	t.Parallel()
	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{
				"foo.proto": `
syntax = "proto3";
package foo;

message Greeting {
  string text = 1;
}
`,
			}),
		},
	}
	schema, err := c.Compile(context.Background(), "foo.proto")
	require.NoError(t, err)
	require.Len(t, schema.Files, 1)
	msg, ok := schema.Message("foo.Greeting")
	require.True(t, ok)
	assert.Equal(t, "Greeting", msg.Name)
}

func TestCompileWithImports(t *testing.T) {
	t.Parallel()
	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{
				"common.proto": `
syntax = "proto3";
package common;

message Id {
  string value = 1;
}
`,
				"foo.proto": `
syntax = "proto3";
package foo;
import "common.proto";

message Greeting {
  common.Id id = 1;
  string text = 2;
}
`,
			}),
		},
	}
	schema, err := c.Compile(context.Background(), "foo.proto")
	require.NoError(t, err)
	assert.Len(t, schema.Files, 2)
	_, ok := schema.Message("common.Id")
	assert.True(t, ok)
}

func TestCompileUnresolvedFileFails(t *testing.T) {
	t.Parallel()
	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{}),
		},
	}
	_, err := c.Compile(context.Background(), "missing.proto")
	assert.Error(t, err)
}

func TestCompileReportsEveryBrokenFile(t *testing.T) {
	t.Parallel()
	rep := reporter.NewHandler()
	c := &compiler.Compiler{
		Reporter: rep,
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{
				"good.proto": `
syntax = "proto3";
package good;

message Greeting {
  string text = 1;
}
`,
				"bad_one.proto": "syntax = \"proto3\"; message {",
				"bad_two.proto": "syntax = \"proto3\"; message {",
			}),
		},
	}
	_, err := c.Compile(context.Background(), "good.proto", "bad_one.proto", "bad_two.proto")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Len(t, rep.Errors(), 2)
}

func TestGenerateProducesSource(t *testing.T) {
	t.Parallel()
	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{
				"foo.proto": `
syntax = "proto3";
package foo;

message Greeting {
  string text = 1;
}
`,
			}),
		},
	}
	out, err := c.Generate(context.Background(), "foo.proto")
	require.NoError(t, err)
	require.Contains(t, out, "foo/foo.pb.go")
	assert.Contains(t, string(out["foo/foo.pb.go"]), "type Greeting struct")
}

// Generating across package boundaries must place each package under its
// own directory and qualify the cross-package field with an import alias
// rather than an identifier that only resolves in the wrong package.
func TestGenerateQualifiesCrossPackageReferences(t *testing.T) {
	t.Parallel()
	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{
			Accessor: resolver.SourceAccessorFromMap(map[string]string{
				"common.proto": `
syntax = "proto3";
package common;

message Id {
  string value = 1;
}
`,
				"foo.proto": `
syntax = "proto3";
package foo;
import "common.proto";

message Greeting {
  common.Id id = 1;
  string text = 2;
}
`,
			}),
		},
	}
	out, err := c.Generate(context.Background(), "foo.proto")
	require.NoError(t, err)
	require.Contains(t, out, "common/common.pb.go")
	require.Contains(t, out, "foo/foo.pb.go")

	commonSrc := string(out["common/common.pb.go"])
	assert.Contains(t, commonSrc, "package common")
	assert.Contains(t, commonSrc, "type Id struct")

	fooSrc := string(out["foo/foo.pb.go"])
	assert.Contains(t, fooSrc, "package foo")
	assert.Contains(t, fooSrc, `"common"`)
	assert.Contains(t, fooSrc, "Id *common.Id")
	assert.NotContains(t, fooSrc, "type Common_Id")
}
