package resolver_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/resolver"
)

func TestSourceResolverNoImportPaths(t *testing.T) {
	t.Parallel()
	r := &resolver.SourceResolver{
		Accessor: resolver.SourceAccessorFromMap(map[string]string{
			"foo.proto": "syntax = \"proto3\";",
		}),
	}
	rc, err := r.FindFile("foo.proto")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto3\";", string(data))
}

func TestSourceResolverNotFound(t *testing.T) {
	t.Parallel()
	r := &resolver.SourceResolver{
		Accessor: resolver.SourceAccessorFromMap(map[string]string{}),
	}
	_, err := r.FindFile("missing.proto")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSourceResolverImportPathsInOrder(t *testing.T) {
	t.Parallel()
	r := &resolver.SourceResolver{
		ImportPaths: []string{"vendor", "proto"},
		Accessor: resolver.SourceAccessorFromMap(map[string]string{
			"proto/foo.proto": "syntax = \"proto3\";",
		}),
	}
	rc, err := r.FindFile("foo.proto")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto3\";", string(data))
}

func TestCompositeResolverFallsThrough(t *testing.T) {
	t.Parallel()
	empty := &resolver.SourceResolver{Accessor: resolver.SourceAccessorFromMap(map[string]string{})}
	withFile := &resolver.SourceResolver{Accessor: resolver.SourceAccessorFromMap(map[string]string{
		"foo.proto": "syntax = \"proto3\";",
	})}
	c := resolver.CompositeResolver{empty, withFile}
	rc, err := c.FindFile("foo.proto")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto3\";", string(data))
}

func TestCompositeResolverEmpty(t *testing.T) {
	t.Parallel()
	var c resolver.CompositeResolver
	_, err := c.FindFile("foo.proto")
	assert.Error(t, err)
}
