// Package resolver is the build-system integration boundary: it turns an
// import path written in a .proto file into source bytes, the way a host
// build system would locate a file for any other compiler frontend
// (spec §1, §6).
package resolver

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver locates the source for a proto import path. Implementations
// must be safe for concurrent use — compiler.Compiler.Compile calls
// FindFile from multiple goroutines while parsing a file's transitive
// imports.
type Resolver interface {
	FindFile(path string) (io.ReadCloser, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(path string) (io.ReadCloser, error)

func (f ResolverFunc) FindFile(path string) (io.ReadCloser, error) { return f(path) }

// CompositeResolver consults its members in order, returning the first
// successful result. If every member fails, the first error encountered
// is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (c CompositeResolver) FindFile(path string) (io.ReadCloser, error) {
	if len(c) == 0 {
		return nil, fs.ErrNotExist
	}
	var firstErr error
	for _, r := range c {
		rc, err := r.FindFile(path)
		if err == nil {
			return rc, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// SourceResolver resolves files from the filesystem, relative to an
// ordered list of import paths. If ImportPaths is empty, a requested
// path is resolved relative to the process's working directory.
type SourceResolver struct {
	ImportPaths []string

	// Accessor optionally overrides how a resolved path is opened. If
	// nil, os.Open is used. Must be safe for concurrent use.
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) FindFile(path string) (io.ReadCloser, error) {
	if len(r.ImportPaths) == 0 {
		return r.access(path)
	}

	var lastErr error
	for _, importPath := range r.ImportPaths {
		rc, err := r.access(filepath.Join(importPath, path))
		if err == nil {
			return rc, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

func (r *SourceResolver) access(path string) (io.ReadCloser, error) {
	if r.Accessor != nil {
		return r.Accessor(path)
	}
	return os.Open(path)
}

// SourceAccessorFromMap returns an Accessor backed by an in-memory set of
// named sources, useful for tests and for embedding generated fixtures.
// The map is used directly, not copied, so it must not be mutated once
// handed to a SourceResolver.
func SourceAccessorFromMap(srcs map[string]string) func(path string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}
