// Package gen translates a linked schema (linker.Schema) into Go source:
// one file per .proto input, with message structs, enum types, and
// service client/server scaffolding over rpcruntime.Channel (spec §4.5).
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
)

// file accumulates the Go source for one generated output, in the style
// of protoc-gen-go's GeneratedFile: callers build it up line by line via
// P, then Content formats the result.
type file struct {
	buf     bytes.Buffer
	pkgName string
	imports map[string]string // import path -> local name
}

func newFile(pkgName string) *file {
	return &file{pkgName: pkgName, imports: map[string]string{}}
}

// P prints its arguments concatenated (via fmt.Sprint semantics, so
// string arguments are not space-separated) followed by a newline —
// mirrors protoc-gen-go's GeneratedFile.P.
func (f *file) P(args ...any) {
	for _, a := range args {
		fmt.Fprint(&f.buf, a)
	}
	f.buf.WriteByte('\n')
}

// importAlias registers pkgPath for the file's import block and returns
// the identifier generated code should use to reference it. Repeated
// calls for the same pkgPath return the alias already assigned to it; a
// local name already claimed by a different pkgPath (two distinct
// packages whose last path segment collides) is disambiguated with a
// numeric suffix.
func (f *file) importAlias(pkgPath, local string) string {
	if alias, ok := f.imports[pkgPath]; ok {
		return alias
	}
	if local == "" {
		f.imports[pkgPath] = ""
		return ""
	}
	used := make(map[string]bool, len(f.imports))
	for _, v := range f.imports {
		used[v] = true
	}
	alias := local
	for i := 2; used[alias]; i++ {
		alias = fmt.Sprintf("%s%d", local, i)
	}
	f.imports[pkgPath] = alias
	return alias
}

// Content renders the complete file: package clause, import block, then
// the accumulated body, gofmt'd. If the body fails to parse as Go (a
// generator bug), the unformatted source is returned alongside the
// format error so callers can still inspect it.
func (f *file) Content() ([]byte, error) {
	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by wireprotoc. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", f.pkgName)
	if len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for path := range f.imports {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		out.WriteString("import (\n")
		for _, path := range paths {
			if local := f.imports[path]; local == "" {
				fmt.Fprintf(&out, "\t%q\n", path)
			} else {
				fmt.Fprintf(&out, "\t%s %q\n", local, path)
			}
		}
		out.WriteString(")\n\n")
	}
	out.Write(f.buf.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return out.Bytes(), err
	}
	return formatted, nil
}
