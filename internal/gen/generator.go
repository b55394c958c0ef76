package gen

import (
	"path"
	"strings"

	"github.com/wireproto/wireproto/linker"
)

// Generate turns a linked schema into one Go source file per .proto
// input, keyed by the output path the caller should write it to (spec
// §4.5: "definitions are emitted in dependency order ... within a
// scope, deterministic by source order"). Go places no forward-
// declaration requirement on a package's own files, so the schema's
// already-deterministic declaration order is emitted as-is; no
// topological sort is needed to satisfy that invariant in this target.
//
// Per spec.md §4.5/§6, the emitted path mirrors the proto *package* tree,
// not the input file's own directory: every file in package "foo.bar"
// lands under "foo/bar/", since the package (not the input layout) is the
// logical namespace a generated Go import path must address.
func Generate(schema *linker.Schema) (map[string][]byte, error) {
	packages := collectPackageInfo(schema)
	fqnPkg := collectFQNPackages(schema)

	out := make(map[string][]byte, len(schema.Files))
	for _, f := range schema.Files {
		content, err := generateFile(schema, f, packages, fqnPkg)
		if err != nil {
			return nil, err
		}
		out[outputPath(f, packages[f.Package])] = content
	}
	return out, nil
}

// outputPath places f's generated source under its package's directory,
// keeping only the input file's own base name (the proto package, not the
// input's source layout, is what determines the generated namespace).
func outputPath(f *linker.File, info packageInfo) string {
	base := path.Base(f.Name)
	base = strings.TrimSuffix(base, path.Ext(base)) + ".pb.go"
	if info.dir == "" {
		return base
	}
	return path.Join(info.dir, base)
}

// packageInfo describes how one proto package maps onto generated Go: the
// output directory every file in that package lands under, the Go package
// clause its files declare, and the import path a foreign package's
// generated code uses to reference it.
type packageInfo struct {
	dir        string
	goPackage  string
	importPath string
}

// collectPackageInfo derives one packageInfo per distinct proto package
// found in schema, honoring an explicit `option go_package = "...";`
// (optionally "path;name", matching protoc's own go_package syntax) when
// present, and otherwise deriving both the directory and the import path
// from the dotted package name (spec.md §4.5's "output layout mirrors the
// package tree").
func collectPackageInfo(schema *linker.Schema) map[string]packageInfo {
	infos := make(map[string]packageInfo)
	for _, f := range schema.Files {
		if _, ok := infos[f.Package]; ok {
			continue
		}
		infos[f.Package] = derivePackageInfo(f.Package, f.GoPackage)
	}
	return infos
}

func derivePackageInfo(protoPackage, goPackageOption string) packageInfo {
	if goPackageOption == "" {
		dir := strings.ReplaceAll(protoPackage, ".", "/")
		return packageInfo{dir: dir, goPackage: goPackageName(protoPackage), importPath: dir}
	}

	importPath := goPackageOption
	override := ""
	if i := strings.IndexByte(goPackageOption, ';'); i >= 0 {
		importPath, override = goPackageOption[:i], goPackageOption[i+1:]
	}
	goPkg := override
	if goPkg == "" {
		goPkg = goPackageName(importPath)
	}
	return packageInfo{dir: importPath, goPackage: goPkg, importPath: importPath}
}

// collectFQNPackages maps every message/enum FQN in schema to the proto
// package that declares it, so a field referencing a type can tell
// whether that type lives in its own generated file or a foreign one.
func collectFQNPackages(schema *linker.Schema) map[string]string {
	out := make(map[string]string)
	var walk func(m *linker.Message, pkg string)
	walk = func(m *linker.Message, pkg string) {
		out[m.FQN] = pkg
		for _, en := range m.Enums {
			out[en.FQN] = pkg
		}
		for _, nested := range m.Nested {
			walk(nested, pkg)
		}
	}
	for _, f := range schema.Files {
		for _, m := range f.Messages {
			walk(m, f.Package)
		}
		for _, en := range f.Enums {
			out[en.FQN] = f.Package
		}
	}
	return out
}

func generateFile(schema *linker.Schema, f *linker.File, packages map[string]packageInfo, fqnPkg map[string]string) ([]byte, error) {
	file := newFile(goPackageName(f.Package))
	file.importAlias("github.com/wireproto/wireproto/wire", "wire")

	e := &emitter{schema: schema, pkg: f.Package, f: file, packages: packages, fqnPkg: fqnPkg}

	for _, m := range f.Messages {
		for _, flat := range flattenMessages(m) {
			if flat.MapEntry {
				continue
			}
			e.emitMessage(flat)
		}
	}
	for _, en := range f.Enums {
		e.emitEnum(en)
	}
	for _, nested := range flattenEnums(f) {
		e.emitEnum(nested)
	}
	for _, s := range f.Services {
		e.emitService(s)
	}

	return file.Content()
}

// flattenMessages walks m and its nested messages in declaration order,
// mirroring linker.Schema.AllMessages' per-message recursion but scoped
// to one top-level message (map-entry filtering happens in the caller,
// since a synthetic entry can itself only ever be a leaf, never host
// further nesting).
func flattenMessages(m *linker.Message) []*linker.Message {
	out := []*linker.Message{m}
	for _, nested := range m.Nested {
		out = append(out, flattenMessages(nested)...)
	}
	return out
}

// flattenEnums collects enums nested inside messages declared in f,
// which emitMessage does not itself emit (a nested enum's Go type is
// flattened to the top level alongside its enclosing message's own
// flattened name, per goTypeName's nested-type convention).
func flattenEnums(f *linker.File) []*linker.Enum {
	var out []*linker.Enum
	for _, m := range f.Messages {
		out = append(out, collectNestedEnums(m)...)
	}
	return out
}

func collectNestedEnums(m *linker.Message) []*linker.Enum {
	out := append([]*linker.Enum(nil), m.Enums...)
	for _, nested := range m.Nested {
		out = append(out, collectNestedEnums(nested)...)
	}
	return out
}

// goPackageName derives a Go package identifier from a proto package
// name ("pkg.sub" -> "sub"), falling back to "generated" for the
// unnamed package.
func goPackageName(protoPackage string) string {
	if protoPackage == "" {
		return "generated"
	}
	segs := strings.Split(protoPackage, ".")
	last := segs[len(segs)-1]
	return strings.ReplaceAll(last, "-", "_")
}
