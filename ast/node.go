package ast

// Node is implemented by every AST node. It reports the node's source span.
type Node interface {
	Start() SourcePos
	End() SourcePos
}

// Base is embedded in every node type to supply its Start/End
// implementation from a recorded Span.
type Base struct {
	Span Span
}

// NewBase returns a Base anchored at pos, spanning length bytes.
func NewBase(pos SourcePos, length int) Base {
	return Base{Span: Span{Pos: pos, Length: length}}
}

func (b Base) Start() SourcePos { return b.Span.Pos }

// End is approximate: offset + length projected back to a position on the
// same line. Good enough for diagnostics; we do not track multi-line spans
// precisely since the lexer already attaches a fresh SourcePos per token.
func (b Base) End() SourcePos {
	p := b.Span.Pos
	p.Offset += b.Span.Length
	p.Col += b.Span.Length
	return p
}

// ImportKind distinguishes the three import flavors the linker must treat
// differently for name-visibility purposes (spec §4.3).
type ImportKind int

const (
	ImportNormal ImportKind = iota
	ImportPublic
	ImportWeak
)

// Import is a single `import` statement.
type Import struct {
	Base
	Path string
	Kind ImportKind
}

// Syntax is the file-level `syntax = "proto2"|"proto3";` declaration.
type Syntax int

const (
	SyntaxProto2 Syntax = iota
	SyntaxProto3
)

func (s Syntax) String() string {
	if s == SyntaxProto3 {
		return "proto3"
	}
	return "proto2"
}

// File is the root AST node for one parsed .proto source file.
type File struct {
	Base
	Name     string // as given to the resolver, e.g. "foo/bar.proto"
	Syntax   Syntax
	Package  string // dotted, may be empty
	Imports  []*Import
	Messages []*Message
	Enums    []*Enum
	Services []*Service
	Options  []*OptionNode
}

// GoPackageOption returns the file's `option go_package = "...";` value, if
// any, and whether it was set.
func (f *File) GoPackageOption() (string, bool) {
	for _, o := range f.Options {
		if o.Name == "go_package" {
			s, ok := o.Value.(string)
			return s, ok
		}
	}
	return "", false
}
