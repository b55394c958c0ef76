// Package linker resolves the AST produced by package parser into a Linked
// Schema: a fully name-resolved, validated intermediate representation
// consumed by the code generator (spec §4.3).
package linker

import (
	"fmt"

	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/reporter"
)

// ErrorKind discriminates the LinkError variants named in spec §7.
type ErrorKind int

const (
	UnresolvedType ErrorKind = iota
	DuplicateName
	DuplicateTag
	TagOutOfRange
	TagReserved
	BadMapKey
	Proto3EnumFirstValueNotZero
	RequiredInProto3
	ImportNotFound
	GroupUnsupported
)

func (k ErrorKind) String() string {
	switch k {
	case UnresolvedType:
		return "unresolved type"
	case DuplicateName:
		return "duplicate name"
	case DuplicateTag:
		return "duplicate tag"
	case TagOutOfRange:
		return "tag out of range"
	case TagReserved:
		return "tag in reserved range"
	case BadMapKey:
		return "invalid map key type"
	case Proto3EnumFirstValueNotZero:
		return "proto3 enum's first value must be zero"
	case RequiredInProto3:
		return "required fields are not allowed in proto3"
	case ImportNotFound:
		return "import not found"
	case GroupUnsupported:
		return "proto2 groups are parse-only and are not supported by codegen"
	default:
		return "link error"
	}
}

// Error satisfies the standard error interface so ErrorKind can serve as
// the Unwrap target of *Error.
func (k ErrorKind) Error() string { return k.String() }

// Error is a single linker diagnostic, tied to the source position that
// caused it. It satisfies reporter.ErrorWithPos.
type Error struct {
	Kind ErrorKind
	Pos  ast.SourcePos
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
}

// GetPosition returns the source position that caused the link error.
func (e *Error) GetPosition() ast.SourcePos { return e.Pos }

// Unwrap exposes the error kind, so errors.Is(err, linker.DuplicateTag) works.
func (e *Error) Unwrap() error { return e.Kind }

var _ reporter.ErrorWithPos = (*Error)(nil)

func newErr(kind ErrorKind, pos ast.SourcePos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
