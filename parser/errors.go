package parser

import (
	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/reporter"
)

// ErrorKind discriminates parse error conditions (spec §7 ParseError).
type ErrorKind int

const (
	Unexpected ErrorKind = iota
	BadTag
	BadLiteral
)

// Error satisfies the standard error interface so ErrorKind can serve as
// the Unwrap target of *Error.
func (k ErrorKind) Error() string {
	switch k {
	case BadTag:
		return "invalid field tag"
	case BadLiteral:
		return "invalid literal"
	default:
		return "unexpected token"
	}
}

// Error is returned by Parse on the first syntax error encountered; per
// spec §4.2, no partial AST escapes a failed parse. It satisfies
// reporter.ErrorWithPos.
type Error struct {
	Kind     ErrorKind
	Span     ast.Span
	Expected string
	Got      string
	Msg      string
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadTag:
		return e.Span.String() + ": invalid field tag: " + e.Msg
	case BadLiteral:
		return e.Span.String() + ": invalid literal: " + e.Msg
	default:
		if e.Expected != "" {
			return e.Span.String() + ": expected " + e.Expected + ", got " + e.Got
		}
		return e.Span.String() + ": unexpected " + e.Got
	}
}

// GetPosition returns the source position where the syntax error occurred.
func (e *Error) GetPosition() ast.SourcePos { return e.Span.Pos }

// Unwrap exposes the error kind, so errors.Is(err, parser.BadTag) works.
func (e *Error) Unwrap() error { return e.Kind }

var _ reporter.ErrorWithPos = (*Error)(nil)
