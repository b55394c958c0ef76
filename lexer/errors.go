package lexer

import (
	"github.com/wireproto/wireproto/ast"
	"github.com/wireproto/wireproto/reporter"
)

// ErrorKind discriminates the lexical error conditions named in spec §7.
type ErrorKind int

const (
	UnexpectedByte ErrorKind = iota
	UnterminatedString
	UnterminatedComment
	BadEscape
	BadNumber
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "unterminated string literal"
	case UnterminatedComment:
		return "unterminated block comment"
	case BadEscape:
		return "invalid escape sequence"
	case BadNumber:
		return "invalid numeric literal"
	default:
		return "unexpected byte"
	}
}

// Error satisfies the standard error interface so ErrorKind can serve as
// the Unwrap target of *Error.
func (k ErrorKind) Error() string { return k.String() }

// Error is returned by the Lexer when it cannot produce a valid token. It
// satisfies reporter.ErrorWithPos.
type Error struct {
	Kind ErrorKind
	Span ast.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Span.String() + ": " + e.Kind.String() + ": " + e.Msg
	}
	return e.Span.String() + ": " + e.Kind.String()
}

// GetPosition returns the source position where the lexical error occurred.
func (e *Error) GetPosition() ast.SourcePos { return e.Span.Pos }

// Unwrap exposes the error kind, so errors.Is(err, lexer.BadNumber) works.
func (e *Error) Unwrap() error { return e.Kind }

var _ reporter.ErrorWithPos = (*Error)(nil)
