// Package reporter provides a shared error/warning collection type used by
// the lexer, parser, and linker stages.
package reporter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wireproto/wireproto/ast"
)

// ErrInvalidSource is returned by the driver when a Handler recorded one or
// more errors during compilation of a file.
var ErrInvalidSource = errors.New("invalid proto source")

// ErrorWithPos is an error tagged with the source position that caused it.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

type errorWithPos struct {
	pos        ast.SourcePos
	underlying error
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() ast.SourcePos { return e.pos }
func (e errorWithPos) Unwrap() error              { return e.underlying }

// Error wraps err with the given source position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf is like Error but formats the underlying error from args.
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

var _ ErrorWithPos = errorWithPos{}

// Handler accumulates errors and warnings for a single compilation run. A
// given front-end stage (lexer/parser/linker) reports into a Handler for
// one file and stops at the first error for that file (spec §7); the driver
// reuses one Handler across files so that multiple files' diagnostics
// surface from a single Compile call.
type Handler struct {
	mu    sync.Mutex
	errs  []ErrorWithPos
	warns []ErrorWithPos
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// HandleError records err and returns it unchanged, so callers can
// `return h.HandleError(err)` to both record and propagate. Safe to call
// concurrently, since the driver shares one Handler across files parsed in
// parallel.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
	return err
}

// HandleWarning records a non-fatal diagnostic. Safe to call concurrently.
func (h *Handler) HandleWarning(warn ErrorWithPos) {
	h.mu.Lock()
	h.warns = append(h.warns, warn)
	h.mu.Unlock()
}

// Errors returns every error recorded so far, in report order.
func (h *Handler) Errors() []ErrorWithPos {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ErrorWithPos(nil), h.errs...)
}

// Warnings returns every warning recorded so far, in report order.
func (h *Handler) Warnings() []ErrorWithPos {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ErrorWithPos(nil), h.warns...)
}

// HasErrors reports whether any error was recorded.
func (h *Handler) HasErrors() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errs) > 0
}
