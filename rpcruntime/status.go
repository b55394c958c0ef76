// Package rpcruntime holds the RPC runtime types shared by every
// generated service client and server: status codes, the Channel
// transport abstraction, and the stream handles generated stubs pass
// across it (spec §4.6). It is schema-agnostic — generated code supplies
// the service paths and marshals request/response bytes; this package
// only carries them.
package rpcruntime

import (
	"errors"
	"fmt"
)

// StatusCode is the canonical RPC status code set.
type StatusCode int

const (
	OK StatusCode = iota
	Cancelled
	Unknown
	InvalidArgument
	DeadlineExceeded
	NotFound
	AlreadyExists
	PermissionDenied
	ResourceExhausted
	FailedPrecondition
	Aborted
	OutOfRange
	Unimplemented
	Internal
	Unavailable
	DataLoss
	Unauthenticated
)

var codeNames = [...]string{
	"ok", "cancelled", "unknown", "invalid_argument", "deadline_exceeded",
	"not_found", "already_exists", "permission_denied", "resource_exhausted",
	"failed_precondition", "aborted", "out_of_range", "unimplemented",
	"internal", "unavailable", "data_loss", "unauthenticated",
}

// String renders the code's snake_case name, matching its wire/log
// representation in every other example of this status-code set.
func (c StatusCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("status_code(%d)", int(c))
	}
	return codeNames[c]
}

// Status is the value returned in place of a normal response whenever an
// RPC fails — at the channel layer, never as a codec error (spec §7).
type Status struct {
	Code    StatusCode
	Message string
}

// New builds a Status. A Status with Code == OK is not an error (see Err).
func New(code StatusCode, message string) *Status {
	return &Status{Code: code, Message: message}
}

// Newf builds a Status with a formatted message.
func Newf(code StatusCode, format string, args ...any) *Status {
	return New(code, fmt.Sprintf(format, args...))
}

// Error implements error so a *Status can be returned and compared
// through the standard errors.As/errors.Is machinery.
func (s *Status) Error() string {
	if s == nil {
		return OK.String()
	}
	return fmt.Sprintf("rpc error: code = %s desc = %s", s.Code, s.Message)
}

// Err returns s as an error, or nil if s is nil or its code is OK —
// the conversion point between the Status value type and normal Go
// error-handling idiom.
func (s *Status) Err() error {
	if s == nil || s.Code == OK {
		return nil
	}
	return s
}

// FromError extracts a *Status from err. A nil err reports OK; errors
// that are not a *Status are reported as Unknown —
// mirrors how every RPC runtime in the pack treats opaque transport
// errors as Unknown rather than panicking.
func FromError(err error) *Status {
	if err == nil {
		return New(OK, "")
	}
	var st *Status
	if errors.As(err, &st) {
		return st
	}
	return New(Unknown, err.Error())
}
