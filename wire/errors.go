// Package wire is the schema-agnostic runtime codec used by generated
// code: varint/zigzag/fixed-width encoding, tag composition, and a
// streaming reader/writer over byte slices (spec §4.4).
package wire

import "errors"

// ErrMalformed covers truncated input, varint overflow, mismatched
// group boundaries, and invalid wire types (spec §7 DecodeError.Malformed).
var ErrMalformed = errors.New("wire: malformed input")

// ErrRecursionLimit is returned when nested group decoding exceeds the
// configured recursion limit (spec §8, default 100). Nested messages are
// decoded by separate Readers and are not counted.
var ErrRecursionLimit = errors.New("wire: recursion limit exceeded")

// ErrShortBuffer reports that a write did not fit its buffer (spec §7
// WriteError.ShortBuffer). Nothing in this package returns it: Writer
// grows its buffer as needed.
var ErrShortBuffer = errors.New("wire: short buffer")

// ErrMissingRequired is returned by generated decode methods when a
// proto2 `required` field was absent from the input, under strict
// decoding (spec §7 DecodeError.MissingRequired).
var ErrMissingRequired = errors.New("wire: missing required field")
