package wire

// DefaultRecursionLimit bounds how deeply SGROUP records may nest before
// a Reader refuses to decode further (spec §4.4, §8).
const DefaultRecursionLimit = 100

// Value holds the payload of one decoded field, interpreted according to
// its Type. Only the member matching Type is meaningful.
type Value struct {
	Type   Type
	Varint uint64 // VarintType
	I32    uint32 // I32Type
	I64    uint64 // I64Type
	Len    []byte // LenType — a subslice of the Reader's input, not a copy
}

// Reader is a schema-agnostic, pull-based decoder over an encoded message
// body. It knows nothing about field semantics (scalar vs message vs
// map); it just yields (field_number, wire_value) pairs and validates the
// framing — tag well-formedness, LEN lengths against the remaining
// buffer, and SGROUP/EGROUP balance. Generated decode methods drive it
// and attach meaning to each field number.
type Reader struct {
	buf            []byte
	off            int
	tokenStart     int
	groupStack     []int32
	recursionLimit int
}

// NewReader returns a Reader over buf. The Reader does not copy buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, recursionLimit: DefaultRecursionLimit}
}

// SetRecursionLimit overrides the default nested-group depth limit.
func (r *Reader) SetRecursionLimit(n int) { r.recursionLimit = n }

// Done reports whether the buffer is fully consumed and no group remains
// unclosed.
func (r *Reader) Done() bool { return r.off >= len(r.buf) && len(r.groupStack) == 0 }

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Token returns the raw bytes (tag + payload) of the field most recently
// returned by Next, for verbatim unknown-field preservation.
func (r *Reader) Token() []byte { return r.buf[r.tokenStart:r.off] }

// Next decodes the next field's tag and payload. On a LEN field, val.Len
// aliases the underlying buffer. On a group-start (SGROUP) or group-end
// (EGROUP) token, val carries no payload — the caller should keep
// calling Next to consume the group's contents up to and including its
// matching EGROUP, which Next validates against fieldNumber balance
// internally.
func (r *Reader) Next() (fieldNumber int32, val Value, err error) {
	r.tokenStart = r.off
	tag, n := ConsumeVarint(r.buf[r.off:])
	if n == 0 {
		return 0, Value{}, ErrMalformed
	}
	r.off += n

	fieldNumber, wireType := DecodeTag(tag)
	if fieldNumber < 1 || fieldNumber > 536870911 {
		return 0, Value{}, ErrMalformed
	}

	switch wireType {
	case VarintType:
		v, n := ConsumeVarint(r.buf[r.off:])
		if n == 0 {
			return 0, Value{}, ErrMalformed
		}
		r.off += n
		return fieldNumber, Value{Type: VarintType, Varint: v}, nil

	case I32Type:
		v, n := ConsumeFixed32(r.buf[r.off:])
		if n == 0 {
			return 0, Value{}, ErrMalformed
		}
		r.off += n
		return fieldNumber, Value{Type: I32Type, I32: v}, nil

	case I64Type:
		v, n := ConsumeFixed64(r.buf[r.off:])
		if n == 0 {
			return 0, Value{}, ErrMalformed
		}
		r.off += n
		return fieldNumber, Value{Type: I64Type, I64: v}, nil

	case LenType:
		length, n := ConsumeVarint(r.buf[r.off:])
		if n == 0 {
			return 0, Value{}, ErrMalformed
		}
		r.off += n
		if length > uint64(len(r.buf)-r.off) {
			return 0, Value{}, ErrMalformed
		}
		b := r.buf[r.off : r.off+int(length)]
		r.off += int(length)
		return fieldNumber, Value{Type: LenType, Len: b}, nil

	case SGroupType:
		if len(r.groupStack) >= r.recursionLimit {
			return 0, Value{}, ErrRecursionLimit
		}
		r.groupStack = append(r.groupStack, fieldNumber)
		return fieldNumber, Value{Type: SGroupType}, nil

	case EGroupType:
		if len(r.groupStack) == 0 {
			return 0, Value{}, ErrMalformed
		}
		top := r.groupStack[len(r.groupStack)-1]
		if top != fieldNumber {
			return 0, Value{}, ErrMalformed
		}
		r.groupStack = r.groupStack[:len(r.groupStack)-1]
		return fieldNumber, Value{Type: EGroupType}, nil

	default:
		return 0, Value{}, ErrMalformed
	}
}

// SkipGroup discards fields until the EGROUP matching fieldNumber (which
// must already have been consumed as the corresponding SGROUP by the
// caller). Used by generated decoders to drop an unsupported or unknown
// group field while preserving framing.
func (r *Reader) SkipGroup(fieldNumber int32) error {
	depth := 1
	for {
		if r.Done() {
			return ErrMalformed
		}
		fn, val, err := r.Next()
		if err != nil {
			return err
		}
		switch val.Type {
		case SGroupType:
			depth++
		case EGroupType:
			if fn == fieldNumber {
				depth--
				if depth == 0 {
					return nil
				}
			}
		}
	}
}
