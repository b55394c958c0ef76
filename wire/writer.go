package wire

// Writer accumulates an encoded message body, growing its buffer as
// needed. Generated encode methods encode each submessage and each packed
// repeated field into its own Writer first, then copy those bytes into
// the parent with WriteLenPrefixed.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with buf as its initial backing array. Pass a
// slice with cap == the exact calc_size() result to write without
// reallocating.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0]}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteTag writes a field number + wire type tag.
func (w *Writer) WriteTag(fieldNumber int32, wireType Type) {
	w.buf = AppendVarint(w.buf, EncodeTag(fieldNumber, wireType))
}

// WriteVarint writes v as an unsigned varint.
func (w *Writer) WriteVarint(v uint64) {
	w.buf = AppendVarint(w.buf, v)
}

// WriteZigZag32 writes v using the sint32 ZigZag + varint encoding.
func (w *Writer) WriteZigZag32(v int32) {
	w.buf = AppendVarint(w.buf, uint64(EncodeZigZag32(v)))
}

// WriteZigZag64 writes v using the sint64 ZigZag + varint encoding.
func (w *Writer) WriteZigZag64(v int64) {
	w.buf = AppendVarint(w.buf, EncodeZigZag64(v))
}

// WriteFixed32 writes v as 4 little-endian bytes.
func (w *Writer) WriteFixed32(v uint32) {
	w.buf = AppendFixed32(w.buf, v)
}

// WriteFixed64 writes v as 8 little-endian bytes.
func (w *Writer) WriteFixed64(v uint64) {
	w.buf = AppendFixed64(w.buf, v)
}

// WriteLenPrefixed writes len(b) as a varint followed by b itself — the
// shape of every LEN wire record (strings, bytes, submessages, packed
// repeated fields, map entries).
func (w *Writer) WriteLenPrefixed(b []byte) {
	w.buf = AppendVarint(w.buf, uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteString writes s as a LEN record.
func (w *Writer) WriteString(s string) {
	w.buf = AppendVarint(w.buf, uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteRaw appends b verbatim with no length prefix — used to re-emit an
// unknown_fields buffer byte-for-byte (spec §4.4).
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}
