package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

// TestReaderScalarMessage decodes spec scenario S1's bytes back into its
// two fields.
func TestReaderScalarMessage(t *testing.T) {
	buf := []byte{0x08, 0x96, 0x01, 0x12, 0x07, 't', 'e', 's', 't', 'i', 'n', 'g'}
	r := wire.NewReader(buf)

	num, val, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(1), num)
	require.Equal(t, wire.VarintType, val.Type)
	require.Equal(t, uint64(150), val.Varint)

	num, val, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(2), num)
	require.Equal(t, wire.LenType, val.Type)
	require.Equal(t, []byte("testing"), val.Len)

	require.True(t, r.Done())
}

func TestReaderMapEntry(t *testing.T) {
	// spec scenario S4: field 1 holds a LEN-encoded map entry submessage
	// with key field 1 = 1, value field 2 = 2.
	buf := []byte{0x0A, 0x04, 0x08, 0x01, 0x10, 0x02}
	r := wire.NewReader(buf)

	num, val, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(1), num)
	require.Equal(t, wire.LenType, val.Type)

	entry := wire.NewReader(val.Len)
	num, val, err = entry.Next()
	require.NoError(t, err)
	require.Equal(t, int32(1), num)
	require.Equal(t, uint64(1), val.Varint)

	num, val, err = entry.Next()
	require.NoError(t, err)
	require.Equal(t, int32(2), num)
	require.Equal(t, uint64(2), val.Varint)

	require.True(t, entry.Done())
	require.True(t, r.Done())
}

func TestReaderGroupBalance(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(5, wire.SGroupType)
	w.WriteTag(1, wire.VarintType)
	w.WriteVarint(42)
	w.WriteTag(5, wire.EGroupType)

	r := wire.NewReader(w.Bytes())
	num, val, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(5), num)
	require.Equal(t, wire.SGroupType, val.Type)

	num, val, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(1), num)
	require.Equal(t, uint64(42), val.Varint)

	num, val, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(5), num)
	require.Equal(t, wire.EGroupType, val.Type)
	require.True(t, r.Done())
}

func TestReaderMismatchedGroupIsMalformed(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(5, wire.SGroupType)
	w.WriteTag(6, wire.EGroupType) // wrong field number closes it

	r := wire.NewReader(w.Bytes())
	_, _, err := r.Next() // SGROUP
	require.NoError(t, err)
	_, _, err = r.Next() // mismatched EGROUP
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestReaderUnmatchedEGroupIsMalformed(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(5, wire.EGroupType)

	r := wire.NewReader(w.Bytes())
	_, _, err := r.Next()
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestReaderSkipGroup(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(5, wire.SGroupType)
	w.WriteTag(1, wire.VarintType)
	w.WriteVarint(1)
	w.WriteTag(5, wire.EGroupType)
	w.WriteTag(9, wire.VarintType)
	w.WriteVarint(9)

	r := wire.NewReader(w.Bytes())
	num, val, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(5), num)
	require.Equal(t, wire.SGroupType, val.Type)

	require.NoError(t, r.SkipGroup(5))

	num, val, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(9), num)
	require.Equal(t, uint64(9), val.Varint)
}

func TestReaderLenExceedsBuffer(t *testing.T) {
	buf := []byte{0x0A, 0x10, 0x01} // claims 16 bytes, only 1 present
	r := wire.NewReader(buf)
	_, _, err := r.Next()
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestReaderTruncatedTag(t *testing.T) {
	buf := []byte{0xff} // continuation bit set, nothing follows
	r := wire.NewReader(buf)
	_, _, err := r.Next()
	require.ErrorIs(t, err, wire.ErrMalformed)
}

func TestReaderRecursionLimit(t *testing.T) {
	w := wire.NewWriter(nil)
	const depth = 5
	for i := 0; i < depth; i++ {
		w.WriteTag(1, wire.SGroupType)
	}

	r := wire.NewReader(w.Bytes())
	r.SetRecursionLimit(depth - 1)

	var err error
	for i := 0; i < depth; i++ {
		_, _, err = r.Next()
		if err != nil {
			break
		}
	}
	require.ErrorIs(t, err, wire.ErrRecursionLimit)
}

func TestReaderFixed32AndFixed64(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(1, wire.I32Type)
	w.WriteFixed32(0xdeadbeef)
	w.WriteTag(2, wire.I64Type)
	w.WriteFixed64(0x0102030405060708)

	r := wire.NewReader(w.Bytes())
	num, val, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(1), num)
	require.Equal(t, uint32(0xdeadbeef), val.I32)

	num, val, err = r.Next()
	require.NoError(t, err)
	require.Equal(t, int32(2), num)
	require.Equal(t, uint64(0x0102030405060708), val.I64)
}

func TestReaderUnknownFieldTokenPreservation(t *testing.T) {
	buf := []byte{0x08, 0x96, 0x01}
	r := wire.NewReader(buf)
	_, _, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, buf, r.Token())
}
