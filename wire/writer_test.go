package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

// TestWriterScalarMessage reproduces spec scenario S1: a message with
// int32 field 1 = 150 and string field 2 = "testing".
func TestWriterScalarMessage(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteTag(1, wire.VarintType)
	w.WriteVarint(150)
	w.WriteTag(2, wire.LenType)
	w.WriteString("testing")

	want := []byte{0x08, 0x96, 0x01, 0x12, 0x07, 't', 'e', 's', 't', 'i', 'n', 'g'}
	require.Equal(t, want, w.Bytes())
}

// TestWriterPackedRepeated reproduces spec scenario S3: a packed repeated
// int32 field 3 containing [1, 2, 3].
func TestWriterPackedRepeated(t *testing.T) {
	var packed []byte
	for _, v := range []uint64{1, 2, 3} {
		packed = wire.AppendVarint(packed, v)
	}

	w := wire.NewWriter(nil)
	w.WriteTag(3, wire.LenType)
	w.WriteLenPrefixed(packed)

	want := []byte{0x1A, 0x03, 0x01, 0x02, 0x03}
	require.Equal(t, want, w.Bytes())
}

// TestWriterMapEntry reproduces spec scenario S4: a map<int32,int32>
// field 1 with entry key=1, value=2, encoded as a synthetic nested
// message with key field 1 and value field 2.
func TestWriterMapEntry(t *testing.T) {
	entry := wire.NewWriter(nil)
	entry.WriteTag(1, wire.VarintType)
	entry.WriteVarint(1)
	entry.WriteTag(2, wire.VarintType)
	entry.WriteVarint(2)

	w := wire.NewWriter(nil)
	w.WriteTag(1, wire.LenType)
	w.WriteLenPrefixed(entry.Bytes())

	want := []byte{0x0A, 0x04, 0x08, 0x01, 0x10, 0x02}
	require.Equal(t, want, w.Bytes())
}

func TestWriterRawPassthrough(t *testing.T) {
	w := wire.NewWriter(nil)
	w.WriteRaw([]byte{0xAA, 0xBB})
	require.Equal(t, []byte{0xAA, 0xBB}, w.Bytes())
}
