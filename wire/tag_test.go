package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

func TestEncodeDecodeTag(t *testing.T) {
	tag := wire.EncodeTag(1, wire.VarintType)
	require.Equal(t, uint64(0x08), tag)
	num, typ := wire.DecodeTag(tag)
	require.Equal(t, int32(1), num)
	require.Equal(t, wire.VarintType, typ)
}

func TestEncodeTagLenField(t *testing.T) {
	// field 2, LEN: (2<<3)|2 = 0x12, matching spec scenario S1.
	require.Equal(t, uint64(0x12), wire.EncodeTag(2, wire.LenType))
}

func TestEncodeTagPackedField(t *testing.T) {
	// field 3, LEN (packed repeated scalars are always wire type LEN):
	// (3<<3)|2 = 0x1A, matching spec scenario S3.
	require.Equal(t, uint64(0x1A), wire.EncodeTag(3, wire.LenType))
}
