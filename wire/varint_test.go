package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 16384, 1 << 35, ^uint64(0)}
	for _, v := range cases {
		buf := wire.AppendVarint(nil, v)
		require.Equal(t, wire.SizeVarint(v), len(buf))
		got, n := wire.ConsumeVarint(buf)
		require.Equal(t, len(buf), n)
		require.Equal(t, v, got)
	}
}

func TestVarintKnownEncoding(t *testing.T) {
	// 150 = 0x96 0x01, the field-1 varint payload from spec scenario S1.
	buf := wire.AppendVarint(nil, 150)
	require.Equal(t, []byte{0x96, 0x01}, buf)
}

func TestConsumeVarintOverflow(t *testing.T) {
	// 10 bytes, all with the continuation bit set: no 11th byte can
	// terminate it, so this can never be a valid varint.
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, n := wire.ConsumeVarint(buf)
	require.Equal(t, 0, n)
}

func TestConsumeVarintTruncated(t *testing.T) {
	buf := []byte{0x96} // continuation bit set, no following byte
	_, n := wire.ConsumeVarint(buf)
	require.Equal(t, 0, n)
}
