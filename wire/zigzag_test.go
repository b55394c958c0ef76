package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

func TestZigZag32RoundTrip(t *testing.T) {
	cases := []int32{0, -1, 1, -2, 2, 2147483647, -2147483648}
	for _, v := range cases {
		require.Equal(t, v, wire.DecodeZigZag32(wire.EncodeZigZag32(v)))
	}
}

func TestZigZag32KnownEncoding(t *testing.T) {
	// spec: 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4
	require.Equal(t, uint32(0), wire.EncodeZigZag32(0))
	require.Equal(t, uint32(1), wire.EncodeZigZag32(-1))
	require.Equal(t, uint32(2), wire.EncodeZigZag32(1))
	require.Equal(t, uint32(3), wire.EncodeZigZag32(-2))
	require.Equal(t, uint32(4), wire.EncodeZigZag32(2))
}

func TestZigZag64RoundTrip(t *testing.T) {
	cases := []int64{0, -1, 1, -2, 2, 9223372036854775807, -9223372036854775808}
	for _, v := range cases {
		require.Equal(t, v, wire.DecodeZigZag64(wire.EncodeZigZag64(v)))
	}
}
