package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/wire"
)

func TestFixed32RoundTrip(t *testing.T) {
	buf := wire.AppendFixed32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	v, n := wire.ConsumeFixed32(buf)
	require.Equal(t, 4, n)
	require.Equal(t, uint32(0x01020304), v)
}

func TestFixed64RoundTrip(t *testing.T) {
	buf := wire.AppendFixed64(nil, 0x0102030405060708)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf)
	v, n := wire.ConsumeFixed64(buf)
	require.Equal(t, 8, n)
	require.Equal(t, uint64(0x0102030405060708), v)
}

func TestFixed32Truncated(t *testing.T) {
	_, n := wire.ConsumeFixed32([]byte{0x01, 0x02})
	require.Equal(t, 0, n)
}

func TestFloatBits(t *testing.T) {
	require.Equal(t, float32(1.5), wire.Float32FromBits(wire.Float32ToBits(1.5)))
	require.Equal(t, float64(2.25), wire.Float64FromBits(wire.Float64ToBits(2.25)))
}
