package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadDecimal32_String(t *testing.T) {
	// 12345 at scale 2 -> 123.45
	d, n, err := ReadDecimal32([]byte{0x39, 0x30, 0x00, 0x00}, 2)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "123.45", d.String())
	require.InDelta(t, 123.45, d.Float64(), 1e-9)
}

func TestReadDecimal32_Negative(t *testing.T) {
	// -12345 at scale 2 -> -123.45
	d, _, err := ReadDecimal32([]byte{0xC7, 0xCF, 0xFF, 0xFF}, 2)
	require.NoError(t, err)
	require.Equal(t, "-123.45", d.String())
}

func TestReadDecimal64_ZeroScale(t *testing.T) {
	d, n, err := ReadDecimal64([]byte{0x2A, 0, 0, 0, 0, 0, 0, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, 8, n)
	require.Equal(t, "42", d.String())
}

func TestReadDecimal128_RoundTrip(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x01
	d, n, err := ReadDecimal128(data, 4)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, "0.0001", d.String())
}

func TestReadDecimal256_RoundTrip(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 0x64
	d, n, err := ReadDecimal256(data, 2)
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.Equal(t, "1.00", d.String())
}
