package wire

import (
	"math/big"
	"testing"

	"github.com/colwire/chcol/chcolerr"
	"github.com/stretchr/testify/require"
)

func TestReadUint8(t *testing.T) {
	v, n, err := ReadUint8([]byte{0xFF})
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), v)
	require.Equal(t, 1, n)
}

func TestReadInt8_Negative(t *testing.T) {
	v, n, err := ReadInt8([]byte{0xFF})
	require.NoError(t, err)
	require.Equal(t, int8(-1), v)
	require.Equal(t, 1, n)
}

func TestReadUint16_LittleEndian(t *testing.T) {
	v, n, err := ReadUint16([]byte{0x34, 0x12})
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
	require.Equal(t, 2, n)
}

func TestReadInt32_Negative(t *testing.T) {
	v, n, err := ReadInt32([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
	require.Equal(t, 4, n)
}

func TestReadInt64_SpecScenario1(t *testing.T) {
	// spec §8 scenario 1: body 0x2A00000000000000 -> 42
	v, n, err := ReadInt64([]byte{0x2A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	require.Equal(t, int64(42), v)
	require.Equal(t, 8, n)
}

func TestReadUint64_Truncated(t *testing.T) {
	_, _, err := ReadUint64([]byte{1, 2, 3})
	require.Error(t, err)
	require.ErrorIs(t, err, chcolerr.ErrTruncatedInput)
}

func TestReadUint128(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x01
	data[15] = 0x80
	v, n, err := ReadUint128(data)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	want := new(big.Int).Lsh(big.NewInt(0x80), 15*8)
	want.Add(want, big.NewInt(1))
	require.Equal(t, 0, v.Cmp(want))
}

func TestReadInt128_Negative(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = 0xFF
	}
	v, n, err := ReadInt128(data)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, 0, v.Cmp(big.NewInt(-1)))
}

func TestReadUint256(t *testing.T) {
	data := make([]byte, 32)
	data[0] = 0x2A
	v, n, err := ReadUint256(data)
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.Equal(t, 0, v.Cmp(big.NewInt(42)))
}

func TestReadInt256_Negative(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = 0xFF
	}
	v, n, err := ReadInt256(data)
	require.NoError(t, err)
	require.Equal(t, 32, n)
	require.Equal(t, 0, v.Cmp(big.NewInt(-1)))
}

func TestReadUint128_Truncated(t *testing.T) {
	_, _, err := ReadUint128(make([]byte, 10))
	require.Error(t, err)
	require.ErrorIs(t, err, chcolerr.ErrTruncatedInput)
}
