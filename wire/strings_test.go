package wire

import (
	"testing"

	"github.com/colwire/chcol/chcolerr"
	"github.com/stretchr/testify/require"
)

func TestReadString_SpecScenario3(t *testing.T) {
	// spec §8 scenario 3: "hi" encoded as 0x02 'h' 'i'
	b, n, err := ReadString([]byte{0x02, 'h', 'i'})
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), b)
	require.Equal(t, 3, n)
}

func TestReadString_Empty(t *testing.T) {
	b, n, err := ReadString([]byte{0x00, 'x'})
	require.NoError(t, err)
	require.Equal(t, []byte{}, b)
	require.Equal(t, 1, n)
}

func TestReadString_LengthExceedsRemaining(t *testing.T) {
	_, _, err := ReadString([]byte{0x05, 'h', 'i'})
	require.Error(t, err)
	require.ErrorIs(t, err, chcolerr.ErrInvalidLength)
}

func TestReadFixedString(t *testing.T) {
	b, n, err := ReadFixedString([]byte{'a', 'b', 'c', 0, 0}, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{'a', 'b', 'c', 0, 0}, b)
	require.Equal(t, 5, n)
}

func TestReadFixedString_Truncated(t *testing.T) {
	_, _, err := ReadFixedString([]byte{'a'}, 3)
	require.Error(t, err)
	require.ErrorIs(t, err, chcolerr.ErrTruncatedInput)
}

func TestValidUTF8(t *testing.T) {
	require.True(t, ValidUTF8([]byte("hello")))
	require.False(t, ValidUTF8([]byte{0xFF, 0xFE}))
}
