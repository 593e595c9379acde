package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadUUID_CanonicalOrder(t *testing.T) {
	// high half (LE) = 0x0011223344556677, low half (LE) = 0x8899AABBCCDDEEFF
	data := []byte{
		0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00,
		0xFF, 0xEE, 0xDD, 0xCC, 0xBB, 0xAA, 0x99, 0x88,
	}
	u, n, err := ReadUUID(data)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, "00112233-4455-6677-8899-aabbccddeeff", u.String())
}

func TestReadUUID_Truncated(t *testing.T) {
	_, _, err := ReadUUID(make([]byte, 10))
	require.Error(t, err)
}
