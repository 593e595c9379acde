package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/format"
)

func buildFrame(method format.CompressionType, body []byte, uncompressedSize uint32) []byte {
	header := make([]byte, headerSize)
	header[0] = byte(method)
	binary.LittleEndian.PutUint32(header[1:5], uint32(headerSize+len(body)))
	binary.LittleEndian.PutUint32(header[5:9], uncompressedSize)

	headerAndPayload := append(append([]byte{}, header...), body...)
	checksum := Checksum(headerAndPayload)

	return append(append([]byte{}, checksum[:]...), headerAndPayload...)
}

func TestUnwrap_NoneMethodRoundTrips(t *testing.T) {
	payload := []byte("hello block")
	data := buildFrame(format.CompressionNone, payload, uint32(len(payload)))

	out, rest, err := Unwrap(data)
	require.NoError(t, err)
	require.Equal(t, payload, out)
	require.Empty(t, rest)
}

func TestUnwrap_TrailingBytesPreserved(t *testing.T) {
	payload := []byte("abc")
	data := buildFrame(format.CompressionNone, payload, uint32(len(payload)))
	data = append(data, 0xAA, 0xBB)

	out, rest, err := Unwrap(data)
	require.NoError(t, err)
	require.Equal(t, payload, out)
	require.Equal(t, []byte{0xAA, 0xBB}, rest)
}

func TestUnwrap_BadChecksumRejected(t *testing.T) {
	payload := []byte("abc")
	data := buildFrame(format.CompressionNone, payload, uint32(len(payload)))
	data[0] ^= 0xFF

	_, _, err := Unwrap(data)
	require.ErrorIs(t, err, chcolerr.ErrInvalidChecksum)
}

func TestUnwrap_UnknownMethodRejected(t *testing.T) {
	payload := []byte("abc")
	data := buildFrame(format.CompressionType(0xFE), payload, uint32(len(payload)))

	_, _, err := Unwrap(data)
	require.ErrorIs(t, err, chcolerr.ErrInvalidFrameMethod)
}

func TestUnwrap_TruncatedRejected(t *testing.T) {
	_, _, err := Unwrap([]byte{0x01, 0x02})
	require.ErrorIs(t, err, chcolerr.ErrTruncatedInput)
}
