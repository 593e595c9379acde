// Package frame peels the optional per-frame compression envelope that
// wraps a block when it arrives over the database's native TCP protocol:
// a 16-byte checksum, a 1-byte compression method, two 4-byte size
// fields, and the (possibly compressed) block payload. The frame
// envelope is a decode-only, no-I/O concern, and is used only when the
// caller opts in (chcol.WithExpectFramed); a caller handed raw
// block bytes skips this package entirely.
package frame

import (
	"encoding/binary"
	"unsafe"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/compress"
	"github.com/colwire/chcol/format"
	"github.com/colwire/chcol/internal/hash"
)

const (
	checksumSize = 16
	headerSize   = 1 + 4 + 4 // method + compressed_size + uncompressed_size
	envelopeSize = checksumSize + headerSize
)

func codecFor(method format.CompressionType) (compress.Codec, error) {
	switch method {
	case format.CompressionNone:
		return compress.NewNoOpCompressor(), nil
	case format.CompressionLZ4:
		return compress.NewLZ4Compressor(), nil
	case format.CompressionZstd:
		return compress.NewZstdCompressor(), nil
	case format.CompressionS2:
		return compress.NewS2Compressor(), nil
	default:
		return nil, chcolerr.ErrInvalidFrameMethod
	}
}

// Checksum computes the frame integrity digest over header+payload. The
// reference server uses CityHash128 here; nothing in the retrieval pack
// implements CityHash, so this substitutes hash.ID (xxhash.Sum64) doubled
// into 16 bytes, serving the same structural role (corruption detection
// ahead of decompression) rather than protocol-accurate verification.
func Checksum(headerAndPayload []byte) [16]byte {
	h := hash.ID(unsafe.String(unsafe.SliceData(headerAndPayload), len(headerAndPayload)))

	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], h)
	binary.LittleEndian.PutUint64(out[8:16], h)

	return out
}

// Unwrap peels exactly one compressed-block frame off the front of data,
// verifying its checksum and decompressing its payload, and returns the
// decompressed block bytes plus whatever bytes follow the frame.
func Unwrap(data []byte) (payload []byte, rest []byte, err error) {
	if len(data) < envelopeSize {
		return nil, nil, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	var wantChecksum [16]byte
	copy(wantChecksum[:], data[:checksumSize])

	header := data[checksumSize : checksumSize+headerSize]
	method := format.CompressionType(header[0])
	compressedSize := binary.LittleEndian.Uint32(header[1:5])
	uncompressedSize := binary.LittleEndian.Uint32(header[5:9])

	if compressedSize < headerSize {
		return nil, nil, chcolerr.At(checksumSize, chcolerr.ErrInvalidLength)
	}
	bodyLen := int(compressedSize) - headerSize

	frameEnd := checksumSize + int(compressedSize)
	if len(data) < frameEnd {
		return nil, nil, chcolerr.At(checksumSize, chcolerr.ErrTruncatedInput)
	}
	if bodyLen > len(data)-(checksumSize+headerSize) {
		return nil, nil, chcolerr.At(checksumSize, chcolerr.ErrInvalidLength)
	}

	body := data[checksumSize+headerSize : frameEnd]

	gotChecksum := Checksum(data[checksumSize:frameEnd])
	if gotChecksum != wantChecksum {
		return nil, nil, chcolerr.At(0, chcolerr.ErrInvalidChecksum)
	}

	codec, err := codecFor(method)
	if err != nil {
		return nil, nil, chcolerr.At(checksumSize, err)
	}

	decoded, err := codec.Decompress(body)
	if err != nil {
		return nil, nil, chcolerr.At(checksumSize+headerSize, err)
	}
	if method != format.CompressionNone && uint32(len(decoded)) != uncompressedSize {
		return nil, nil, chcolerr.At(checksumSize+headerSize, chcolerr.ErrInvalidLength)
	}

	return decoded, data[frameEnd:], nil
}
