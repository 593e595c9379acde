package wire

import (
	"encoding/binary"
	"math/big"

	"github.com/colwire/chcol/chcolerr"
)

// ReadUint8 reads one unsigned byte.
func ReadUint8(data []byte) (uint8, int, error) {
	if len(data) < 1 {
		return 0, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	return data[0], 1, nil
}

// ReadInt8 reads one signed byte.
func ReadInt8(data []byte) (int8, int, error) {
	v, n, err := ReadUint8(data)
	return int8(v), n, err
}

// ReadUint16 reads a little-endian uint16.
func ReadUint16(data []byte) (uint16, int, error) {
	if len(data) < 2 {
		return 0, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	return binary.LittleEndian.Uint16(data), 2, nil
}

// ReadInt16 reads a little-endian int16.
func ReadInt16(data []byte) (int16, int, error) {
	v, n, err := ReadUint16(data)
	return int16(v), n, err
}

// ReadUint32 reads a little-endian uint32.
func ReadUint32(data []byte) (uint32, int, error) {
	if len(data) < 4 {
		return 0, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	return binary.LittleEndian.Uint32(data), 4, nil
}

// ReadInt32 reads a little-endian int32.
func ReadInt32(data []byte) (int32, int, error) {
	v, n, err := ReadUint32(data)
	return int32(v), n, err
}

// ReadUint64 reads a little-endian uint64.
func ReadUint64(data []byte) (uint64, int, error) {
	if len(data) < 8 {
		return 0, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	return binary.LittleEndian.Uint64(data), 8, nil
}

// ReadInt64 reads a little-endian int64.
func ReadInt64(data []byte) (int64, int, error) {
	v, n, err := ReadUint64(data)
	return int64(v), n, err
}

// readWideUint reads width bytes little-endian and interprets them as an
// unsigned magnitude, used for 128- and 256-bit integers where Go has no
// native type.
func readWideUint(data []byte, width int) (*big.Int, int, error) {
	if len(data) < width {
		return nil, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	be := make([]byte, width)
	for i := 0; i < width; i++ {
		be[i] = data[width-1-i]
	}

	return new(big.Int).SetBytes(be), width, nil
}

// readWideInt reads width bytes little-endian two's complement and
// returns the signed value as a big.Int.
func readWideInt(data []byte, width int) (*big.Int, int, error) {
	u, n, err := readWideUint(data, width)
	if err != nil {
		return nil, 0, err
	}

	signBit := new(big.Int).Lsh(big.NewInt(1), uint(width*8-1))
	if u.Cmp(signBit) >= 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
		u.Sub(u, modulus)
	}

	return u, n, nil
}

// ReadUint128 reads a little-endian 128-bit unsigned integer.
func ReadUint128(data []byte) (*big.Int, int, error) { return readWideUint(data, 16) }

// ReadInt128 reads a little-endian 128-bit two's-complement signed integer.
func ReadInt128(data []byte) (*big.Int, int, error) { return readWideInt(data, 16) }

// ReadUint256 reads a little-endian 256-bit unsigned integer.
func ReadUint256(data []byte) (*big.Int, int, error) { return readWideUint(data, 32) }

// ReadInt256 reads a little-endian 256-bit two's-complement signed integer.
func ReadInt256(data []byte) (*big.Int, int, error) { return readWideInt(data, 32) }
