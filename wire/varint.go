package wire

import "github.com/colwire/chcol/chcolerr"

// maxVarintBytes bounds a uvarint to 10 bytes (enough for any uint64),
// guarding against a corrupt stream spinning forever on an all-high-bit
// run.
const maxVarintBytes = 10

// ReadUvarint decodes an unsigned LEB128 varint (7 data bits per byte,
// continuation bit in the MSB) from the front of data. It returns the
// decoded value and the number of bytes consumed.
//
// This is the length/count encoding used throughout the format: every
// String length, Dynamic/Json member and path count, and block column/row
// count goes through this function. Array offsets are fixed 64-bit words
// and do not.
func ReadUvarint(data []byte) (uint64, int, error) {
	var result uint64
	var shift uint

	for i := 0; i < len(data) && i < maxVarintBytes; i++ {
		b := data[i]
		result |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return result, i + 1, nil
		}

		shift += 7
	}

	if len(data) < maxVarintBytes {
		return 0, 0, chcolerr.At(len(data), chcolerr.ErrTruncatedInput)
	}

	return 0, 0, chcolerr.At(maxVarintBytes, chcolerr.ErrInvalidLength)
}

// ReadZigzagVarint decodes a zigzag-encoded signed LEB128 varint: the
// same unsigned-varint bit layout as ReadUvarint, but the value is
// un-zigzagged afterwards (0,1,2,3,4,... -> 0,-1,1,-2,2,...). No decoder
// in this module calls it: Dynamic and Json structure versions are read
// as fixed 64-bit words, and every length and count uses the unsigned
// form above.
func ReadZigzagVarint(data []byte) (int64, int, error) {
	u, n, err := ReadUvarint(data)
	if err != nil {
		return 0, 0, err
	}

	return int64(u>>1) ^ -int64(u&1), n, nil
}
