package wire

import (
	"math"
)

// ReadFloat32 reads a little-endian IEEE-754 binary32.
func ReadFloat32(data []byte) (float32, int, error) {
	bits, n, err := ReadUint32(data)
	if err != nil {
		return 0, 0, err
	}

	return math.Float32frombits(bits), n, nil
}

// ReadFloat64 reads a little-endian IEEE-754 binary64.
func ReadFloat64(data []byte) (float64, int, error) {
	bits, n, err := ReadUint64(data)
	if err != nil {
		return 0, 0, err
	}

	return math.Float64frombits(bits), n, nil
}

// ReadBFloat16 reads the 2-byte BFloat16 wire representation — the upper
// 16 bits of an IEEE-754 binary32, stored little-endian the same as any
// other 16-bit wire value — and widens it back to a float32 by shifting
// into the high half and zeroing the mantissa's low bits, per spec §9.
//
// Adapted from the bit-shuffling in
// ClickHouse-ch-go's ColBFloat16.DecodeColumn (which keeps the raw
// uint16 and only widens on access); this package widens eagerly since
// callers expect a plain float32 out of a primitive reader.
func ReadBFloat16(data []byte) (float32, int, error) {
	raw, n, err := ReadUint16(data)
	if err != nil {
		return 0, 0, err
	}

	return math.Float32frombits(uint32(raw) << 16), n, nil
}

// ReadFloat16 reads the 2-byte IEEE-754 binary16 ("half float") wire
// representation and widens it to float32.
func ReadFloat16(data []byte) (float32, int, error) {
	raw, n, err := ReadUint16(data)
	if err != nil {
		return 0, 0, err
	}

	return half2float32(raw), n, nil
}

// half2float32 widens an IEEE-754 binary16 bit pattern to a float32 bit
// pattern, handling subnormals, infinities, and NaN payloads.
func half2float32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h&0x7C00) >> 10
	frac := uint32(h & 0x03FF)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign)
		}
		// Subnormal half: normalize by shifting the fraction left until
		// the implicit leading bit appears, then rebias the exponent.
		e := -1
		for frac&0x0400 == 0 {
			frac <<= 1
			e++
		}
		frac &= 0x03FF
		bits := sign | uint32(112-e)<<23 | frac<<13

		return math.Float32frombits(bits)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}

		return math.Float32frombits(sign | 0x7F800000 | frac<<13)
	default:
		bits := sign | (exp+112)<<23 | frac<<13
		return math.Float32frombits(bits)
	}
}
