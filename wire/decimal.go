package wire

import "math/big"

// Decimal is a fixed-point value as stored on the wire: a two's-complement
// integer of the column's declared width paired with the column's scale.
// The represented value is Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int
}

// Float64 renders the decimal as a float64, accepting the usual precision
// loss for widths beyond what float64 can represent exactly.
func (d Decimal) Float64() float64 {
	f := new(big.Float).SetInt(d.Unscaled)
	if d.Scale > 0 {
		div := new(big.Float).SetInt(pow10Big(d.Scale))
		f.Quo(f, div)
	}
	v, _ := f.Float64()

	return v
}

// String renders the decimal in fixed-point notation without going
// through float64, so the result is exact for any width and scale.
func (d Decimal) String() string {
	if d.Scale <= 0 {
		return d.Unscaled.String()
	}

	neg := d.Unscaled.Sign() < 0
	abs := new(big.Int).Abs(d.Unscaled)
	s := abs.String()

	for len(s) <= d.Scale {
		s = "0" + s
	}

	intPart := s[:len(s)-d.Scale]
	fracPart := s[len(s)-d.Scale:]
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}

	return out
}

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ReadDecimal32 reads a 4-byte two's-complement integer at the given scale.
func ReadDecimal32(data []byte, scale int) (Decimal, int, error) {
	v, n, err := ReadInt32(data)
	if err != nil {
		return Decimal{}, 0, err
	}

	return Decimal{Unscaled: big.NewInt(int64(v)), Scale: scale}, n, nil
}

// ReadDecimal64 reads an 8-byte two's-complement integer at the given scale.
func ReadDecimal64(data []byte, scale int) (Decimal, int, error) {
	v, n, err := ReadInt64(data)
	if err != nil {
		return Decimal{}, 0, err
	}

	return Decimal{Unscaled: big.NewInt(v), Scale: scale}, n, nil
}

// ReadDecimal128 reads a 16-byte two's-complement integer at the given scale.
func ReadDecimal128(data []byte, scale int) (Decimal, int, error) {
	v, n, err := ReadInt128(data)
	if err != nil {
		return Decimal{}, 0, err
	}

	return Decimal{Unscaled: v, Scale: scale}, n, nil
}

// ReadDecimal256 reads a 32-byte two's-complement integer at the given scale.
func ReadDecimal256(data []byte, scale int) (Decimal, int, error) {
	v, n, err := ReadInt256(data)
	if err != nil {
		return Decimal{}, 0, err
	}

	return Decimal{Unscaled: v, Scale: scale}, n, nil
}
