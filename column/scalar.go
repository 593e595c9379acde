package column

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"net/netip"
	"time"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// ScalarColumn holds row_count contiguous fixed-width values. Exactly
// one slice field is populated, selected by the owning Column's
// Type.Kind. Plain numeric slices (Int8..Int64, UInt8..UInt64,
// Float32, Float64) borrow directly from the input when the host's
// native byte order is little-endian and copy_on_decode was not
// requested; every other shape (128/256-bit integers, decimals, dates,
// UUIDs, IPs, bools) is materialised into a freshly allocated typed
// slice because the wire layout doesn't match Go's in-memory
// representation for those types.
type ScalarColumn struct {
	Int8    []int8
	Int16   []int16
	Int32   []int32
	Int64   []int64
	UInt8   []uint8
	UInt16  []uint16
	UInt32  []uint32
	UInt64  []uint64
	Int128  []*big.Int
	Int256  []*big.Int
	UInt128 []*big.Int
	UInt256 []*big.Int
	Float32 []float32 // also holds widened Float16/BFloat16 values
	Float64 []float64
	Bool    []bool
	Decimal []wire.Decimal
	Time    []time.Time     // Date, Date32, DateTime, DateTime64
	Clock   []time.Duration // Time(p): ticks since midnight
	UUID    []wire.UUID
	IP      []netip.Addr // IPv4 or IPv6, per the owning Column's Type.Kind
}

func scalarWidth(kind typeexpr.Kind) int {
	switch kind {
	case typeexpr.KindInt8, typeexpr.KindUInt8, typeexpr.KindBool:
		return 1
	case typeexpr.KindInt16, typeexpr.KindUInt16, typeexpr.KindFloat16, typeexpr.KindBFloat16:
		return 2
	case typeexpr.KindInt32, typeexpr.KindUInt32, typeexpr.KindFloat32,
		typeexpr.KindDate32, typeexpr.KindDateTime, typeexpr.KindTime, typeexpr.KindIPv4:
		return 4
	case typeexpr.KindInt64, typeexpr.KindUInt64, typeexpr.KindFloat64, typeexpr.KindDateTime64:
		return 8
	case typeexpr.KindDate:
		return 2
	case typeexpr.KindInt128, typeexpr.KindUInt128, typeexpr.KindUUID, typeexpr.KindIPv6:
		return 16
	case typeexpr.KindInt256, typeexpr.KindUInt256:
		return 32
	case typeexpr.KindDecimal32:
		return 4
	case typeexpr.KindDecimal64:
		return 8
	case typeexpr.KindDecimal128:
		return 16
	case typeexpr.KindDecimal256:
		return 32
	default:
		return 0
	}
}

func decodeScalar(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*ScalarColumn, error) {
	width := scalarWidth(tt.Kind)
	if width == 0 {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrUnsupportedType)
	}

	raw, err := cur.Take(rows * width)
	if err != nil {
		return nil, err
	}

	sc := &ScalarColumn{}

	switch tt.Kind {
	case typeexpr.KindInt8:
		sc.Int8 = materializeReinterpret[int8](raw, opt)
	case typeexpr.KindUInt8:
		sc.UInt8 = materializeReinterpret[uint8](raw, opt)
	case typeexpr.KindBool:
		sc.Bool = decodeBools(raw)
	case typeexpr.KindInt16:
		sc.Int16 = materializeReinterpret[int16](raw, opt)
	case typeexpr.KindUInt16:
		sc.UInt16 = materializeReinterpret[uint16](raw, opt)
	case typeexpr.KindInt32:
		sc.Int32 = materializeReinterpret[int32](raw, opt)
	case typeexpr.KindUInt32:
		sc.UInt32 = materializeReinterpret[uint32](raw, opt)
	case typeexpr.KindInt64:
		sc.Int64 = materializeReinterpret[int64](raw, opt)
	case typeexpr.KindUInt64:
		sc.UInt64 = materializeReinterpret[uint64](raw, opt)
	case typeexpr.KindFloat32:
		sc.Float32 = materializeReinterpret[float32](raw, opt)
	case typeexpr.KindFloat64:
		sc.Float64 = materializeReinterpret[float64](raw, opt)
	case typeexpr.KindFloat16:
		vals := make([]float32, rows)
		for i := 0; i < rows; i++ {
			v, _, err := wire.ReadFloat16(raw[i*2:])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		sc.Float32 = vals
	case typeexpr.KindBFloat16:
		vals := make([]float32, rows)
		for i := 0; i < rows; i++ {
			v, _, err := wire.ReadBFloat16(raw[i*2:])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		sc.Float32 = vals
	case typeexpr.KindInt128:
		sc.Int128, err = decodeBigInts(raw, rows, 16, true)
	case typeexpr.KindUInt128:
		sc.UInt128, err = decodeBigInts(raw, rows, 16, false)
	case typeexpr.KindInt256:
		sc.Int256, err = decodeBigInts(raw, rows, 32, true)
	case typeexpr.KindUInt256:
		sc.UInt256, err = decodeBigInts(raw, rows, 32, false)
	case typeexpr.KindDecimal32:
		sc.Decimal, err = decodeDecimals(raw, rows, 4, tt.Scale)
	case typeexpr.KindDecimal64:
		sc.Decimal, err = decodeDecimals(raw, rows, 8, tt.Scale)
	case typeexpr.KindDecimal128:
		sc.Decimal, err = decodeDecimals(raw, rows, 16, tt.Scale)
	case typeexpr.KindDecimal256:
		sc.Decimal, err = decodeDecimals(raw, rows, 32, tt.Scale)
	case typeexpr.KindDate:
		sc.Time, err = decodeDates(raw, rows, tt)
	case typeexpr.KindDate32:
		sc.Time, err = decodeDates(raw, rows, tt)
	case typeexpr.KindDateTime:
		sc.Time, err = decodeDates(raw, rows, tt)
	case typeexpr.KindDateTime64:
		sc.Time, err = decodeDates(raw, rows, tt)
	case typeexpr.KindTime:
		sc.Clock, err = decodeClocks(raw, rows, tt.Scale)
	case typeexpr.KindUUID:
		sc.UUID, err = decodeUUIDs(raw, rows)
	case typeexpr.KindIPv4:
		sc.IP, err = decodeIPv4s(raw, rows)
	case typeexpr.KindIPv6:
		sc.IP, err = decodeIPv6s(raw, rows)
	default:
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrUnsupportedType)
	}

	if err != nil {
		return nil, err
	}

	return sc, nil
}

// materializeReinterpret borrows a zero-copy view of raw when possible
// and copy_on_decode was not requested; otherwise it decodes into a
// freshly allocated slice.
func materializeReinterpret[T any](raw []byte, opt Config) []T {
	if !opt.CopyOnDecode {
		if v, ok := unsafeReinterpret[T](raw); ok {
			return v
		}
	}

	if v, ok := unsafeReinterpret[T](raw); ok {
		owned := make([]T, len(v))
		copy(owned, v)

		return owned
	}

	var zero T
	width := binary.Size(zero)
	if width <= 0 {
		return nil
	}
	owned := make([]T, len(raw)/width)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, owned); err != nil {
		return nil
	}

	return owned
}

func decodeBools(raw []byte) []bool {
	out := make([]bool, len(raw))
	for i, b := range raw {
		out[i] = b != 0
	}

	return out
}

func decodeBigInts(raw []byte, rows, width int, signed bool) ([]*big.Int, error) {
	out := make([]*big.Int, rows)
	for i := 0; i < rows; i++ {
		chunk := raw[i*width : (i+1)*width]

		var v *big.Int
		var n int
		var err error
		if signed {
			switch width {
			case 16:
				v, n, err = wire.ReadInt128(chunk)
			case 32:
				v, n, err = wire.ReadInt256(chunk)
			}
		} else {
			switch width {
			case 16:
				v, n, err = wire.ReadUint128(chunk)
			case 32:
				v, n, err = wire.ReadUint256(chunk)
			}
		}
		if err != nil {
			return nil, err
		}
		_ = n
		out[i] = v
	}

	return out, nil
}

func decodeDecimals(raw []byte, rows, width, scale int) ([]wire.Decimal, error) {
	out := make([]wire.Decimal, rows)
	for i := 0; i < rows; i++ {
		chunk := raw[i*width : (i+1)*width]

		var d wire.Decimal
		var err error
		switch width {
		case 4:
			d, _, err = wire.ReadDecimal32(chunk, scale)
		case 8:
			d, _, err = wire.ReadDecimal64(chunk, scale)
		case 16:
			d, _, err = wire.ReadDecimal128(chunk, scale)
		case 32:
			d, _, err = wire.ReadDecimal256(chunk, scale)
		}
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

func decodeDates(raw []byte, rows int, tt typeexpr.TypeTree) ([]time.Time, error) {
	var loc *time.Location
	if tt.TZ != "" {
		l, err := time.LoadLocation(tt.TZ)
		if err != nil {
			return nil, chcolerr.At(0, chcolerr.ErrInvalidType)
		}
		loc = l
	}

	out := make([]time.Time, rows)
	width := scalarWidth(tt.Kind)
	for i := 0; i < rows; i++ {
		chunk := raw[i*width : (i+1)*width]

		var v time.Time
		var err error
		switch tt.Kind {
		case typeexpr.KindDate:
			v, _, err = wire.ReadDate(chunk)
		case typeexpr.KindDate32:
			v, _, err = wire.ReadDate32(chunk)
		case typeexpr.KindDateTime:
			v, _, err = wire.ReadDateTime(chunk, loc)
		case typeexpr.KindDateTime64:
			v, _, err = wire.ReadDateTime64(chunk, tt.Scale, loc)
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func decodeClocks(raw []byte, rows, scale int) ([]time.Duration, error) {
	out := make([]time.Duration, rows)
	for i := 0; i < rows; i++ {
		v, _, err := wire.ReadTime(raw[i*4:], scale)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func decodeUUIDs(raw []byte, rows int) ([]wire.UUID, error) {
	out := make([]wire.UUID, rows)
	for i := 0; i < rows; i++ {
		v, _, err := wire.ReadUUID(raw[i*16:])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func decodeIPv4s(raw []byte, rows int) ([]netip.Addr, error) {
	out := make([]netip.Addr, rows)
	for i := 0; i < rows; i++ {
		v, _, err := wire.ReadIPv4(raw[i*4:])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func decodeIPv6s(raw []byte, rows int) ([]netip.Addr, error) {
	out := make([]netip.Addr, rows)
	for i := 0; i < rows; i++ {
		v, _, err := wire.ReadIPv6(raw[i*16:])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
