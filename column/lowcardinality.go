package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// lowCardinalityKnownFlagBits is every flag bit this decoder recognises:
// has-additional-keys, needs-global-dictionary, non-null-sub-index, and
// the 8-bit index-type field in the low byte. Per spec §9's open
// question, unknown bits outside this mask are rejected rather than
// silently ignored.
const (
	lcFlagHasAdditionalKeys   = 1 << 9
	lcFlagNeedsGlobalDict     = 1 << 10
	lcFlagNonNullableSubIndex = 1 << 11
	lcKnownFlagMask           = 0xFF | lcFlagHasAdditionalKeys | lcFlagNeedsGlobalDict | lcFlagNonNullableSubIndex
)

// LowCardinalityColumn is LowCardinality(T): a dictionary of distinct
// values plus one index per row into that dictionary. When T is
// Nullable(U), dictionary slot 0 is the reserved null sentinel and
// Dict holds U's decoded values (the Nullable wrapper is stripped).
type LowCardinalityColumn struct {
	Nullable bool
	Dict     *Column
	Indices  []uint64
}

func decodeLowCardinality(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*LowCardinalityColumn, error) {
	valueType := *tt.Inner
	nullable := false
	if valueType.Kind == typeexpr.KindNullable {
		nullable = true
		valueType = *valueType.Inner
	}

	if !lowCardinalitySupports(valueType.Kind) {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrUnsupportedNesting)
	}

	flagsRaw, err := cur.Take(8)
	if err != nil {
		return nil, err
	}
	flags, _, err := wire.ReadUint64(flagsRaw)
	if err != nil {
		return nil, err
	}
	if flags&^uint64(lcKnownFlagMask) != 0 {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrUnsupportedNesting)
	}
	indexWidthCode := flags & 0xFF

	dictSizeRaw, err := cur.Take(8)
	if err != nil {
		return nil, err
	}
	dictSize, _, err := wire.ReadUint64(dictSizeRaw)
	if err != nil {
		return nil, err
	}

	dict, err := decode(valueType, int(dictSize), cur, opt)
	if err != nil {
		return nil, err
	}

	rowCountRaw, err := cur.Take(8)
	if err != nil {
		return nil, err
	}
	rowCount, _, err := wire.ReadUint64(rowCountRaw)
	if err != nil {
		return nil, err
	}
	if int(rowCount) != rows {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrVersionMismatch)
	}

	var indexWidth int
	switch indexWidthCode {
	case 0:
		indexWidth = 1
	case 1:
		indexWidth = 2
	case 2:
		indexWidth = 4
	case 3:
		indexWidth = 8
	default:
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrUnsupportedNesting)
	}

	indices := make([]uint64, rows)
	idxRaw, err := cur.Take(rows * indexWidth)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		chunk := idxRaw[i*indexWidth : (i+1)*indexWidth]

		var v uint64
		switch indexWidth {
		case 1:
			v = uint64(chunk[0])
		case 2:
			u, _, _ := wire.ReadUint16(chunk)
			v = uint64(u)
		case 4:
			u, _, _ := wire.ReadUint32(chunk)
			v = uint64(u)
		case 8:
			v, _, _ = wire.ReadUint64(chunk)
		}

		if v >= dictSize {
			return nil, chcolerr.At(cur.Pos(), chcolerr.ErrDictionaryOverflow)
		}
		indices[i] = v
	}

	return &LowCardinalityColumn{Nullable: nullable, Dict: dict, Indices: indices}, nil
}

func lowCardinalitySupports(kind typeexpr.Kind) bool {
	switch kind {
	case typeexpr.KindString, typeexpr.KindFixedString,
		typeexpr.KindInt8, typeexpr.KindInt16, typeexpr.KindInt32, typeexpr.KindInt64,
		typeexpr.KindInt128, typeexpr.KindInt256,
		typeexpr.KindUInt8, typeexpr.KindUInt16, typeexpr.KindUInt32, typeexpr.KindUInt64,
		typeexpr.KindUInt128, typeexpr.KindUInt256,
		typeexpr.KindFloat32, typeexpr.KindFloat64, typeexpr.KindFloat16, typeexpr.KindBFloat16,
		typeexpr.KindDate, typeexpr.KindDate32, typeexpr.KindDateTime, typeexpr.KindDateTime64,
		typeexpr.KindUUID:
		return true
	default:
		return false
	}
}
