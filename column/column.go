// Package column decodes the per-column bodies of a block: the bytes
// following a column's name and type-expression string, given the row
// count declared by the block header.
//
// Polymorphism across column shapes is expressed as a tagged variant —
// one optional payload field per shape, selected by Type.Kind — rather
// than an interface with dynamic dispatch, mirroring the teacher's
// staged-struct decode (parseHeader / parsePayloads / parseIndexEntries
// all populating one concrete struct rather than reaching for
// polymorphic types).
package column

import (
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// Column is one decoded column body. Exactly one payload field is
// non-nil, selected by Type.Kind.
type Column struct {
	Type typeexpr.TypeTree
	Rows int

	Scalar   *ScalarColumn
	Bytes    *BytesColumn
	Nullable *NullableColumn
	Array    *ArrayColumn
	Tuple    *TupleColumn
	LowCard  *LowCardinalityColumn
	Variant  *VariantColumn
	Dynamic  *DynamicColumn
	JSON     *JSONColumn
	Enum     *EnumColumn
}

// Decode decodes rows worth of tt's column body starting at the
// cursor's current position, advancing the cursor past exactly the
// bytes tt's layout consumes.
func Decode(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*Column, error) {
	return decode(tt, rows, cur, opt)
}

func decode(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*Column, error) {
	col := &Column{Type: tt, Rows: rows}

	switch tt.Kind {
	case typeexpr.KindNothing:
		// Zero-width: no bytes are ever written for Nothing columns.

	case typeexpr.KindString, typeexpr.KindFixedString:
		bc, err := decodeBytes(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Bytes = bc

	case typeexpr.KindNullable:
		nc, err := decodeNullable(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Nullable = nc

	case typeexpr.KindArray:
		ac, err := decodeArray(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Array = ac

	case typeexpr.KindTuple:
		tc, err := decodeTuple(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Tuple = tc

	case typeexpr.KindNested:
		ac, err := decodeNested(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Array = ac

	case typeexpr.KindMap:
		ac, err := decodeMap(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Array = ac

	case typeexpr.KindLowCardinality:
		lc, err := decodeLowCardinality(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.LowCard = lc

	case typeexpr.KindVariant:
		vc, err := decodeVariant(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Variant = vc

	case typeexpr.KindDynamic:
		dc, err := decodeDynamic(rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Dynamic = dc

	case typeexpr.KindJSON:
		jc, err := decodeJSON(rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.JSON = jc

	case typeexpr.KindEnum8, typeexpr.KindEnum16:
		ec, err := decodeEnum(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Enum = ec

	default:
		sc, err := decodeScalar(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		col.Scalar = sc
	}

	return col, nil
}
