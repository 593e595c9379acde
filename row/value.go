// Package row projects a decoded block's column-major storage back into
// row-major values: a single View per row index, and a tagged Value
// union per cell. It depends on column but never the reverse, so
// row.Value is built by reading column.Column's payload fields
// directly rather than column exposing any row-shaped type of its own.
package row

import (
	"math/big"
	"net/netip"
	"time"

	"github.com/colwire/chcol/column"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// Value is one projected cell. Kind selects which field, if any, is
// meaningful; Null indicates the projected cell had no value
// (Nullable's inner value on absent, or LowCardinality's reserved null
// dictionary slot).
type Value struct {
	Kind typeexpr.Kind
	Null bool

	Int64   int64
	UInt64  uint64
	Float64 float64
	Bool    bool
	Bytes   []byte
	Big     *big.Int
	Decimal wire.Decimal
	Time    time.Time
	Clock   time.Duration
	UUID    wire.UUID
	IP      netip.Addr

	EnumName string
	EnumRaw  int32

	Array *ArrayView
	Tuple []Value

	Paths map[string]Value // Json: path -> projected value
}

// ArrayView is a lazily-projected slice view over one row of an
// Array(T)/Map(K,V)/Nested(f...) column: Len is O(1), At is O(1) for a
// fixed-width T; for a composite T, At costs whatever projecting one
// element of T costs (a Variant element scans the discriminators before
// it).
type ArrayView struct {
	inner      *column.Column
	start, end int
}

// Len returns the number of elements in this row's array.
func (a ArrayView) Len() int {
	return a.end - a.start
}

// At projects element i (0-indexed within this row's array).
func (a ArrayView) At(i int) Value {
	return Project(a.inner, a.start+i)
}

// Project builds the row-th Value out of col, recursing through
// composite shapes exactly as the column's Type.Kind dictates.
func Project(col *column.Column, idx int) Value {
	switch col.Type.Kind {
	case typeexpr.KindNullable:
		if col.Nullable.Null[idx] {
			return Value{Kind: col.Nullable.Inner.Type.Kind, Null: true}
		}

		return Project(col.Nullable.Inner, idx)

	case typeexpr.KindArray, typeexpr.KindNested, typeexpr.KindMap:
		a := col.Array

		var start uint64
		if idx > 0 {
			start = a.Offsets[idx-1]
		}
		end := a.Offsets[idx]

		return Value{
			Kind:  col.Type.Kind,
			Array: &ArrayView{inner: a.Inner, start: int(start), end: int(end)},
		}

	case typeexpr.KindTuple:
		elems := make([]Value, len(col.Tuple.Elems))
		for i, e := range col.Tuple.Elems {
			elems[i] = Project(e, idx)
		}

		return Value{Kind: typeexpr.KindTuple, Tuple: elems}

	case typeexpr.KindLowCardinality:
		lc := col.LowCard
		dictIdx := int(lc.Indices[idx])
		if lc.Nullable && dictIdx == 0 {
			return Value{Kind: lc.Dict.Type.Kind, Null: true}
		}

		return Project(lc.Dict, dictIdx)

	case typeexpr.KindVariant:
		return projectVariant(col.Variant, idx)

	case typeexpr.KindDynamic:
		return projectVariant(col.Dynamic.Variant, idx)

	case typeexpr.KindJSON:
		return projectJSON(col.JSON, idx)

	case typeexpr.KindEnum8, typeexpr.KindEnum16:
		raw := col.Enum.Values[idx]
		name, _ := column.EnumName(col.Type, raw)

		return Value{Kind: col.Type.Kind, EnumRaw: raw, EnumName: name}

	case typeexpr.KindString, typeexpr.KindFixedString:
		return Value{Kind: col.Type.Kind, Bytes: col.Bytes.Values[idx]}

	case typeexpr.KindNothing:
		return Value{Kind: typeexpr.KindNothing, Null: true}

	default:
		return projectScalar(col, idx)
	}
}

func projectVariant(v *column.VariantColumn, idx int) Value {
	disc := v.Discriminators[idx]
	if disc == variantNullDiscriminator {
		return Value{Kind: typeexpr.KindVariant, Null: true}
	}

	sub := 0
	for _, d := range v.Discriminators[:idx] {
		if d == disc {
			sub++
		}
	}

	return Project(v.Alternatives[disc], sub)
}

const variantNullDiscriminator = 0xFF

func projectJSON(j *column.JSONColumn, idx int) Value {
	paths := make(map[string]Value, len(j.DynamicPaths)+len(j.TypedPaths))
	for _, p := range j.DynamicPaths {
		paths[p.Path] = projectVariant(p.Column.Variant, idx)
	}
	for _, p := range j.TypedPaths {
		paths[p.Path] = Project(p.Column, idx)
	}

	return Value{Kind: typeexpr.KindJSON, Paths: paths}
}

func projectScalar(col *column.Column, idx int) Value {
	sc := col.Scalar
	kind := col.Type.Kind
	v := Value{Kind: kind}

	switch kind {
	case typeexpr.KindInt8:
		v.Int64 = int64(sc.Int8[idx])
	case typeexpr.KindInt16:
		v.Int64 = int64(sc.Int16[idx])
	case typeexpr.KindInt32:
		v.Int64 = int64(sc.Int32[idx])
	case typeexpr.KindInt64:
		v.Int64 = sc.Int64[idx]
	case typeexpr.KindUInt8:
		v.UInt64 = uint64(sc.UInt8[idx])
	case typeexpr.KindUInt16:
		v.UInt64 = uint64(sc.UInt16[idx])
	case typeexpr.KindUInt32:
		v.UInt64 = uint64(sc.UInt32[idx])
	case typeexpr.KindUInt64:
		v.UInt64 = sc.UInt64[idx]
	case typeexpr.KindInt128:
		v.Big = sc.Int128[idx]
	case typeexpr.KindInt256:
		v.Big = sc.Int256[idx]
	case typeexpr.KindUInt128:
		v.Big = sc.UInt128[idx]
	case typeexpr.KindUInt256:
		v.Big = sc.UInt256[idx]
	case typeexpr.KindFloat16, typeexpr.KindBFloat16, typeexpr.KindFloat32:
		v.Float64 = float64(sc.Float32[idx])
	case typeexpr.KindFloat64:
		v.Float64 = sc.Float64[idx]
	case typeexpr.KindBool:
		v.Bool = sc.Bool[idx]
	case typeexpr.KindDecimal32, typeexpr.KindDecimal64, typeexpr.KindDecimal128, typeexpr.KindDecimal256:
		v.Decimal = sc.Decimal[idx]
	case typeexpr.KindDate, typeexpr.KindDate32, typeexpr.KindDateTime, typeexpr.KindDateTime64:
		v.Time = sc.Time[idx]
	case typeexpr.KindTime:
		v.Clock = sc.Clock[idx]
	case typeexpr.KindUUID:
		v.UUID = sc.UUID[idx]
	case typeexpr.KindIPv4, typeexpr.KindIPv6:
		v.IP = sc.IP[idx]
	}

	return v
}
