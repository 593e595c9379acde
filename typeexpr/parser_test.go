package typeexpr

import (
	"testing"

	"github.com/colwire/chcol/chcolerr"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	cases := map[string]Kind{
		"Int8": KindInt8, "UInt64": KindUInt64, "Float64": KindFloat64,
		"BFloat16": KindBFloat16, "String": KindString, "Bool": KindBool,
		"UUID": KindUUID, "IPv4": KindIPv4, "IPv6": KindIPv6,
		"Date": KindDate, "Date32": KindDate32, "Nothing": KindNothing,
		"Dynamic": KindDynamic,
	}
	for expr, want := range cases {
		tt, err := Parse(expr)
		require.NoError(t, err, expr)
		require.Equal(t, want, tt.Kind, expr)
	}
}

func TestParse_FixedString(t *testing.T) {
	tt, err := Parse("FixedString(16)")
	require.NoError(t, err)
	require.Equal(t, KindFixedString, tt.Kind)
	require.Equal(t, 16, tt.Width)
}

func TestParse_DecimalSized(t *testing.T) {
	tt, err := Parse("Decimal64(6)")
	require.NoError(t, err)
	require.Equal(t, KindDecimal64, tt.Kind)
	require.Equal(t, 6, tt.Scale)
}

func TestParse_DecimalGeneric(t *testing.T) {
	cases := []struct {
		expr string
		kind Kind
	}{
		{"Decimal(5, 2)", KindDecimal32},
		{"Decimal(15, 2)", KindDecimal64},
		{"Decimal(30, 2)", KindDecimal128},
		{"Decimal(50, 2)", KindDecimal256},
	}
	for _, c := range cases {
		tt, err := Parse(c.expr)
		require.NoError(t, err, c.expr)
		require.Equal(t, c.kind, tt.Kind, c.expr)
		require.Equal(t, 2, tt.Scale)
	}
}

func TestParse_DateTime64WithTZ(t *testing.T) {
	tt, err := Parse("DateTime64(3, 'UTC')")
	require.NoError(t, err)
	require.Equal(t, KindDateTime64, tt.Kind)
	require.Equal(t, 3, tt.Scale)
	require.Equal(t, "UTC", tt.TZ)
}

func TestParse_DateTimeBare(t *testing.T) {
	tt, err := Parse("DateTime")
	require.NoError(t, err)
	require.Equal(t, KindDateTime, tt.Kind)
	require.Empty(t, tt.TZ)
}

func TestParse_Enum8_SpecScenario6(t *testing.T) {
	tt, err := Parse("Enum8('Red'=11,'Blue'=-23)")
	require.NoError(t, err)
	require.Equal(t, KindEnum8, tt.Kind)
	require.Equal(t, []EnumEntry{{Name: "Red", Value: 11}, {Name: "Blue", Value: -23}}, tt.Enum)
}

func TestParse_Enum8_OutOfRange(t *testing.T) {
	_, err := Parse("Enum8('X'=200)")
	require.ErrorIs(t, err, chcolerr.ErrInvalidEnumValue)
}

func TestParse_NestedComposite(t *testing.T) {
	tt, err := Parse("Array(Nullable(LowCardinality(String)))")
	require.NoError(t, err)
	require.Equal(t, KindArray, tt.Kind)
	require.Equal(t, KindNullable, tt.Inner.Kind)
	require.Equal(t, KindLowCardinality, tt.Inner.Inner.Kind)
	require.Equal(t, KindString, tt.Inner.Inner.Inner.Kind)
}

func TestParse_TupleUnnamed(t *testing.T) {
	tt, err := Parse("Tuple(String, UInt64)")
	require.NoError(t, err)
	require.Equal(t, KindTuple, tt.Kind)
	require.Len(t, tt.Elems, 2)
	require.Equal(t, KindString, tt.Elems[0].Kind)
	require.Equal(t, KindUInt64, tt.Elems[1].Kind)
}

func TestParse_TupleNamed(t *testing.T) {
	tt, err := Parse("Tuple(a UInt64, b String)")
	require.NoError(t, err)
	require.Len(t, tt.Fields, 2)
	require.Equal(t, "a", tt.Fields[0].Name)
	require.Equal(t, KindUInt64, tt.Fields[0].Type.Kind)
	require.Equal(t, "b", tt.Fields[1].Name)
	require.Equal(t, KindString, tt.Fields[1].Type.Kind)
}

func TestParse_Map(t *testing.T) {
	tt, err := Parse("Map(Int32, Nullable(LowCardinality(String)))")
	require.NoError(t, err)
	require.Equal(t, KindMap, tt.Kind)
	require.Equal(t, KindInt32, tt.Key.Kind)
	require.Equal(t, KindNullable, tt.Value.Kind)
}

func TestParse_Nested(t *testing.T) {
	tt, err := Parse("Nested(child_id UInt64, child_name String, scores Array(UInt32))")
	require.NoError(t, err)
	require.Equal(t, KindNested, tt.Kind)
	require.Len(t, tt.Fields, 3)
	require.Equal(t, "scores", tt.Fields[2].Name)
	require.Equal(t, KindArray, tt.Fields[2].Type.Kind)
}

func TestParse_Variant(t *testing.T) {
	tt, err := Parse("Variant(Array(UInt64), String, UInt64)")
	require.NoError(t, err)
	require.Equal(t, KindVariant, tt.Kind)
	require.Len(t, tt.Elems, 3)
	require.Equal(t, KindArray, tt.Elems[0].Kind)
}

func TestParse_GeoPoint(t *testing.T) {
	tt, err := Parse("Point")
	require.NoError(t, err)
	require.Equal(t, KindTuple, tt.Kind)
	require.Len(t, tt.Elems, 2)
	require.Equal(t, KindFloat64, tt.Elems[0].Kind)
}

func TestParse_GeoPolygon(t *testing.T) {
	tt, err := Parse("Polygon")
	require.NoError(t, err)
	require.Equal(t, KindArray, tt.Kind)       // Array(Ring)
	require.Equal(t, KindArray, tt.Inner.Kind) // Ring = Array(Point)
	require.Equal(t, KindTuple, tt.Inner.Inner.Kind)
}

func TestParse_UnknownConstructor(t *testing.T) {
	_, err := Parse("Frobnicate")
	require.ErrorIs(t, err, chcolerr.ErrInvalidType)
}

func TestParse_ArityMismatch(t *testing.T) {
	_, err := Parse("FixedString()")
	require.Error(t, err)
}

func TestParse_BacktickIdentifier(t *testing.T) {
	tt, err := Parse("Nested(`weird name` UInt64)")
	require.NoError(t, err)
	require.Equal(t, "weird name", tt.Fields[0].Name)
}

func TestParse_JSONWithHints(t *testing.T) {
	tt, err := Parse("JSON(max_dynamic_paths=100)")
	require.NoError(t, err)
	require.Equal(t, KindJSON, tt.Kind)
}

func TestParse_Idempotent(t *testing.T) {
	exprs := []string{
		"Int64",
		"Array(Nullable(LowCardinality(String)))",
		"Decimal64(6)",
		"DateTime64(3, 'UTC')",
		"Enum8('Red' = 11, 'Blue' = -23)",
		"Tuple(String, UInt64)",
		"Tuple(a UInt64, b String)",
		"Map(Int32, String)",
		"Nested(child_id UInt64, scores Array(UInt32))",
		"Variant(Array(UInt64), String, UInt64)",
		"Polygon",
	}
	for _, expr := range exprs {
		tt, err := Parse(expr)
		require.NoError(t, err, expr)

		reparsed, err := Parse(tt.String())
		require.NoError(t, err, tt.String())
		require.Equal(t, tt, reparsed, expr)
	}
}
