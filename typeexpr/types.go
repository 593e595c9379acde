// Package typeexpr parses the textual type descriptions that accompany
// every column in a block ("Array(Nullable(LowCardinality(String)))",
// "Decimal64(6)", "Enum8('Red'=1,'Blue'=-2)", ...) into a tagged TypeTree.
// The parser is pure: no I/O, no dependency on the bytes the type
// eventually describes.
package typeexpr

// Kind tags the shape of a TypeTree node.
type Kind string

const (
	KindInt8    Kind = "Int8"
	KindInt16   Kind = "Int16"
	KindInt32   Kind = "Int32"
	KindInt64   Kind = "Int64"
	KindInt128  Kind = "Int128"
	KindInt256  Kind = "Int256"
	KindUInt8   Kind = "UInt8"
	KindUInt16  Kind = "UInt16"
	KindUInt32  Kind = "UInt32"
	KindUInt64  Kind = "UInt64"
	KindUInt128 Kind = "UInt128"
	KindUInt256 Kind = "UInt256"

	KindFloat16   Kind = "Float16"
	KindBFloat16  Kind = "BFloat16"
	KindFloat32   Kind = "Float32"
	KindFloat64   Kind = "Float64"

	KindDecimal32  Kind = "Decimal32"
	KindDecimal64  Kind = "Decimal64"
	KindDecimal128 Kind = "Decimal128"
	KindDecimal256 Kind = "Decimal256"

	KindString      Kind = "String"
	KindFixedString Kind = "FixedString"
	KindBool        Kind = "Bool"
	KindUUID        Kind = "UUID"
	KindIPv4        Kind = "IPv4"
	KindIPv6        Kind = "IPv6"

	KindDate       Kind = "Date"
	KindDate32     Kind = "Date32"
	KindTime       Kind = "Time"
	KindDateTime   Kind = "DateTime"
	KindDateTime64 Kind = "DateTime64"

	KindEnum8  Kind = "Enum8"
	KindEnum16 Kind = "Enum16"

	KindJSON    Kind = "JSON"
	KindNothing Kind = "Nothing"

	KindNullable      Kind = "Nullable"
	KindLowCardinality Kind = "LowCardinality"
	KindArray         Kind = "Array"
	KindTuple         Kind = "Tuple"
	KindMap           Kind = "Map"
	KindNested        Kind = "Nested"
	KindVariant       Kind = "Variant"
	KindDynamic       Kind = "Dynamic"
)

// EnumEntry is one name=value pair of an Enum8/Enum16 declaration.
type EnumEntry struct {
	Name  string
	Value int32
}

// Field is one named member of a Tuple or Nested declaration.
type Field struct {
	Name string
	Type TypeTree
}

// TypeTree is a tagged tree describing one column's type. Only the
// fields relevant to Kind are populated; the rest are zero values.
type TypeTree struct {
	Kind Kind

	// Inner is the wrapped type for Nullable, LowCardinality, Array.
	Inner *TypeTree

	// Key and Value are Map's type parameters.
	Key   *TypeTree
	Value *TypeTree

	// Elems holds Tuple's unnamed members and Variant's alternatives,
	// in declared order.
	Elems []TypeTree

	// Fields holds Tuple's named members (when present) and Nested's
	// members, in declared order.
	Fields []Field

	// Width is FixedString(n)'s byte count.
	Width int

	// Scale is Decimal's fractional digit count, Time/DateTime64's
	// tick scale (ticks = 10^-Scale seconds).
	Scale int

	// TZ is DateTime/DateTime64's optional IANA timezone name.
	TZ string

	// Enum holds Enum8/Enum16's name=value pairs in declared order.
	Enum []EnumEntry
}
