// Package column decodes one column body for a given type-tree shape
// and row count into a typed Column value. Decoding is fully determined
// by the TypeTree; composite shapes recurse through Decode for their
// member types, mirroring how the type tree itself nests.
//
// Column is a tagged variant, not an interface: exactly one of its
// payload pointer fields is non-nil, selected by Type.Kind. This
// mirrors how the teacher's blob package keeps NumericBlob and
// TextBlob as plain structs decoded in staged passes
// (parseHeader -> parsePayloads -> parseIndexEntries) rather than
// behind a decoder interface hierarchy.
package column
