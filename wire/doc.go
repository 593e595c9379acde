// Package wire implements the leaf-level primitive readers for the native
// columnar wire format: fixed-width integers, floats, decimals, the date
// family, UUID, IPv4/IPv6, unsigned-varint lengths, and length-prefixed
// strings.
//
// Every ReadXxx function consumes a prefix of its input and returns the
// parsed value plus the number of bytes consumed, following the same
// (value, bytesConsumed, error) shape the teacher's internal/encoding
// readers use for delta and Gorilla decoding. All multi-byte values are
// little-endian, per the format's §4.1 contract; Cursor exists purely to
// thread an offset through a decode pass for chcolerr's byte-offset error
// reporting, it has no framing of its own.
package wire
