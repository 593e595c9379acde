package wire

import (
	"unicode/utf8"

	"github.com/colwire/chcol/chcolerr"
)

// ReadString reads a varint length prefix followed by that many raw
// bytes and returns them borrowed from data — no UTF-8 validation or
// NUL handling, per spec §4.1 ("strings need not be valid UTF-8 and must
// be exposed as opaque byte views").
func ReadString(data []byte) ([]byte, int, error) {
	length, lenBytes, err := ReadUvarint(data)
	if err != nil {
		return nil, 0, err
	}

	if length > uint64(len(data)-lenBytes) {
		return nil, 0, chcolerr.At(lenBytes, chcolerr.ErrInvalidLength)
	}

	n := lenBytes + int(length)

	return data[lenBytes:n], n, nil
}

// ReadFixedString reads exactly n bytes verbatim, trailing NULs included.
func ReadFixedString(data []byte, n int) ([]byte, int, error) {
	if len(data) < n {
		return nil, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	return data[:n], n, nil
}

// ValidUTF8 reports whether b is well-formed UTF-8. Used only when
// strict_utf8 is requested; decode itself never validates string
// contents, per spec §4.3's "InvalidUtf8 only when a consumer requests
// string-typed conversion".
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
