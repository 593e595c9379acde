package column

import (
	"unsafe"

	"github.com/colwire/chcol/endian"
)

// unsafeReinterpret reinterprets data as a []T that borrows from data's
// backing array, avoiding a copy, when it is safe to do so: the native
// byte order must match the wire format's little-endian layout for any
// multi-byte T, and len(data) must be a multiple of sizeof(T).
//
// Adapted from the teacher's unsafeDecodeFloat64Slice (encoding/numeric_raw.go),
// generalised with Go generics over every fixed-width scalar Go type
// instead of hand-duplicating one cast function per width.
func unsafeReinterpret[T any](data []byte) (out []T, ok bool) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width == 0 {
		return nil, false
	}

	if width > 1 && !endian.IsNativeLittleEndian() {
		return nil, false
	}

	if len(data)%width != 0 {
		return nil, false
	}
	if len(data) == 0 {
		return []T{}, true
	}

	ptr := (*T)(unsafe.Pointer(&data[0]))

	return unsafe.Slice(ptr, len(data)/width), true
}
