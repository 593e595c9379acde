package wire

import (
	"net/netip"

	"github.com/colwire/chcol/chcolerr"
)

// ReadIPv4 reads 4 bytes little-endian (the packed address with byte
// order reversed relative to dotted notation, per spec §4.1) and
// returns the address in its normal dotted byte order.
func ReadIPv4(data []byte) (netip.Addr, int, error) {
	if len(data) < 4 {
		return netip.Addr{}, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	var a4 [4]byte
	a4[0], a4[1], a4[2], a4[3] = data[3], data[2], data[1], data[0]

	return netip.AddrFrom4(a4), 4, nil
}

// ReadIPv6 reads 16 bytes in network order.
func ReadIPv6(data []byte) (netip.Addr, int, error) {
	if len(data) < 16 {
		return netip.Addr{}, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	var a16 [16]byte
	copy(a16[:], data[:16])

	return netip.AddrFrom16(a16), 16, nil
}
