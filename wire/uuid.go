package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/colwire/chcol/chcolerr"
)

// UUID is a 16-byte universally unique identifier as stored on the wire:
// two little-endian uint64 halves, high half first.
type UUID [16]byte

// ReadUUID reads 16 bytes laid out as two little-endian uint64 halves
// (high half first, per spec §4.1) and reassembles them into canonical
// big-endian UUID byte order.
func ReadUUID(data []byte) (UUID, int, error) {
	if len(data) < 16 {
		return UUID{}, 0, chcolerr.At(0, chcolerr.ErrTruncatedInput)
	}

	hi := binary.LittleEndian.Uint64(data[0:8])
	lo := binary.LittleEndian.Uint64(data[8:16])

	var out UUID
	binary.BigEndian.PutUint64(out[0:8], hi)
	binary.BigEndian.PutUint64(out[8:16], lo)

	return out, 16, nil
}

// String renders the UUID in canonical 8-4-4-4-12 hex form.
func (u UUID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
