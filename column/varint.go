package column

import "github.com/colwire/chcol/wire"

// readUvarint reads a varint directly off the cursor, advancing past it.
func readUvarint(cur *wire.Cursor) (uint64, error) {
	v, n, err := wire.ReadUvarint(cur.Remaining())
	if err != nil {
		return 0, err
	}

	if err := cur.Advance(n); err != nil {
		return 0, err
	}

	return v, nil
}

// readLengthPrefixed reads a varint-length-prefixed byte string off the
// cursor, advancing past both the length and the payload.
func readLengthPrefixed(cur *wire.Cursor) ([]byte, error) {
	b, n, err := wire.ReadString(cur.Remaining())
	if err != nil {
		return nil, err
	}

	if err := cur.Advance(n); err != nil {
		return nil, err
	}

	return b, nil
}
