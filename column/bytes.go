package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/internal/pool"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// BytesColumn holds one opaque byte view per row for String and
// FixedString columns. Views borrow from the input unless
// copy_on_decode was requested.
type BytesColumn struct {
	// FixedWidth is n for FixedString(n), 0 for String.
	FixedWidth int
	Values     [][]byte
}

func decodeBytes(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*BytesColumn, error) {
	bc := &BytesColumn{Values: make([][]byte, rows)}
	if tt.Kind == typeexpr.KindFixedString {
		bc.FixedWidth = tt.Width
	}

	if !opt.CopyOnDecode {
		for i := 0; i < rows; i++ {
			b, err := readOneBytesRow(tt, cur, opt)
			if err != nil {
				return nil, err
			}
			bc.Values[i] = b
		}

		return bc, nil
	}

	// copy_on_decode: accumulate every row's bytes into one pooled
	// scratch buffer instead of allocating per row, then take one
	// exactly-sized owned copy and slice per-row views into it.
	bb := pool.GetColumnBuffer()
	bb.Reset()
	defer pool.PutColumnBuffer(bb)

	starts := make([]int, rows)
	ends := make([]int, rows)

	for i := 0; i < rows; i++ {
		b, err := readOneBytesRow(tt, cur, opt)
		if err != nil {
			return nil, err
		}

		starts[i] = bb.Len()
		bb.MustWrite(b)
		ends[i] = bb.Len()
	}

	owned := make([]byte, bb.Len())
	copy(owned, bb.Bytes())

	for i := 0; i < rows; i++ {
		bc.Values[i] = owned[starts[i]:ends[i]]
	}

	return bc, nil
}

// readOneBytesRow reads one String or FixedString row's bytes, borrowed
// from cur's backing array.
func readOneBytesRow(tt typeexpr.TypeTree, cur *wire.Cursor, opt Config) ([]byte, error) {
	if tt.Kind == typeexpr.KindFixedString {
		b, err := cur.Take(tt.Width)
		if err != nil {
			return nil, err
		}
		if opt.StrictUTF8 && !wire.ValidUTF8(b) {
			return nil, chcolerr.At(cur.Pos(), chcolerr.ErrInvalidUTF8)
		}

		return b, nil
	}

	b, n, err := wire.ReadString(cur.Remaining())
	if err != nil {
		return nil, chcolerr.At(cur.Pos(), err)
	}
	if err := cur.Advance(n); err != nil {
		return nil, err
	}
	if opt.StrictUTF8 && !wire.ValidUTF8(b) {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrInvalidUTF8)
	}

	return b, nil
}
