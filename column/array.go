package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// ArrayColumn is Array(T): row_count cumulative u64 offsets (a virtual
// offsets[-1] = 0) followed by the inner T column of length
// offsets[row_count-1]. Map(K,V) decodes identically with T = Tuple(K,V).
type ArrayColumn struct {
	Offsets []uint64
	Inner   *Column
}

// Slice returns the inner-column row range [start, end) for row i,
// treating a virtual offsets[-1] = 0.
func (a *ArrayColumn) Slice(i int) (start, end uint64) {
	if i > 0 {
		start = a.Offsets[i-1]
	}
	end = a.Offsets[i]

	return start, end
}

func decodeArray(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*ArrayColumn, error) {
	offsets := make([]uint64, rows)

	var prev uint64
	for i := 0; i < rows; i++ {
		b, err := cur.Take(8)
		if err != nil {
			return nil, err
		}
		v, _, err := wire.ReadUint64(b)
		if err != nil {
			return nil, err
		}
		if v < prev {
			return nil, chcolerr.At(cur.Pos(), chcolerr.ErrOffsetNotMonotonic)
		}
		offsets[i] = v
		prev = v
	}

	innerRows := 0
	if rows > 0 {
		innerRows = int(offsets[rows-1])
	}

	inner, err := decode(*tt.Inner, innerRows, cur, opt)
	if err != nil {
		return nil, err
	}

	return &ArrayColumn{Offsets: offsets, Inner: inner}, nil
}
