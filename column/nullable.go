package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// NullableColumn is Nullable(T): a null map (one byte per row, 1 =
// null) followed by T decoded for all rows, present and absent alike.
type NullableColumn struct {
	Null  []bool
	Inner *Column
}

func decodeNullable(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*NullableColumn, error) {
	nullMap, err := cur.Take(rows)
	if err != nil {
		return nil, err
	}

	null := make([]bool, rows)
	for i, b := range nullMap {
		if b > 1 {
			return nil, chcolerr.AtColumn(cur.Pos()-rows+i, "", chcolerr.ErrInvalidLength)
		}
		null[i] = b == 1
	}

	inner, err := decode(*tt.Inner, rows, cur, opt)
	if err != nil {
		return nil, err
	}

	return &NullableColumn{Null: null, Inner: inner}, nil
}
