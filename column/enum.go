package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// EnumColumn is Enum8/Enum16: one raw signed value per row, projected
// against the TypeTree's declared name=value entries.
type EnumColumn struct {
	Values []int32
}

func decodeEnum(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*EnumColumn, error) {
	width := 1
	if tt.Kind == typeexpr.KindEnum16 {
		width = 2
	}

	raw, err := cur.Take(rows * width)
	if err != nil {
		return nil, err
	}

	values := make([]int32, rows)
	for i := 0; i < rows; i++ {
		chunk := raw[i*width : (i+1)*width]
		if width == 1 {
			v, _, _ := wire.ReadInt8(chunk)
			values[i] = int32(v)
		} else {
			v, _, _ := wire.ReadInt16(chunk)
			values[i] = int32(v)
		}
	}

	for _, v := range values {
		if !enumHasValue(tt, v) {
			return nil, chcolerr.At(cur.Pos(), chcolerr.ErrInvalidEnumValue)
		}
	}

	return &EnumColumn{Values: values}, nil
}

func enumHasValue(tt typeexpr.TypeTree, v int32) bool {
	for _, e := range tt.Enum {
		if e.Value == v {
			return true
		}
	}

	return false
}

// EnumName projects a decoded enum value back to its declared name.
func EnumName(tt typeexpr.TypeTree, v int32) (string, bool) {
	for _, e := range tt.Enum {
		if e.Value == v {
			return e.Name, true
		}
	}

	return "", false
}
