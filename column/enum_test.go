package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// TestDecodeEnum_SpecScenario decodes Enum8('Red'=11,'Blue'=-23) over
// three rows ['Red','Blue','Red'] -> body 0B E9 0B.
func TestDecodeEnum_SpecScenario(t *testing.T) {
	body := []byte{0x0B, 0xE9, 0x0B}
	cur := wire.NewCursor(body)
	tt := typeexpr.TypeTree{
		Kind: typeexpr.KindEnum8,
		Enum: []typeexpr.EnumEntry{
			{Name: "Red", Value: 11},
			{Name: "Blue", Value: -23},
		},
	}

	col, err := decode(tt, 3, cur, NewConfig())
	require.NoError(t, err)
	require.Equal(t, len(body), cur.Pos())

	require.Equal(t, []int32{11, -23, 11}, col.Enum.Values)

	name, ok := EnumName(tt, col.Enum.Values[0])
	require.True(t, ok)
	require.Equal(t, "Red", name)

	name, ok = EnumName(tt, col.Enum.Values[1])
	require.True(t, ok)
	require.Equal(t, "Blue", name)
}

func TestDecodeEnum_UnknownValueRejected(t *testing.T) {
	body := []byte{0x63}
	cur := wire.NewCursor(body)
	tt := typeexpr.TypeTree{
		Kind: typeexpr.KindEnum8,
		Enum: []typeexpr.EnumEntry{{Name: "Red", Value: 11}},
	}

	_, err := decode(tt, 1, cur, NewConfig())
	require.ErrorIs(t, err, chcolerr.ErrInvalidEnumValue)
}
