package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

func TestDecodeScalar_Int64SpecScenario(t *testing.T) {
	body := []byte{0x2A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	cur := wire.NewCursor(body)

	col, err := decode(typeexpr.TypeTree{Kind: typeexpr.KindInt64}, 1, cur, NewConfig())
	require.NoError(t, err)
	require.NotNil(t, col.Scalar)
	require.Equal(t, []int64{42}, col.Scalar.Int64)
	require.Equal(t, len(body), cur.Pos())
}

func TestDecodeScalar_CopyOnDecodeOwnsMemory(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03, 0x04}
	cur := wire.NewCursor(body)

	col, err := decode(typeexpr.TypeTree{Kind: typeexpr.KindUInt8}, 4, cur, NewConfig(WithCopyOnDecode(true)))
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3, 4}, col.Scalar.UInt8)

	body[0] = 0xFF
	require.Equal(t, uint8(1), col.Scalar.UInt8[0], "owned copy must not alias the mutated input")
}

func TestDecodeScalar_Nothing(t *testing.T) {
	cur := wire.NewCursor(nil)

	col, err := decode(typeexpr.TypeTree{Kind: typeexpr.KindNothing}, 5, cur, NewConfig())
	require.NoError(t, err)
	require.Nil(t, col.Scalar)
	require.Equal(t, 0, cur.Pos())
}

func TestDecodeScalar_Truncated(t *testing.T) {
	cur := wire.NewCursor([]byte{0x01, 0x02})

	_, err := decode(typeexpr.TypeTree{Kind: typeexpr.KindInt64}, 1, cur, NewConfig())
	require.Error(t, err)
}
