package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// TestDecodeLowCardinality_SpecScenario decodes LowCardinality(String)
// three rows ["a","b","a"]: flags (index type u8 + the three named
// bits), dict size 2, dict ["a","b"], row count 3, indices 0,1,0.
func TestDecodeLowCardinality_SpecScenario(t *testing.T) {
	flags := uint64(0) | lcFlagHasAdditionalKeys | lcFlagNeedsGlobalDict | lcFlagNonNullableSubIndex

	var body []byte
	body = append(body, u64le(flags)...)
	body = append(body, u64le(2)...) // dict size
	body = append(body, 0x01, 'a')   // "a"
	body = append(body, 0x01, 'b')   // "b"
	body = append(body, u64le(3)...) // row count
	body = append(body, 0, 1, 0)     // indices

	cur := wire.NewCursor(body)
	tt := typeexpr.TypeTree{Kind: typeexpr.KindLowCardinality, Inner: &typeexpr.TypeTree{Kind: typeexpr.KindString}}

	col, err := decode(tt, 3, cur, NewConfig())
	require.NoError(t, err)
	require.Equal(t, len(body), cur.Pos())

	lc := col.LowCard
	require.False(t, lc.Nullable)
	require.Equal(t, []uint64{0, 1, 0}, lc.Indices)
	require.Equal(t, [][]byte{[]byte("a"), []byte("b")}, lc.Dict.Bytes.Values)
}

func TestDecodeLowCardinality_IndexOutOfRangeRejected(t *testing.T) {
	flags := uint64(lcFlagHasAdditionalKeys)

	var body []byte
	body = append(body, u64le(flags)...)
	body = append(body, u64le(1)...) // dict size 1
	body = append(body, 0x01, 'a')
	body = append(body, u64le(1)...) // row count
	body = append(body, 5)           // index 5 >= dict size 1

	cur := wire.NewCursor(body)
	tt := typeexpr.TypeTree{Kind: typeexpr.KindLowCardinality, Inner: &typeexpr.TypeTree{Kind: typeexpr.KindString}}

	_, err := decode(tt, 1, cur, NewConfig())
	require.ErrorIs(t, err, chcolerr.ErrDictionaryOverflow)
}

func TestDecodeLowCardinality_UnknownFlagBitRejected(t *testing.T) {
	flags := uint64(1 << 20)

	var body []byte
	body = append(body, u64le(flags)...)

	cur := wire.NewCursor(body)
	tt := typeexpr.TypeTree{Kind: typeexpr.KindLowCardinality, Inner: &typeexpr.TypeTree{Kind: typeexpr.KindString}}

	_, err := decode(tt, 1, cur, NewConfig())
	require.ErrorIs(t, err, chcolerr.ErrUnsupportedNesting)
}
