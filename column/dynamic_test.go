package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/wire"
)

func TestDecodeDynamic_DiscoversMemberTypesFromStream(t *testing.T) {
	var body []byte
	body = append(body, u64le(dynamicStructureVersion)...)
	body = append(body, 0x02)               // 2 member types
	body = append(body, 0x06, 'U', 'I', 'n', 't', '6', '4') // "UInt64"
	body = append(body, 0x06, 'S', 't', 'r', 'i', 'n', 'g') // "String"
	body = append(body, 0x00, 0x01) // discriminators: row0->UInt64, row1->String
	body = append(body, u64le(7)...) // UInt64 sub-column
	body = append(body, 0x01, 'z')   // String sub-column

	cur := wire.NewCursor(body)

	dc, err := decodeDynamic(2, cur, NewConfig())
	require.NoError(t, err)
	require.Equal(t, len(body), cur.Pos())

	require.Len(t, dc.MemberTypes, 2)
	require.Equal(t, []uint64{7}, dc.Variant.Alternatives[0].Scalar.UInt64)
	require.Equal(t, [][]byte{[]byte("z")}, dc.Variant.Alternatives[1].Bytes.Values)
}

func TestDecodeDynamic_UnknownVersionRejected(t *testing.T) {
	body := u64le(99)
	cur := wire.NewCursor(body)

	_, err := decodeDynamic(0, cur, NewConfig())
	require.ErrorIs(t, err, chcolerr.ErrVersionMismatch)
}
