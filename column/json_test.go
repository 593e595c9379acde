package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colwire/chcol/wire"
)

// TestDecodeJSON_TypedPathAndSharedData builds a minimal Json column:
// no dynamic paths, one typed path "name" : String, and a one-row
// shared-data bucket holding a single (key, value) pair.
func TestDecodeJSON_TypedPathAndSharedData(t *testing.T) {
	var body []byte
	body = append(body, u64le(jsonStructureVersion)...)
	body = append(body, 0x00) // 0 dynamic paths
	body = append(body, 0x01) // 1 typed path

	body = append(body, 0x04, 'n', 'a', 'm', 'e')           // path "name"
	body = append(body, 0x06, 'S', 't', 'r', 'i', 'n', 'g') // type "String"
	body = append(body, 0x02, 'h', 'i')                     // the String column body, 1 row

	// shared data: Array(Tuple(String,String)), 1 row with one entry
	body = append(body, u64le(1)...)     // offsets[0] = 1
	body = append(body, 0x01, 'k')       // key "k"
	body = append(body, 0x01, 'v')       // value "v"

	cur := wire.NewCursor(body)

	jc, err := decodeJSON(1, cur, NewConfig())
	require.NoError(t, err)
	require.Equal(t, len(body), cur.Pos())

	require.Empty(t, jc.DynamicPaths)
	require.Len(t, jc.TypedPaths, 1)
	require.Equal(t, "name", jc.TypedPaths[0].Path)
	require.Equal(t, [][]byte{[]byte("hi")}, jc.TypedPaths[0].Column.Bytes.Values)

	require.Equal(t, []uint64{1}, jc.SharedData.Offsets)
	tuple := jc.SharedData.Inner.Tuple
	require.Equal(t, [][]byte{[]byte("k")}, tuple.Elems[0].Bytes.Values)
	require.Equal(t, [][]byte{[]byte("v")}, tuple.Elems[1].Bytes.Values)
}
