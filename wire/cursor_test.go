package wire

import (
	"testing"

	"github.com/colwire/chcol/chcolerr"
	"github.com/stretchr/testify/require"
)

func TestCursor_TakeAdvancesPosition(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})

	b, err := c.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, 2, c.Pos())
	require.Equal(t, 3, c.Len())
}

func TestCursor_TakeTruncated(t *testing.T) {
	c := NewCursor([]byte{1, 2})

	_, err := c.Take(5)
	require.Error(t, err)
	require.ErrorIs(t, err, chcolerr.ErrTruncatedInput)
}

func TestCursor_PeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})

	b, err := c.Peek(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.Equal(t, 0, c.Pos())
}

func TestCursor_Remaining(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	require.NoError(t, c.Advance(1))
	require.Equal(t, []byte{2, 3}, c.Remaining())
}
