package chcolerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeError_Unwrap(t *testing.T) {
	err := AtColumn(128, "amount", ErrInvalidLength)
	require.True(t, errors.Is(err, ErrInvalidLength))

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 128, de.Offset)
	require.Equal(t, "amount", de.Column)
}

func TestDecodeError_Message(t *testing.T) {
	err := AtColumnExpecting(4, "tags", "Array(String)", ErrOffsetNotMonotonic)
	msg := err.Error()
	require.Contains(t, msg, "offset 4")
	require.Contains(t, msg, "tags")
	require.Contains(t, msg, "Array(String)")
}

func TestAt_NoColumn(t *testing.T) {
	err := At(0, ErrTruncatedInput)
	require.True(t, errors.Is(err, ErrTruncatedInput))

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Empty(t, de.Column)
}
