package oaep

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	msg := []byte("a short message")
	block, err := Pad(msg, 256)
	require.NoError(t, err)
	require.Len(t, block, 256)

	got, err := Unpad(block)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestPadMessageTooLong(t *testing.T) {
	msg := make([]byte, 300)
	_, err := Pad(msg, 256)
	require.ErrorIs(t, err, ErrMessageTooLong)
}

func TestPadEmptyMessage(t *testing.T) {
	block, err := Pad(nil, 256)
	require.NoError(t, err)
	got, err := Unpad(block)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnpadCorruptedBlockFails(t *testing.T) {
	msg := []byte("hello")
	block, err := Pad(msg, 256)
	require.NoError(t, err)
	block[100] ^= 0xFF

	_, err = Unpad(block)
	require.Error(t, err)
}

func TestUnpadTooShortFails(t *testing.T) {
	_, err := Unpad(make([]byte, 10))
	require.ErrorIs(t, err, ErrUnpadFailed)
}

func TestMGF1Deterministic(t *testing.T) {
	a := mgf1([]byte("seed"), 64)
	b := mgf1([]byte("seed"), 64)
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}
