package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteField([]byte{0x01, 0x00, 0x01}) // e = 65537 big-endian-ish bytes
	w.WriteField([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	r := NewReader(w.Bytes())
	f1, err := r.ReadField()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x00, 0x01}, f1)

	f2, err := r.ReadField()
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, f2)

	require.False(t, r.Remaining())
}

func TestReadFieldTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadField()
	require.Error(t, err)
}
