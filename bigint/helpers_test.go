package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// fromBig converts a math/big.Int (used only as an independent reference
// oracle in these tests, never in production code) into a Bigint via the
// same Serialize/Deserialize wire format exercised elsewhere. big.Int's
// Bytes is big-endian while the wire format is little-endian, so the
// bytes are reversed on the way in.
func fromBig(t *testing.T, v *big.Int) *Bigint {
	t.Helper()
	require.True(t, v.Sign() >= 0)
	if v.Sign() == 0 {
		return Zero()
	}
	be := v.Bytes()
	le := make([]byte, len(be))
	for i, c := range be {
		le[len(be)-1-i] = c
	}
	return Deserialize(le)
}

// toBig converts a Bigint back into a math/big.Int for comparison against
// the reference oracle, reversing the little-endian wire bytes into the
// big-endian order SetBytes expects.
func toBig(t *testing.T, x *Bigint) *big.Int {
	t.Helper()
	buf := make([]byte, SerializedSize(x))
	n, err := Serialize(x, buf)
	require.NoError(t, err)
	be := make([]byte, n)
	for i := 0; i < n; i++ {
		be[n-1-i] = buf[i]
	}
	return new(big.Int).SetBytes(be)
}

func mustUint64(t *testing.T, v uint64) *Bigint {
	t.Helper()
	x := Zero()
	require.NoError(t, x.SetUint64(v))
	return x
}
