package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulByZeroIsZero(t *testing.T) {
	a := mustUint64(t, 123456789)
	zero := Zero()
	dest := Zero()
	require.NoError(t, Mul(dest, a, zero))
	require.True(t, dest.IsZero())
}

func TestMulMatchesReferenceOracle(t *testing.T) {
	bigA, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	bigB, _ := new(big.Int).SetString("987654321098765432109876543210", 10)
	want := new(big.Int).Mul(bigA, bigB)

	a := fromBig(t, bigA)
	b := fromBig(t, bigB)
	dest := Zero()
	require.NoError(t, Mul(dest, a, b))

	require.Equal(t, 0, want.Cmp(toBig(t, dest)))
}

func TestMulAliasesDest(t *testing.T) {
	a := mustUint64(t, 7)
	require.NoError(t, Mul(a, a, mustUint64(t, 6)))
	require.Equal(t, 0, Cmp(a, mustUint64(t, 42)))
}
