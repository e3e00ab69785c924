package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestModPowMersenneVector checks mod_pow(2, 2^31-2, 2^31-1) = 1, because
// 2^31-1 is the Mersenne prime 2147483647 and Fermat's little theorem
// gives 2^(p-1) = 1 mod p.
func TestModPowMersenneVector(t *testing.T) {
	base := mustUint64(t, 2)
	exp := mustUint64(t, 2147483646)
	modulus := mustUint64(t, 2147483647)

	dest := Zero()
	require.NoError(t, ModPow(dest, base, exp, modulus))
	require.Equal(t, 0, Cmp(dest, mustUint64(t, 1)))
}

func TestModPowExponentZero(t *testing.T) {
	dest := Zero()
	require.NoError(t, ModPow(dest, mustUint64(t, 3), mustUint64(t, 0), mustUint64(t, 7)))
	require.Equal(t, 0, Cmp(dest, mustUint64(t, 1)))
}

func TestModPowModulusOne(t *testing.T) {
	dest := Zero()
	require.NoError(t, ModPow(dest, mustUint64(t, 12345), mustUint64(t, 6789), mustUint64(t, 1)))
	require.True(t, dest.IsZero())
}

// TestModInvVectors checks known modular-inverse vectors.
func TestModInvVectors(t *testing.T) {
	cases := []struct {
		a, m, want uint64
	}{
		{3, 11, 4},
		{7, 40, 23},
	}
	for _, c := range cases {
		dest := Zero()
		require.NoError(t, ModInv(dest, mustUint64(t, c.a), mustUint64(t, c.m)))
		require.Equal(t, 0, Cmp(dest, mustUint64(t, c.want)), "mod_inv(%d,%d)", c.a, c.m)
	}
}

func TestModInvModulusOne(t *testing.T) {
	dest := Zero()
	require.NoError(t, ModInv(dest, mustUint64(t, 5), mustUint64(t, 1)))
	require.True(t, dest.IsZero())
}

func TestModInvRoundTrip(t *testing.T) {
	a := mustUint64(t, 17)
	m := mustUint64(t, 3120) // used in textbook RSA examples (p=61,q=53 -> totient)
	inv := Zero()
	require.NoError(t, ModInv(inv, a, m))

	prod := Zero()
	require.NoError(t, Mul(prod, a, inv))
	reduced := Zero()
	require.NoError(t, Mod(reduced, prod, m))
	require.Equal(t, 0, Cmp(reduced, mustUint64(t, 1)))
}
