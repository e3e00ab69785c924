package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip2048Bit(t *testing.T) {
	v, ok := new(big.Int).SetString(
		"32317006071311007300714876688669951960444102669715484032130345427524"+
			"65519173041104993154546980928397073654524102635783637935672829"+
			"68695857567700686279205631701220835709814478609069603647895100"+
			"46043560603298096765173748853200117502920726424406970068990280"+
			"42950070378565722862343679434233432133036969699103228491002636",
		10)
	require.True(t, ok)

	x := fromBig(t, v)
	sb1 := x.SignificantBits()

	buf := make([]byte, SerializedSize(x))
	n, err := Serialize(x, buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	y := Deserialize(buf[:n])
	require.Equal(t, 0, Cmp(x, y))
	require.Equal(t, sb1, y.SignificantBits())
}

func TestSerializeBufferTooSmall(t *testing.T) {
	x := mustUint64(t, 1<<40)
	buf := make([]byte, 1)
	n, err := Serialize(x, buf)
	require.ErrorIs(t, err, ErrBufferTooSmall)
	require.Equal(t, -1, n)
}

func TestSerializeZero(t *testing.T) {
	x := Zero()
	require.Equal(t, 1, SerializedSize(x))
	buf := make([]byte, 1)
	n, err := Serialize(x, buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0), buf[0])
}

func TestSignificantBitsMatchesOracle(t *testing.T) {
	v, _ := new(big.Int).SetString("18446744073709551616", 10) // 2^64
	x := fromBig(t, v)
	require.Equal(t, v.BitLen(), x.SignificantBits())
}
