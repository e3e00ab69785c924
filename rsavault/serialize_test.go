package rsavault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitfsorg/rsavault-go/bigint"
)

func TestSerializePublic_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(testLevel)
	require.NoError(t, err)

	buf, err := SerializePublic(kp)
	require.NoError(t, err)

	decoded, err := DeserializePublic(buf)
	require.NoError(t, err)
	assert.False(t, decoded.IsPrivate())
	assert.Equal(t, 0, bigint.Cmp(kp.N, decoded.N))
	assert.Equal(t, 0, bigint.Cmp(kp.E, decoded.E))
}

func TestSerializePrivate_RoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(testLevel)
	require.NoError(t, err)

	buf, err := SerializePrivate(kp)
	require.NoError(t, err)

	decoded, err := DeserializePrivate(buf)
	require.NoError(t, err)
	assert.True(t, decoded.IsPrivate())
	assert.Equal(t, 0, bigint.Cmp(kp.N, decoded.N))
	assert.Equal(t, 0, bigint.Cmp(kp.E, decoded.E))
	assert.Equal(t, 0, bigint.Cmp(kp.P, decoded.P))
	assert.Equal(t, 0, bigint.Cmp(kp.Q, decoded.Q))
	assert.Equal(t, 0, bigint.Cmp(kp.Dp, decoded.Dp))
	assert.Equal(t, 0, bigint.Cmp(kp.Dq, decoded.Dq))
	assert.Equal(t, 0, bigint.Cmp(kp.Qinv, decoded.Qinv))
}

func TestSerializePrivate_DecryptStillWorks(t *testing.T) {
	kp, err := GenerateKeyPair(testLevel)
	require.NoError(t, err)

	buf, err := SerializePrivate(kp)
	require.NoError(t, err)
	decoded, err := DeserializePrivate(buf)
	require.NoError(t, err)

	ct, err := Encrypt(kp.PublicOnly(), []byte("round trip via wire format"))
	require.NoError(t, err)

	pt, err := Decrypt(decoded, ct)
	require.NoError(t, err)
	assert.Equal(t, "round trip via wire format", string(pt))
}

func TestSerializePublic_NilKey(t *testing.T) {
	_, err := SerializePublic(nil)
	assert.ErrorIs(t, err, ErrNilPublicKey)
}

func TestSerializePrivate_PublicOnlyKeyRejected(t *testing.T) {
	kp, err := GenerateKeyPair(testLevel)
	require.NoError(t, err)

	_, err = SerializePrivate(kp.PublicOnly())
	assert.ErrorIs(t, err, ErrNilPrivateKey)
}

func TestDeserializePublic_InvalidBuffer(t *testing.T) {
	_, err := DeserializePublic([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidSerializedKey)
}

func TestDeserializePrivate_InvalidBuffer(t *testing.T) {
	_, err := DeserializePrivate([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrInvalidSerializedKey)
}
