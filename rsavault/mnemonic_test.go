package rsavault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonic_ValidLengths(t *testing.T) {
	m12, err := GenerateMnemonic(Mnemonic12Words)
	require.NoError(t, err)
	assert.True(t, ValidateMnemonic(m12))

	m24, err := GenerateMnemonic(Mnemonic24Words)
	require.NoError(t, err)
	assert.True(t, ValidateMnemonic(m24))
	assert.NotEqual(t, m12, m24)
}

func TestGenerateMnemonic_InvalidEntropy(t *testing.T) {
	_, err := GenerateMnemonic(100)
	assert.ErrorIs(t, err, ErrMnemonicInvalid)
}

func TestValidateMnemonic_Invalid(t *testing.T) {
	assert.False(t, ValidateMnemonic("not a real mnemonic phrase at all"))
}

func TestDeriveDeterministicSeed_Deterministic(t *testing.T) {
	mnemonic, err := GenerateMnemonic(Mnemonic12Words)
	require.NoError(t, err)

	seed1, err := DeriveDeterministicSeed(mnemonic, "")
	require.NoError(t, err)
	seed2, err := DeriveDeterministicSeed(mnemonic, "")
	require.NoError(t, err)
	assert.Equal(t, seed1, seed2)
}

func TestDeriveDeterministicSeed_PassphraseChangesSeed(t *testing.T) {
	mnemonic, err := GenerateMnemonic(Mnemonic12Words)
	require.NoError(t, err)

	seedNoPass, err := DeriveDeterministicSeed(mnemonic, "")
	require.NoError(t, err)
	seedWithPass, err := DeriveDeterministicSeed(mnemonic, "extra words")
	require.NoError(t, err)
	assert.NotEqual(t, seedNoPass, seedWithPass)
}

func TestDeriveDeterministicSeed_InvalidMnemonic(t *testing.T) {
	_, err := DeriveDeterministicSeed("invalid mnemonic phrase", "")
	assert.ErrorIs(t, err, ErrMnemonicInvalid)
}

func TestEncryptDecryptKeyMaterial_RoundTrip(t *testing.T) {
	data := []byte("pretend serialized private key bytes")
	encrypted, err := EncryptKeyMaterial(data, "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, data, encrypted)

	decrypted, err := DecryptKeyMaterial(encrypted, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, data, decrypted)
}

func TestDecryptKeyMaterial_WrongPassword(t *testing.T) {
	data := []byte("pretend serialized private key bytes")
	encrypted, err := EncryptKeyMaterial(data, "right password")
	require.NoError(t, err)

	_, err = DecryptKeyMaterial(encrypted, "wrong password")
	assert.ErrorIs(t, err, ErrSeedDecryptFailed)
}

func TestDecryptKeyMaterial_Truncated(t *testing.T) {
	_, err := DecryptKeyMaterial([]byte{0x01, 0x02}, "password")
	assert.ErrorIs(t, err, ErrSeedDecryptFailed)
}

func TestEncryptKeyMaterial_EmptyDataRejected(t *testing.T) {
	_, err := EncryptKeyMaterial(nil, "password")
	assert.ErrorIs(t, err, ErrInvalidSerializedKey)
}

func TestEncryptKeyMaterial_ProducesDifferentCiphertextEachCall(t *testing.T) {
	data := []byte("same plaintext")
	enc1, err := EncryptKeyMaterial(data, "password")
	require.NoError(t, err)
	enc2, err := EncryptKeyMaterial(data, "password")
	require.NoError(t, err)
	assert.NotEqual(t, enc1, enc2, "random salt and nonce must vary each call")
}
