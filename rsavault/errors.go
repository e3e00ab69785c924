package rsavault

import "errors"

var (
	// ErrNilPrivateKey indicates a nil private key was provided.
	ErrNilPrivateKey = errors.New("rsavault: private key is nil")

	// ErrNilPublicKey indicates a nil public key was provided.
	ErrNilPublicKey = errors.New("rsavault: public key is nil")

	// ErrMessageTooLong indicates the plaintext exceeds the key's maximum
	// message size for OAEP padding.
	ErrMessageTooLong = errors.New("rsavault: message too long for this key")

	// ErrDecryptionFailed indicates OAEP unpadding failed after the
	// modular exponentiation step.
	ErrDecryptionFailed = errors.New("rsavault: decryption failed")

	// ErrInvalidKeySize indicates a key size below the minimum usable
	// bit length.
	ErrInvalidKeySize = errors.New("rsavault: invalid key size")

	// ErrKeyGenFailedSelfCheck indicates the generated private exponent
	// failed the d*e ≡ 1 (mod totient) self-check.
	ErrKeyGenFailedSelfCheck = errors.New("rsavault: key generation self-check failed")

	// ErrInvalidSerializedKey indicates a malformed serialized key blob.
	ErrInvalidSerializedKey = errors.New("rsavault: invalid serialized key")

	// ErrMnemonicInvalid indicates a BIP-39 mnemonic failed checksum
	// validation.
	ErrMnemonicInvalid = errors.New("rsavault: invalid mnemonic")

	// ErrSeedDecryptFailed indicates the seed-at-rest checksum did not
	// match after decryption (wrong password or corrupted file).
	ErrSeedDecryptFailed = errors.New("rsavault: seed decryption failed")

	// ErrPaddingRetriesExhausted indicates Encrypt could not produce an
	// odd-parity padded block within maxPaddingRetries attempts, which
	// only happens if the random source backing OAEP seed generation is
	// broken.
	ErrPaddingRetriesExhausted = errors.New("rsavault: padding retries exhausted")
)
