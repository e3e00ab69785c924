package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/bitfsorg/rsavault-go/rsavault"
)

const (
	// aesKeyLen is the size of the per-file content-encryption key.
	aesKeyLen = 32 // AES-256

	// gcmNonceLen is the standard AES-GCM nonce size.
	gcmNonceLen = 12
)

// sealContent generates a random AES-256 key, encrypts plaintext under
// it with AES-GCM, and RSA-OAEP-wraps the key under owner's public key
// so only the vault owner can ever recover it. This is the vault's
// envelope-encryption scheme: every file gets its own AES key, and only
// that small key (not the file) pays the RSA cost. The wire format is
// nonce(12B) || AES-256-GCM(plaintext) || tag(16B).
func sealContent(plaintext []byte, owner *rsavault.KeyPair) (ciphertext, wrappedKey []byte, err error) {
	key := make([]byte, aesKeyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, nil, fmt.Errorf("vault: generate content key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("vault: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("vault: init gcm: %w", err)
	}

	nonce := make([]byte, gcmNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("vault: generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)

	wrapped, err := rsavault.Encrypt(owner.PublicOnly(), key)
	if err != nil {
		return nil, nil, fmt.Errorf("vault: wrap content key: %w", err)
	}

	return sealed, wrapped, nil
}

// openContent reverses sealContent: unwraps the AES key with the vault
// owner's private key, then decrypts ciphertext.
func openContent(ciphertext, wrappedKey []byte, owner *rsavault.KeyPair) ([]byte, error) {
	key, err := rsavault.Decrypt(owner, wrappedKey)
	if err != nil {
		return nil, fmt.Errorf("vault: unwrap content key: %w", err)
	}
	if len(key) != aesKeyLen {
		return nil, fmt.Errorf("vault: unwrapped key has wrong length %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("vault: init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault: init gcm: %w", err)
	}
	if len(ciphertext) < gcmNonceLen {
		return nil, fmt.Errorf("vault: ciphertext too short")
	}

	nonce, sealed := ciphertext[:gcmNonceLen], ciphertext[gcmNonceLen:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("vault: decrypt content: %w", err)
	}
	return plaintext, nil
}
