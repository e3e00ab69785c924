package storage

import "crypto/sha256"

// ComputeKeyHash returns SHA256(SHA256(plaintext)), the content address
// under which Store implementations index ciphertext.
func ComputeKeyHash(plaintext []byte) []byte {
	first := sha256.Sum256(plaintext)
	second := sha256.Sum256(first[:])
	return second[:]
}
