package keyregistry

import "crypto/sha256"

// Fingerprint returns the SHA-256 digest of a serialized public key
// blob (as produced by rsavault.SerializePublic), used as the short
// identifier attached to audit events.
func Fingerprint(serializedPublicKey []byte) []byte {
	sum := sha256.Sum256(serializedPublicKey)
	return sum[:]
}
