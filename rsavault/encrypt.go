package rsavault

import (
	"fmt"

	"github.com/bitfsorg/rsavault-go/bigint"
	"github.com/bitfsorg/rsavault-go/oaep"
)

// maxPaddingRetries bounds the padding-regeneration loop in Encrypt. A
// retry is only ever needed when the padded block, read as an integer,
// lands on an even value (see below); with a cryptographically random
// seed this happens with probability ~1/2 per attempt, so exhausting
// this many retries indicates a broken RNG rather than bad luck.
const maxPaddingRetries = 64

// Encrypt OAEP-pads message and encrypts it under kp's public key,
// returning the ciphertext as a fixed-width little-endian byte block
// (bigint.Serialize order) sized to the modulus.
//
// The padded block is regenerated (with a fresh random seed) if the
// integer it encodes is even. This parity retry is carried over from the
// original design unchanged; no cryptographic property is claimed for it
// (see DESIGN.md, "Open Question resolutions").
func Encrypt(kp *KeyPair, message []byte) ([]byte, error) {
	if kp == nil || kp.N == nil || kp.E == nil {
		return nil, ErrNilPublicKey
	}
	outLen := bigint.SerializedSize(kp.N)
	if outLen == 0 {
		return nil, ErrInvalidKeySize
	}
	// The padded block must encode an integer strictly less than N, so it
	// is sized to one byte short of N's full byte width: at
	// SerializedSize(N) bytes, an MGF1-masked high byte routinely produces
	// an integer >= N, which Decrypt would recover only mod N.
	rusable := (kp.N.SignificantBits() - 1) / 8
	if rusable <= 0 {
		return nil, ErrInvalidKeySize
	}

	var padded []byte
	var err error
	ok := false
	for attempt := 0; attempt < maxPaddingRetries; attempt++ {
		padded, err = oaep.Pad(message, rusable)
		if err != nil {
			return nil, err
		}
		// bigint.Deserialize treats padded[0] as the least-significant
		// byte, so that byte's low bit is the parity of the resulting
		// integer.
		if padded[0]&1 != 0 {
			ok = true
			break
		}
	}
	if !ok {
		return nil, ErrPaddingRetriesExhausted
	}

	m := bigint.Deserialize(padded)
	c := bigint.Zero()
	if err := bigint.ModPow(c, m, kp.E, kp.N); err != nil {
		return nil, fmt.Errorf("rsavault: encrypting: %w", err)
	}

	// out is pre-zeroed; Serialize writes least-significant byte first,
	// so a short encoding of c leaves the correct (high-order) zero
	// padding in place without any shifting.
	out := make([]byte, outLen)
	if _, err := bigint.Serialize(c, out); err != nil {
		return nil, err
	}
	return out, nil
}
