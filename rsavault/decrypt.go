package rsavault

import (
	"fmt"

	"github.com/bitfsorg/rsavault-go/bigint"
	"github.com/bitfsorg/rsavault-go/oaep"
)

// Decrypt reverses Encrypt using kp's private key, applying the
// Chinese Remainder Theorem to cut the modular-exponentiation cost
// roughly in half: rather than one exponentiation mod the full n, it
// does one exponentiation mod p and one mod q (each against an exponent
// and modulus of half the bit length) and recombines the two results.
func Decrypt(kp *KeyPair, ciphertext []byte) ([]byte, error) {
	if kp == nil {
		return nil, ErrNilPrivateKey
	}
	if !kp.IsPrivate() {
		return nil, ErrNilPrivateKey
	}

	c := bigint.Deserialize(ciphertext)

	// m1 = c^dp mod p
	m1 := bigint.Zero()
	if err := bigint.ModPow(m1, c, kp.Dp, kp.P); err != nil {
		return nil, fmt.Errorf("rsavault: decrypting (mod p): %w", err)
	}
	// m2 = c^dq mod q
	m2 := bigint.Zero()
	if err := bigint.ModPow(m2, c, kp.Dq, kp.Q); err != nil {
		return nil, fmt.Errorf("rsavault: decrypting (mod q): %w", err)
	}

	// h = qinv * (m1 - m2) mod p, then m = m2 + h*q
	var diff *bigint.Bigint
	if bigint.Cmp(m1, m2) >= 0 {
		diff = bigint.Zero()
		if err := bigint.Sub(diff, m1, m2); err != nil {
			return nil, err
		}
	} else {
		tmp := bigint.Zero()
		if err := bigint.Sub(tmp, m2, m1); err != nil {
			return nil, err
		}
		diffMod := bigint.Zero()
		if err := bigint.Mod(diffMod, tmp, kp.P); err != nil {
			return nil, err
		}
		if diffMod.IsZero() {
			diff = bigint.Zero()
		} else {
			diff = bigint.Zero()
			if err := bigint.Sub(diff, kp.P, diffMod); err != nil {
				return nil, err
			}
		}
	}

	hFull := bigint.Zero()
	if err := bigint.Mul(hFull, kp.Qinv, diff); err != nil {
		return nil, err
	}
	h := bigint.Zero()
	if err := bigint.Mod(h, hFull, kp.P); err != nil {
		return nil, err
	}

	hq := bigint.Zero()
	if err := bigint.Mul(hq, h, kp.Q); err != nil {
		return nil, err
	}
	m := bigint.Zero()
	if err := bigint.Add(m, m2, hq); err != nil {
		return nil, err
	}

	// The recovered integer was OAEP-encoded over rusable = (sigBits-1)/8
	// bytes by Encrypt, one byte short of N's own byte width; serialize m
	// back to that same width, not the ciphertext's.
	rusable := (kp.N.SignificantBits() - 1) / 8
	block := make([]byte, rusable)
	if _, err := bigint.Serialize(m, block); err != nil {
		return nil, err
	}

	plaintext, err := oaep.Unpad(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
