// Package rsavault implements the top-level RSA object glue: key
// generation on top of the bigint core's prime search, CRT-accelerated
// decryption, OAEP-wrapped encryption, a length-prefixed key wire format,
// and a mnemonic-backed backup/restore path for the generated key material.
package rsavault

import (
	"fmt"

	"github.com/bitfsorg/rsavault-go/bigint"
	"github.com/bitfsorg/rsavault-go/oaep"
)

// PublicExponent is the fixed RSA public exponent used throughout this
// package: 65537 (2^16+1), chosen for its small Hamming weight and wide
// deployment as a public-exponent default.
const PublicExponent = 65537

// KeyPair holds both halves of an RSA key, plus the CRT precomputation
// needed for accelerated decryption.
type KeyPair struct {
	N *bigint.Bigint // modulus
	E *bigint.Bigint // public exponent

	// Private fields; nil on a public-only KeyPair.
	P, Q, D, Dp, Dq, Qinv *bigint.Bigint

	// maxMsgSize is the largest plaintext this key can OAEP-encrypt in a
	// single block: (rsaUsableSize) - (2*HashLen + 1), grounded on
	// ffrsa_init's rsa_usable_size/max_msg_size computation.
	maxMsgSize int
}

// IsPrivate reports whether kp holds the private half of the key.
func (kp *KeyPair) IsPrivate() bool {
	return kp.D != nil
}

// MaxMessageLen returns the largest plaintext length this key can encrypt
// in a single OAEP block.
func (kp *KeyPair) MaxMessageLen() int {
	return kp.maxMsgSize
}

func computeMaxMsgSize(n *bigint.Bigint) int {
	rsaUsableSize := (n.SignificantBits() - 1) / 8
	maxMsgSize := rsaUsableSize - (2*oaep.HashLen + 1)
	if maxMsgSize < 0 {
		return 0
	}
	return maxMsgSize
}

// GenerateKeyPair generates a fresh RSA key pair at the given security
// level, blocking until a suitable pair of primes is found.
//
// The two primes are split symmetrically (bits/2 each); the original
// source this design is grounded on used an asymmetric bits*5/11 split
// with no stated rationale, which this implementation does not carry
// forward (see DESIGN.md, "Open Question resolutions").
func GenerateKeyPair(level SecurityLevel) (*KeyPair, error) {
	if level.Bits < 512 {
		return nil, ErrInvalidKeySize
	}
	sieve, err := bigint.BuildSieve(level.SieveBound)
	if err != nil {
		return nil, fmt.Errorf("rsavault: building sieve: %w", err)
	}

	pBits := level.Bits / 2
	qBits := level.Bits - pBits

	// The p and q searches run at the same bit width and never overlap in
	// time, so a single arena's scratch registers can be reused across
	// both, including every rejected candidate along the way.
	arena := bigint.NewArena()

	var p, q *bigint.Bigint
	for {
		p, err = bigint.RandomLargePrimeArena(pBits, level.FermatTrials, sieve, arena)
		if err != nil {
			return nil, fmt.Errorf("rsavault: generating p: %w", err)
		}
		q, err = bigint.RandomLargePrimeArena(qBits, level.FermatTrials, sieve, arena)
		if err != nil {
			return nil, fmt.Errorf("rsavault: generating q: %w", err)
		}
		if bigint.Cmp(p, q) != 0 {
			break
		}
	}

	n := bigint.Zero()
	if err := bigint.Mul(n, p, q); err != nil {
		return nil, err
	}

	e := bigint.Zero()
	if err := e.SetUint64(PublicExponent); err != nil {
		return nil, err
	}

	one := bigint.Zero()
	if err := one.SetUint64(1); err != nil {
		return nil, err
	}
	pMinus1 := bigint.Zero()
	if err := bigint.Sub(pMinus1, p, one); err != nil {
		return nil, err
	}
	qMinus1 := bigint.Zero()
	if err := bigint.Sub(qMinus1, q, one); err != nil {
		return nil, err
	}
	totient := bigint.Zero()
	if err := bigint.Mul(totient, pMinus1, qMinus1); err != nil {
		return nil, err
	}

	d := bigint.Zero()
	if err := bigint.ModInv(d, e, totient); err != nil {
		return nil, fmt.Errorf("rsavault: computing private exponent: %w", err)
	}

	check := bigint.Zero()
	if err := bigint.Mul(check, d, e); err != nil {
		return nil, err
	}
	checkMod := bigint.Zero()
	if err := bigint.Mod(checkMod, check, totient); err != nil {
		return nil, err
	}
	if !(checkMod.Length() == 1 && checkMod.Digit(0) == 1) {
		return nil, ErrKeyGenFailedSelfCheck
	}

	dp := bigint.Zero()
	if err := bigint.Mod(dp, d, pMinus1); err != nil {
		return nil, err
	}
	dq := bigint.Zero()
	if err := bigint.Mod(dq, d, qMinus1); err != nil {
		return nil, err
	}
	qinv := bigint.Zero()
	if err := bigint.ModInv(qinv, q, p); err != nil {
		return nil, err
	}

	return &KeyPair{
		N: n, E: e,
		P: p, Q: q, D: d, Dp: dp, Dq: dq, Qinv: qinv,
		maxMsgSize: computeMaxMsgSize(n),
	}, nil
}

// PublicOnly returns a KeyPair holding only the public half of kp,
// suitable for sharing or publishing via keydiscovery/keyregistry.
func (kp *KeyPair) PublicOnly() *KeyPair {
	return &KeyPair{N: kp.N, E: kp.E, maxMsgSize: kp.maxMsgSize}
}
