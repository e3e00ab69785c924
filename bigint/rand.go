package bigint

import "math/rand"

// rngSource backs RandomWithBits and RandomWithLimit. This source is
// explicitly NOT cryptographically strong — it exists only to drive
// prime-candidate search. Every package outside bigint that needs
// security-relevant randomness (OAEP seeds, AES-GCM nonces, mnemonic
// entropy, Argon2 salts) uses crypto/rand instead.
var rngSource = rand.New(rand.NewSource(1))

// SeedRandom reseeds the package-level non-cryptographic random source.
// Seeding happens once by default (a deterministic seed); callers wanting
// process-start entropy should call this once before first use.
func SeedRandom(seed int64) {
	rngSource = rand.New(rand.NewSource(seed))
}

// RandomWithBits fills dest with a uniformly random value having exactly n
// significant bits: n-1 random low bits and the top bit forced to 1.
func RandomWithBits(dest *Bigint, n int) error {
	if n < 1 {
		return ErrInvalidArgument
	}
	nd := (n + bitsPerDigit - 1) / bitsPerDigit
	if err := dest.resize(nd); err != nil {
		return err
	}
	for i := 0; i < nd; i++ {
		dest.digits[i] = uint64(rngSource.Int63()) & digitMask
	}
	topBitPos := (n - 1) % bitsPerDigit
	dest.digits[nd-1] &= (uint64(1) << uint(topBitPos+1)) - 1
	dest.digits[nd-1] |= uint64(1) << uint(topBitPos)
	dest.trim()
	dest.invalidateCache()
	return nil
}

// RandomWithLimit fills dest with a uniformly random value in [0, limit).
// limit must be > 0. Sampling walks from the most significant digit down,
// tracking whether the value sampled so far is already strictly below the
// corresponding prefix of limit; once it is, later digits are sampled
// fully uniformly. If the sampled value never drops below limit (i.e. it
// lands on exactly limit), a final post-decrement avoids ever returning
// limit itself.
func RandomWithLimit(dest *Bigint, limit *Bigint) error {
	if limit.IsZero() {
		return ErrInvalidArgument
	}
	n := len(limit.digits)
	if err := dest.resize(n); err != nil {
		return err
	}

	alreadyBelow := false
	for i := n - 1; i >= 0; i-- {
		if alreadyBelow {
			dest.digits[i] = uint64(rngSource.Int63()) & digitMask
			continue
		}
		top := limit.digits[i]
		v := uint64(rngSource.Int63()) % (top + 1)
		dest.digits[i] = v
		if v < top {
			alreadyBelow = true
		}
	}
	dest.trim()
	dest.invalidateCache()

	if !alreadyBelow {
		one := Zero()
		if err := one.SetUint64(1); err != nil {
			return err
		}
		return Sub(dest, dest, one)
	}
	return nil
}
