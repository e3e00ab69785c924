package bigint

// IsLargePrime performs a sieve-prefiltered Fermat primality test on p
// with t witness trials. sieve may be nil to skip the prefilter.
// Precondition: p > 2 (callers search only odd candidates >= 3).
func IsLargePrime(p *Bigint, t int, sieve *Sieve) (bool, error) {
	return IsLargePrimeArena(p, t, sieve, nil)
}

// IsLargePrimeArena is IsLargePrime, but draws its witness-loop scratch
// (and the scratch ModPowArena needs for each Fermat trial) from arena
// rather than allocating fresh, so RandomLargePrimeArena's candidate
// search can reuse one arena across every rejected candidate instead of
// allocating per trial. arena may be nil, in which case it behaves
// exactly like IsLargePrime.
func IsLargePrimeArena(p *Bigint, t int, sieve *Sieve, arena *Arena) (bool, error) {
	if t < 1 {
		return false, ErrInvalidArgument
	}

	var r, two, one, pMinus1, pMinus2, limit, w, res *Bigint
	var modPowArena *Arena
	if arena != nil {
		minDigits := len(p.digits) + 1
		if err := arena.Prepare(8, minDigits); err != nil {
			return false, err
		}
		r, two, one = arena.Value(0), arena.Value(1), arena.Value(2)
		pMinus1, pMinus2, limit = arena.Value(3), arena.Value(4), arena.Value(5)
		w, res = arena.Value(6), arena.Value(7)
		modPowArena = arena.Child(0)
	} else {
		r, two, one = Zero(), Zero(), Zero()
		pMinus1, pMinus2, limit = Zero(), Zero(), Zero()
		w, res = Zero(), Zero()
	}

	if sieve != nil {
		for _, s := range sieve.Primes {
			if Cmp(s, p) > 0 {
				break
			}
			if Cmp(s, p) == 0 {
				continue
			}
			if err := Mod(r, p, s); err != nil {
				return false, err
			}
			if r.IsZero() {
				return false, nil
			}
		}
	}

	if err := two.SetUint64(2); err != nil {
		return false, err
	}
	if err := one.SetUint64(1); err != nil {
		return false, err
	}
	if err := Sub(pMinus1, p, one); err != nil {
		return false, err
	}
	if err := Sub(pMinus2, pMinus1, one); err != nil {
		return false, err
	}
	// witnesses are drawn uniformly in [2, p-2], i.e. RandomWithLimit(p-3)
	// shifted up by 2.
	if err := Sub(limit, pMinus2, one); err != nil {
		return false, err
	}

	for i := 0; i < t; i++ {
		if err := RandomWithLimit(w, limit); err != nil {
			return false, err
		}
		if err := Add(w, w, two); err != nil {
			return false, err
		}
		if err := ModPowArena(res, w, pMinus1, p, modPowArena); err != nil {
			return false, err
		}
		if !(len(res.digits) == 1 && res.digits[0] == 1) {
			return false, nil
		}
	}
	return true, nil
}

// RandomLargePrime draws random nBits-wide odd candidates and returns the
// first that passes IsLargePrime with t Fermat trials.
func RandomLargePrime(nBits, t int, sieve *Sieve) (*Bigint, error) {
	return RandomLargePrimeArena(nBits, t, sieve, nil)
}

// RandomLargePrimeArena is RandomLargePrime, but reuses a single arena's
// scratch across every rejected candidate in the search instead of
// allocating fresh Bigints per trial; callers generating many primes at
// the same bit width (key generation's p and q search) should pass the
// same arena to both searches. arena may be nil, in which case it behaves
// exactly like RandomLargePrime.
func RandomLargePrimeArena(nBits, t int, sieve *Sieve, arena *Arena) (*Bigint, error) {
	candidate := Zero()
	for {
		if err := RandomWithBits(candidate, nBits); err != nil {
			return nil, err
		}
		candidate.digits[0] |= 1
		ok, err := IsLargePrimeArena(candidate, t, sieve, arena)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate.Clone(), nil
		}
	}
}
