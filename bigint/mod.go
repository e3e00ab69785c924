package bigint

// Mod computes dest = a mod b, discarding the quotient.
func Mod(dest, a, b *Bigint) error {
	q := Zero()
	return DivMod(q, dest, a, b)
}

// shiftRight1 divides x by 2 in place, propagating the dropped low bit
// across the digit boundary from most- to least-significant digit.
func shiftRight1(x *Bigint) {
	var carry uint64
	for i := len(x.digits) - 1; i >= 0; i-- {
		v := x.digits[i]
		x.digits[i] = (v >> 1) | (carry << (bitsPerDigit - 1))
		carry = v & 1
	}
	x.trim()
	x.invalidateCache()
}

// ModPow computes dest = base^exp mod modulus via right-to-left
// square-and-multiply. Special case: modulus == 1 yields 0.
func ModPow(dest, base, exp, modulus *Bigint) error {
	return ModPowArena(dest, base, exp, modulus, nil)
}

// ModPowArena is ModPow, but draws its working registers (result, the
// running base, and the multiply scratch) from arena instead of
// allocating fresh Bigints, so a caller doing many exponentiations
// against the same modulus size (a primality test's Fermat witnesses,
// for instance) pays that allocation cost once. The exponent is still
// cloned on every call.
// arena may be nil, in which case it behaves exactly like ModPow.
func ModPowArena(dest, base, exp, modulus *Bigint, arena *Arena) error {
	if modulus.IsZero() {
		return ErrInvalidArgument
	}
	if len(modulus.digits) == 1 && modulus.digits[0] == 1 {
		return dest.SetUint64(0)
	}

	minDigits := len(modulus.digits)*2 + 1
	var result, a, tmp *Bigint
	if arena != nil {
		if err := arena.Prepare(3, minDigits); err != nil {
			return err
		}
		result, a, tmp = arena.Value(0), arena.Value(1), arena.Value(2)
	} else {
		result, a, tmp = Zero(), Zero(), Zero()
	}

	if err := result.SetUint64(1); err != nil {
		return err
	}
	if err := Mod(a, base, modulus); err != nil {
		return err
	}
	e := exp.Clone()

	for !e.IsZero() {
		if e.digits[0]&1 == 1 {
			if err := Mul(tmp, result, a); err != nil {
				return err
			}
			if err := Mod(result, tmp, modulus); err != nil {
				return err
			}
		}
		shiftRight1(e)
		if !e.IsZero() {
			if err := Mul(tmp, a, a); err != nil {
				return err
			}
			if err := Mod(a, tmp, modulus); err != nil {
				return err
			}
		}
	}
	return Set(dest, result)
}

// signedSub computes (a, aNeg) - (b, bNeg) as a magnitude-and-sign pair,
// writing the magnitude into dest and returning the sign. Used by ModInv,
// which otherwise has no signed representation available: the extended
// Euclidean algorithm's intermediate coefficients can go negative even
// though Bigint itself is always non-negative.
func signedSub(dest, a *Bigint, aNeg bool, b *Bigint, bNeg bool) (bool, error) {
	var neg bool
	var err error
	switch {
	case !aNeg && !bNeg:
		if Cmp(a, b) >= 0 {
			neg, err = false, Sub(dest, a, b)
		} else {
			neg, err = true, Sub(dest, b, a)
		}
	case !aNeg && bNeg:
		neg, err = false, Add(dest, a, b)
	case aNeg && !bNeg:
		neg, err = true, Add(dest, a, b)
	default: // aNeg && bNeg
		if Cmp(b, a) >= 0 {
			neg, err = false, Sub(dest, b, a)
		} else {
			neg, err = true, Sub(dest, a, b)
		}
	}
	if err != nil {
		return false, err
	}
	if dest.IsZero() {
		neg = false
	}
	return neg, nil
}

// ModInv computes dest = a^-1 mod m via the extended Euclidean algorithm,
// maintaining the Bezout coefficient as a magnitude-plus-sign pair since
// the core has no signed bigint type. Special case: m == 1 yields 0.
// Precondition: gcd(a, m) == 1; behavior is otherwise an algorithmic
// precondition violation.
func ModInv(dest, a, m *Bigint) error {
	if len(m.digits) == 1 && m.digits[0] == 1 {
		return dest.SetUint64(0)
	}

	aCur := Zero()
	if err := Mod(aCur, a, m); err != nil {
		return err
	}
	mCur := m.Clone()

	x := Zero()
	if err := x.SetUint64(1); err != nil {
		return err
	}
	xNeg := false
	y := Zero()
	yNeg := false

	for !mCur.IsZero() {
		q := Zero()
		r := Zero()
		if err := DivMod(q, r, aCur, mCur); err != nil {
			return err
		}

		qy := Zero()
		if err := Mul(qy, q, y); err != nil {
			return err
		}
		newY := Zero()
		newYNeg, err := signedSub(newY, x, xNeg, qy, yNeg)
		if err != nil {
			return err
		}

		aCur, mCur = mCur, r
		x, xNeg = y, yNeg
		y, yNeg = newY, newYNeg
	}

	reduced := Zero()
	if err := Mod(reduced, x, m); err != nil {
		return err
	}
	if xNeg && !reduced.IsZero() {
		return Sub(dest, m, reduced)
	}
	return Set(dest, reduced)
}
