package bigint

import "math/bits"

// DivMod computes quotient = a / b and remainder = a % b by schoolbook long
// division.
//
// Precondition: quotient must not alias a, b, or remainder — violating
// this is an algorithmic precondition violation per the error taxonomy and
// is reported as ErrPrecondition.
func DivMod(quotient, remainder, a, b *Bigint) error {
	if quotient == a || quotient == b || quotient == remainder {
		return ErrPrecondition
	}
	if b.IsZero() {
		return ErrInvalidArgument
	}

	switch Cmp(a, b) {
	case -1:
		if err := Set(remainder, a); err != nil {
			return err
		}
		return quotient.SetUint64(0)
	case 0:
		if err := quotient.SetUint64(1); err != nil {
			return err
		}
		return remainder.SetUint64(0)
	}

	n := len(a.digits)
	m := len(b.digits)
	qlen := n - m + 1
	qdigits := make([]uint64, qlen)

	// r is the running remainder, initialized to the top m digits of a.
	r := Zero()
	r.digits = append([]uint64(nil), a.digits[n-m:n]...)
	if len(r.digits) < minCapacity {
		grown := make([]uint64, len(r.digits), minCapacity)
		copy(grown, r.digits)
		r.digits = grown
	}
	r.trim()

	prod := Zero()
	for qi := n - m; qi >= 0; qi-- {
		digit, err := quotientDigit(r, b, prod)
		if err != nil {
			return err
		}
		qdigits[qi] = digit

		if digit == 0 {
			if err := prod.SetUint64(0); err != nil {
				return err
			}
		} else if err := mulSmall(prod, b, digit); err != nil {
			return err
		}
		if err := Sub(r, r, prod); err != nil {
			return err
		}

		if qi > 0 {
			shifted := make([]uint64, len(r.digits)+1)
			shifted[0] = a.digits[qi-1]
			copy(shifted[1:], r.digits)
			r.digits = shifted
			r.trim()
		}
	}

	if err := quotient.resize(qlen); err != nil {
		return err
	}
	copy(quotient.digits, qdigits)
	quotient.trim()
	quotient.invalidateCache()

	return Set(remainder, r)
}

// quotientDigit produces the single quotient digit for running remainder r
// against divisor b. The r < b (digit 0) and r == b (digit 1) fast paths
// are handled here, alongside the general estimate-and-correct path for
// r > b.
func quotientDigit(r, b *Bigint, prod *Bigint) (uint64, error) {
	switch Cmp(r, b) {
	case -1:
		return 0, nil
	case 0:
		return 1, nil
	}

	q := estimateQuotientDigit(r, b)
	if q > digitMask {
		q = digitMask
	}
	if q == 0 {
		q = 1
	}

	if err := mulSmall(prod, b, q); err != nil {
		return 0, err
	}
	// Correction loop, phase 1: the trial estimate overshot r.
	for Cmp(prod, r) > 0 {
		q--
		if err := mulSmall(prod, b, q); err != nil {
			return 0, err
		}
	}
	// Correction loop, phase 2: the trial estimate undershot r by more
	// than one full multiple of b.
	next := Zero()
	for q < digitMask {
		if err := Add(next, prod, b); err != nil {
			return 0, err
		}
		if Cmp(next, r) > 0 {
			break
		}
		q++
		if err := Set(prod, next); err != nil {
			return 0, err
		}
	}
	return q, nil
}

// estimateQuotientDigit produces a candidate quotient digit by packing the
// top few digits of r into a 128-bit trial dividend and the top few digits
// of b into a 64-bit trial divisor, then dividing with math/bits.Div64 —
// which performs exactly the double-machine-word division the original
// design reserved for a native 128-bit word, here obtained from the Go
// standard library instead of an emulated wide integer type.
func estimateQuotientDigit(r, b *Bigint) uint64 {
	const maxDivisorDigits = 2
	const maxDividendDigits = 4

	nd := maxDivisorDigits
	if nd > len(b.digits) {
		nd = len(b.digits)
	}
	ndDividend := nd
	if len(r.digits) > len(b.digits) {
		ndDividend = nd + 1
	}
	if ndDividend > maxDividendDigits {
		ndDividend = maxDividendDigits
	}
	if ndDividend > len(r.digits) {
		ndDividend = len(r.digits)
	}

	var divisor uint64
	for i := 0; i < nd; i++ {
		divisor = (divisor << bitsPerDigit) | topDigit(b, i, nd)
	}

	var hi, lo uint64
	for i := 0; i < ndDividend; i++ {
		d := topDigit(r, i, ndDividend)
		hi = (hi << bitsPerDigit) | (lo >> (64 - bitsPerDigit))
		lo = (lo << bitsPerDigit) | d
	}

	if hi >= divisor {
		// Packed window would overflow the 128-by-64 division; fall back
		// to the largest possible digit and let the correction loop in
		// quotientDigit pull it down to the true value.
		return digitMask
	}
	q, _ := bits.Div64(hi, lo, divisor)
	return q
}

// topDigit returns the i-th most significant digit (i=0 is most
// significant) among the top n digits of x.
func topDigit(x *Bigint, i, n int) uint64 {
	idx := len(x.digits) - 1 - i
	if idx < 0 || idx >= len(x.digits) {
		return 0
	}
	return x.digits[idx]
}
