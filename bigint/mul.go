package bigint

// Mul computes dest = a * b by schoolbook multiplication in
// O(len(a)*len(b)). dest may alias a or b.
//
// Unlike the original design's single-carry-propagation-pass-at-the-end
// approach (safe on a 128-bit machine word at 61 bits per digit), this
// implementation extracts carries after every partial-product addition.
// At 29 bits per digit every accumulator slot therefore never exceeds
// bitsPerDigit bits between additions, so accumulation stays correct
// regardless of operand length on a 64-bit word — deferring all carries
// to one final pass would overflow uint64 for RSA-sized operands (a few
// thousand bits).
func Mul(dest, a, b *Bigint) error {
	if a.IsZero() || b.IsZero() {
		return dest.SetUint64(0)
	}

	la, lb := len(a.digits), len(b.digits)
	n := la + lb
	acc := make([]uint64, n)

	for i := 0; i < la; i++ {
		ai := a.digits[i]
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < lb; j++ {
			acc[i+j] += ai*b.digits[j] + carry
			carry = acc[i+j] >> bitsPerDigit
			acc[i+j] &= digitMask
		}
		acc[i+lb] += carry
	}

	if err := dest.ensureCapacity(n); err != nil {
		return err
	}
	dest.digits = dest.digits[:n]
	copy(dest.digits, acc)
	dest.trim()
	dest.invalidateCache()
	return nil
}

// mulSmall computes dest = b * digit, where digit < digitBase. Used by the
// division digit-estimation loop.
func mulSmall(dest, b *Bigint, digit uint64) error {
	l := len(b.digits)
	result := make([]uint64, l+1)
	var carry uint64
	for i := 0; i < l; i++ {
		p := b.digits[i]*digit + carry
		result[i] = p & digitMask
		carry = p >> bitsPerDigit
	}
	result[l] = carry

	if err := dest.ensureCapacity(l + 1); err != nil {
		return err
	}
	dest.digits = dest.digits[:l+1]
	copy(dest.digits, result)
	dest.trim()
	dest.invalidateCache()
	return nil
}
