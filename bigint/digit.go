// Package bigint implements a from-scratch arbitrary-precision unsigned
// integer engine: fixed-width digit storage, schoolbook arithmetic, modular
// exponentiation and inverse, and the number-theoretic services (sieve,
// Fermat primality testing, random prime search) that RSA key generation
// depends on.
//
// Every value is non-negative and stored as a little-endian sequence of
// bitsPerDigit-bit digits, each strictly below the machine word width so
// that digit+digit+1 and digit*digit never overflow a uint64. Go has no
// native 128-bit integer type, so this implementation always uses the
// 29-bit-per-digit layout (the fallback branch for platforms without
// a 128-bit machine word) rather than the 61-bit layout; see div.go for how
// the digit-estimation step still gets genuine double-width division out
// of math/bits.Div64.
package bigint

const (
	// bitsPerDigit is the number of significant bits held in each digit.
	bitsPerDigit = 29
	digitBase    = uint64(1) << bitsPerDigit
	digitMask    = digitBase - 1

	minCapacity = 3
)

// Bigint is a non-negative arbitrary-precision integer stored as a
// little-endian sequence of bitsPerDigit-bit digits.
//
// The zero value is not usable; construct with Zero, NewWithDigitCapacity,
// NewWithBitCapacity, or WrapBuffer.
type Bigint struct {
	digits   []uint64
	growable bool
	cache    *wideCache
}

func newDigits(capacity int) []uint64 {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	d := make([]uint64, 1, capacity)
	return d
}

// Zero returns a new growable Bigint with value 0.
func Zero() *Bigint {
	return &Bigint{digits: newDigits(minCapacity), growable: true}
}

// NewWithDigitCapacity returns a new growable Bigint with value 0 and at
// least n digits of pre-reserved capacity.
func NewWithDigitCapacity(n int) *Bigint {
	return &Bigint{digits: newDigits(n), growable: true}
}

// NewWithBitCapacity returns a new growable Bigint with value 0 and enough
// pre-reserved capacity to hold an n-bit value.
func NewWithBitCapacity(n int) *Bigint {
	return NewWithDigitCapacity((n + bitsPerDigit - 1) / bitsPerDigit)
}

// WrapBuffer returns a non-growable Bigint whose backing storage is buf.
// Its value is initialized to 0. Any operation that would need more than
// cap(buf) digits fails with ErrCapacityExhausted instead of reallocating.
func WrapBuffer(buf []uint64) *Bigint {
	buf = buf[:1]
	buf[0] = 0
	return &Bigint{digits: buf, growable: false}
}

// Clone returns an independent, growable copy of x.
func (x *Bigint) Clone() *Bigint {
	cap0 := len(x.digits)
	if cap0 < minCapacity {
		cap0 = minCapacity
	}
	d := make([]uint64, len(x.digits), cap0)
	copy(d, x.digits)
	return &Bigint{digits: d, growable: true}
}

// Set copies src's value into dest, growing dest if necessary and allowed.
func Set(dest, src *Bigint) error {
	if dest == src {
		return nil
	}
	if err := dest.ensureCapacity(len(src.digits)); err != nil {
		return err
	}
	dest.digits = dest.digits[:len(src.digits)]
	copy(dest.digits, src.digits)
	dest.invalidateCache()
	return nil
}

// SetUint64 sets x's value to v.
func (x *Bigint) SetUint64(v uint64) error {
	if err := x.ensureCapacity(3); err != nil {
		return err
	}
	x.digits = x.digits[:0]
	for {
		x.digits = append(x.digits, v&digitMask)
		v >>= bitsPerDigit
		if v == 0 {
			break
		}
	}
	x.invalidateCache()
	return nil
}

// IsZero reports whether x is the canonical zero value.
func (x *Bigint) IsZero() bool {
	return len(x.digits) == 1 && x.digits[0] == 0
}

// Length returns the number of digits in use.
func (x *Bigint) Length() int { return len(x.digits) }

// Digit returns the i-th digit (0 = least significant).
func (x *Bigint) Digit(i int) uint64 { return x.digits[i] }

// trim removes leading (most-significant) zero digits, preserving the
// canonical-zero invariant (length stays >= 1).
func (x *Bigint) trim() {
	n := len(x.digits)
	for n > 1 && x.digits[n-1] == 0 {
		n--
	}
	x.digits = x.digits[:n]
}

// ensureCapacity guarantees cap(x.digits) >= n, growing (value-preserving)
// if x is growable, or failing if it is not.
func (x *Bigint) ensureCapacity(n int) error {
	if cap(x.digits) >= n {
		return nil
	}
	if !x.growable {
		return ErrCapacityExhausted
	}
	newCap := cap(x.digits) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < minCapacity {
		newCap = minCapacity
	}
	grown := make([]uint64, len(x.digits), newCap)
	copy(grown, x.digits)
	x.digits = grown
	return nil
}

// resize sets the in-use length to n, zero-filling any newly exposed
// digits, growing capacity first if needed.
func (x *Bigint) resize(n int) error {
	if err := x.ensureCapacity(n); err != nil {
		return err
	}
	old := len(x.digits)
	x.digits = x.digits[:n]
	for i := old; i < n; i++ {
		x.digits[i] = 0
	}
	return nil
}

func (x *Bigint) invalidateCache() {
	if x.cache != nil {
		x.cache.valid = false
	}
}
