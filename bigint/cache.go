package bigint

import "math/bits"

// cacheBitsPerDigit is the wide-digit width W used by the cache: double
// the canonical digit width, still comfortably under the uint64 word so
// a single cache digit packs two canonical digits' worth of value.
const cacheBitsPerDigit = bitsPerDigit * 2

// wideCache is an alternate, denser digit representation of a Bigint's
// value. It is kept lazily: building it is explicit (BuildCache), and any
// mutation to the canonical digits invalidates it (invalidateCache, called
// from every mutating operation in this package).
type wideCache struct {
	digits []uint64
	valid  bool
}

// BuildCache (re)builds x's wide-digit cache from its canonical digits if
// it is not already valid.
func (x *Bigint) BuildCache() {
	if x.cache != nil && x.cache.valid {
		return
	}
	d := convertDigits(x.digits, bitsPerDigit, x.SignificantBits(), cacheBitsPerDigit)
	if x.cache == nil {
		x.cache = &wideCache{}
	}
	x.cache.digits = d
	x.cache.valid = true
}

// CacheValid reports whether x's wide-digit cache currently encodes the
// same value as its canonical digits.
func (x *Bigint) CacheValid() bool {
	return x.cache != nil && x.cache.valid
}

// ReadbackCache rebuilds x's canonical digits from its cache. It is a
// no-op if the cache has not been built.
func (x *Bigint) ReadbackCache() {
	if x.cache == nil || !x.cache.valid {
		return
	}
	totalBits := 0
	if n := len(x.cache.digits); n > 0 {
		top := x.cache.digits[n-1]
		if top != 0 {
			totalBits = (n-1)*cacheBitsPerDigit + bits.Len64(top)
		} else {
			totalBits = (n - 1) * cacheBitsPerDigit
		}
	}
	x.digits = convertDigits(x.cache.digits, cacheBitsPerDigit, totalBits, bitsPerDigit)
	x.trim()
}
