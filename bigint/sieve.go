package bigint

// Sieve holds the primes up to a caller-supplied bound, ascending
// (including 2, though candidates under test are always forced odd).
// It is used as a cheap divisibility prefilter before running Fermat
// trials on a primality candidate.
type Sieve struct {
	Primes []*Bigint
}

// BuildSieve runs the classical sieve of Eratosthenes up to and including
// n, returning the resulting ascending prime list (2 included). n must be
// at least 3; anything smaller is an invalid argument.
func BuildSieve(n int) (*Sieve, error) {
	if n < 3 {
		return nil, ErrInvalidArgument
	}
	composite := make([]bool, n+1)
	var primes []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for k := i * 2; k <= n; k += i {
			composite[k] = true
		}
	}
	s := &Sieve{Primes: make([]*Bigint, len(primes))}
	for i, p := range primes {
		v := Zero()
		if err := v.SetUint64(uint64(p)); err != nil {
			return nil, err
		}
		s.Primes[i] = v
	}
	return s, nil
}
