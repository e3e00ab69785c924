package bigint

// Cmp compares a and b, returning -1, 0, or +1 as a < b, a == b, or a > b.
// Longer digit arrays are larger given the no-leading-zero invariant, so
// the comparison is O(length) and only walks digits when lengths match.
func Cmp(a, b *Bigint) int {
	if len(a.digits) != len(b.digits) {
		if len(a.digits) < len(b.digits) {
			return -1
		}
		return 1
	}
	for i := len(a.digits) - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
