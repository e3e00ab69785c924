package bigint

// Arena is a reusable tree-structured pool of pre-sized bigints plus
// nested child arenas, used to avoid allocation churn in tight loops
// such as primality testing and modular exponentiation.
type Arena struct {
	values   []*Bigint
	children []*Arena
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Prepare guarantees the arena holds at least nValues bigints, each with
// at least minDigits of allocated capacity. Prepare is idempotent and only
// grows the arena, never shrinks it.
func (ar *Arena) Prepare(nValues, minDigits int) error {
	for len(ar.values) < nValues {
		ar.values = append(ar.values, NewWithDigitCapacity(minDigits))
	}
	for _, v := range ar.values {
		if err := v.ensureCapacity(minDigits); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the i-th preallocated bigint slot. Callers must have
// called Prepare with a sufficient nValues first.
func (ar *Arena) Value(i int) *Bigint { return ar.values[i] }

// Child returns the i-th nested child arena, creating it (and any
// intermediate children) on first access.
func (ar *Arena) Child(i int) *Arena {
	for len(ar.children) <= i {
		ar.children = append(ar.children, NewArena())
	}
	return ar.children[i]
}
