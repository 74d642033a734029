// Package mapping builds the lookup structures applied to every character
// of a stream: a membership index for deletion and a translation table for
// remapping. Both are built once from expanded sets and never mutated
// afterwards.
package mapping

// Source yields code points one at a time. *charset.Sequence satisfies it.
type Source interface {
	Next() (rune, bool)
}

// denseLimit bounds the code points held in the fixed-size arrays.
const denseLimit = 256

// Membership answers whether a code point belongs to an expanded set.
type Membership struct {
	dense [denseLimit / 64]uint64
	wide  map[rune]struct{}
	size  int
}

// BuildMembership consumes src fully and indexes every code point it yields.
// Duplicates are accepted.
func BuildMembership(src Source) *Membership {
	m := &Membership{}
	for {
		r, ok := src.Next()
		if !ok {
			return m
		}
		m.insert(r)
	}
}

func (m *Membership) insert(r rune) {
	if r >= 0 && r < denseLimit {
		bit := uint64(1) << (r % 64)
		if m.dense[r/64]&bit == 0 {
			m.dense[r/64] |= bit
			m.size++
		}
		return
	}
	if m.wide == nil {
		m.wide = make(map[rune]struct{})
	}
	if _, ok := m.wide[r]; !ok {
		m.wide[r] = struct{}{}
		m.size++
	}
}

// Contains reports whether r is in the set.
func (m *Membership) Contains(r rune) bool {
	if r >= 0 && r < denseLimit {
		return m.dense[r/64]&(uint64(1)<<(r%64)) != 0
	}
	_, ok := m.wide[r]
	return ok
}

// Keep applies the deletion policy: without complement members are
// dropped, with complement only members survive.
func (m *Membership) Keep(r rune, complement bool) bool {
	return m.Contains(r) == complement
}

// Len returns the number of distinct code points in the set.
func (m *Membership) Len() int { return m.size }
