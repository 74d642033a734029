package mapping

import "errors"

// ErrDegenerate indicates that set2 yielded no characters, leaving set1
// with nothing to translate to.
var ErrDegenerate = errors.New("set2 must expand to at least one character")

// Table maps source code points to their replacements.
type Table struct {
	dense   [denseLimit]rune
	present [denseLimit / 64]uint64
	wide    map[rune]rune
	size    int
}

// BuildTable pairs each code point of src with the next code point of dst.
// Once dst is exhausted its last code point is reused for the rest of src.
// When src repeats a code point the later pairing wins.
func BuildTable(src, dst Source) (*Table, error) {
	t := &Table{}
	var (
		last      rune
		pulled    bool
		exhausted bool
	)
	for {
		r, ok := src.Next()
		if !ok {
			return t, nil
		}
		if !exhausted {
			if next, ok := dst.Next(); ok {
				last, pulled = next, true
			} else {
				exhausted = true
			}
		}
		if !pulled {
			return nil, ErrDegenerate
		}
		t.insert(r, last)
	}
}

func (t *Table) insert(from, to rune) {
	if from >= 0 && from < denseLimit {
		bit := uint64(1) << (from % 64)
		if t.present[from/64]&bit == 0 {
			t.present[from/64] |= bit
			t.size++
		}
		t.dense[from] = to
		return
	}
	if t.wide == nil {
		t.wide = make(map[rune]rune)
	}
	if _, ok := t.wide[from]; !ok {
		t.size++
	}
	t.wide[from] = to
}

// Lookup returns the replacement for r, or false if r is not a key.
func (t *Table) Lookup(r rune) (rune, bool) {
	if r >= 0 && r < denseLimit {
		if t.present[r/64]&(uint64(1)<<(r%64)) == 0 {
			return r, false
		}
		return t.dense[r], true
	}
	to, ok := t.wide[r]
	if !ok {
		return r, false
	}
	return to, true
}

// Map returns the replacement for r, or r itself when it is not a key.
func (t *Table) Map(r rune) rune {
	to, _ := t.Lookup(r)
	return to
}

// Len returns the number of distinct source code points.
func (t *Table) Len() int { return t.size }
