package charset

// Sequence is a forward-only cursor over an expanded set. It is consumed
// once and cannot be rewound; expand the Set again for a second pass.
type Sequence struct {
	segs    []segment
	idx     int
	cur     rune
	left    int
	started bool
}

// Next returns the next code point, or false once the sequence is exhausted.
func (s *Sequence) Next() (rune, bool) {
	for s.idx < len(s.segs) {
		seg := s.segs[s.idx]
		if !s.started {
			s.cur = seg.lo
			s.left = seg.repeat
			s.started = true
		}
		if s.left > 0 {
			s.left--
			return s.cur, true
		}
		if s.cur < seg.hi && seg.repeat > 0 {
			s.cur++
			s.left = seg.repeat
			continue
		}
		s.idx++
		s.started = false
	}
	return 0, false
}
