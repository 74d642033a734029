// Package charset parses tr-style set specifications and expands them into
// ordered sequences of code points.
//
// A specification is read left to right. Supported constructs:
//
//	\\ \a \b \f \n \r \t \v   control escapes
//	\NNN                       octal code point (one to three digits)
//	X-Y                        ascending range from X to Y
//	[:class:]                  ASCII character class
//	[=c=]                      equivalence class (identity)
//	[c*n]                      c repeated n times (octal when n has a leading 0)
//	[c*]                       c repeated to fill set2 up to the length of set1
//
// Any other character, including a '[' that does not open a valid
// construct, stands for itself.
package charset

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrInvalidRange indicates a range whose end precedes its start.
	ErrInvalidRange = errors.New("range endpoints are in reverse collating sequence order")

	// ErrInvalidRepeat indicates a repeat count that cannot be parsed.
	ErrInvalidRepeat = errors.New("invalid repeat count")

	// ErrUnknownClass indicates an unrecognised [:class:] name.
	ErrUnknownClass = errors.New("invalid character class")

	// ErrMisplacedFill indicates a [c*] construct where it is not allowed.
	ErrMisplacedFill = errors.New("the [c*] repeat construct may only appear once, in set2")

	// ErrInvalidUTF8 indicates a specification that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("set specification is not valid UTF-8")
)

// segment expands to every code point in lo..hi, each repeated repeat times.
type segment struct {
	lo, hi rune
	repeat int
}

func (s segment) len() int {
	return int(s.hi-s.lo+1) * s.repeat
}

// Set is a parsed set specification. It is immutable; every call to Expand
// yields a fresh, identical sequence.
type Set struct {
	spec  string
	segs  []segment
	fixed int
	fill  int
}

// Spec returns the specification the set was parsed from.
func (s Set) Spec() string { return s.spec }

// Len returns the number of code points the set expands to, not counting
// a fill construct.
func (s Set) Len() int { return s.fixed }

// HasFill reports whether the set contains a [c*] construct.
func (s Set) HasFill() bool { return s.fill >= 0 }

// IsEmpty reports whether the set can never yield a code point.
func (s Set) IsEmpty() bool { return s.fixed == 0 && s.fill < 0 }

// ExpandOption configures Expand.
type ExpandOption func(*expandConfig)

type expandConfig struct {
	fillTo int
}

// FillTo sets the length a [c*] construct pads the expansion up to.
// It is usually the length of set1.
func FillTo(n int) ExpandOption {
	return func(c *expandConfig) { c.fillTo = n }
}

// Expand returns a new single-pass cursor over the set's code points.
func (s Set) Expand(opts ...ExpandOption) *Sequence {
	var cfg expandConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	segs := make([]segment, len(s.segs))
	copy(segs, s.segs)
	if s.fill >= 0 {
		segs[s.fill].repeat = max(cfg.fillTo-s.fixed, 0)
	}
	return &Sequence{segs: segs}
}

// ParseOption configures Parse.
type ParseOption func(*parser)

// AllowFill permits a single [c*] construct. Only set2 accepts it.
func AllowFill() ParseOption {
	return func(p *parser) { p.allowFill = true }
}

// Parse parses a set specification.
func Parse(spec string, opts ...ParseOption) (Set, error) {
	if !utf8.ValidString(spec) {
		return Set{}, ErrInvalidUTF8
	}

	p := &parser{src: []rune(spec), fill: -1}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.parse(); err != nil {
		return Set{}, err
	}

	set := Set{spec: spec, segs: p.segs, fill: p.fill}
	for i, seg := range p.segs {
		if i != p.fill {
			set.fixed += seg.len()
		}
	}
	return set, nil
}

type parser struct {
	src       []rune
	pos       int
	allowFill bool
	segs      []segment
	fill      int
}

func (p *parser) parse() error {
	for p.pos < len(p.src) {
		if p.src[p.pos] == '[' {
			ok, err := p.bracket()
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}

		lo := p.char()
		// A '-' is only a range operator when something follows it.
		if p.pos+1 < len(p.src) && p.src[p.pos] == '-' {
			p.pos++
			hi := p.char()
			if hi < lo {
				return fmt.Errorf("%w: %s-%s", ErrInvalidRange, strconv.QuoteRune(lo), strconv.QuoteRune(hi))
			}
			p.add(segment{lo: lo, hi: hi, repeat: 1})
			continue
		}
		p.add(segment{lo: lo, hi: lo, repeat: 1})
	}
	return nil
}

func (p *parser) add(seg segment) {
	p.segs = append(p.segs, seg)
}

// char consumes one possibly escaped character.
func (p *parser) char() rune {
	c := p.src[p.pos]
	p.pos++
	if c != '\\' {
		return c
	}
	if p.pos >= len(p.src) {
		return '\\'
	}

	c = p.src[p.pos]
	p.pos++
	switch c {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v := c - '0'
		for i := 1; i < 3 && p.pos < len(p.src) && isOctal(p.src[p.pos]); i++ {
			next := v*8 + p.src[p.pos] - '0'
			if next > 0o377 {
				break
			}
			v = next
			p.pos++
		}
		return v
	default:
		return c
	}
}

// bracket tries the [:class:], [=c=] and [c*n] constructs at p.pos. It
// reports false, leaving p.pos untouched, when none of them match.
func (p *parser) bracket() (bool, error) {
	start := p.pos
	if start+1 >= len(p.src) {
		return false, nil
	}

	switch p.src[start+1] {
	case ':':
		if end := p.find(start+2, ':', ']'); end > start+2 {
			name := string(p.src[start+2 : end])
			spans, ok := classes[name]
			if !ok {
				return false, fmt.Errorf("%w: %q", ErrUnknownClass, name)
			}
			for _, sp := range spans {
				p.add(segment{lo: sp.lo, hi: sp.hi, repeat: 1})
			}
			p.pos = end + 2
			return true, nil
		}
	case '=':
		p.pos = start + 2
		if p.pos < len(p.src) {
			c := p.char()
			if p.pos+1 < len(p.src) && p.src[p.pos] == '=' && p.src[p.pos+1] == ']' {
				p.add(segment{lo: c, hi: c, repeat: 1})
				p.pos += 2
				return true, nil
			}
		}
	default:
		p.pos = start + 1
		c := p.char()
		if p.pos < len(p.src) && p.src[p.pos] == '*' {
			digits := p.pos + 1
			end := digits
			for end < len(p.src) && p.src[end] >= '0' && p.src[end] <= '9' {
				end++
			}
			if end < len(p.src) && p.src[end] == ']' {
				n, err := parseCount(string(p.src[digits:end]))
				if err != nil {
					return false, err
				}
				if n == 0 {
					if err := p.markFill(); err != nil {
						return false, err
					}
				}
				p.add(segment{lo: c, hi: c, repeat: n})
				p.pos = end + 1
				return true, nil
			}
		}
	}

	p.pos = start
	return false, nil
}

func (p *parser) markFill() error {
	if !p.allowFill || p.fill >= 0 {
		return ErrMisplacedFill
	}
	p.fill = len(p.segs)
	return nil
}

// find returns the index of the first a immediately followed by b at or
// after from, or -1.
func (p *parser) find(from int, a, b rune) int {
	for i := from; i+1 < len(p.src); i++ {
		if p.src[i] == a && p.src[i+1] == b {
			return i
		}
	}
	return -1
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	base := 10
	if s[0] == '0' {
		base = 8
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRepeat, s)
	}
	return int(n), nil
}

func isOctal(c rune) bool {
	return c >= '0' && c <= '7'
}
