package streaming

import (
	"unicode/utf8"

	"github.com/helixml/textutil/domain/mapping"
	"golang.org/x/text/transform"
)

// Deleter is a transform.Transformer that drops characters according to a
// membership index. Bytes that are not valid UTF-8 are never members.
type Deleter struct {
	transform.NopResetter
	index      *mapping.Membership
	complement bool
}

// NewDeleter creates a Deleter. With complement set only members survive.
func NewDeleter(index *mapping.Membership, complement bool) *Deleter {
	return &Deleter{index: index, complement: complement}
}

// Transform implements transform.Transformer.
func (d *Deleter) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	keep := func(r rune) (rune, bool) {
		return r, d.index.Keep(r, d.complement)
	}
	return transformRunes(dst, src, atEOF, keep, !d.complement)
}

// Translator is a transform.Transformer that replaces every character that
// is a key of a translation table. Everything else, including invalid UTF-8,
// passes through unchanged.
type Translator struct {
	transform.NopResetter
	table *mapping.Table
}

// NewTranslator creates a Translator.
func NewTranslator(table *mapping.Table) *Translator {
	return &Translator{table: table}
}

// Transform implements transform.Transformer.
func (t *Translator) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	remap := func(r rune) (rune, bool) {
		return t.table.Map(r), true
	}
	return transformRunes(dst, src, atEOF, remap, true)
}

// transformRunes decodes src one character at a time, passes it through fn
// and encodes whatever fn keeps into dst. A character split across the end
// of src is left for the next call unless atEOF.
func transformRunes(dst, src []byte, atEOF bool, fn func(rune) (rune, bool), keepInvalid bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		r, size := rune(c), 1
		if c >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError && size == 1 {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				if keepInvalid {
					if nDst >= len(dst) {
						return nDst, nSrc, transform.ErrShortDst
					}
					dst[nDst] = c
					nDst++
				}
				nSrc++
				continue
			}
		}

		out, keep := fn(r)
		if keep {
			n := utf8.RuneLen(out)
			if n < 0 {
				out, n = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
			}
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], out)
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
