package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s *Sequence) string {
	var b strings.Builder
	for {
		r, ok := s.Next()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}

func expand(t *testing.T, spec string, opts ...ParseOption) string {
	t.Helper()
	set, err := Parse(spec, opts...)
	require.NoError(t, err)
	return drain(set.Expand())
}

func TestParse_Expansion(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"empty", "", ""},
		{"literal run", "abc", "abc"},
		{"range", "a-e", "abcde"},
		{"single point range", "x-x", "x"},
		{"trailing dash", "a-", "a-"},
		{"leading dash", "-a", "-a"},
		{"chained dash", "a-c-e", "abc-e"},
		{"unicode range", "α-γ", "αβγ"},
		{"control escapes", `\n\t\\`, "\n\t\\"},
		{"bell and vertical tab", `\a\v`, "\a\v"},
		{"octal escapes", `\101\102`, "AB"},
		{"octal nul", `\0`, "\x00"},
		{"octal stops before overflow", `\400`, " 0"},
		{"escaped range endpoints", `\101-\103`, "ABC"},
		{"escaped dash is literal", `a\-c`, "a-c"},
		{"unknown escape is literal", `\q`, "q"},
		{"trailing backslash", `a\`, `a\`},
		{"digit class", "[:digit:]", "0123456789"},
		{"xdigit class", "[:xdigit:]", "0123456789ABCDEFabcdef"},
		{"blank class", "[:blank:]", "\t "},
		{"equivalence class", "[=e=]", "e"},
		{"repeat", "[a*3]", "aaa"},
		{"octal repeat", "[a*010]", "aaaaaaaa"},
		{"repeat between literals", "x[y*2]z", "xyyz"},
		{"lone bracket", "[", "["},
		{"unclosed bracket", "[a", "[a"},
		{"non digit repeat is literal", "[a*9x]", "[a*9x]"},
		{"empty class name is literal", "[::]", "[::]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expand(t, tt.spec))
		})
	}
}

func TestParse_Classes(t *testing.T) {
	for name, spans := range classes {
		t.Run(name, func(t *testing.T) {
			got := []rune(expand(t, "[:"+name+":]"))

			want := 0
			for _, sp := range spans {
				want += int(sp.hi - sp.lo + 1)
			}
			require.Len(t, got, want)

			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1], got[i], "class members must be ascending")
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		opts []ParseOption
		want error
	}{
		{"reversed range", "z-a", nil, ErrInvalidRange},
		{"unknown class", "[:vowel:]", nil, ErrUnknownClass},
		{"bad octal repeat", "[a*08]", nil, ErrInvalidRepeat},
		{"repeat overflow", "[a*99999999999]", nil, ErrInvalidRepeat},
		{"fill in set1", "[a*]", nil, ErrMisplacedFill},
		{"zero repeat in set1", "[a*0]", nil, ErrMisplacedFill},
		{"two fills", "[a*][b*]", []ParseOption{AllowFill()}, ErrMisplacedFill},
		{"invalid utf8", "a\xffb", nil, ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSet_Fill(t *testing.T) {
	set, err := Parse("x[y*]z", AllowFill())
	require.NoError(t, err)

	assert.True(t, set.HasFill())
	assert.Equal(t, 2, set.Len())

	assert.Equal(t, "xyyyz", drain(set.Expand(FillTo(5))))
	assert.Equal(t, "xz", drain(set.Expand()), "no fill target expands the fill to nothing")
	assert.Equal(t, "xz", drain(set.Expand(FillTo(1))), "fill never goes negative")
}

func TestSet_Len(t *testing.T) {
	set, err := Parse("a-z[:digit:][x*5]")
	require.NoError(t, err)

	assert.Equal(t, 41, set.Len())
	assert.False(t, set.HasFill())
	assert.Equal(t, set.Len(), len([]rune(drain(set.Expand()))))
}

func TestSet_IsEmpty(t *testing.T) {
	empty, err := Parse("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	zero, err := Parse("[a*]", AllowFill())
	require.NoError(t, err)
	assert.False(t, zero.IsEmpty(), "a fill may still yield characters")

	nonEmpty, err := Parse("a")
	require.NoError(t, err)
	assert.False(t, nonEmpty.IsEmpty())
	assert.Equal(t, "a", nonEmpty.Spec())
}

func TestSet_ExpandIsPure(t *testing.T) {
	set, err := Parse(`a-f[:upper:]\n[q*4]`)
	require.NoError(t, err)

	first := drain(set.Expand())
	second := drain(set.Expand())
	assert.Equal(t, first, second)
}

func TestSequence_ExhaustedStaysExhausted(t *testing.T) {
	set, err := Parse("ab")
	require.NoError(t, err)

	seq := set.Expand()
	assert.Equal(t, "ab", drain(seq))

	_, ok := seq.Next()
	assert.False(t, ok)
}
