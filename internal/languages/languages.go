// Package languages validates the language codes accepted by the
// translation service. A Language can only be obtained through Parse, so
// holding one means the code has already been checked.
package languages

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// supported lists the codes the machine-translation service understands.
var supported = map[string]struct{}{}

func init() {
	for _, c := range strings.Fields(`
		af sq am ar hy az eu be bn bs bg ca ceb ny zh-cn zh-tw co hr cs da nl en eo et
		tl fi fr fy gl ka de el gu ht ha haw iw he hi hmn hu is ig id ga it ja jw kn kk
		km ko ku ky lo la lv lt lb mk mg ms ml mt mi mr mn my ne no or ps fa pl pt pa ro
		ru sm gd sr st sn sd si sk sl so es su sw sv tg ta te th tr uk ur ug uz vi cy xh
		yi yo zu`) {
		supported[c] = struct{}{}
	}
}

// Language is a validated, lower-case language code such as "fr" or "zh-cn".
type Language struct {
	code string
}

// Parse normalises s and returns the matching Language, or an error
// wrapping common.ErrInvalidLanguage when the code is not supported.
func Parse(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if !IsSupported(code) {
		return Language{}, fmt.Errorf("%w: %q", common.ErrInvalidLanguage, s)
	}
	return Language{code: code}, nil
}

// MustParse is like Parse but panics on unsupported codes.
func MustParse(s string) Language {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// IsSupported reports whether code (already lower-case) is supported.
func IsSupported(code string) bool {
	_, ok := supported[code]
	return ok
}

// Supported returns all supported codes, sorted.
func Supported() []string {
	out := make([]string, 0, len(supported))
	for c := range supported {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (l Language) Code() string   { return l.code }
func (l Language) String() string { return l.code }
func (l Language) IsZero() bool   { return l.code == "" }

// Name returns the English display name, falling back to the code for
// tags x/text does not know.
func (l Language) Name() string {
	tag, err := language.Parse(l.code)
	if err != nil {
		return l.code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return l.code
}
