package lint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MyCarrier-DevOps/go-commitlint/internal/policy"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// quotedRe matches fragments that are exempt from case checks.
var quotedRe = regexp.MustCompile("`.*?`|\".*?\"|'.*?'")

// ensureCase reports whether raw is already written in the target case.
// Quoted and backticked fragments are ignored. Input that converts to an
// empty string or to something starting with a digit always passes.
func ensureCase(raw string, target policy.Case) bool {
	input := strings.TrimSpace(quotedRe.ReplaceAllString(raw, ""))
	transformed := toCase(input, target)
	if transformed == "" {
		return true
	}
	if r, _ := utf8.DecodeRuneInString(transformed); unicode.IsDigit(r) {
		return true
	}
	return transformed == input
}

// matchesAny reports whether raw is in at least one of the targets.
func matchesAny(raw string, targets []policy.Case) bool {
	for _, t := range targets {
		if ensureCase(raw, t) {
			return true
		}
	}
	return false
}

func toCase(s string, target policy.Case) string {
	switch target {
	case policy.CaseLower:
		return cases.Lower(language.Und).String(s)
	case policy.CaseUpper:
		return cases.Upper(language.Und).String(s)
	case policy.CaseSentence:
		return upperFirst(s)
	case policy.CaseCamel:
		return camelCase(s)
	case policy.CasePascal:
		return upperFirst(camelCase(s))
	case policy.CaseKebab:
		return joinLower(s, "-")
	case policy.CaseSnake:
		return joinLower(s, "_")
	case policy.CaseStart:
		ws := words(s)
		for i, w := range ws {
			ws[i] = upperFirst(w)
		}
		return strings.Join(ws, " ")
	default:
		return s
	}
}

func camelCase(s string) string {
	lower := cases.Lower(language.Und)
	var b strings.Builder
	for i, w := range words(s) {
		w = lower.String(w)
		if i > 0 {
			w = upperFirst(w)
		}
		b.WriteString(w)
	}
	return b.String()
}

func joinLower(s, sep string) string {
	lower := cases.Lower(language.Und)
	ws := words(s)
	for i, w := range ws {
		ws[i] = lower.String(w)
	}
	return strings.Join(ws, sep)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var apostrophes = strings.NewReplacer("'", "", "’", "")

// words splits s into words at punctuation, whitespace, lower-to-upper
// transitions ("fooBar"), the end of an acronym ("HTTPServer") and
// letter/digit boundaries.
func words(s string) []string {
	rs := []rune(apostrophes.Replace(s))

	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range rs {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(rs) && unicode.IsLower(rs[i+1]):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
