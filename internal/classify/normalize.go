package classify

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// dash variants folded to '-': hyphen, non-breaking hyphen, figure dash,
// en dash, em dash, horizontal bar, minus sign, small and full-width
// hyphen-minus.
var dashes = map[rune]bool{
	'\u2010': true,
	'\u2011': true,
	'\u2012': true,
	'\u2013': true,
	'\u2014': true,
	'\u2015': true,
	'\u2212': true,
	'\uFE58': true,
	'\uFE63': true,
	'\uFF0D': true,
}

func foldDash(r rune) rune {
	if dashes[r] {
		return '-'
	}
	return r
}

// Normalize upper-cases s, folds every dash variant to an ASCII hyphen and
// collapses whitespace runs to single spaces.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser keeps state, so it is built per call.
	t := transform.Chain(cases.Upper(language.Und), runes.Map(foldDash))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = strings.Map(foldDash, strings.ToUpper(s))
	}
	return strings.Join(strings.Fields(out), " ")
}

var (
	twoLetterGrade = regexp.MustCompile(`\b(GS|NO|SB|LS|LSC)(\d)\b`)
	oneLetterGrade = regexp.MustCompile(`\b([PDG])(\d)\b`)
)

// NormalizeGrade inserts the missing hyphen in grade codes written without
// one: P4 -> P-4, GS6 -> GS-6. Only the literal prefixes are rewritten, so
// PA4 stays PA4. Expects Normalize output.
func NormalizeGrade(s string) string {
	s = twoLetterGrade.ReplaceAllString(s, "${1}-${2}")
	return oneLetterGrade.ReplaceAllString(s, "${1}-${2}")
}
