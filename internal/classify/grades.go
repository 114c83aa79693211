package classify

import "regexp"

var (
	gradeToken      = regexp.MustCompile(`\b(?:P|D|G|GS|NO|SB|LSC|LS)-\d+\b`)
	noSubGradeToken = regexp.MustCompile(`\b(?:NO-[A-D]|NO[A-D])\b`)
)

// ExtractGrades returns every grade token in s: hyphenated codes first, then
// national officer sub-grades (NO-A..NO-D, NOA..NOD), each group in
// left-to-right order. Duplicates are kept.
func ExtractGrades(s string) []string {
	grades := gradeToken.FindAllString(s, -1)
	return append(grades, noSubGradeToken.FindAllString(s, -1)...)
}
