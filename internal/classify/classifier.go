package classify

import (
	"strings"

	"github.com/cinfoposte/unicef-jobs/internal/config"
	"github.com/cinfoposte/unicef-jobs/internal/domain"
)

// listing is the classifier's view of one searchable text.
type listing struct {
	text   string   // Normalize output
	grades []string // extracted after NormalizeGrade
}

type guard struct {
	match  func(l listing) bool
	result domain.Result
}

// Classifier decides whether a listing belongs in the filtered feed.
// It is immutable after New and safe to share.
type Classifier struct {
	consultancy   []string
	internship    []string
	included      map[string]bool
	noVariants    map[string]bool
	excludePrefix []string

	guards []guard
}

func New(f config.Filters) *Classifier {
	c := &Classifier{
		consultancy:   append([]string(nil), f.ConsultancyKeywords...),
		internship:    append([]string(nil), f.InternshipKeywords...),
		included:      toSet(f.IncludedGrades),
		noVariants:    toSet(f.ExcludedNOVariants),
		excludePrefix: append([]string(nil), f.ExcludedGradePrefixes...),
	}

	// Order is the policy: first match wins.
	c.guards = []guard{
		// 1) Consultancy beats any grade
		{c.isConsultancy, domain.Result{Decision: domain.Exclude, Reason: domain.ReasonConsultancy}},
		// 2) Local / general service / national officer grades
		{c.hasExcludedGrade, domain.Result{Decision: domain.Exclude, Reason: domain.ReasonExcludedGrade}},
		// 3) Professional and director grades
		{c.hasIncludedGrade, domain.Result{Decision: domain.Include, Reason: domain.ReasonIncludedGrade}},
		// 4) Internships and fellowships carry no grade
		{c.isInternship, domain.Result{Decision: domain.Include, Reason: domain.ReasonInternship}},
	}
	return c
}

// Classify never fails; text without any signal is excluded.
func (c *Classifier) Classify(searchable string) domain.Result {
	norm := Normalize(searchable)
	l := listing{
		text:   norm,
		grades: ExtractGrades(NormalizeGrade(norm)),
	}

	for _, g := range c.guards {
		if g.match(l) {
			return g.result
		}
	}
	return domain.Result{Decision: domain.Exclude, Reason: domain.ReasonNoGradeMatch}
}

func (c *Classifier) isConsultancy(l listing) bool {
	return containsAny(l.text, c.consultancy)
}

func (c *Classifier) isInternship(l listing) bool {
	return containsAny(l.text, c.internship)
}

func (c *Classifier) hasExcludedGrade(l listing) bool {
	for _, g := range l.grades {
		if c.noVariants[g] {
			return true
		}
		for _, p := range c.excludePrefix {
			if strings.HasPrefix(g, p) {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) hasIncludedGrade(l listing) bool {
	for _, g := range l.grades {
		if c.included[g] {
			return true
		}
	}
	return false
}

// containsAny is a plain substring test; keyword padding does the boundary work.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func toSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
