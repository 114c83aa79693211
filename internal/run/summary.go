package run

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cinfoposte/unicef-jobs/internal/domain"
)

type ReasonCount struct {
	Reason domain.Reason
	Count  int
}

type Summary struct {
	SourceItems int
	Included    int
	Excluded    int
	Reasons     []ReasonCount // most common first
	OutputPath  string
}

// reasonTally counts exclusion reasons and remembers first-seen order,
// which breaks ties in mostCommon.
type reasonTally struct {
	order  []domain.Reason
	counts map[domain.Reason]int
}

func (t *reasonTally) add(r domain.Reason) {
	if t.counts == nil {
		t.counts = make(map[domain.Reason]int)
	}
	if _, ok := t.counts[r]; !ok {
		t.order = append(t.order, r)
	}
	t.counts[r]++
}

func (t *reasonTally) total() int {
	n := 0
	for _, c := range t.counts {
		n += c
	}
	return n
}

func (t *reasonTally) mostCommon() []ReasonCount {
	out := make([]ReasonCount, 0, len(t.order))
	for _, r := range t.order {
		out = append(out, ReasonCount{Reason: r, Count: t.counts[r]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func PrintSummary(w io.Writer, s Summary) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "UNICEF Jobs – Filter Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Source items:   %d\n", s.SourceItems)
	fmt.Fprintf(w, "  Included:       %d\n", s.Included)
	fmt.Fprintf(w, "  Excluded:       %d\n", s.Excluded)
	if len(s.Reasons) > 0 {
		fmt.Fprintln(w, "  Exclusion reasons:")
		for _, rc := range s.Reasons {
			fmt.Fprintf(w, "    %-25s %d\n", rc.Reason, rc.Count)
		}
	}
	if s.OutputPath != "" {
		fmt.Fprintf(w, "  Output file:    %s\n", s.OutputPath)
	}
	fmt.Fprintln(w, rule)
}
