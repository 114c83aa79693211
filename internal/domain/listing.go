package domain

import "time"

// RawListing is one <item> of the upstream feed, as parsed.
// Missing elements are left empty.
type RawListing struct {
	Title        string
	Link         string
	Description  string // html
	PublishedRaw string // pubDate or dc:date, unparsed
	Categories   []string
}

type Decision int

const (
	Exclude Decision = iota
	Include
)

func (d Decision) String() string {
	if d == Include {
		return "include"
	}
	return "exclude"
}

type Reason string

const (
	ReasonConsultancy   Reason = "consultancy"
	ReasonExcludedGrade Reason = "excluded-grade"
	ReasonIncludedGrade Reason = "included-grade"
	ReasonInternship    Reason = "internship"
	ReasonNoGradeMatch  Reason = "no-grade-match"
)

type Result struct {
	Decision Decision
	Reason   Reason
}

// OutputItem is an included listing ready to be written.
type OutputItem struct {
	Title       string
	Link        string
	Description string // plain text
	GUID        string
	Published   time.Time
	PubDate     string // RFC-2822
	SourceURL   string
	SourceName  string
}
