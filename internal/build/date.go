package build

import (
	"net/mail"
	"strings"
	"time"
)

// tried in order after RFC-2822; values without a zone are UTC
var isoLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05Z",
	"2006-01-02",
}

// RFC 5322 obsolete zone names, in hours east of UTC. time.Parse leaves
// these at offset zero unless the local zone happens to know them.
var obsoleteZones = map[string]int{
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
}

// ParsePublished never fails: empty or unparseable input yields now (UTC).
func ParsePublished(raw string, now func() time.Time) time.Time {
	if now == nil {
		now = time.Now
	}
	if raw == "" {
		return now().UTC()
	}

	if t, err := mail.ParseDate(raw); err == nil {
		return fixObsoleteZone(t)
	}

	s := strings.TrimSpace(raw)
	// the layouts carry no fractional seconds, but time.Parse would take them anyway
	if strings.Contains(s, ".") {
		return now().UTC()
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now().UTC()
}

func fixObsoleteZone(t time.Time) time.Time {
	name, off := t.Zone()
	hours, ok := obsoleteZones[name]
	if !ok || off != 0 {
		return t
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.FixedZone(name, hours*3600))
}

// FormatRFC2822 renders t the way RSS pubDate expects, keeping its offset.
func FormatRFC2822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}
