package rss

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinfoposte/unicef-jobs/internal/config"
	"github.com/cinfoposte/unicef-jobs/internal/domain"
)

var testChannel = config.Channel{
	Title:       "UNICEF Job Vacancies (Filtered)",
	Link:        "https://jobs.unicef.org/",
	Description: "Filtered vacancies",
	Language:    "en",
	SelfLink:    "https://example.org/unicef_jobs.xml",
}

func testItems() []domain.OutputItem {
	return []domain.OutputItem{
		{
			Title:       "Health Specialist, P-4",
			Link:        "https://jobs.unicef.org/en-us/job/581234",
			Description: "Lead the health programme & more",
			GUID:        "1983110961650153",
			PubDate:     "Tue, 10 Feb 2026 08:30:00 +0000",
			SourceURL:   "https://careers.pageuppeople.com/671/cw/en/rss",
			SourceName:  "UNICEF Careers RSS",
		},
		{
			Title:       "Internship Programme",
			Link:        "https://jobs.unicef.org/en-us/job/1",
			Description: "Home-based",
			GUID:        "2819497684894126",
			PubDate:     "Mon, 09 Feb 2026 08:30:00 +0000",
		},
	}
}

func TestMarshal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b, err := Marshal(testChannel, testItems(), now)
	require.NoError(t, err)
	doc := string(b)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, doc, "\n  <channel>\n    <title>UNICEF Job Vacancies (Filtered)</title>")
	assert.Contains(t, doc, "<language>en</language>")
	assert.Contains(t, doc, "<pubDate>Sun, 01 Mar 2026 12:00:00 +0000</pubDate>")
	assert.Contains(t, doc, `<atom:link href="https://example.org/unicef_jobs.xml" rel="self" type="application/rss+xml">`)
	assert.Contains(t, doc, `<guid isPermaLink="false">1983110961650153</guid>`)
	assert.Contains(t, doc, `<source url="https://careers.pageuppeople.com/671/cw/en/rss">UNICEF Careers RSS</source>`)
	assert.Contains(t, doc, "Lead the health programme &amp; more")
	assert.Equal(t, 1, strings.Count(doc, "<source"), "item without source url has no source element")
	assert.Less(t, strings.Index(doc, "581234"), strings.Index(doc, "job/1<"), "item order kept")
}

func TestMarshalNoItems(t *testing.T) {
	b, err := Marshal(testChannel, nil, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "<item>")

	listings, err := Parse(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestMarshalRoundTrip(t *testing.T) {
	items := testItems()
	b, err := Marshal(testChannel, items, time.Now())
	require.NoError(t, err)

	listings, err := Parse(bytes.NewReader(b))
	require.NoError(t, err)
	require.Len(t, listings, len(items))
	for i, l := range listings {
		assert.Equal(t, items[i].Title, l.Title)
		assert.Equal(t, items[i].Link, l.Link)
		assert.Equal(t, items[i].PubDate, l.PublishedRaw)
	}
}

func TestWriterReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "unicef_jobs.xml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w := NewWriter(path, testChannel)
	w.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	require.NoError(t, w.Write(testItems()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<title>Health Specialist, P-4</title>")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriterCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "feed.xml")
	require.NoError(t, NewWriter(path, testChannel).Write(nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
