package rss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rss2 = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>UNICEF Careers</title>
  <link>https://jobs.unicef.org/</link>
  <description>Vacancies</description>
  <item>
    <title>Health Specialist, P-4</title>
    <link>https://jobs.unicef.org/en-us/job/581234</link>
    <description><![CDATA[<p>Job no: <b>581234</b></p>]]></description>
    <pubDate>Tue, 10 Feb 2026 08:30:00 GMT</pubDate>
    <category>Health</category>
    <category>Nairobi, Kenya</category>
  </item>
  <item>
    <title>Driver, GS-4</title>
    <link>https://jobs.unicef.org/en-us/job/581235</link>
  </item>
</channel>
</rss>`

const rss1 = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
  xmlns="http://purl.org/rss/1.0/"
  xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel rdf:about="https://jobs.unicef.org/">
    <title>UNICEF Careers</title>
    <link>https://jobs.unicef.org/</link>
    <description>Vacancies</description>
  </channel>
  <item rdf:about="https://jobs.unicef.org/en-us/job/1">
    <title>Internship Programme</title>
    <link>https://jobs.unicef.org/en-us/job/1</link>
    <description>Home-based</description>
    <dc:date>2026-02-12T10:15:30Z</dc:date>
  </item>
</rdf:RDF>`

func TestParseRSS2(t *testing.T) {
	listings, err := Parse(strings.NewReader(rss2))
	require.NoError(t, err)
	require.Len(t, listings, 2)

	l := listings[0]
	assert.Equal(t, "Health Specialist, P-4", l.Title)
	assert.Equal(t, "https://jobs.unicef.org/en-us/job/581234", l.Link)
	assert.Contains(t, l.Description, "<b>581234</b>")
	assert.Equal(t, "Tue, 10 Feb 2026 08:30:00 GMT", l.PublishedRaw)
	assert.Equal(t, []string{"Health", "Nairobi, Kenya"}, l.Categories)

	// missing elements stay empty
	assert.Equal(t, "Driver, GS-4", listings[1].Title)
	assert.Empty(t, listings[1].Description)
	assert.Empty(t, listings[1].PublishedRaw)
	assert.Empty(t, listings[1].Categories)
}

func TestParseRSS1DublinCoreDate(t *testing.T) {
	listings, err := Parse(strings.NewReader(rss1))
	require.NoError(t, err)
	require.Len(t, listings, 1)

	assert.Equal(t, "Internship Programme", listings[0].Title)
	assert.Equal(t, "https://jobs.unicef.org/en-us/job/1", listings[0].Link)
	assert.Equal(t, "2026-02-12T10:15:30Z", listings[0].PublishedRaw)
}

func TestParseRejectsNonFeed(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><body>not a feed</body></html>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse feed")
}

func TestParseCategoriesOnlyFromCategoryElements(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
  <title>UNICEF Careers</title>
  <link>https://jobs.unicef.org/</link>
  <description>Vacancies</description>
  <item>
    <title>Health Specialist, P-4</title>
    <link>https://jobs.unicef.org/en-us/job/581234</link>
    <category>Health</category>
    <dc:subject>Consultancy</dc:subject>
    <itunes:keywords>intern, GS-5</itunes:keywords>
  </item>
  <item>
    <title>Driver, GS-4</title>
    <link>https://jobs.unicef.org/en-us/job/581235</link>
    <dc:subject>Transport</dc:subject>
  </item>
</channel>
</rss>`
	listings, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, []string{"Health"}, listings[0].Categories)
	assert.Empty(t, listings[1].Categories)
}
