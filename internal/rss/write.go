package rss

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cinfoposte/unicef-jobs/internal/build"
	"github.com/cinfoposte/unicef-jobs/internal/config"
	"github.com/cinfoposte/unicef-jobs/internal/domain"
)

const atomNS = "http://www.w3.org/2005/Atom"

type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Language    string   `xml:"language"`
	PubDate     string   `xml:"pubDate"`
	AtomLink    atomLink `xml:"atom:link"`
	Items       []item   `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	GUID        guid    `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
	Source      *source `xml:"source,omitempty"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type source struct {
	URL  string `xml:"url,attr"`
	Name string `xml:",chardata"`
}

// Marshal renders the RSS 2.0 document, XML declaration included,
// indented by two spaces.
func Marshal(ch config.Channel, items []domain.OutputItem, now time.Time) ([]byte, error) {
	doc := document{
		Version: "2.0",
		AtomNS:  atomNS,
		Channel: channel{
			Title:       ch.Title,
			Link:        ch.Link,
			Description: ch.Description,
			Language:    ch.Language,
			PubDate:     build.FormatRFC2822(now.UTC()),
			AtomLink: atomLink{
				Href: ch.SelfLink,
				Rel:  "self",
				Type: "application/rss+xml",
			},
		},
	}
	for _, it := range items {
		x := item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			GUID:        guid{IsPermaLink: "false", Value: it.GUID},
			PubDate:     it.PubDate,
		}
		if it.SourceURL != "" {
			x.Source = &source{URL: it.SourceURL, Name: it.SourceName}
		}
		doc.Channel.Items = append(doc.Channel.Items, x)
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(b)+1)
	out = append(out, xml.Header...)
	out = append(out, b...)
	return append(out, '\n'), nil
}

// Writer owns the output file.
type Writer struct {
	Path    string
	Channel config.Channel
	Now     func() time.Time
}

func NewWriter(path string, ch config.Channel) *Writer {
	return &Writer{Path: path, Channel: ch, Now: time.Now}
}

// Write replaces the output file in one rename; readers never see a
// partial document and a failed run leaves the previous file in place.
func (w *Writer) Write(items []domain.OutputItem) error {
	b, err := Marshal(w.Channel, items, w.Now())
	if err != nil {
		return err
	}
	return writeAtomic(w.Path, b)
}

func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
