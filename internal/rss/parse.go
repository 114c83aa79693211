package rss

import (
	"fmt"
	"io"

	"github.com/mmcdole/gofeed"
	gorss "github.com/mmcdole/gofeed/rss"

	"github.com/cinfoposte/unicef-jobs/internal/domain"
)

// Parse reads an RSS 1.0/2.0 (or Atom) document into raw listings, in
// document order. The date falls back to dc:date when pubDate is absent.
func Parse(r io.Reader) ([]domain.RawListing, error) {
	p := gofeed.NewParser()
	p.RSSTranslator = &categoryTranslator{}

	feed, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	out := make([]domain.RawListing, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil {
			continue
		}
		out = append(out, domain.RawListing{
			Title:        it.Title,
			Link:         it.Link,
			Description:  it.Description,
			PublishedRaw: it.Published,
			Categories:   append([]string(nil), it.Categories...),
		})
	}
	return out, nil
}

// categoryTranslator keeps only <category> text as item categories. The
// default translator also folds in dc:subject and itunes:keywords.
type categoryTranslator struct {
	gofeed.DefaultRSSTranslator
}

func (t *categoryTranslator) Translate(feed interface{}) (*gofeed.Feed, error) {
	src, ok := feed.(*gorss.Feed)
	if !ok {
		return nil, fmt.Errorf("feed did not match expected type of *rss.Feed")
	}
	out, err := t.DefaultRSSTranslator.Translate(src)
	if err != nil {
		return nil, err
	}
	if len(out.Items) != len(src.Items) {
		return out, nil
	}
	for i, it := range src.Items {
		if out.Items[i] == nil {
			continue
		}
		var cats []string
		for _, c := range it.Categories {
			if c != nil {
				cats = append(cats, c.Value)
			}
		}
		out.Items[i].Categories = cats
	}
	return out, nil
}
