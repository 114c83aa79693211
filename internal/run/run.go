package run

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/cinfoposte/unicef-jobs/internal/build"
	"github.com/cinfoposte/unicef-jobs/internal/classify"
	"github.com/cinfoposte/unicef-jobs/internal/domain"
	"github.com/cinfoposte/unicef-jobs/internal/fetch"
	"github.com/cinfoposte/unicef-jobs/internal/rss"
)

type Source interface {
	Fetch(ctx context.Context) (fetch.Result, error)
}

type Sink interface {
	Write(items []domain.OutputItem) error
}

type Runner struct {
	Source     Source
	Classifier *classify.Classifier
	Builder    *build.Builder
	Sink       Sink
	MaxItems   int
}

// Run performs one fetch, classify, write cycle. Any error leaves the
// previous output untouched.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	res, err := r.Source.Fetch(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch: %w", err)
	}

	listings, err := rss.Parse(bytes.NewReader(res.Body))
	if err != nil {
		return Summary{}, err
	}
	log.Info().Int("items", len(listings)).Str("url", res.URL).Msg("parsed feed")

	items, sum := r.Select(listings, res.URL)

	if err := r.Sink.Write(items); err != nil {
		return sum, fmt.Errorf("write output: %w", err)
	}
	return sum, nil
}

// Select classifies listings and returns the newest MaxItems included ones,
// newest first. Listings with equal dates keep feed order.
func (r *Runner) Select(listings []domain.RawListing, sourceURL string) ([]domain.OutputItem, Summary) {
	var (
		items []domain.OutputItem
		tally reasonTally
	)

	for _, l := range listings {
		res := r.Classifier.Classify(build.SearchableText(l))
		if res.Decision == domain.Exclude {
			tally.add(res.Reason)
			if res.Reason == domain.ReasonNoGradeMatch {
				// unrecognised listings are dropped silently otherwise; this
				// is where upstream format drift shows up
				log.Debug().Str("title", l.Title).Str("link", l.Link).Msg("no grade or keyword match")
			}
			continue
		}
		items = append(items, r.Builder.OutputItem(l, sourceURL))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
	if r.MaxItems > 0 && len(items) > r.MaxItems {
		items = items[:r.MaxItems]
	}

	sum := Summary{
		SourceItems: len(listings),
		Included:    len(items),
		Excluded:    tally.total(),
		Reasons:     tally.mostCommon(),
	}
	return items, sum
}
