package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate reports every problem in cfg at once.
func Validate(cfg Config) error {
	var errs []string

	if len(cfg.Feed.URLs) == 0 {
		errs = append(errs, "feed.urls must have at least 1 url")
	}
	for i, raw := range cfg.Feed.URLs {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("feed.urls[%d] is not an http(s) url: %q", i, raw))
		}
	}
	if cfg.Feed.TimeoutSeconds <= 0 {
		errs = append(errs, "feed.timeout_seconds must be > 0")
	}
	if cfg.Feed.RequestsPerSecond < 0 {
		errs = append(errs, "feed.requests_per_second must be >= 0")
	}

	if strings.TrimSpace(cfg.Output.Path) == "" {
		errs = append(errs, "output.path is required")
	}
	if cfg.Output.MaxItems <= 0 {
		errs = append(errs, "output.max_items must be > 0")
	}

	if strings.TrimSpace(cfg.Channel.Title) == "" {
		errs = append(errs, "channel.title is required")
	}
	if strings.TrimSpace(cfg.Channel.Link) == "" {
		errs = append(errs, "channel.link is required")
	}

	checkList := func(name string, xs []string) {
		if len(xs) == 0 {
			errs = append(errs, fmt.Sprintf("%s must have at least 1 term", name))
		}
		for i, x := range xs {
			if strings.TrimSpace(x) == "" {
				errs = append(errs, fmt.Sprintf("%s[%d] cannot be empty", name, i))
			} else if x != strings.ToUpper(x) {
				errs = append(errs, fmt.Sprintf("%s[%d] must be upper-case: %q", name, i, x))
			}
		}
	}

	checkList("filters.consultancy_keywords", cfg.Filters.ConsultancyKeywords)
	checkList("filters.internship_keywords", cfg.Filters.InternshipKeywords)
	checkList("filters.included_grades", cfg.Filters.IncludedGrades)
	checkList("filters.excluded_grade_prefixes", cfg.Filters.ExcludedGradePrefixes)
	checkList("filters.excluded_no_variants", cfg.Filters.ExcludedNOVariants)

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
