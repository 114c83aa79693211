package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/cinfoposte/unicef-jobs/internal/config"
)

// ErrExhausted means no candidate URL produced a usable feed.
var ErrExhausted = errors.New("no candidate url returned a valid rss feed")

// maxBody caps a feed download; the real feed is well under 1 MB.
const maxBody = 32 << 20

type Result struct {
	Body []byte
	URL  string
}

type Fetcher struct {
	urls      []string
	userAgent string
	accept    string
	timeout   time.Duration
	hc        *http.Client
	limiter   *HostLimiter
}

func New(cfg config.Feed) *Fetcher {
	return &Fetcher{
		urls:      append([]string(nil), cfg.URLs...),
		userAgent: cfg.UserAgent,
		accept:    cfg.Accept,
		timeout:   cfg.Timeout(),
		hc:        &http.Client{Timeout: cfg.Timeout()},
		limiter:   NewHostLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// Fetch tries each candidate in order and returns the first one that
// answers 200 with something that looks like RSS holding at least one item.
func (f *Fetcher) Fetch(ctx context.Context) (Result, error) {
	var errs []error
	for _, u := range f.urls {
		log.Info().Str("url", u).Msg("trying feed")
		body, err := f.try(ctx, u)
		if err != nil {
			log.Warn().Str("url", u).Err(err).Msg("skipping feed")
			errs = append(errs, fmt.Errorf("%s: %w", u, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		log.Info().Str("url", u).Str("size", humanize.Bytes(uint64(len(body)))).Msg("feed ok")
		return Result{Body: body, URL: u}, nil
	}
	if len(errs) == 0 {
		return Result{}, ErrExhausted
	}
	return Result{}, fmt.Errorf("%w: %w", ErrExhausted, errors.Join(errs...))
}

func (f *Fetcher) try(ctx context.Context, u string) ([]byte, error) {
	if err := f.limiter.WaitURL(ctx, u); err != nil {
		return nil, err
	}

	rctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if f.accept != "" {
		req.Header.Set("Accept", f.accept)
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	ct := res.Header.Get("Content-Type")
	if !looksLikeXML(ct, body) {
		return nil, fmt.Errorf("content-type %q does not look like xml", ct)
	}
	if !bytes.Contains(bytes.ToLower(body), []byte("<item")) {
		return nil, errors.New("no <item> elements found")
	}
	return body, nil
}

func looksLikeXML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "xml") || strings.Contains(contentType, "rss") {
		return true
	}
	preview := body
	if len(preview) > 500 {
		preview = preview[:500]
	}
	return bytes.Contains(bytes.ToLower(preview), []byte("<rss"))
}
