package fetcher

import (
	"book_price_finder/config"
	"book_price_finder/utils"
	"context"
	"fmt"
	"log/slog"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher downloads pages with a fresh collector per call, so concurrent
// fetches share nothing but the read-only config.
type CollyFetcher struct {
	cfg *config.Config
}

func NewCollyFetcher(cfg *config.Config) *CollyFetcher {
	return &CollyFetcher{cfg: cfg}
}

// newCollector builds a collector for a single fetch. The proxy, when set,
// applies to every catalog.
func (f *CollyFetcher) newCollector() (*colly.Collector, error) {
	c := colly.NewCollector(colly.UserAgent(f.cfg.Fetch.UserAgent))
	c.SetRequestTimeout(f.cfg.Fetch.Timeout)

	if f.cfg.Fetch.ProxyUrl == "" {
		return c, nil
	}
	if err := c.SetProxy(f.cfg.Fetch.ProxyUrl); err != nil {
		return nil, fmt.Errorf("set proxy %q: %w", f.cfg.Fetch.ProxyUrl, err)
	}
	return c, nil
}

// Fetch returns the raw body of a GET to url. Only 200, 201 and 202 count as
// success (colly's rule without ParseHTTPErrorResponse); any other status,
// transport errors and the client request timeout come back as ErrFetchFailed.
// A done ctx abandons the request and returns ErrFetchAborted.
func (f *CollyFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	op := "CollyFetcher.Fetch"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchAborted, err)
	}

	c, err := f.newCollector()
	if err != nil {
		slog.Error("Failed to build collector", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	var body []byte
	c.OnRequest(func(r *colly.Request) {
		slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", r.URL.String()))
	})
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	done := make(chan error, 1)
	go func() {
		done <- c.Visit(url)
	}()

	select {
	case <-ctx.Done():
		slog.Warn(
			"Fetch abandoned",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", url),
			slog.String("err", ctx.Err().Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrFetchAborted, ctx.Err())
	case err = <-done:
	}

	if err != nil {
		slog.Warn(
			"Error while visiting url",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", url),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return body, nil
}
