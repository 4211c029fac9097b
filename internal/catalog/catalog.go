package catalog

import (
	"book_price_finder/config"
	"book_price_finder/internal/model"
	"book_price_finder/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

const (
	currencyTWD = "TWD"
	currencyHKD = "HKD"
)

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Catalog searches one book site by ISBN. The site specific parts are the
// listing node selector and extract, which reads one listing node.
type Catalog struct {
	name            string
	currency        string
	cfg             config.Catalog
	fetcher         Fetcher
	listingSelector string
	extract         func(item *goquery.Selection) model.Listing
}

func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) SearchURL(isbn model.ISBN) string {
	return c.cfg.BaseUrl + c.cfg.SearchPath + isbn.Normalized
}

// FetchListing never fails: any fetch or parse problem, a panic while reading
// the page included, turns into a single inactive result for this catalog.
func (c *Catalog) FetchListing(ctx context.Context, isbn model.ISBN) (results []model.SourceResult) {
	op := "Catalog.FetchListing"
	rqID := utils.GetRequestIDFromCtx(ctx)
	searchURL := c.SearchURL(isbn)

	defer func() {
		if r := recover(); r != nil {
			slog.Error(
				"catalog extraction panicked",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("source", c.name),
				slog.String("url", searchURL),
				slog.String("err", fmt.Errorf("%w: %v", ErrSourceUnavailable, r).Error()),
			)
			results = []model.SourceResult{model.NewInactiveResult(c.name)}
		}
	}()

	body, err := c.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		slog.Warn(
			"catalog fetch failed",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("source", c.name),
			slog.String("err", fmt.Errorf("%w: %w", ErrSourceUnavailable, err).Error()),
		)
		return []model.SourceResult{model.NewInactiveResult(c.name)}
	}

	results, err = c.Parse(body)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, ErrNoResult) {
			level = slog.LevelInfo
		}
		slog.Log(ctx, level,
			"catalog returned no listings",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("source", c.name),
			slog.String("url", searchURL),
			slog.String("err", err.Error()),
		)
		return []model.SourceResult{model.NewInactiveResult(c.name)}
	}

	slog.Info(
		"got listings",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("source", c.name),
		slog.Int("count", len(results)),
	)
	return results
}

// Parse extracts an active result for every listing node of a search page.
// It does no I/O, so the same body always yields the same results.
func (c *Catalog) Parse(body []byte) ([]model.SourceResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %w", ErrSourceUnavailable, err)
	}

	items := doc.Find(c.listingSelector)
	if items.Length() == 0 {
		return nil, ErrNoResult
	}

	results := make([]model.SourceResult, 0, items.Length())
	items.Each(func(_ int, item *goquery.Selection) {
		listing := c.extract(item)
		listing.Currency = c.currency
		results = append(results, model.NewActiveResult(c.name, listing))
	})

	return results, nil
}
