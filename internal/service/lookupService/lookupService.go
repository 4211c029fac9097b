package lookupService

import (
	"book_price_finder/internal/model"
	"book_price_finder/internal/validator"
	"book_price_finder/utils"
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=lookupService.go -destination=mocks/mocks.go -package=mocks

type Source interface {
	Name() string
	FetchListing(ctx context.Context, isbn model.ISBN) []model.SourceResult
}

type LookupService struct {
	sources []Source
}

// New keeps sources in the given order; responses follow it.
func New(sources ...Source) *LookupService {
	return &LookupService{sources: sources}
}

func (s *LookupService) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for _, source := range s.sources {
		names = append(names, source.Name())
	}
	return names
}

// Lookup validates rawISBN and queries every source concurrently. The result
// holds each source's listings in source order, whichever finishes first.
// Errors are validator.ErrInvalidIdentifier or ErrUnexpected.
func (s *LookupService) Lookup(ctx context.Context, rawISBN string) ([]model.SourceResult, error) {
	op := "LookupService.Lookup"
	rqID := utils.GetRequestIDFromCtx(ctx)

	isbn, err := validator.ValidateISBN(rawISBN)
	if err != nil {
		slog.Info("isbn rejected", slog.String("op", op), slog.String("rqID", rqID), slog.String("isbn", rawISBN))
		return nil, err
	}

	perSource := make([][]model.SourceResult, len(s.sources))

	// a plain group: one source failing must not cancel the others
	g := new(errgroup.Group)
	for i, source := range s.sources {
		i, source := i, source
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: source %s panicked: %v", ErrUnexpected, source.Name(), r)
				}
			}()
			perSource[i] = source.FetchListing(ctx, isbn)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		slog.Error("lookup failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return nil, err
	}

	results := make([]model.SourceResult, 0, len(s.sources))
	for i, listings := range perSource {
		if len(listings) == 0 {
			listings = []model.SourceResult{model.NewInactiveResult(s.sources[i].Name())}
		}
		results = append(results, listings...)
	}

	slog.Info(
		"lookup finished",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("isbn", isbn.Normalized),
		slog.Int("results", len(results)),
	)
	return results, nil
}
