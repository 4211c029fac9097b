package commands

import (
	"context"
	"fmt"
	"os"

	"book_price_finder/config"
	"book_price_finder/internal/catalog"
	"book_price_finder/internal/fetcher"
	"book_price_finder/internal/lib/logger"
	"book_price_finder/internal/service/lookupService"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "isbn-cli",
	Short:         "isbn-cli looks up a book's listings on the supported catalogs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLookupService logs to stderr so stdout only carries results.
func newLookupService() (*lookupService.LookupService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.Env, cfg.LogLevel, os.Stderr)

	pageFetcher := fetcher.NewCollyFetcher(cfg)
	return lookupService.New(
		catalog.NewBooksTw(cfg, pageFetcher),
		catalog.NewKingstone(cfg, pageFetcher),
		catalog.NewSuperBookCity(cfg, pageFetcher),
	), nil
}
