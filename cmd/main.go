package main

import (
	"book_price_finder/config"
	"book_price_finder/internal/catalog"
	"book_price_finder/internal/fetcher"
	"book_price_finder/internal/httpserver"
	"book_price_finder/internal/lib/logger"
	"book_price_finder/internal/service/lookupService"
	"book_price_finder/internal/transport/rest"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()

	logger.Setup(cfg.Env, cfg.LogLevel, os.Stdout)

	slog.Debug("config", slog.Any("cfg", cfg))

	pageFetcher := fetcher.NewCollyFetcher(cfg)

	lookup := lookupService.New(
		catalog.NewBooksTw(cfg, pageFetcher),
		catalog.NewKingstone(cfg, pageFetcher),
		catalog.NewSuperBookCity(cfg, pageFetcher),
	)

	ctrl := rest.NewController(lookup)

	server := httpserver.New(cfg, ctrl)

	server.Start()
	defer server.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}
