package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"book_price_finder/config"
	"book_price_finder/internal/transport/rest"
	"book_price_finder/internal/transport/rest/middleware"

	"github.com/julienschmidt/httprouter"
)

type Server struct {
	cfg  *config.Config
	srv  *http.Server
	ctrl *rest.Controller
}

func New(cfg *config.Config, ctrl *rest.Controller) *Server {
	s := &Server{cfg: cfg, ctrl: ctrl}
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	s.setupRoutes(router)

	return middleware.RequestID(middleware.Logger(middleware.Recover(router)))
}

func (s *Server) setupRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/:isbn", s.ctrl.LookupISBN)
	router.HandlerFunc(http.MethodGet, "/:isbn/", s.ctrl.LookupISBN)

	// paths are served as requested, never redirected
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// anything else is a liveness check
	router.HandleMethodNotAllowed = false
	router.NotFound = http.HandlerFunc(s.ctrl.Liveness)
}

func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", slog.String("err", err.Error()))
			panic(err)
		}
	}()
	slog.Info("http server started!", slog.String("addr", s.srv.Addr))
}

func (s *Server) Stop() {
	slog.Info("start stopping http server")
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Error("error while shutting down http server", slog.String("err", err.Error()))
		return
	}
	slog.Info("http server stopped")
}
