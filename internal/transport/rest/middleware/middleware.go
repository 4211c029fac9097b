package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"book_price_finder/internal/transport/rest"
	"book_price_finder/utils"

	"github.com/felixge/httpsnoop"
)

const RequestIDHeader = "X-Request-Id"

// RequestID puts the caller's X-Request-Id, or a new one, into the request
// context and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.ContextWithRequestID(r.Context(), r.Header.Get(RequestIDHeader))
		w.Header().Set(RequestIDHeader, utils.GetRequestIDFromCtx(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics := httpsnoop.CaptureMetrics(next, w, r)
		slog.Info(
			"request handled",
			slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", metrics.Code),
			slog.Int64("bytes", metrics.Written),
			slog.Duration("duration", metrics.Duration),
		)
	})
}

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				rest.WriteUnexpectedError(w, r, "middleware.Recover", fmt.Errorf("panic: %v", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
