package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"book_price_finder/utils"
)

type errorEnvelope struct {
	Err string `json:"err"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	op := "rest.writeJSON"
	js, err := json.Marshal(data)
	if err != nil {
		slog.Error(
			"error while marshal response",
			slog.String("op", op),
			slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())),
			slog.String("err", err.Error()),
		)
		status = http.StatusInternalServerError
		js, _ = json.Marshal(errorEnvelope{Err: unexpectedErrMsg})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

// WriteError responds with {"err": msg}.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorEnvelope{Err: msg})
}

// WriteUnexpectedError hides err from the caller; it is only logged.
func WriteUnexpectedError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.Error(
		"unexpected error",
		slog.String("op", op),
		slog.String("rqID", utils.GetRequestIDFromCtx(r.Context())),
		slog.String("method", r.Method),
		slog.String("url", r.URL.String()),
		slog.String("err", err.Error()),
	)
	WriteError(w, r, http.StatusInternalServerError, unexpectedErrMsg)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
