// Package catalogtest serves canned catalog search pages for tests.
package catalogtest

import (
	"book_price_finder/config"
	"net/http"
	"net/http/httptest"
	"time"
)

const (
	BooksTwSearchPath       = "/search/query/cat/all/key/"
	KingstoneSearchPath     = "/search/result.asp?c_name="
	SuperBookCitySearchPath = "/catalogsearch/result/?q="
)

// NewServer serves the three catalogs' search endpoints from one server.
func NewServer(booksTw, kingstone, superBookCity http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/query/cat/all/key/", booksTw)
	mux.HandleFunc("/search/result.asp", kingstone)
	mux.HandleFunc("/catalogsearch/result/", superBookCity)
	return httptest.NewServer(mux)
}

// Config points every catalog at baseURL.
func Config(baseURL string, timeout time.Duration) *config.Config {
	return &config.Config{
		Fetch: config.Fetch{
			Timeout:   timeout,
			UserAgent: "Mozilla/5.0 catalogtest",
		},
		BooksTw:       config.Catalog{BaseUrl: baseURL, SearchPath: BooksTwSearchPath},
		Kingstone:     config.Catalog{BaseUrl: baseURL, SearchPath: KingstoneSearchPath},
		SuperBookCity: config.Catalog{BaseUrl: baseURL, SearchPath: SuperBookCitySearchPath},
	}
}

func HTML(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}
}

func Status(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}

// Hang blocks until release is closed or the client goes away.
func Hang(release <-chan struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
}
