package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env           string `env:"ENV" envDefault:"prod"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	HTTP          HTTP
	Fetch         Fetch
	BooksTw       Catalog `envPrefix:"BOOKS_TW_"`
	Kingstone     Catalog `envPrefix:"KINGSTONE_"`
	SuperBookCity Catalog `envPrefix:"SUPERBOOKCITY_"`
}

type HTTP struct {
	Port            int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Fetch is shared by all catalogs. Some sites reject the default client
// user agent, so a browser one is sent.
type Fetch struct {
	Timeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"3s"`
	UserAgent string        `env:"FETCH_USER_AGENT" envDefault:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_4) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/66.0.3359.181 Safari/537.36"`
	ProxyUrl  string        `env:"PROXY_URL"`
}

type Catalog struct {
	BaseUrl    string `env:"BASE_URL"`
	SearchPath string `env:"SEARCH_PATH"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		BooksTw: Catalog{
			BaseUrl:    "http://search.books.com.tw",
			SearchPath: "/search/query/cat/all/key/",
		},
		Kingstone: Catalog{
			BaseUrl:    "https://www.kingstone.com.tw",
			SearchPath: "/search/result.asp?c_name=",
		},
		SuperBookCity: Catalog{
			BaseUrl:    "https://www.superbookcity.com",
			SearchPath: "/catalogsearch/result/?q=",
		},
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
