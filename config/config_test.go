package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "http://search.books.com.tw", cfg.BooksTw.BaseUrl)
	assert.Equal(t, "/search/result.asp?c_name=", cfg.Kingstone.SearchPath)
	assert.Equal(t, "https://www.superbookcity.com", cfg.SuperBookCity.BaseUrl)
	assert.Contains(t, cfg.Fetch.UserAgent, "Chrome/66.0.3359.181")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "500ms")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KINGSTONE_BASE_URL", "http://kingstone.test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "local")

	cfg, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.Fetch.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://kingstone.test", cfg.Kingstone.BaseUrl)
	assert.Equal(t, "/search/result.asp?c_name=", cfg.Kingstone.SearchPath)
	assert.Equal(t, "http://search.books.com.tw", cfg.BooksTw.BaseUrl)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "local", cfg.Env)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "soon")

	_, err := Load()

	assert.NotNil(t, err)
}
