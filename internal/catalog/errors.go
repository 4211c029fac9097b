package catalog

import "errors"

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrNoResult          = errors.New("no result found")
)
