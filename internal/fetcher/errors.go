package fetcher

import "errors"

var (
	ErrFetchFailed  = errors.New("fetch failed")
	ErrFetchAborted = errors.New("fetch aborted")
)
