package lookupService

import "errors"

var ErrUnexpected = errors.New("Unexpected error")
