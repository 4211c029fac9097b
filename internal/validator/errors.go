package validator

import "errors"

var ErrInvalidIdentifier = errors.New("Invalid ISBN Number.")
