package validator

import (
	"book_price_finder/internal/model"
	"strings"
)

const (
	isbn10Len = 10
	isbn13Len = 13
)

// ValidateISBN accepts 10 or 13 character identifiers once hyphens and spaces
// are dropped. ISBN-10 may end with an X check character. Check digits are not
// verified: catalogs do their own matching.
func ValidateISBN(raw string) (model.ISBN, error) {
	normalized := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	switch len(normalized) {
	case isbn10Len:
		if !isDigits(normalized[:isbn10Len-1]) || !isCheckChar(normalized[isbn10Len-1]) {
			return model.ISBN{}, ErrInvalidIdentifier
		}
		normalized = strings.ToUpper(normalized)
	case isbn13Len:
		if !isDigits(normalized) {
			return model.ISBN{}, ErrInvalidIdentifier
		}
	default:
		return model.ISBN{}, ErrInvalidIdentifier
	}

	return model.ISBN{Raw: raw, Normalized: normalized}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isCheckChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == 'X' || c == 'x'
}
