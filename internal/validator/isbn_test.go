package validator

import (
	"book_price_finder/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateISBN_Valid(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{raw: "9789573317247", expected: "9789573317247"},
		{raw: "978-957-33-1724-7", expected: "9789573317247"},
		{raw: "9573317249", expected: "9573317249"},
		{raw: "957331724x", expected: "957331724X"},
		{raw: " 957 331 724 9 ", expected: "9573317249"},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			isbn, err := ValidateISBN(c.raw)

			assert.Nil(t, err)
			assert.Equal(t, model.ISBN{Raw: c.raw, Normalized: c.expected}, isbn)
		})
	}
}

func TestValidateISBN_Invalid(t *testing.T) {
	cases := []string{
		"",
		"123",
		"97895733172470",
		"978957331724A",
		"X573317249",
		"95733172XX",
		"abcdefghij",
		"978957331724.",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			isbn, err := ValidateISBN(raw)

			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.Equal(t, "Invalid ISBN Number.", err.Error())
			assert.Equal(t, model.ISBN{}, isbn)
		})
	}
}
