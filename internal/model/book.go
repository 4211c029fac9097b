package model

// ISBN is an identifier that passed validation. Raw keeps the request value,
// Normalized has hyphens and spaces removed and is what catalogs are searched with.
type ISBN struct {
	Raw        string
	Normalized string
}

func (i ISBN) String() string {
	return i.Normalized
}

// Listing is the data extracted from one search result node of a catalog.
// Category and Publisher are nil for catalogs that don't expose them.
type Listing struct {
	Name      string  `json:"name"`
	Category  *string `json:"cat,omitempty"`
	Authors   string  `json:"authors"`
	Publisher *string `json:"publisher,omitempty"`
	Price     int64   `json:"price"`
	Currency  string  `json:"currency"`
	URL       string  `json:"url"`
}

// SourceResult is one entry of a lookup response. An inactive result has no
// Listing, so only source and active are serialized.
type SourceResult struct {
	Source string `json:"source"`
	Active bool   `json:"active"`
	*Listing
}

func NewActiveResult(source string, listing Listing) SourceResult {
	return SourceResult{Source: source, Active: true, Listing: &listing}
}

func NewInactiveResult(source string) SourceResult {
	return SourceResult{Source: source}
}
