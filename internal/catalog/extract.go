package catalog

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var digitsRe = regexp.MustCompile(`\d+`)

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// joinTexts joins the trimmed, non empty texts of every node with a comma.
func joinTexts(s *goquery.Selection) string {
	var texts []string
	s.Each(func(_ int, node *goquery.Selection) {
		if t := text(node); t != "" {
			texts = append(texts, t)
		}
	})
	return strings.Join(texts, ",")
}

// ExtractPrice drops thousands separators and returns the longest run of digits
// (the first one on ties), so "HK$1,234.50 up" gives 1234. No digits gives 0.
func ExtractPrice(raw string) int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")

	longest := ""
	for _, run := range digitsRe.FindAllString(cleaned, -1) {
		if len(run) > len(longest) {
			longest = run
		}
	}

	price, err := strconv.ParseInt(longest, 10, 64)
	if err != nil {
		return 0
	}
	return price
}

// absoluteURL resolves href against the catalog origin. Empty or unparsable
// hrefs give "".
func absoluteURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return href
	}
	return base.ResolveReference(ref).String()
}

func stringPtr(s string) *string {
	return &s
}
