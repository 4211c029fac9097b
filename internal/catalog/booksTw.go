package catalog

import (
	"book_price_finder/config"
	"book_price_finder/internal/model"

	"github.com/PuerkitoBio/goquery"
)

const BooksTwName = "博客來"

// NewBooksTw searches books.com.tw.
func NewBooksTw(cfg *config.Config, fetcher Fetcher) *Catalog {
	c := &Catalog{
		name:            BooksTwName,
		currency:        currencyTWD,
		cfg:             cfg.BooksTw,
		fetcher:         fetcher,
		listingSelector: "form#searchlist ul.searchbook li",
	}
	c.extract = c.extractBooksTw
	return c
}

func (c *Catalog) extractBooksTw(item *goquery.Selection) model.Listing {
	href, _ := item.Find("a[rel=mid_name]").Attr("href")

	// the last strong holds the price, the first one the discount
	return model.Listing{
		Name:      text(item.Find("h3")),
		Category:  stringPtr(text(item.Find("span.cat"))),
		Authors:   joinTexts(item.Find("a[rel=go_author]")),
		Publisher: stringPtr(text(item.Find("a[rel=mid_publish]"))),
		Price:     ExtractPrice(text(item.Find("span.price strong").Last())),
		URL:       absoluteURL(c.cfg.BaseUrl, href),
	}
}
