package catalog

import (
	"book_price_finder/config"
	"book_price_finder/internal/model"

	"github.com/PuerkitoBio/goquery"
)

const KingstoneName = "金石堂"

// NewKingstone searches kingstone.com.tw. Its result links are relative.
func NewKingstone(cfg *config.Config, fetcher Fetcher) *Catalog {
	c := &Catalog{
		name:            KingstoneName,
		currency:        currencyTWD,
		cfg:             cfg.Kingstone,
		fetcher:         fetcher,
		listingSelector: "div.box.row_list ul li",
	}
	c.extract = c.extractKingstone
	return c
}

func (c *Catalog) extractKingstone(item *goquery.Selection) model.Listing {
	href, _ := item.Find("a.anchor").Attr("href")

	return model.Listing{
		Name:      text(item.Find("a.anchor span")),
		Category:  stringPtr(text(item.Find("span.classification a.main_class"))),
		Authors:   joinTexts(item.Find("span.author a")),
		Publisher: stringPtr(text(item.Find("span.publisher a"))),
		Price:     ExtractPrice(text(item.Find("span.price span").Last())),
		URL:       absoluteURL(c.cfg.BaseUrl, href),
	}
}
