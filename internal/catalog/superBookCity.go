package catalog

import (
	"book_price_finder/config"
	"book_price_finder/internal/model"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const SuperBookCityName = "超閱網"

var authorLabelReplacer = strings.NewReplacer("作者:", "", "作者：", "")

// NewSuperBookCity searches superbookcity.com. The site shows no category or
// publisher on its search page, so those fields stay absent.
func NewSuperBookCity(cfg *config.Config, fetcher Fetcher) *Catalog {
	c := &Catalog{
		name:            SuperBookCityName,
		currency:        currencyHKD,
		cfg:             cfg.SuperBookCity,
		fetcher:         fetcher,
		listingSelector: "div.results-view ul.products-grid li.item",
	}
	c.extract = c.extractSuperBookCity
	return c
}

func (c *Catalog) extractSuperBookCity(item *goquery.Selection) model.Listing {
	href, _ := item.Find("h2.product-name a").Attr("href")

	price := text(item.Find("p.special-price span.price"))
	if price == "" {
		price = text(item.Find("span.regular-price span.price"))
	}

	return model.Listing{
		Name:    text(item.Find("h2.product-name")),
		Authors: strings.TrimSpace(authorLabelReplacer.Replace(text(item.Find("div.author")))),
		Price:   ExtractPrice(price),
		URL:     absoluteURL(c.cfg.BaseUrl, href),
	}
}
