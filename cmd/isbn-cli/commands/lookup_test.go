package commands

import (
	"bytes"
	"testing"

	"book_price_finder/internal/model"

	"github.com/stretchr/testify/assert"
)

func sampleResults() []model.SourceResult {
	category := "中文書"
	return []model.SourceResult{
		model.NewActiveResult("金石堂", model.Listing{Name: "哈利波特", Category: &category, Authors: "J.K.羅琳", Price: 237, Currency: "TWD", URL: "https://www.kingstone.com.tw/basic/1/"}),
		model.NewInactiveResult("超閱網"),
	}
}

func TestWriteResultsJSON(t *testing.T) {
	var buf bytes.Buffer

	err := writeResultsJSON(&buf, sampleResults())

	assert.Nil(t, err)
	assert.JSONEq(t, `[
		{"source":"金石堂","active":true,"name":"哈利波特","cat":"中文書","authors":"J.K.羅琳","price":237,"currency":"TWD","url":"https://www.kingstone.com.tw/basic/1/"},
		{"source":"超閱網","active":false}
	]`, buf.String())
}

func TestWriteResultsTable(t *testing.T) {
	var buf bytes.Buffer

	writeResultsTable(&buf, sampleResults())

	out := buf.String()
	assert.Contains(t, out, "237 TWD")
	assert.Contains(t, out, "中文書")
	assert.Contains(t, out, "超閱網")
	assert.Contains(t, out, "https://www.kingstone.com.tw/basic/1/")
}

func TestOptional(t *testing.T) {
	s := "x"

	assert.Equal(t, "x", optional(&s))
	assert.Equal(t, "-", optional(nil))
}
