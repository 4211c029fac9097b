package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceResult_InactiveHasOnlySourceAndActive(t *testing.T) {
	js, err := json.Marshal(NewInactiveResult("金石堂"))

	assert.Nil(t, err)
	assert.JSONEq(t, `{"source":"金石堂","active":false}`, string(js))
}

func TestSourceResult_ActiveKeepsEmptyDefaults(t *testing.T) {
	empty := ""
	res := NewActiveResult("博客來", Listing{Category: &empty, Publisher: &empty, Currency: "TWD"})

	js, err := json.Marshal(res)

	assert.Nil(t, err)
	assert.JSONEq(t, `{"source":"博客來","active":true,"name":"","cat":"","authors":"","publisher":"","price":0,"currency":"TWD","url":""}`, string(js))
}

func TestSourceResult_ActiveWithoutCategoryAndPublisher(t *testing.T) {
	res := NewActiveResult("超閱網", Listing{Name: "n", Authors: "a", Price: 88, Currency: "HKD", URL: "https://x/y"})

	js, err := json.Marshal(res)

	assert.Nil(t, err)
	assert.JSONEq(t, `{"source":"超閱網","active":true,"name":"n","authors":"a","price":88,"currency":"HKD","url":"https://x/y"}`, string(js))
}
