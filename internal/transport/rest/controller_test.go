package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"book_price_finder/internal/model"
	"book_price_finder/internal/transport/rest/mocks"
	"book_price_finder/internal/validator"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type controllerSuite struct {
	suite.Suite

	mockCtrl      *gomock.Controller
	lookupService *mocks.MockLookupService
	router        *httprouter.Router
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(controllerSuite))
}

func (s *controllerSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.lookupService = mocks.NewMockLookupService(s.mockCtrl)

	ctrl := NewController(s.lookupService)
	s.router = httprouter.New()
	s.router.HandlerFunc(http.MethodGet, "/:isbn", ctrl.LookupISBN)
	s.router.NotFound = http.HandlerFunc(ctrl.Liveness)
	s.router.HandleMethodNotAllowed = false
}

func (s *controllerSuite) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func (s *controllerSuite) Test_LookupISBN_Success() {
	results := []model.SourceResult{
		model.NewActiveResult("博客來", model.Listing{Name: "哈利波特", Authors: "J.K.羅琳", Price: 229, Currency: "TWD", URL: "http://www.books.com.tw/products/0010586484"}),
		model.NewInactiveResult("金石堂"),
		model.NewInactiveResult("超閱網"),
	}

	s.lookupService.EXPECT().
		Lookup(gomock.Any(), "9789573317247").
		Return(results, nil)

	rec := s.do(http.MethodGet, "/9789573317247")

	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Equal(s.T(), "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(s.T(), `[
		{"source":"博客來","active":true,"name":"哈利波特","authors":"J.K.羅琳","price":229,"currency":"TWD","url":"http://www.books.com.tw/products/0010586484"},
		{"source":"金石堂","active":false},
		{"source":"超閱網","active":false}
	]`, rec.Body.String())
}

func (s *controllerSuite) Test_LookupISBN_InvalidISBN() {
	s.lookupService.EXPECT().
		Lookup(gomock.Any(), "123").
		Return(nil, validator.ErrInvalidIdentifier)

	rec := s.do(http.MethodGet, "/123")

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.JSONEq(s.T(), `{"err":"Invalid ISBN Number."}`, rec.Body.String())
}

func (s *controllerSuite) Test_LookupISBN_UnexpectedErr() {
	s.lookupService.EXPECT().
		Lookup(gomock.Any(), "9789573317247").
		Return(nil, fmt.Errorf("wrapped: %w", errors.New("nil pointer dereference")))

	rec := s.do(http.MethodGet, "/9789573317247")

	assert.Equal(s.T(), http.StatusInternalServerError, rec.Code)
	assert.JSONEq(s.T(), `{"err":"Unexpected error"}`, rec.Body.String())
	assert.NotContains(s.T(), rec.Body.String(), "nil pointer")
}

func (s *controllerSuite) Test_Liveness() {
	for _, target := range []string{"/", "/health/check", "/a/b/c"} {
		rec := s.do(http.MethodGet, target)

		assert.Equal(s.T(), http.StatusOK, rec.Code, target)
		assert.Equal(s.T(), "OK", rec.Body.String(), target)
		assert.Equal(s.T(), "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	}
}

func (s *controllerSuite) Test_Liveness_OtherMethods() {
	rec := s.do(http.MethodPost, "/9789573317247")

	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
	assert.Equal(s.T(), "Not Found", rec.Body.String())
}
