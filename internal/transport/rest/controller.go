package rest

import (
	"context"
	"errors"
	"net/http"

	"book_price_finder/internal/model"
	"book_price_finder/internal/validator"

	"github.com/julienschmidt/httprouter"
)

//go:generate mockgen -source=controller.go -destination=mocks/mocks.go -package=mocks

type LookupService interface {
	Lookup(ctx context.Context, rawISBN string) ([]model.SourceResult, error)
}

type Controller struct {
	lookupService LookupService
}

func NewController(lookupService LookupService) *Controller {
	return &Controller{lookupService: lookupService}
}

// LookupISBN serves GET /:isbn.
func (ctrl *Controller) LookupISBN(w http.ResponseWriter, r *http.Request) {
	op := "Controller.LookupISBN"
	isbn := httprouter.ParamsFromContext(r.Context()).ByName("isbn")

	results, err := ctrl.lookupService.Lookup(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, validator.ErrInvalidIdentifier):
			WriteError(w, r, http.StatusBadRequest, err.Error())
		default:
			WriteUnexpectedError(w, r, op, err)
		}
		return
	}

	writeJSON(w, r, http.StatusOK, results)
}

// Liveness answers every GET or HEAD that no other route matched.
func (ctrl *Controller) Liveness(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeText(w, http.StatusNotFound, notFoundMsg)
		return
	}
	writeText(w, http.StatusOK, livenessMsg)
}
