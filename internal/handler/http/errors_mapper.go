package http

import (
	"errors"
	"net/http"

	"github.com/autovenda/go-car-market/internal/service"
	"github.com/autovenda/go-car-market/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrCompanyFieldsRequired:   http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:        http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:     http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrCNPJAlreadyExists:      http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrCompanyProfileNotFound: http.StatusNotFound,
	store.ErrVehicleNotFound:        http.StatusNotFound,
	store.ErrVehicleNotAvailable:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers err with its mapped HTTP status. Client errors (4xx)
// carry the matched sentinel's message; everything else answers with the
// generic 500 text so that storage details never leak to callers.
func writeError(w http.ResponseWriter, err error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) && status < http.StatusInternalServerError {
			http.Error(w, target.Error(), status)
			return
		}
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
