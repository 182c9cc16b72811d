package http

import (
	"errors"
	"net/http"

	"github.com/tilyasov/bookstore/internal/identity"
	"github.com/tilyasov/bookstore/internal/service"
	"github.com/tilyasov/bookstore/internal/store"
	"github.com/tilyasov/bookstore/internal/utils"
	"github.com/tilyasov/bookstore/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	identity.ErrTokenInvalid:      http.StatusUnauthorized,
	identity.ErrMissingEmailClaim: http.StatusUnauthorized,
	identity.ErrUnknownKeyID:      http.StatusUnauthorized,
	identity.ErrCertificateFetch:  http.StatusUnauthorized,
	identity.ErrCertificateParse:  http.StatusUnauthorized,

	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrBookNotFound:         http.StatusNotFound,
	store.ErrRequiredFieldMissing: http.StatusBadRequest,

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

// respondError maps err to its HTTP status and writes the {"err": ...} body
// every error response of the API uses. Internals of unexpected failures are
// not leaked to clients.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	switch status {
	case http.StatusUnauthorized:
		message = invalidTokenMessage
	case http.StatusInternalServerError:
		message = http.StatusText(status)
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Err: message}, status)
}
