// Package errhttp maps domain sentinel errors to HTTP status codes and
// envelope response codes. Add a case to classify for each new domain
// sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/backoffice/pkg/httpx"
	catalogdomain "github.com/ghuser/backoffice/services/catalog/domain"
	documentdomain "github.com/ghuser/backoffice/services/document/domain"
	userdomain "github.com/ghuser/backoffice/services/user/domain"
)

// WriteError maps err to an HTTP status plus envelope code and writes the
// error envelope. Uses errors.Is() so wrapped sentinel errors are matched
// correctly. Defaults to 500 Internal Server Error for unrecognized errors,
// which covers storage failures bubbling up from the repositories.
func WriteError(w http.ResponseWriter, appCode string, err error) {
	status, code := classify(err)
	httpx.Fail(w, status, appCode, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, catalogdomain.ErrItemNotFound),
		errors.Is(err, documentdomain.ErrDocumentNotFound),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound, httpx.CodeNotFound // 404

	case errors.Is(err, catalogdomain.ErrItemNameTaken),
		errors.Is(err, catalogdomain.ErrItemInUse),
		errors.Is(err, userdomain.ErrEmailTaken):
		return http.StatusConflict, httpx.CodeConflict // 409

	case errors.Is(err, catalogdomain.ErrInvalidItem),
		errors.Is(err, documentdomain.ErrInvalidDocument),
		errors.Is(err, userdomain.ErrInvalidUser):
		return http.StatusBadRequest, httpx.CodeBadRequest // 400

	default:
		return http.StatusInternalServerError, httpx.CodeInternal // 500
	}
}
