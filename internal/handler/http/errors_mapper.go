package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/crypto"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusTable is matched top to bottom, so more specific errors must
// precede the errors they wrap. An empty message means the error text is
// returned to the client.
var errorStatusTable = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{crypto.ErrPasswordTooLong, http.StatusBadRequest, msgPasswordTooLong},
	{ErrInvalidJSON, http.StatusBadRequest, msgInvalidJSON},
	{store.ErrUserAlreadyExists, http.StatusBadRequest, msgUserExists},

	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, msgNoToken},
	{ErrNoIdentity, http.StatusUnauthorized, msgNoToken},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, msgTokenFailed},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidLogin},

	{service.ErrNotAuthorizedToUpdate, http.StatusForbidden, msgUpdateForbidden},
	{service.ErrNotAuthorizedToDelete, http.StatusForbidden, msgDeleteForbidden},
	{service.ErrNotBlogAuthor, http.StatusForbidden, http.StatusText(http.StatusForbidden)},

	{store.ErrUserNotFound, http.StatusNotFound, msgUserNotFound},
	{store.ErrBlogNotFound, http.StatusNotFound, msgBlogNotFound},
	{ErrRouteNotFound, http.StatusNotFound, msgRouteNotFound},
}

// statusFromError returns the HTTP status and client message for err.
// Errors not listed in errorStatusTable are internal.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusTable {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.message == "" {
			return e.status, strings.ReplaceAll(err.Error(), "\n", "; ")
		}
		return e.status, e.message
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err with the request logger and writes the mapped
// {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
