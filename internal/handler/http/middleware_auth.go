package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// resolves it through [service.AuthService.Authenticate] and stores the
// resulting identity in the request context (see [utils.WithIdentity])
// before delegating to the next handler.
//
// Requests are rejected with 401 Unauthorized when the header is missing or
// malformed ("Not authorized, no token") and when the token is expired,
// forged or names a user that does not exist ("Not authorized, token
// failed"). The next handler is not called in either case.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromContext(ctx).Debug().Str("user_id", identity.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
