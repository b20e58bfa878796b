package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/postline/postline/internal/common"
	"github.com/postline/postline/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// withAuth extracts the bearer token, authenticates it, and stores the
// resolved user in the request context. All auth failures collapse to 401;
// only a failing user store surfaces as 500.
func (s *HTTPServer) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, common.ErrUnauthenticated)
			return
		}

		user, err := s.guard.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, common.ErrDependencyUnavailable) {
				writeError(w, common.ErrDependencyUnavailable)
				return
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, common.ErrUnauthenticated)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

// userFromContext returns the user stored by withAuth.
func userFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
