package api

import (
	"net/http"
	"strings"

	"github.com/rwblickhan/linty/internal/security"
)

// withAuth checks the bearer token against the configured bcrypt hash. An
// empty hash disables the check.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.TokenBcrypt != "" {
			tok, ok := bearerToken(r)
			if !ok || !security.CheckToken(s.TokenBcrypt, tok) {
				s.err(w, http.StatusUnauthorized, "unauthorized")
				return
			}
		}
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, prefix))
	return tok, tok != ""
}
