package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

type CORSMiddleware struct {
	handle func(http.Handler) http.Handler
}

// NewCORSMiddleware allows the given origins. Credentials are only allowed for explicit origins,
// since browsers refuse cookies on a wildcard response.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	options := []handlers.CORSOption{
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
	}
	if !containsWildcard(allowedOrigins) {
		options = append(options, handlers.AllowCredentials())
	}

	return &CORSMiddleware{handle: handlers.CORS(options...)}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return m.handle(next)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
