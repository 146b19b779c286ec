package middleware

import (
	"context"
	"net/http"
)

type exchangeKey struct{}

// Exchange is the request/response pair of the current HTTP call.
type Exchange struct {
	Writer  http.ResponseWriter
	Request *http.Request
}

// CaptureHTTP makes the response writer reachable from resolvers so they can set cookies.
func CaptureHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ex := &Exchange{Writer: w}
		r = r.WithContext(context.WithValue(r.Context(), exchangeKey{}, ex))
		ex.Request = r
		next.ServeHTTP(w, r)
	})
}

// ExchangeFromContext returns the HTTP exchange installed by CaptureHTTP.
func ExchangeFromContext(ctx context.Context) (*Exchange, bool) {
	ex, ok := ctx.Value(exchangeKey{}).(*Exchange)
	return ex, ok
}
