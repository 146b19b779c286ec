package graphql

import (
	"context"
	"net/http"

	"health-monitor-api/internal/delivery/http/middleware"
)

func (r *Resolver) setSessionCookie(ctx context.Context, token string) {
	ex, ok := middleware.ExchangeFromContext(ctx)
	if !ok {
		return
	}
	http.SetCookie(ex.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(r.session.Expiry.Seconds()),
		HttpOnly: true,
		Secure:   r.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (r *Resolver) clearSessionCookie(ctx context.Context) {
	ex, ok := middleware.ExchangeFromContext(ctx)
	if !ok {
		return
	}
	http.SetCookie(ex.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken reads the token cookie of the current request.
func sessionToken(ctx context.Context) string {
	ex, ok := middleware.ExchangeFromContext(ctx)
	if !ok || ex.Request == nil {
		return ""
	}
	cookie, err := ex.Request.Cookie(middleware.TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
