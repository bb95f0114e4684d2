package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/sakhi-sarees/storefront/app/helpers"
	"github.com/sakhi-sarees/storefront/app/utils/sessions"
)

// SessionKeyMiddleware threads the anonymous session key through the request
// context so every cart and wishlist operation receives it explicitly.
func SessionKeyMiddleware(store *sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionKey, err := store.SessionKey(w, r)
			if err != nil {
				log.Printf("SessionKeyMiddleware: failed to establish session key: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), helpers.ContextKeySessionKey, sessionKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
