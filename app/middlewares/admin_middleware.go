package middlewares

import (
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthMiddleware guards status-transition routes with a shared admin
// key checked against its bcrypt hash from configuration.
func AdminAuthMiddleware(adminKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if adminKeyHash == "" || key == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(adminKeyHash), []byte(key)); err != nil {
				log.Printf("AdminAuthMiddleware: rejected admin request to %s", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
