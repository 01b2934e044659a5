package middlewares

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/DevarshLade/lade-studio/app/helpers"
	"github.com/DevarshLade/lade-studio/app/repositories"
)

func RequestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// UserContextMiddleware resolves the caller from the X-User-Id header the
// edge sets after validating the identity provider's token. The user row is a
// webhook-synced mirror; a missing row still leaves the id in context so
// flows that only need an identifier (wishlist, reviews) keep working when a
// webhook delivery lags.
func UserContextMiddleware(userRepo repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-Id")
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)

			user, err := userRepo.FindByID(ctx, userID)
			if err != nil {
				log.Printf("UserContextMiddleware: failed to load user %s: %v", userID, err)
			} else if user != nil {
				ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
