package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/safar/dealhunter-api/internal/auth"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/safar/dealhunter-api/internal/store"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	tokenKey
)

// RequireAuth resolves the bearer token and stores the caller's user id and
// token in the request context.
func RequireAuth(db *database.DB, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			userID, err := store.Authenticate(r.Context(), db, token)
			if err != nil {
				if errors.Is(err, database.ErrInvalidToken) {
					writeError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}
				log.WithError(err).Error("authenticate request")
				writeError(w, http.StatusInternalServerError, "Server error")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
