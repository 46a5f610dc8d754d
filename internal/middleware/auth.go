package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"SkyVault/internal/authclient"
	"SkyVault/internal/model"
)

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// TokenVerifier проверяет bearer-токен и возвращает личность владельца.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*model.Identity, error)
}

// BearerToken возвращает второй элемент заголовка Authorization, разбитого по пробелу.
func BearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// WithAuth пропускает запрос дальше только с действующим токеном.
// Личность и сам токен кладутся в контекст.
func WithAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				deny(w, http.StatusUnauthorized, "No token provided")
				return
			}

			who, err := v.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, authclient.ErrInvalidToken) {
					deny(w, http.StatusForbidden, "Invalid token")
					return
				}
				sugar.Errorw("WithAuth: token verification failed", "error", err)
				deny(w, http.StatusInternalServerError, "Auth check failed")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, *who)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext возвращает личность, проверенную WithAuth.
func GetUserFromContext(ctx context.Context) (model.Identity, bool) {
	who, ok := ctx.Value(userKey).(model.Identity)
	return who, ok
}

// GetTokenFromContext возвращает токен, прошедший проверку.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey).(string)
	return tok, ok && tok != ""
}
