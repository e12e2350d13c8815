package middleware

import (
	"context"
	"net/http"
	"strings"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository/backend"
	"lucky_wheel/pkg/resp"
	"lucky_wheel/pkg/token"
)

const AccessTokenCookie = "access_token"

type adminKey struct{}

// Auth пропускает только запросы с действующим токеном администратора
// (заголовок Authorization: Bearer или cookie access_token).
// Токен бэкенда из claims кладётся в контекст для запросов к бэкенду.
func Auth(secretKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				resp.WriteError(w, r, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, r, http.StatusUnauthorized, "invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey{}, claims)
			ctx = backend.WithToken(ctx, claims.BackendToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// AdminFromContext - claims администратора, положенные Auth
func AdminFromContext(ctx context.Context) (*model.AdminClaims, bool) {
	claims, ok := ctx.Value(adminKey{}).(*model.AdminClaims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, value, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value)
		}
		return ""
	}

	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}

	return ""
}
