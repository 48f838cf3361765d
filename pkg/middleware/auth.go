package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware valida o token Bearer quando presente e guarda as claims no contexto.
// Requisições sem Authorization seguem anônimas: captura de pedidos e relatórios
// são públicos, e as rotas administrativas exigem AdminOnly.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				logrus.WithError(err).Debug("Token rejeitado")
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}
