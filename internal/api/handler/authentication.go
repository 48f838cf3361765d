package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/middleware"
)

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			logrus.WithError(err).Warn("Falha no login administrativo")
			writeServiceError(w, err, "Erro ao processar login")
			return
		}

		if err := writeJSON(w, http.StatusOK, resp); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do login")
		}
	})
}

// GetMe devolve as claims do token da requisição
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if err := writeJSON(w, http.StatusOK, map[string]any{
			"user_name": claims.UserName,
			"role_id":   claims.UserRoleID,
			"is_admin":  claims.IsAdmin(),
			"expires":   claims.ExpiresAt,
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta")
		}
	})
}
