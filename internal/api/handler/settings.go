package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/configuring"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

func ListSettings(service configuring.SettingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.ListSettings(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar configurações")
			return
		}

		if err := writeJSON(w, http.StatusOK, settings); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func UpdateSetting(service configuring.SettingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var setting domain.AppSetting
		if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		setting.Key = httprouter.ParamsFromContext(r.Context()).ByName("key")

		saved, err := service.UpdateSetting(r.Context(), &setting)
		if err != nil {
			logrus.WithError(err).WithField("key", setting.Key).Warn("Erro ao atualizar configuração")
			writeServiceError(w, err, "Erro ao atualizar configuração")
			return
		}

		if err := writeJSON(w, http.StatusOK, saved); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
