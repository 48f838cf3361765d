package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/targeting"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

func ListTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		targets, err := service.ListTargets(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao listar metas")
			return
		}

		if err := writeJSON(w, http.StatusOK, targets); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func GetTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contact := httprouter.ParamsFromContext(r.Context()).ByName("contact")

		targets, err := service.GetTargets(r.Context(), contact)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar metas")
			return
		}

		if err := writeJSON(w, http.StatusOK, targets); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func SaveTargets(service targeting.TargetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contact := httprouter.ParamsFromContext(r.Context()).ByName("contact")

		var targets []*domain.BrandTarget
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.SaveTargets(r.Context(), contact, targets)
		if err != nil {
			logrus.WithError(err).WithField("ob_contact", contact).Warn("Erro ao salvar metas")
			writeServiceError(w, err, "Erro ao salvar metas")
			return
		}

		if err := writeJSON(w, http.StatusOK, saved); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
