package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

func ListOrderBookers(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orderBookers, err := service.ListOrderBookers(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar order bookers:", err)
			writeServiceError(w, err, "Erro ao listar order bookers")
			return
		}

		if err := writeJSON(w, http.StatusOK, orderBookers); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func GetOrderBooker(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contact := httprouter.ParamsFromContext(r.Context()).ByName("contact")

		ob, err := service.GetOrderBooker(r.Context(), contact)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar order booker")
			return
		}

		if err := writeJSON(w, http.StatusOK, ob); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func CreateOrderBooker(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveOrderBookerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// criação nunca reaproveita um ID enviado pelo cliente
		req.ID = 0

		saved, err := service.SaveOrderBooker(r.Context(), &req)
		if err != nil {
			logrus.WithError(err).WithField("contact", req.Contact).Warn("Erro ao criar order booker")
			writeServiceError(w, err, "Erro ao criar order booker")
			return
		}

		if err := writeJSON(w, http.StatusCreated, saved); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func UpdateOrderBooker(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do order booker inválido", nil)
			return
		}

		var req domain.SaveOrderBookerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		saved, err := service.SaveOrderBooker(r.Context(), &req)
		if err != nil {
			logrus.WithError(err).WithField("id", id).Warn("Erro ao atualizar order booker")
			writeServiceError(w, err, "Erro ao atualizar order booker")
			return
		}

		if err := writeJSON(w, http.StatusOK, saved); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

func DeleteOrderBooker(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(httprouter.ParamsFromContext(r.Context()).ByName("id"), 10, 64)
		if err != nil || id <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do order booker inválido", nil)
			return
		}

		if err := service.DeleteOrderBooker(r.Context(), id); err != nil {
			writeServiceError(w, err, "Erro ao apagar order booker")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ReseedOrderBookers substitui as atribuições pela lista padrão
func ReseedOrderBookers(service assigning.AssignmentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReseedOrderBookers")

		count, err := service.Reseed(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao recarregar order bookers")
			return
		}

		if err := writeJSON(w, http.StatusOK, map[string]any{
			"message":       "Order bookers recarregados",
			"order_bookers": count,
		}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
