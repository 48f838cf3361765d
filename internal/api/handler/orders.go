package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/log"
)

func GetCatalog(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusOK, service.Catalog()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("orders: failed to encode catalog")
		}
	})
}

func SubmitOrder(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SubmitOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("orders: invalid submit payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.SubmitOrder(r.Context(), &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"ob_contact": req.OBContact,
				"route":      req.Route,
				"error":      err.Error(),
			}).Warn("orders: submit rejected")

			writeServiceError(w, err, "Erro ao enviar pedido")
			return
		}

		logger.WithFields(log.Fields{
			"ob_contact": req.OBContact,
			"reference":  resp.Reference,
		}).Info("orders: order submitted")

		if err := writeJSON(w, http.StatusCreated, resp); err != nil {
			logger.WithError(err).Error("orders: failed to encode response")
		}
	})
}

func ListOrders(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := optionalDate(r, "start_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve seguir o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := optionalDate(r, "end_date")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve seguir o formato YYYY-MM-DD", nil)
			return
		}

		filters := &domain.OrderFilters{
			OBContact: strings.TrimSpace(r.URL.Query().Get("ob_contact")),
			TSM:       strings.TrimSpace(r.URL.Query().Get("tsm")),
			StartDate: startDate,
			EndDate:   endDate,
		}

		orders, err := service.ListOrders(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("orders: failed to list orders")
			writeServiceError(w, err, "Erro ao listar pedidos")
			return
		}

		if err := writeJSON(w, http.StatusOK, orders); err != nil {
			logger.WithError(err).Error("orders: failed to encode response")
		}
	})
}

// ResetOrders apaga todo o histórico de pedidos
func ResetOrders(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		deleted, err := service.ResetOrders(r.Context())
		if err != nil {
			logger.WithError(err).Error("orders: failed to reset orders")
			writeServiceError(w, err, "Erro ao apagar pedidos")
			return
		}

		logger.WithField("deleted", deleted).Warn("orders: order history reset")

		if err := writeJSON(w, http.StatusOK, map[string]any{
			"message": "Histórico de pedidos apagado",
			"deleted": deleted,
		}); err != nil {
			logger.WithError(err).Error("orders: failed to encode response")
		}
	})
}

func SaveDraft(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var draft domain.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if id := httprouter.ParamsFromContext(r.Context()).ByName("id"); id != "" {
			draft.ID = id
		}

		saved, err := service.SaveDraft(r.Context(), &draft)
		if err != nil {
			logger.WithError(err).Warn("drafts: failed to save draft")
			writeServiceError(w, err, "Erro ao salvar rascunho")
			return
		}

		if err := writeJSON(w, http.StatusOK, saved); err != nil {
			logger.WithError(err).Error("drafts: failed to encode response")
		}
	})
}

func GetDraft(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		draft, err := service.GetDraft(r.Context(), id)
		if err != nil {
			logger.WithField("draft_id", id).WithError(err).Warn("drafts: failed to get draft")
			writeServiceError(w, err, "Erro ao buscar rascunho")
			return
		}

		if err := writeJSON(w, http.StatusOK, draft); err != nil {
			logger.WithError(err).Error("drafts: failed to encode response")
		}
	})
}
