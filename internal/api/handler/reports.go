package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/order-booker-api/internal/domain"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
	"github.com/vfg2006/order-booker-api/pkg/log"
)

// reportFilters monta os filtros dos relatórios a partir da query.
// A validação da janela fica no serviço.
func reportFilters(r *http.Request) (*domain.ReportFilters, string) {
	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		return nil, "start_date deve seguir o formato YYYY-MM-DD"
	}

	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		return nil, "end_date deve seguir o formato YYYY-MM-DD"
	}

	query := r.URL.Query()

	return &domain.ReportFilters{
		Window:    strings.ToLower(strings.TrimSpace(query.Get("window"))),
		StartDate: startDate,
		EndDate:   endDate,
		OBContact: strings.TrimSpace(query.Get("ob_contact")),
		TSM:       strings.TrimSpace(query.Get("tsm")),
	}, ""
}

// reportHandler encapsula o fluxo comum: filtros, chamada do relatório e resposta
func reportHandler[T any](name string, fetch func(r *http.Request, filters *domain.ReportFilters) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", name)

		filters, problem := reportFilters(r)
		if problem != "" {
			logger.WithField("query", r.URL.RawQuery).Warn("reports: invalid filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilters, problem, nil)
			return
		}

		report, err := fetch(r, filters)
		if err != nil {
			logger.WithError(err).Error("reports: failed to build report")
			writeServiceError(w, err, "Erro ao gerar relatório")
			return
		}

		if err := writeJSON(w, http.StatusOK, report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
		}
	})
}

func GetDashboard(service reporting.ReportingService) http.Handler {
	return reportHandler("dashboard", func(r *http.Request, filters *domain.ReportFilters) (*domain.Dashboard, error) {
		return service.GetDashboard(r.Context(), filters)
	})
}

func GetOrderBookerReport(service reporting.ReportingService) http.Handler {
	return reportHandler("order_bookers", func(r *http.Request, filters *domain.ReportFilters) ([]*domain.OrderBookerAchievement, error) {
		return service.GetOrderBookerReport(r.Context(), filters)
	})
}

func GetTSMReport(service reporting.ReportingService) http.Handler {
	return reportHandler("tsm", func(r *http.Request, filters *domain.ReportFilters) ([]*domain.TSMAchievement, error) {
		return service.GetTSMReport(r.Context(), filters)
	})
}

func GetRouteReport(service reporting.ReportingService) http.Handler {
	return reportHandler("routes", func(r *http.Request, filters *domain.ReportFilters) ([]*domain.RouteAchievement, error) {
		return service.GetRouteReport(r.Context(), filters)
	})
}
