package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/order-booker-api/internal/usecases/assigning"
	"github.com/vfg2006/order-booker-api/internal/usecases/authenticating"
	"github.com/vfg2006/order-booker-api/internal/usecases/configuring"
	"github.com/vfg2006/order-booker-api/internal/usecases/ordering"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
	"github.com/vfg2006/order-booker-api/internal/usecases/reporting"
	"github.com/vfg2006/order-booker-api/internal/usecases/targeting"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada.
// Erros sem código conhecido viram SRV_001 com a mensagem de fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		orderErr      *ordering.OrderError
		reportErr     *reporting.ReportError
		assignmentErr *assigning.AssignmentError
		targetErr     *targeting.TargetError
		settingErr    *configuring.SettingError
		rankingErr    *ranking.RankingError
		authErr       *authenticating.AuthError
	)

	switch {
	case errors.As(err, &orderErr):
		apiErrors.WriteError(w, orderErr.Code, orderErr.Error(), detailsFor(orderErr.OBContact, "ob_contact"))
	case errors.As(err, &reportErr):
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
	case errors.As(err, &assignmentErr):
		apiErrors.WriteError(w, assignmentErr.Code, assignmentErr.Error(), detailsFor(assignmentErr.Contact, "contact"))
	case errors.As(err, &targetErr):
		apiErrors.WriteError(w, targetErr.Code, targetErr.Error(), nil)
	case errors.As(err, &settingErr):
		apiErrors.WriteError(w, settingErr.Code, settingErr.Error(), detailsFor(settingErr.Key, "key"))
	case errors.As(err, &rankingErr):
		apiErrors.WriteError(w, rankingErr.Code, rankingErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsFor(value, field string) map[string]string {
	if value == "" {
		return nil
	}
	return map[string]string{field: value}
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
