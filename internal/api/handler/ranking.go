package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/internal/usecases/ranking"
)

// GetOBRanking retorna o ranking mensal dos order bookers (?month=mm-yyyy)
func GetOBRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")

		result, err := service.GetOBRanking(r.Context(), month)
		if err != nil {
			logrus.WithError(err).WithField("month", month).Error("Erro ao buscar ranking de order bookers")
			writeServiceError(w, err, "Erro ao buscar ranking de order bookers")
			return
		}

		if err := writeJSON(w, http.StatusOK, result); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
		}
	})
}
