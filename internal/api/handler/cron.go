package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-booker-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOBRanking    = "ob-ranking"
	CronJobTypeDraftCleanup = "draft-cleanup"
	CronJobTypeAll          = "all"
)

// CronJob é o contrato dos agendadores que podem ser disparados manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OBRankingService    CronJob
	DraftCleanupService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.OBRankingService != nil {
		jobs[CronJobTypeOBRanking] = s.OBRankingService
	}
	if s.DraftCleanupService != nil {
		jobs[CronJobTypeDraftCleanup] = s.DraftCleanupService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		switch cronType {
		case CronJobTypeOBRanking, CronJobTypeDraftCleanup:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de cron não disponível", nil)
				return
			}
			job.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ob-ranking, draft-cleanup, all", nil)
			return
		}

		if err := writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		if err := writeJSON(w, http.StatusOK, status); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
