package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-advisor-api/internal/scheduler"
	"github.com/vfg2006/sales-advisor-api/pkg/apiErrors"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
)

const (
	CronJobTypeSampleRun = "sample-run"
)

// CronJobServices contém os serviços agendados que podem ser executados manualmente
type CronJobServices struct {
	SampleRunService *scheduler.SampleRunService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: manual run requested")

		switch cronType {
		case CronJobTypeSampleRun:
			if services.SampleRunService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de execução de exemplo não disponível", nil)
				return
			}
			if !services.SampleRunService.TriggerManualRun() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyScheduled, "Execução de exemplo já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sample-run", nil)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SampleRunService != nil {
			status[CronJobTypeSampleRun] = services.SampleRunService.GetStatus()
		}

		if err := writeJSON(w, status); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("cron: failed to encode status")
		}
	}
}
