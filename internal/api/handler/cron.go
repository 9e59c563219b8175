package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/internal/scheduler"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePerformance = "performance"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PerformanceSyncService *scheduler.PerformanceSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"type":       cronType,
			"user_email": userClaims.UserEmail,
		}).Info("Execução manual de cron job solicitada")

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypePerformance, CronJobTypeAll:
			if services.PerformanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de desempenho não disponível", nil)
				return
			}
			services.PerformanceSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: performance, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if _, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status := map[string]any{
			"performance": services.PerformanceSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
