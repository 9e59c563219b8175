package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/tracking"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/log"
	"github.com/pkg/errors"
)

type TrackEventResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

// TrackEvent recebe um evento bruto do script de rastreamento e o persiste
func TrackEvent(service tracking.TrackingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var event domain.TrackingEvent

		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if event.SiteID == "" || event.SessionID == "" || event.EventType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site_id, session_id e event_type são obrigatórios", nil)
			return
		}

		eventID, err := service.Track(&event)
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(TrackEventResponse{
			Status:  "ok",
			EventID: eventID,
		})
	}
}

// AnalyticsOverview devolve o resumo de métricas calculadas de um site
func AnalyticsOverview(service tracking.TrackingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteID := r.URL.Query().Get("site_id")
		if siteID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site_id é obrigatório", nil)
			return
		}

		overview, err := service.Overview(siteID)
		if err != nil {
			logger.WithFields(log.Fields{
				"site_id": siteID,
				"error":   err.Error(),
			}).Error("analytics: failed to build overview")

			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overview); err != nil {
			logger.WithField("error", err.Error()).Error("analytics: failed to encode response")
		}
	}
}

// ConsentStats devolve as estatísticas de aceitação do banner de cookies
func ConsentStats(service tracking.TrackingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteID := r.URL.Query().Get("site_id")
		if siteID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site_id é obrigatório", nil)
			return
		}

		stats, err := service.ConsentStats(siteID)
		if err != nil {
			logger.WithFields(log.Fields{
				"site_id": siteID,
				"error":   err.Error(),
			}).Error("analytics: failed to build consent stats")

			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// UserBehavior devolve os padrões de navegação por sessão do site
func UserBehavior(service tracking.TrackingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteID := r.URL.Query().Get("site_id")
		if siteID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site_id é obrigatório", nil)
			return
		}

		behavior, err := service.UserBehavior(siteID)
		if err != nil {
			logger.WithFields(log.Fields{
				"site_id": siteID,
				"error":   err.Error(),
			}).Error("analytics: failed to build user behavior")

			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(behavior)
	}
}

// MetricDetails devolve a série diária de uma métrica para os gráficos
func MetricDetails(service tracking.TrackingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		siteID := r.URL.Query().Get("site_id")
		metricType := r.URL.Query().Get("metric_type")
		if siteID == "" || metricType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site_id e metric_type são obrigatórios", nil)
			return
		}

		days := tracking.DefaultMetricDays
		if rawDays := r.URL.Query().Get("days"); rawDays != "" {
			parsed, err := strconv.Atoi(rawDays)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days inválido", nil)
				return
			}
			days = parsed
		}

		series, err := service.MetricDetails(siteID, metricType, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"site_id":     siteID,
				"metric_type": metricType,
				"error":       err.Error(),
			}).Error("analytics: failed to build metric details")

			handleTrackingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(series)
	}
}

// handleTrackingError converte erros do usecase de analytics na resposta da API
func handleTrackingError(w http.ResponseWriter, err error) {
	var trackingErr *tracking.TrackingError
	if errors.As(err, &trackingErr) {
		apiErrors.WriteError(w, trackingErr.Code, trackingErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar analytics", nil)
}
