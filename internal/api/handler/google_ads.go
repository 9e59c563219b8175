package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dotlerai-cell/dotler-web/internal/usecases/insighting"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/log"
	"github.com/pkg/errors"
)

// ListAccessibleAccounts lista os customer IDs acessíveis pela conexão
func ListAccessibleAccounts(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		customerIDs, err := service.AccessibleAccounts(r.Context(), userID)
		if err != nil {
			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]string{"customer_ids": customerIDs})
	}
}

// AccountPerformance devolve o desempenho das campanhas de uma conta nos
// três intervalos exibidos pelo dashboard
func AccountPerformance(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userID := r.URL.Query().Get("user_id")
		customerID := r.URL.Query().Get("customer_id")
		if userID == "" || customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e customer_id são obrigatórios", nil)
			return
		}

		performance, err := service.AccountPerformance(r.Context(), userID, customerID)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id":     userID,
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("insights: failed to fetch account performance")

			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(performance); err != nil {
			logger.WithField("error", err.Error()).Error("insights: failed to encode response")
		}
	}
}

// CampaignMetrics devolve o desempenho das campanhas em um único intervalo
func CampaignMetrics(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		customerID := r.URL.Query().Get("customer_id")
		if userID == "" || customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e customer_id são obrigatórios", nil)
			return
		}

		period := r.URL.Query().Get("period")

		report, err := service.CampaignMetrics(r.Context(), userID, customerID, period)
		if err != nil {
			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// MetricTrend devolve a série diária de uma métrica de campanha nos
// últimos 30 dias
func MetricTrend(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		customerID := r.URL.Query().Get("customer_id")
		metricName := r.URL.Query().Get("metric_name")
		rawCampaignID := r.URL.Query().Get("campaign_id")

		if userID == "" || customerID == "" || metricName == "" || rawCampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id, customer_id, campaign_id e metric_name são obrigatórios", nil)
			return
		}

		campaignID, err := strconv.ParseInt(rawCampaignID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "campaign_id inválido", nil)
			return
		}

		trend, err := service.MetricTrend(r.Context(), userID, customerID, campaignID, metricName)
		if err != nil {
			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trend)
	}
}

// PerformanceHistory lista os retratos diários coletados pelo job de
// sincronização de desempenho
func PerformanceHistory(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")
		if customerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "customer_id é obrigatório", nil)
			return
		}

		days := 0
		if rawDays := r.URL.Query().Get("days"); rawDays != "" {
			parsed, err := strconv.Atoi(rawDays)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days inválido", nil)
				return
			}
			days = parsed
		}

		snapshots, err := service.SnapshotHistory(customerID, days)
		if err != nil {
			handleInsightError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"customer_id": customerID,
			"snapshots":   snapshots,
		})
	}
}

// handleInsightError converte erros do usecase de insights na resposta da API
func handleInsightError(w http.ResponseWriter, err error) {
	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) {
		apiErrors.WriteError(w, insightErr.Code, insightErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar a plataforma de anúncios", nil)
}
