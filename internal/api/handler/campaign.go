package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/campaigning"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/log"
	"github.com/pkg/errors"
)

const defaultDraftsLimit = 20

// CreateCampaign gera uma especificação de campanha validada a partir da
// consulta do usuário
func CreateCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CampaignCreationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID == "" || req.UserQuery == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e user_query são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":     req.UserID,
			"customer_id": req.CustomerID,
			"use_policy":  req.UseCompanyPolicy,
		}).Info("campaign: drafting campaign spec")

		result, err := service.DraftCampaign(r.Context(), &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": req.UserID,
				"error":   err.Error(),
			}).Warn("campaign: draft request failed")

			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("campaign: failed to encode response")
		}
	}
}

// SubmitCampaign envia uma especificação de campanha, inline ou referenciada
// por rascunho, para a conta do Google Ads do usuário
func SubmitCampaign(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CampaignSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID == "" || req.CustomerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e customer_id são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":       req.UserID,
			"customer_id":   req.CustomerID,
			"draft_id":      req.DraftID,
			"validate_only": req.ValidateOnly,
		}).Info("campaign: submitting campaign")

		outcome, err := service.SubmitCampaign(r.Context(), &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id":     req.UserID,
				"customer_id": req.CustomerID,
				"error":       err.Error(),
			}).Warn("campaign: submission failed")

			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(outcome)
	}
}

// ListCampaignDrafts devolve os rascunhos mais recentes do usuário
func ListCampaignDrafts(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		limit := uint64(defaultDraftsLimit)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		drafts, err := service.ListDrafts(userID, limit)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"drafts": drafts})
	}
}

// handleCampaignError converte erros do usecase de campanhas na resposta da
// API. Violações de validação e recusas da plataforma carregam a lista
// estruturada de problemas no campo details.
func handleCampaignError(w http.ResponseWriter, err error) {
	var validationErr *campaigning.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrCampaignValidation, validationErr.Error(), validationErr.Violations)
		return
	}

	var platformErr *campaigning.PlatformError
	if errors.As(err, &platformErr) {
		apiErrors.WriteError(w, apiErrors.ErrCampaignRejected, "Google Ads API error", platformErr.Details)
		return
	}

	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a campanha", nil)
}
