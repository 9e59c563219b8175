package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/usecases/policying"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type PolicySearchRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
	K      int    `json:"k"`
}

// UploadPolicy recebe o documento de política da empresa, fatia o texto e
// grava os vetores de similaridade
func UploadPolicy(service policying.PolicyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo de política não enviado", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("policy: failed to read uploaded file")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
			return
		}

		if err := service.Upload(r.Context(), userID, header.Filename, string(content)); err != nil {
			handlePolicyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":   "success",
			"message":  "Policy uploaded",
			"filename": header.Filename,
		})
	}
}

// PolicyStatus indica se o usuário tem um documento de política carregado
func PolicyStatus(service policying.PolicyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		status, err := service.Status(userID)
		if err != nil {
			handlePolicyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// SearchPolicy busca os trechos da política mais próximos da consulta
func SearchPolicy(service policying.PolicyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PolicySearchRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID == "" || req.Query == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id e query são obrigatórios", nil)
			return
		}

		matches, err := service.Search(r.Context(), req.UserID, req.Query, req.K)
		if err != nil {
			handlePolicyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"query":   req.Query,
			"matches": matches,
		})
	}
}

// handlePolicyError converte erros do usecase de políticas na resposta da API
func handlePolicyError(w http.ResponseWriter, err error) {
	var policyErr *policying.PolicyError
	if errors.As(err, &policyErr) {
		apiErrors.WriteError(w, policyErr.Code, policyErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a política", nil)
}
