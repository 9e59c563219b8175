package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/usecases/setupflow"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type SetupChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	// Aceito por compatibilidade com clientes antigos que devolviam a
	// sessão a cada turno; o estado agora vive no servidor
	SessionData map[string]any `json:"session_data,omitempty"`
}

type ResetSetupRequest struct {
	UserID string `json:"user_id"`
}

// SetupChat processa um turno da conversa guiada de configuração
func SetupChat(service setupflow.SetupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetupChatRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID == "" || req.Message == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing user_id or message", nil)
			return
		}

		result, err := service.Chat(req.UserID, req.Message)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,
				"error":   err.Error(),
			}).Error("setup: chat turn failed")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a conversa de configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// SetupStatus devolve a etapa atual e os campos já coletados do usuário
func SetupStatus(service setupflow.SetupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "user_id é obrigatório", nil)
			return
		}

		status, err := service.Status(userID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar a sessão de configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// ResetSetup descarta a sessão de configuração do usuário
func ResetSetup(service setupflow.SetupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetSetupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID != "" {
			if err := service.Reset(req.UserID); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao descartar a sessão de configuração", nil)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
