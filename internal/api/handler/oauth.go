package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/connecting"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type SaveTokensRequest struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

type UserConfigRequest struct {
	UserID          string `json:"user_id"`
	DeveloperToken  string `json:"developer_token"`
	LoginCustomerID string `json:"login_customer_id"`
}

type SetupTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type StoreSetupRequest struct {
	UserEmail      string      `json:"user_email"`
	DeveloperToken string      `json:"developer_token"`
	ManagerID      string      `json:"manager_id"`
	CustomerID     string      `json:"customer_id"`
	Username       string      `json:"username"`
	Tokens         SetupTokens `json:"tokens"`
}

type CompleteSetupRequest struct {
	UserID    string            `json:"user_id"`
	Data      map[string]string `json:"data"`
	UserEmail string            `json:"user_email"`
	Tokens    *SetupTokens      `json:"tokens"`
}

// GoogleAuth inicia o fluxo de consentimento redirecionando para o Google
func GoogleAuth(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		setupData := r.URL.Query().Get("setup_data")

		flow := ""
		if r.URL.Query().Get("from_agentic") != "" {
			flow = domain.OAuthFlowAgentic
		}

		authURL, err := service.AuthURL(userID, flow, setupData)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// OAuthCallback finaliza o fluxo de consentimento. O resultado, sucesso ou
// falha, sempre vira um redirect para o frontend.
func OAuthCallback(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		redirect := service.HandleCallback(r.Context(), query.Get("code"), query.Get("error"), query.Get("state"))

		http.Redirect(w, r, redirect, http.StatusFound)
	}
}

// GetConnection devolve a conexão armazenada com os tokens mascarados
func GetConnection(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := httprouter.ParamsFromContext(r.Context()).ByName("email")
		if email == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "E-mail não fornecido", nil)
			return
		}

		connection, err := service.Connection(email)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connection)
	}
}

// SaveOAuthTokens grava tokens OAuth repassados pelo app principal
func SaveOAuthTokens(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveTokensRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveTokens(req.UserID, req.AccessToken, req.RefreshToken, req.Email); err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

// SaveUserConfig grava o developer token e o login customer id informados
// manualmente. Sem consentimento OAuth prévio, devolve a URL para iniciá-lo.
func SaveUserConfig(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserConfigRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		err := service.SaveManualConfig(req.UserID, req.DeveloperToken, req.LoginCustomerID)
		if err != nil {
			// O frontend usa esta resposta para encaminhar o usuário ao
			// consentimento, então a forma do payload é contrato
			if errors.Is(err, connecting.ErrAuthorizationRequired) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error":    "oauth_required",
					"auth_url": fmt.Sprintf("/auth/google?user_id=%s", req.UserID),
				})
				return
			}

			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

// StoreSetup grava os dados de configuração enviados pelo frontend após o
// fluxo agêntico
func StoreSetup(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StoreSetupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserEmail == "" || req.DeveloperToken == "" || req.ManagerID == "" || req.CustomerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required fields", nil)
			return
		}

		connection := &domain.UserConnection{
			Key:             req.UserEmail,
			Email:           req.UserEmail,
			Username:        req.Username,
			DeveloperToken:  req.DeveloperToken,
			LoginCustomerID: req.ManagerID,
			CustomerID:      req.CustomerID,
			AccessToken:     req.Tokens.AccessToken,
			RefreshToken:    req.Tokens.RefreshToken,
		}

		if _, err := service.StoreSetup(connection); err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}
}

// CompleteSetup grava a configuração completa coletada pela conversa de
// onboarding junto com os tokens OAuth obtidos no consentimento
func CompleteSetup(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteSetupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.UserID == "" || len(req.Data) == 0 || req.UserEmail == "" || req.Tokens == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing required data", nil)
			return
		}

		connection := &domain.UserConnection{
			Key:             req.UserEmail,
			Email:           req.UserEmail,
			Username:        req.Data[domain.SetupDataKeyUsername],
			DeveloperToken:  req.Data[domain.SetupDataKeyDeveloperToken],
			LoginCustomerID: req.Data[domain.SetupDataKeyManagerID],
			CustomerID:      req.Data[domain.SetupDataKeyCampaignID],
			AccessToken:     req.Tokens.AccessToken,
			RefreshToken:    req.Tokens.RefreshToken,
		}

		if _, err := service.StoreSetup(connection); err != nil {
			handleConnectionError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID,
			"key":     req.UserEmail,
		}).Info("setup: complete setup stored")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":     "success",
			"message":    "Setup completed successfully",
			"setup_data": req.Data,
		})
	}
}

// GetUserEmail resolve o e-mail de um usuário a partir do username
func GetUserEmail(service connecting.ConnectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "username é obrigatório", nil)
			return
		}

		email, err := service.EmailForUsername(username)
		if err != nil {
			handleConnectionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"email": email})
	}
}

// handleConnectionError converte erros do usecase de conexões na resposta da API
func handleConnectionError(w http.ResponseWriter, err error) {
	var connErr *connecting.ConnectionError
	if errors.As(err, &connErr) {
		apiErrors.WriteError(w, connErr.Code, connErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a conexão", nil)
}
