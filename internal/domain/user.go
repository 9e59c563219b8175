package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados embutidos no token de sessão emitido após o OAuth
type Claims struct {
	UserEmail     string
	UserName      string
	ConnectionKey string
	jwt.RegisteredClaims
}

// Fluxos de origem do consentimento OAuth
const (
	OAuthFlowMainApp = "main_app"
	OAuthFlowAgentic = "agentic"
)

// OAuthStateClaims assinam o parâmetro state do fluxo de autorização,
// preservando o contexto entre o redirect e o callback
type OAuthStateClaims struct {
	UserID    string `json:"user_id"`
	Flow      string `json:"flow"`
	SetupData string `json:"setup_data,omitempty"`
	jwt.RegisteredClaims
}
