package domain

import "time"

// UserConnection guarda as credenciais de um usuário conectado via OAuth.
// A chave é o e-mail para usuários do app principal e o user_id informado
// pelo fluxo conversacional para contas configuradas pelo agente.
type UserConnection struct {
	ID              int       `json:"id"`
	Key             string    `json:"key"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Username        string    `json:"username"`
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	DeveloperToken  string    `json:"developer_token"`
	LoginCustomerID string    `json:"login_customer_id"`
	CustomerID      string    `json:"customer_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasAdsCredentials indica se a conexão tem o mínimo para chamar a API do
// Google Ads em nome do usuário
func (c *UserConnection) HasAdsCredentials() bool {
	return c != nil && c.DeveloperToken != "" && c.RefreshToken != ""
}

// RedactedConnection é a visão pública de uma conexão, sem segredos
type RedactedConnection struct {
	Key             string `json:"key"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	HasRefreshToken bool   `json:"has_refresh_token"`
	DeveloperToken  string `json:"developer_token"`
	LoginCustomerID string `json:"login_customer_id"`
	CustomerID      string `json:"customer_id"`
}

// Redacted devolve a conexão com o token de desenvolvedor truncado e sem
// os tokens OAuth
func (c *UserConnection) Redacted() *RedactedConnection {
	token := c.DeveloperToken
	if len(token) > 10 {
		token = token[:10] + "..."
	}

	return &RedactedConnection{
		Key:             c.Key,
		Email:           c.Email,
		Name:            c.Name,
		Username:        c.Username,
		HasRefreshToken: c.RefreshToken != "",
		DeveloperToken:  token,
		LoginCustomerID: c.LoginCustomerID,
		CustomerID:      c.CustomerID,
	}
}
