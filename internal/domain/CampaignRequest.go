package domain

import "time"

// CampaignCreationRequest é o pedido de geração de campanha pela IA
type CampaignCreationRequest struct {
	UserID           string `json:"user_id"`
	CustomerID       string `json:"customer_id"`
	UserQuery        string `json:"user_query"`
	LandingURL       string `json:"landing_url,omitempty"`
	UseCompanyPolicy bool   `json:"use_company_policy"`
}

// CampaignSubmissionRequest é o pedido de envio de uma campanha à plataforma.
// A especificação pode vir inline ou por referência a um rascunho já gerado
type CampaignSubmissionRequest struct {
	UserID       string        `json:"user_id"`
	CustomerID   string        `json:"customer_id"`
	DraftID      string        `json:"draft_id,omitempty"`
	CampaignSpec *CampaignSpec `json:"campaign_spec"`
	ValidateOnly bool          `json:"validate_only"`
}

// CampaignDraftResult é a resposta da geração: a especificação já validada,
// a chave de idempotência do rascunho e um resumo para exibição
type CampaignDraftResult struct {
	Status         string           `json:"status"`
	CampaignSpec   *CampaignSpec    `json:"campaign_spec"`
	IdempotencyKey string           `json:"idempotency_key"`
	CreatedAt      time.Time        `json:"created_at"`
	Preview        *CampaignPreview `json:"preview"`
}
