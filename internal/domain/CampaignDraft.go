package domain

import "time"

// CampaignDraft é uma especificação gerada pela IA e aguardando revisão.
// A chave de idempotência protege contra reenvios duplicados do frontend.
type CampaignDraft struct {
	ID             int           `json:"id"`
	IdempotencyKey string        `json:"idempotency_key"`
	ConnectionKey  string        `json:"connection_key"`
	CustomerID     string        `json:"customer_id"`
	UserQuery      string        `json:"user_query"`
	LandingURL     string        `json:"landing_url"`
	UsedPolicy     bool          `json:"used_policy"`
	Spec           *CampaignSpec `json:"spec"`
	CreatedAt      time.Time     `json:"created_at"`
}
