package domain

// Tipos de correspondência aceitos pelo Google Ads para palavras-chave
const (
	MatchTypeExact  = "EXACT"
	MatchTypePhrase = "PHRASE"
	MatchTypeBroad  = "BROAD"
)

// Estratégias de lance suportadas no fluxo de criação de campanhas
const (
	BiddingMaximizeClicks      = "MAXIMIZE_CLICKS"
	BiddingMaximizeConversions = "MAXIMIZE_CONVERSIONS"
	BiddingTargetCPA           = "TARGET_CPA"
	BiddingManualCPC           = "MANUAL_CPC"
)

// Keyword é uma palavra-chave já normalizada
type Keyword struct {
	Text      string `json:"text"`
	MatchType string `json:"match_type"`
}

// CampaignSpec é a especificação de campanha produzida pela IA ou enviada
// pelo frontend. Budget e keywords chegam sem tipo fixo porque o payload
// vem cru do modelo e a validação precisa reportar o valor recebido.
type CampaignSpec struct {
	CampaignName       string   `json:"campaign_name"`
	BudgetAmountMicros any      `json:"budget_amount_micros"`
	Keywords           []any    `json:"keywords"`
	Headlines          []string `json:"headlines"`
	Descriptions       []string `json:"descriptions"`
	FinalURL           string   `json:"final_url"`
	BiddingStrategy    string   `json:"bidding_strategy"`
	AdGroupName        string   `json:"ad_group_name,omitempty"`
}

// CampaignPreview resume a campanha gerada para exibição antes do envio
type CampaignPreview struct {
	CampaignName      string `json:"campaign_name"`
	Budget            string `json:"budget"` // Formato $xx.xx/day
	HeadlinesCount    int    `json:"headlines_count"`
	DescriptionsCount int    `json:"descriptions_count"`
	KeywordsCount     int    `json:"keywords_count"`
}

// SubmissionOutcome é o resultado do envio de uma campanha para a plataforma
type SubmissionOutcome struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	CampaignID string `json:"campaign_id,omitempty"`
}

// PlatformErrorDetail descreve um erro retornado pela API do Google Ads
type PlatformErrorDetail struct {
	Field     string `json:"field"`
	Message   string `json:"message"`
	ErrorCode any    `json:"error_code,omitempty"`
}
