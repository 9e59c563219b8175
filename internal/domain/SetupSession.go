package domain

import "time"

// SetupStep é a etapa atual da conversa de configuração de uma conta
type SetupStep string

const (
	StepUsername       SetupStep = "username"
	StepDeveloperToken SetupStep = "developer_token"
	StepManagerID      SetupStep = "manager_id"
	StepCampaignID     SetupStep = "campaign_id"
	StepComplete       SetupStep = "complete"
)

// IsValid indica se o valor corresponde a uma etapa conhecida
func (s SetupStep) IsValid() bool {
	switch s {
	case StepUsername, StepDeveloperToken, StepManagerID, StepCampaignID, StepComplete:
		return true
	}
	return false
}

// Papéis das mensagens trocadas na conversa de configuração
const (
	SetupRoleUser      = "user"
	SetupRoleAssistant = "assistant"
)

// Chaves dos valores coletados durante a conversa
const (
	SetupDataKeyUsername       = "username"
	SetupDataKeyDeveloperToken = "developer_token"
	SetupDataKeyManagerID      = "manager_id"
	SetupDataKeyCampaignID     = "campaign_id"
)

type SetupMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SetupSession é o estado da conversa de configuração de um usuário
type SetupSession struct {
	UserID    string            `json:"user_id"`
	Step      SetupStep         `json:"step"`
	Data      map[string]string `json:"data"`
	History   []SetupMessage    `json:"history"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSetupSession cria uma sessão na etapa inicial
func NewSetupSession(userID string) *SetupSession {
	now := time.Now()

	return &SetupSession{
		UserID:    userID,
		Step:      StepUsername,
		Data:      make(map[string]string),
		History:   make([]SetupMessage, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetupChatResult é a resposta de um turno da conversa de configuração.
// Data só é preenchido quando a coleta termina.
type SetupChatResult struct {
	Response string            `json:"response"`
	Complete bool              `json:"complete"`
	Data     map[string]string `json:"data"`
}

// SetupStatus resume o andamento da coleta de um usuário
type SetupStatus struct {
	UserID    string    `json:"user_id"`
	Step      SetupStep `json:"step"`
	Collected []string  `json:"collected"`
	Complete  bool      `json:"complete"`
}
