package campaigning

import (
	"errors"
	"fmt"
	"strings"

	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrSpecRequired       = errors.New("campaign spec is required")
	ErrMissingCredentials = errors.New("connection has no Google Ads credentials")

	// Erros de serviços externos
	ErrAINotConfigured  = errors.New("AI integration is not configured")
	ErrAIRequest        = errors.New("error requesting campaign draft from AI")
	ErrAIResponse       = errors.New("AI returned an invalid campaign spec")
	ErrPlatformRejected = errors.New("Google Ads API rejected the campaign")
	ErrSubmissionFailed = errors.New("campaign submission failed")

	// Erros de banco de dados
	ErrConnectionNotFound = errors.New("user connection not found")
	ErrDraftNotFound      = errors.New("campaign draft not found")
	ErrDatabaseOperation  = errors.New("database operation error")
	ErrFetchDrafts        = errors.New("error fetching campaign drafts from database")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError cria um novo CampaignError
func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// Violation é uma violação individual encontrada na validação de uma
// especificação de campanha
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Códigos de violação
const (
	CodeRequired      = "required"
	CodeTooLong       = "too_long"
	CodeTooFew        = "too_few"
	CodeEmpty         = "empty"
	CodeDuplicate     = "duplicate"
	CodeInvalid       = "invalid"
	CodeNotPositive   = "not_positive"
	CodeInvalidScheme = "invalid_scheme"
)

// ValidationError agrega todas as violações de uma especificação para que
// o chamador receba a lista completa, não apenas a primeira
type ValidationError struct {
	Violations []Violation
}

// Error junta as mensagens de todas as violações separadas por "; ",
// na ordem em que os campos foram conferidos
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		messages = append(messages, violation.Message)
	}
	return strings.Join(messages, "; ")
}

// PlatformError carrega os erros estruturados devolvidos pela plataforma
// quando uma campanha é recusada
type PlatformError struct {
	Err     error
	Details []domain.PlatformErrorDetail
}

func (e *PlatformError) Error() string {
	return ErrPlatformRejected.Error()
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError converte a falha crua da API nos detalhes expostos ao
// cliente: caminho do campo, mensagem e código de cada erro
func NewPlatformError(failure *adsdomain.FailureError) *PlatformError {
	adsErrors := failure.AdsErrors()

	details := make([]domain.PlatformErrorDetail, 0, len(adsErrors))
	for _, adsErr := range adsErrors {
		details = append(details, domain.PlatformErrorDetail{
			Field:     adsErr.FieldPath(),
			Message:   adsErr.Message,
			ErrorCode: adsErr.ErrorCode,
		})
	}

	return &PlatformError{
		Err:     failure,
		Details: details,
	}
}
