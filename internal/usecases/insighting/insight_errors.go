package insighting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de insights de anúncios
var (
	// Erros de validação
	ErrMissingCredentials = errors.New("connection has no Google Ads credentials")
	ErrInvalidPeriod      = errors.New("unsupported date range")

	// Erros de serviços externos
	ErrAdsQuery = errors.New("Google Ads API error")

	// Erros de banco de dados
	ErrConnectionNotFound = errors.New("user connection not found")
	ErrDatabaseOperation  = errors.New("database operation error")
)

// InsightError é um erro com contexto adicional para insights
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError cria um novo InsightError
func NewInsightError(err error, code string, details string) *InsightError {
	return &InsightError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
