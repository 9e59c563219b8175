package tracking

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de rastreamento e analytics
var (
	ErrSaveEvent      = errors.New("failed to save tracking event")
	ErrAnalyticsQuery = errors.New("failed to aggregate analytics data")
)

// TrackingError é um erro com contexto adicional para analytics
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TrackingError) Unwrap() error {
	return e.Err
}

// NewTrackingError cria um novo TrackingError
func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
