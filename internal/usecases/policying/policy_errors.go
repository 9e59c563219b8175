package policying

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de políticas da empresa
var (
	// Erros de validação
	ErrEmptyPolicy = errors.New("policy document is empty")

	// Erros de serviços externos
	ErrEmbedding = errors.New("error generating policy embeddings")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// PolicyError é um erro com contexto adicional para políticas
type PolicyError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PolicyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PolicyError) Unwrap() error {
	return e.Err
}

// NewPolicyError cria um novo PolicyError
func NewPolicyError(err error, code string, details string) *PolicyError {
	return &PolicyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
