package connecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conexões OAuth
var (
	// Erros de autenticação
	ErrInvalidToken    = errors.New("token inválido")
	ErrInvalidState    = errors.New("state do OAuth inválido ou expirado")
	ErrTokenExchange   = errors.New("falha na troca do código de autorização")
	ErrNoRefreshToken  = errors.New("o Google não devolveu um refresh_token")
	ErrNoUserEmail     = errors.New("não foi possível obter o e-mail do usuário")
	ErrTokenGeneration = errors.New("erro ao gerar o token de sessão")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// A conexão ainda não passou pelo consentimento OAuth
	ErrAuthorizationRequired = errors.New("autorização OAuth necessária")

	// Erros de banco de dados
	ErrConnectionNotFound = errors.New("conexão não encontrada")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// ConnectionError é um erro com contexto adicional para conexões
type ConnectionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError cria um novo ConnectionError
func NewConnectionError(err error, code string, details string) *ConnectionError {
	return &ConnectionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
