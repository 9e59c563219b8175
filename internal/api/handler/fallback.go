package handler

import (
	"net/http"

	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
)

// NotFound responde rotas desconhecidas com o envelope de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "rota não encontrada", nil)
	})
}

// MethodNotAllowed responde métodos não registrados em rotas existentes
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "método não suportado para esta rota", nil)
	})
}
