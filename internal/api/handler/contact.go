package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/contacting"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/pkg/errors"
)

type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact recebe o formulário público de contato
func SubmitContact(service contacting.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactFormRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		message := &domain.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		}

		if err := service.Submit(message); err != nil {
			if errors.Is(err, contacting.ErrMissingFields) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a mensagem", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "Message received",
		})
	}
}
