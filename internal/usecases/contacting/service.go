package contacting

import (
	"errors"

	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/sirupsen/logrus"
)

// ErrMissingFields indica que o formulário veio sem algum campo obrigatório
var ErrMissingFields = errors.New("name, email, subject e message são obrigatórios")

type ContactService interface {
	Submit(message *domain.ContactMessage) error
}

type Service struct {
	messageRepository repository.ContactMessageRepository
}

func NewService(messageRepository repository.ContactMessageRepository) ContactService {
	return &Service{
		messageRepository: messageRepository,
	}
}

// Submit grava a mensagem do formulário de contato. Falhas de gravação são
// engolidas de propósito: o visitante sempre recebe confirmação, e o erro
// fica apenas no log do servidor.
func (s *Service) Submit(message *domain.ContactMessage) error {
	if message.Name == "" || message.Email == "" || message.Subject == "" || message.Message == "" {
		return ErrMissingFields
	}

	if err := s.messageRepository.Save(message); err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  message.Name,
			"email": message.Email,
			"error": err.Error(),
		}).Error("contact: failed to persist contact message")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"name":  message.Name,
		"email": message.Email,
	}).Info("contact: contact form saved")

	return nil
}
