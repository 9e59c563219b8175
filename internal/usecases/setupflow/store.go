package setupflow

import (
	"sync"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// SessionStore guarda as sessões de configuração por usuário. Get devolve
// nil quando não há sessão para a chave.
type SessionStore interface {
	Get(userID string) (*domain.SetupSession, error)
	Save(session *domain.SetupSession) error
	Delete(userID string) error
}

// InMemoryStore é um SessionStore em memória, usado em desenvolvimento e
// nos testes. Cada Get devolve uma cópia para reproduzir a semântica do
// armazenamento em banco: mudanças só valem depois de Save.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SetupSession
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]*domain.SetupSession),
	}
}

func (s *InMemoryStore) Get(userID string) (*domain.SetupSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}

	return copySession(session), nil
}

func (s *InMemoryStore) Save(session *domain.SetupSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.UserID] = copySession(session)

	return nil
}

func (s *InMemoryStore) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)

	return nil
}

func copySession(session *domain.SetupSession) *domain.SetupSession {
	copied := *session

	copied.Data = make(map[string]string, len(session.Data))
	for key, value := range session.Data {
		copied.Data[key] = value
	}

	copied.History = make([]domain.SetupMessage, len(session.History))
	copy(copied.History, session.History)

	return &copied
}
