package setupflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

type SetupService interface {
	Chat(userID, message string) (*domain.SetupChatResult, error)
	Status(userID string) (*domain.SetupStatus, error)
	Reset(userID string) error
}

type Service struct {
	store SessionStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(store SessionStore) SetupService {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Chat processa um turno da conversa de configuração do usuário. Turnos do
// mesmo usuário são serializados por um mutex por chave para que duas
// mensagens simultâneas não percam dados coletados. O histórico recebe as
// duas linhas de todo turno, inclusive nos caminhos de conclusão.
func (s *Service) Chat(userID, message string) (*domain.SetupChatResult, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a sessão de configuração: %w", err)
	}
	if session == nil {
		session = domain.NewSetupSession(userID)
	}

	reply, complete := Advance(session, message)

	session.History = append(session.History,
		domain.SetupMessage{Role: domain.SetupRoleUser, Content: message},
		domain.SetupMessage{Role: domain.SetupRoleAssistant, Content: reply},
	)
	session.UpdatedAt = time.Now()

	if err := s.store.Save(session); err != nil {
		return nil, fmt.Errorf("erro ao salvar a sessão de configuração: %w", err)
	}

	result := &domain.SetupChatResult{
		Response: reply,
		Complete: complete,
	}
	if complete {
		result.Data = session.Data
	}

	return result, nil
}

// Status devolve a etapa atual e os campos já coletados do usuário. Sem
// sessão gravada, o status reflete a etapa inicial.
func (s *Service) Status(userID string) (*domain.SetupStatus, error) {
	session, err := s.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar a sessão de configuração: %w", err)
	}
	if session == nil {
		session = domain.NewSetupSession(userID)
	}

	collectableKeys := []string{
		domain.SetupDataKeyUsername,
		domain.SetupDataKeyDeveloperToken,
		domain.SetupDataKeyManagerID,
		domain.SetupDataKeyCampaignID,
	}

	collected := make([]string, 0, len(session.Data))
	for _, key := range collectableKeys {
		if _, ok := session.Data[key]; ok {
			collected = append(collected, key)
		}
	}

	return &domain.SetupStatus{
		UserID:    userID,
		Step:      session.Step,
		Collected: collected,
		Complete:  session.Step == domain.StepComplete,
	}, nil
}

// Reset descarta a sessão de configuração do usuário
func (s *Service) Reset(userID string) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.Delete(userID); err != nil {
		return fmt.Errorf("erro ao descartar a sessão de configuração: %w", err)
	}

	return nil
}

func (s *Service) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}

	return lock
}
