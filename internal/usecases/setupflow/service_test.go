package setupflow

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore simula falhas do armazenamento de sessões
type brokenStore struct {
	getErr    error
	saveErr   error
	deleteErr error
}

func (s *brokenStore) Get(string) (*domain.SetupSession, error) {
	return nil, s.getErr
}

func (s *brokenStore) Save(*domain.SetupSession) error {
	return s.saveErr
}

func (s *brokenStore) Delete(string) error {
	return s.deleteErr
}

func TestService_Chat_ConversaCompleta(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store)

	// Turno 1: apresentação
	result, err := service.Chat("user-1", "my name is carlos")
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Contains(t, result.Response, "Nice to meet you, carlos!")
	assert.Nil(t, result.Data)

	// Turno 2: token de desenvolvedor
	result, err = service.Chat("user-1", "ABcdEFGHij1234567890")
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Contains(t, result.Response, "Token saved")

	// Turno 3: conta gerenciadora
	result, err = service.Chat("user-1", "123-456-7890")
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Contains(t, result.Response, "Manager ID saved")

	// Turno 4: mesma conta para campanhas, coleta concluída
	result, err = service.Chat("user-1", "same")
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Contains(t, result.Response, "Setup Complete!")
	assert.Equal(t, map[string]string{
		domain.SetupDataKeyUsername:       "carlos",
		domain.SetupDataKeyDeveloperToken: "ABcdEFGHij1234567890",
		domain.SetupDataKeyManagerID:      "1234567890",
		domain.SetupDataKeyCampaignID:     "1234567890",
	}, result.Data)

	// O histórico guarda as duas linhas de cada turno, alternando os papéis
	session, err := store.Get("user-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Len(t, session.History, 8)
	assert.Equal(t, domain.SetupRoleUser, session.History[0].Role)
	assert.Equal(t, "my name is carlos", session.History[0].Content)
	assert.Equal(t, domain.SetupRoleAssistant, session.History[1].Role)
	assert.Equal(t, domain.SetupRoleUser, session.History[6].Role)
	assert.Equal(t, "same", session.History[6].Content)
	assert.False(t, session.UpdatedAt.IsZero())
}

func TestService_Chat_AjudaNaoAvancaAConversa(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store)

	_, err := service.Chat("user-1", "carlos")
	require.NoError(t, err)

	result, err := service.Chat("user-1", "help")
	require.NoError(t, err)
	assert.False(t, result.Complete)
	assert.Contains(t, result.Response, "How to get your Developer Token")

	status, err := service.Status("user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDeveloperToken, status.Step)
	assert.Equal(t, []string{domain.SetupDataKeyUsername}, status.Collected)
	assert.False(t, status.Complete)
}

func TestService_Chat_TurnoDepoisDaConclusao(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store)

	for _, message := range []string{"carlos", "ABcdEFGHij1234567890", "123-456-7890", "same"} {
		_, err := service.Chat("user-1", message)
		require.NoError(t, err)
	}

	result, err := service.Chat("user-1", "and now?")
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, "Your setup is already complete! You can now access your dashboard.", result.Response)
	assert.Equal(t, "carlos", result.Data[domain.SetupDataKeyUsername])
}

func TestService_Status_SemSessaoGravada(t *testing.T) {
	service := NewService(NewInMemoryStore())

	status, err := service.Status("ghost")

	require.NoError(t, err)
	assert.Equal(t, "ghost", status.UserID)
	assert.Equal(t, domain.StepUsername, status.Step)
	assert.Empty(t, status.Collected)
	assert.False(t, status.Complete)
}

func TestService_Reset(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store)

	_, err := service.Chat("user-1", "carlos")
	require.NoError(t, err)

	require.NoError(t, service.Reset("user-1"))

	status, err := service.Status("user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepUsername, status.Step)
	assert.Empty(t, status.Collected)

	session, err := store.Get("user-1")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestService_ErrosDoArmazenamento(t *testing.T) {
	t.Run("Falha ao carregar a sessão interrompe o turno", func(t *testing.T) {
		service := NewService(&brokenStore{getErr: errors.New("conexão recusada")})

		result, err := service.Chat("user-1", "carlos")

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "erro ao carregar a sessão de configuração")
	})

	t.Run("Falha ao salvar a sessão interrompe o turno", func(t *testing.T) {
		service := NewService(&brokenStore{saveErr: errors.New("conexão recusada")})

		result, err := service.Chat("user-1", "carlos")

		assert.Nil(t, result)
		assert.ErrorContains(t, err, "erro ao salvar a sessão de configuração")
	})

	t.Run("Falha ao descartar a sessão é propagada", func(t *testing.T) {
		service := NewService(&brokenStore{deleteErr: errors.New("conexão recusada")})

		err := service.Reset("user-1")

		assert.ErrorContains(t, err, "erro ao descartar a sessão de configuração")
	})
}

func TestService_Chat_TurnosConcorrentesNaoPerdemHistorico(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store)

	const turns = 25

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.Chat("user-1", fmt.Sprintf("mensagem %02d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	session, err := store.Get("user-1")
	require.NoError(t, err)
	require.NotNil(t, session)

	// Cada turno grava o par usuário/assistente de forma atômica, então
	// nenhuma mensagem some e os papéis seguem alternados
	require.Len(t, session.History, 2*turns)

	seen := make(map[string]bool)
	for i, entry := range session.History {
		if i%2 == 0 {
			assert.Equal(t, domain.SetupRoleUser, entry.Role)
			seen[entry.Content] = true
		} else {
			assert.Equal(t, domain.SetupRoleAssistant, entry.Role)
		}
	}
	assert.Len(t, seen, turns)
}

func TestInMemoryStore_GetDevolveCopia(t *testing.T) {
	store := NewInMemoryStore()

	original := domain.NewSetupSession("user-1")
	original.Data[domain.SetupDataKeyUsername] = "carlos"
	require.NoError(t, store.Save(original))

	loaded, err := store.Get("user-1")
	require.NoError(t, err)

	// Mudanças na cópia só valem depois de um novo Save
	loaded.Data[domain.SetupDataKeyUsername] = "outro"
	loaded.Step = domain.StepComplete

	reloaded, err := store.Get("user-1")
	require.NoError(t, err)
	assert.Equal(t, "carlos", reloaded.Data[domain.SetupDataKeyUsername])
	assert.Equal(t, domain.StepUsername, reloaded.Step)
}
