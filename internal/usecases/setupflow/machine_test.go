package setupflow

import (
	"testing"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		session  *domain.SetupSession
		message  string
		validate func(t *testing.T, session *domain.SetupSession, reply string, complete bool)
	}{
		{
			name:    "Apresentação extrai o nome e avança para o token",
			session: domain.NewSetupSession("user-1"),
			message: "my name is carlos",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepDeveloperToken, session.Step)
				assert.Equal(t, "carlos", session.Data[DataKeyUsername])
				assert.Contains(t, reply, "Nice to meet you, carlos!")
				assert.Contains(t, reply, "Google Ads Developer Token")
			},
		},
		{
			name:    "Call me também extrai o nome",
			session: domain.NewSetupSession("user-1"),
			message: "call me Ana",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.Equal(t, "Ana", session.Data[DataKeyUsername])
			},
		},
		{
			name:    "Palavra única vira o nome diretamente",
			session: domain.NewSetupSession("user-1"),
			message: "  joao  ",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.Equal(t, "joao", session.Data[DataKeyUsername])
			},
		},
		{
			name:    "Frase sem padrão conhecido fica como nome inteiro",
			session: domain.NewSetupSession("user-1"),
			message: "hello there friend",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.Equal(t, "hello there friend", session.Data[DataKeyUsername])
			},
		},
		{
			name: "Pedido de ajuda na etapa do token repete a orientação sem avançar",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepDeveloperToken,
				Data:   map[string]string{DataKeyUsername: "carlos"},
			},
			message: "HELP",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepDeveloperToken, session.Step)
				assert.NotContains(t, session.Data, DataKeyDeveloperToken)
				assert.Contains(t, reply, "How to get your Developer Token")
			},
		},
		{
			name: "Token recebido é salvo sem espaços nas pontas",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepDeveloperToken,
				Data:   map[string]string{DataKeyUsername: "carlos"},
			},
			message: "  ABcdEFGHij1234567890  ",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepManagerID, session.Step)
				assert.Equal(t, "ABcdEFGHij1234567890", session.Data[DataKeyDeveloperToken])
				assert.Contains(t, reply, "Token saved")
			},
		},
		{
			name: "Manager ID perde os hífens ao ser salvo",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepManagerID,
				Data:   map[string]string{DataKeyUsername: "carlos"},
			},
			message: "123-456-7890",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepCampaignID, session.Step)
				assert.Equal(t, "1234567890", session.Data[DataKeyManagerID])
				assert.Contains(t, reply, "Manager ID saved")
			},
		},
		{
			name: "Same reaproveita o Manager ID e conclui a coleta",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepCampaignID,
				Data: map[string]string{
					DataKeyUsername:       "carlos",
					DataKeyDeveloperToken: "ABcdEFGHij1234567890",
					DataKeyManagerID:      "1234567890",
				},
			},
			message: "same",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.True(t, complete)
				assert.Equal(t, domain.StepComplete, session.Step)
				assert.Equal(t, "1234567890", session.Data[DataKeyCampaignID])
				assert.Contains(t, reply, "Setup Complete!")
				assert.Contains(t, reply, "Username: carlos")
				// Só os dez primeiros caracteres do token aparecem no resumo
				assert.Contains(t, reply, "Developer Token: ABcdEFGHij...")
				assert.NotContains(t, reply, "ABcdEFGHij1234567890")
			},
		},
		{
			name: "Campaign ID próprio também perde os hífens",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepCampaignID,
				Data: map[string]string{
					DataKeyUsername:       "carlos",
					DataKeyDeveloperToken: "ABcdEFGHij1234567890",
					DataKeyManagerID:      "1234567890",
				},
			},
			message: "987-654-3210",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.True(t, complete)
				assert.Equal(t, "9876543210", session.Data[DataKeyCampaignID])
			},
		},
		{
			name: "Ajuda na última etapa não conclui a coleta",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepCampaignID,
				Data:   map[string]string{DataKeyManagerID: "1234567890"},
			},
			message: "help",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepCampaignID, session.Step)
				assert.Contains(t, reply, "About Campaign Account ID")
			},
		},
		{
			name: "Sessão concluída responde que já está completa",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepComplete,
				Data:   map[string]string{DataKeyUsername: "carlos"},
			},
			message: "hello again",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.True(t, complete)
				assert.Equal(t, domain.StepComplete, session.Step)
				assert.Equal(t, replyAlreadyComplete, reply)
			},
		},
		{
			name: "Etapa desconhecida recomeça a coleta preservando os dados",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.SetupStep("corrupted"),
				Data:   map[string]string{DataKeyDeveloperToken: "ABcdEFGHij1234567890"},
			},
			message: "carlos",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.False(t, complete)
				assert.Equal(t, domain.StepDeveloperToken, session.Step)
				assert.Equal(t, "carlos", session.Data[DataKeyUsername])
				assert.Equal(t, "ABcdEFGHij1234567890", session.Data[DataKeyDeveloperToken])
			},
		},
		{
			name: "Sessão sem mapa de dados é inicializada",
			session: &domain.SetupSession{
				UserID: "user-1",
				Step:   domain.StepUsername,
			},
			message: "carlos",
			validate: func(t *testing.T, session *domain.SetupSession, reply string, complete bool) {
				assert.Equal(t, "carlos", session.Data[DataKeyUsername])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, complete := Advance(tt.session, tt.message)

			tt.validate(t, tt.session, reply, complete)
		})
	}
}

func TestStripDashes(t *testing.T) {
	assert.Equal(t, "1234567890", stripDashes("123-456-7890"))
	assert.Equal(t, "1234567890", stripDashes("1234567890"))
	assert.Equal(t, "", stripDashes("---"))
}
