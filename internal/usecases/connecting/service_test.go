package connecting

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleoauth/oauthclient"
	oauthmocks "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleoauth/oauthclient/mocks"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository/mocks"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		App:  config.App{FrontendURL: "https://app.example.com"},
		Auth: config.Auth{TokenTTL: time.Hour},
		GoogleOAuth: config.GoogleOAuth{
			RedirectURI:        "https://api.example.com/oauth2/callback",
			AgenticRedirectURI: "https://api.example.com/oauth2/agentic-callback",
			StateTTL:           10 * time.Minute,
		},
		SecretKey: "segredo-de-teste",
	}
}

func redirectQuery(t *testing.T, redirect string) url.Values {
	t.Helper()

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	return parsed.Query()
}

func TestService_AuthURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOAuth := oauthmocks.NewMockClient(ctrl)

	service := &Service{
		cfg:         testConfig(),
		oauthClient: mockOAuth,
	}

	t.Run("Fluxo principal usa o redirect padrão e assume o usuário default", func(t *testing.T) {
		var capturedState, capturedRedirect string

		mockOAuth.EXPECT().
			AuthCodeURL(gomock.Any(), gomock.Any()).
			DoAndReturn(func(state, redirectURI string) string {
				capturedState = state
				capturedRedirect = redirectURI
				return "https://accounts.google.com/o/oauth2/auth?state=" + state
			})

		authURL, err := service.AuthURL("", "", "")

		assert.NoError(t, err)
		assert.Contains(t, authURL, "accounts.google.com")
		assert.Equal(t, "https://api.example.com/oauth2/callback", capturedRedirect)

		claims, err := service.parseState(capturedState)
		require.NoError(t, err)
		assert.Equal(t, "default_user", claims.UserID)
		assert.Equal(t, domain.OAuthFlowMainApp, claims.Flow)
		assert.Empty(t, claims.SetupData)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Dados de configuração forçam o fluxo agêntico", func(t *testing.T) {
		var capturedState, capturedRedirect string

		mockOAuth.EXPECT().
			AuthCodeURL(gomock.Any(), gomock.Any()).
			DoAndReturn(func(state, redirectURI string) string {
				capturedState = state
				capturedRedirect = redirectURI
				return "https://accounts.google.com/o/oauth2/auth"
			})

		_, err := service.AuthURL("agent-user-7", "", `{"username":"carlos"}`)

		assert.NoError(t, err)
		assert.Equal(t, "https://api.example.com/oauth2/agentic-callback", capturedRedirect)

		claims, err := service.parseState(capturedState)
		require.NoError(t, err)
		assert.Equal(t, "agent-user-7", claims.UserID)
		assert.Equal(t, domain.OAuthFlowAgentic, claims.Flow)
		assert.Equal(t, `{"username":"carlos"}`, claims.SetupData)
	})

	t.Run("States de requisições seguidas nunca se repetem", func(t *testing.T) {
		states := make([]string, 0, 2)

		mockOAuth.EXPECT().
			AuthCodeURL(gomock.Any(), gomock.Any()).
			DoAndReturn(func(state, _ string) string {
				states = append(states, state)
				return "https://accounts.google.com/o/oauth2/auth"
			}).
			Times(2)

		_, err := service.AuthURL("user-1", domain.OAuthFlowMainApp, "")
		require.NoError(t, err)
		_, err = service.AuthURL("user-1", domain.OAuthFlowMainApp, "")
		require.NoError(t, err)

		require.Len(t, states, 2)
		assert.NotEqual(t, states[0], states[1])
	})
}

func TestService_StateRoundTrip(t *testing.T) {
	service := &Service{cfg: testConfig()}

	t.Run("State assinado é recuperado com os mesmos dados", func(t *testing.T) {
		state, err := service.signState("user-1", domain.OAuthFlowAgentic, `{"username":"carlos"}`)
		require.NoError(t, err)

		claims, err := service.parseState(state)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, domain.OAuthFlowAgentic, claims.Flow)
		assert.Equal(t, `{"username":"carlos"}`, claims.SetupData)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("State assinado com outro segredo é rejeitado", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.SecretKey = "outro-segredo"
		otherService := &Service{cfg: otherCfg}

		state, err := otherService.signState("user-1", domain.OAuthFlowMainApp, "")
		require.NoError(t, err)

		claims, err := service.parseState(state)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("State expirado é rejeitado", func(t *testing.T) {
		expiredCfg := testConfig()
		expiredCfg.GoogleOAuth.StateTTL = -time.Minute
		expiredService := &Service{cfg: expiredCfg}

		state, err := expiredService.signState("user-1", domain.OAuthFlowMainApp, "")
		require.NoError(t, err)

		claims, err := service.parseState(state)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service := &Service{cfg: testConfig()}

	t.Run("Token de sessão emitido pelo serviço é aceito", func(t *testing.T) {
		token, err := service.sessionToken(&domain.UserConnection{
			Key:   "user@example.com",
			Email: "user@example.com",
			Name:  "Usuária Exemplo",
		})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.UserEmail)
		assert.Equal(t, "Usuária Exemplo", claims.UserName)
		assert.Equal(t, "user@example.com", claims.ConnectionKey)
	})

	t.Run("Token assinado com outro segredo é rejeitado", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.SecretKey = "outro-segredo"
		otherService := &Service{cfg: otherCfg}

		token, err := otherService.sessionToken(&domain.UserConnection{Key: "user@example.com"})
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)

		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Texto que não é um JWT é rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("não-é-um-token")

		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}

func TestService_HandleCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockOAuth := oauthmocks.NewMockClient(ctrl)
	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	// Service
	service := &Service{
		cfg:                  testConfig(),
		oauthClient:          mockOAuth,
		connectionRepository: mockConnRepo,
	}

	mainState, err := service.signState("user-1", domain.OAuthFlowMainApp, "")
	require.NoError(t, err)

	agenticSetup := `{"username":"carlos","developer_token":"DEVTOKEN1234567890","manager_id":"1112223330","campaign_id":"4445556660"}`
	agenticState, err := service.signState("agent-user-7", domain.OAuthFlowAgentic, agenticSetup)
	require.NoError(t, err)

	brokenSetupState, err := service.signState("agent-user-7", domain.OAuthFlowAgentic, "isto não é JSON")
	require.NoError(t, err)

	googleToken := &oauthclient.TokenResponse{
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
	}

	googleUser := &oauthclient.UserInfo{
		Email: "user@example.com",
		Name:  "Usuária Exemplo",
	}

	t.Run("Erro do provedor vira redirect de erro", func(t *testing.T) {
		redirect := service.HandleCallback(context.Background(), "", "access_denied", "")

		assert.Equal(t, "https://app.example.com/auth/callback?error=access_denied", redirect)
	})

	t.Run("Código ausente vira redirect de erro", func(t *testing.T) {
		redirect := service.HandleCallback(context.Background(), "", "", mainState)

		assert.Equal(t, "missing_code", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("State adulterado é rejeitado", func(t *testing.T) {
		redirect := service.HandleCallback(context.Background(), "auth-code", "", "state-adulterado")

		assert.Equal(t, "invalid_state", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Falha na troca do código", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", "https://api.example.com/oauth2/callback").
			Return(nil, errors.New("invalid_grant"))

		redirect := service.HandleCallback(context.Background(), "auth-code", "", mainState)

		assert.Equal(t, "token_exchange_failed", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Resposta sem refresh token é recusada", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", gomock.Any()).
			Return(&oauthclient.TokenResponse{AccessToken: "ya29.access"}, nil)

		redirect := service.HandleCallback(context.Background(), "auth-code", "", mainState)

		assert.Equal(t, "no_refresh_token", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Usuário sem e-mail é recusado", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", gomock.Any()).
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(&oauthclient.UserInfo{Email: ""}, nil)

		redirect := service.HandleCallback(context.Background(), "auth-code", "", mainState)

		assert.Equal(t, "no_user_email", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Fluxo principal grava pela chave do e-mail e emite o token de sessão", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", "https://api.example.com/oauth2/callback").
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(googleUser, nil)

		var saved *domain.UserConnection
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				saved = connection
				return nil
			})

		redirect := service.HandleCallback(context.Background(), "auth-code", "", mainState)

		require.NotNil(t, saved)
		assert.Equal(t, "user@example.com", saved.Key)
		assert.Equal(t, "ya29.access", saved.AccessToken)
		assert.Equal(t, "1//refresh", saved.RefreshToken)

		query := redirectQuery(t, redirect)
		assert.Equal(t, "user@example.com", query.Get("user_id"))
		assert.Equal(t, "user@example.com", query.Get("email"))
		require.NotEmpty(t, query.Get("token"))

		claims, err := service.ValidateToken(query.Get("token"))
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.ConnectionKey)
	})

	t.Run("Falha ao gravar a conexão", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", gomock.Any()).
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(googleUser, nil)
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(errors.New("conexão recusada"))

		redirect := service.HandleCallback(context.Background(), "auth-code", "", mainState)

		assert.Equal(t, "connection_save_failed", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Fluxo agêntico aplica os dados da conversa e mantém o user_id", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", "https://api.example.com/oauth2/agentic-callback").
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(googleUser, nil)

		connections := make([]*domain.UserConnection, 0, 2)
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				copied := *connection
				connections = append(connections, &copied)
				return nil
			}).
			Times(2)

		redirect := service.HandleCallback(context.Background(), "auth-code", "", agenticState)

		require.Len(t, connections, 2)
		assert.Equal(t, "agent-user-7", connections[0].Key)
		assert.Equal(t, "user@example.com", connections[0].Email)

		assert.Equal(t, "carlos", connections[1].Username)
		assert.Equal(t, "DEVTOKEN1234567890", connections[1].DeveloperToken)
		assert.Equal(t, "1112223330", connections[1].LoginCustomerID)
		assert.Equal(t, "4445556660", connections[1].CustomerID)

		query := redirectQuery(t, redirect)
		assert.Equal(t, "carlos", query.Get("user_id"))
		assert.Equal(t, "true", query.Get("setup_complete"))
		assert.NotEmpty(t, query.Get("token"))
	})

	t.Run("Payload agêntico inválido interrompe a configuração", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", gomock.Any()).
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(googleUser, nil)
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			Return(nil)

		redirect := service.HandleCallback(context.Background(), "auth-code", "", brokenSetupState)

		assert.Equal(t, "agentic_setup_failed", redirectQuery(t, redirect).Get("error"))
	})

	t.Run("Falha ao aplicar os dados agênticos", func(t *testing.T) {
		mockOAuth.EXPECT().
			ExchangeCode(gomock.Any(), "auth-code", gomock.Any()).
			Return(googleToken, nil)
		mockOAuth.EXPECT().
			FetchUserInfo(gomock.Any(), "ya29.access").
			Return(googleUser, nil)

		first := mockConnRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
		mockConnRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(errors.New("conexão recusada")).After(first)

		redirect := service.HandleCallback(context.Background(), "auth-code", "", agenticState)

		assert.Equal(t, "agentic_setup_failed", redirectQuery(t, redirect).Get("error"))
	})
}

func TestService_Connection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	t.Run("Conexão é devolvida sem os tokens OAuth", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(&domain.UserConnection{
				Key:            "user@example.com",
				Email:          "user@example.com",
				Name:           "Usuária Exemplo",
				AccessToken:    "ya29.access",
				RefreshToken:   "1//refresh",
				DeveloperToken: "DEVTOKEN1234567890",
			}, nil)

		connection, err := service.Connection("user@example.com")

		assert.NoError(t, err)
		assert.Equal(t, &domain.RedactedConnection{
			Key:             "user@example.com",
			Email:           "user@example.com",
			Name:            "Usuária Exemplo",
			HasRefreshToken: true,
			DeveloperToken:  "DEVTOKEN12...",
		}, connection)
	})

	t.Run("Usuário sem conexão devolve recurso não encontrado", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("ghost").
			Return(nil, nil)

		connection, err := service.Connection("ghost")

		assert.Nil(t, connection)

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.ErrorIs(t, err, ErrConnectionNotFound)
		assert.Equal(t, apiErrors.ErrResourceNotFound, connErr.Code)
		assert.Equal(t, "Nenhuma conexão encontrada para ghost", connErr.Details)
	})
}

func TestService_CompleteSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	setupData := map[string]string{
		domain.SetupDataKeyUsername:       "carlos",
		domain.SetupDataKeyDeveloperToken: "DEVTOKEN1234567890",
		domain.SetupDataKeyManagerID:      "1112223330",
		domain.SetupDataKeyCampaignID:     "4445556660",
	}

	t.Run("Sem user_id ou sem dados é rejeitado", func(t *testing.T) {
		_, err := service.CompleteSetup("", setupData)
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.CompleteSetup("agent-user-7", map[string]string{})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Sem conexão prévia o user_id vira a chave de armazenamento", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("agent-user-7").
			Return(nil, nil)

		var saved *domain.UserConnection
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				saved = connection
				return nil
			})

		stored := &domain.UserConnection{Key: "agent-user-7", Username: "carlos"}
		mockConnRepo.EXPECT().
			GetByKey("agent-user-7").
			Return(stored, nil)

		connection, err := service.CompleteSetup("agent-user-7", setupData)

		assert.NoError(t, err)
		assert.Equal(t, stored, connection)
		require.NotNil(t, saved)
		assert.Equal(t, "agent-user-7", saved.Key)
		assert.Equal(t, "carlos", saved.Username)
		assert.Equal(t, "DEVTOKEN1234567890", saved.DeveloperToken)
		assert.Equal(t, "1112223330", saved.LoginCustomerID)
		assert.Equal(t, "4445556660", saved.CustomerID)
	})

	t.Run("Com conexão existente os dados são mesclados na chave dela", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("carlos").
			Return(&domain.UserConnection{Key: "carlos@example.com"}, nil)

		var saved *domain.UserConnection
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				saved = connection
				return nil
			})

		mockConnRepo.EXPECT().
			GetByKey("carlos@example.com").
			Return(&domain.UserConnection{Key: "carlos@example.com"}, nil)

		_, err := service.CompleteSetup("carlos", setupData)

		assert.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "carlos@example.com", saved.Key)
	})
}

func TestService_SaveTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	t.Run("Tokens incompletos são rejeitados", func(t *testing.T) {
		err := service.SaveTokens("user@example.com", "ya29.access", "", "user@example.com")

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Equal(t, "Missing required tokens", connErr.Details)
	})

	t.Run("Tokens completos são gravados na chave do usuário", func(t *testing.T) {
		var saved *domain.UserConnection
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				saved = connection
				return nil
			})

		err := service.SaveTokens("user@example.com", "ya29.access", "1//refresh", "user@example.com")

		assert.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "user@example.com", saved.Key)
		assert.Equal(t, "ya29.access", saved.AccessToken)
		assert.Equal(t, "1//refresh", saved.RefreshToken)
	})
}

func TestService_SaveManualConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	t.Run("Developer token vazio é rejeitado", func(t *testing.T) {
		err := service.SaveManualConfig("user@example.com", "   ", "123-456-7890")

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Equal(t, "Developer token cannot be empty.", connErr.Details)
	})

	t.Run("Sem consentimento prévio o chamador volta para o OAuth", func(t *testing.T) {
		mockConnRepo.EXPECT().
			GetByKey("user@example.com").
			Return(nil, nil)

		err := service.SaveManualConfig("user@example.com", "DEVTOKEN1234567890", "")

		assert.ErrorIs(t, err, ErrAuthorizationRequired)
	})

	t.Run("Conexão sem refresh token também volta para o OAuth", func(t *testing.T) {
		mockConnRepo.EXPECT().
			GetByKey("user@example.com").
			Return(&domain.UserConnection{Key: "user@example.com"}, nil)

		err := service.SaveManualConfig("user@example.com", "DEVTOKEN1234567890", "")

		assert.ErrorIs(t, err, ErrAuthorizationRequired)
	})

	t.Run("Configuração válida limpa os hífens do login customer id", func(t *testing.T) {
		mockConnRepo.EXPECT().
			GetByKey("user@example.com").
			Return(&domain.UserConnection{
				Key:          "user@example.com",
				RefreshToken: "1//refresh",
			}, nil)

		var saved *domain.UserConnection
		mockConnRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(connection *domain.UserConnection) error {
				saved = connection
				return nil
			})

		err := service.SaveManualConfig("user@example.com", "  DEVTOKEN1234567890  ", " 123-456-7890 ")

		assert.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "DEVTOKEN1234567890", saved.DeveloperToken)
		assert.Equal(t, "1234567890", saved.LoginCustomerID)
	})
}

func TestService_StoreSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	t.Run("Conexão sem chave é rejeitada", func(t *testing.T) {
		_, err := service.StoreSetup(&domain.UserConnection{})
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.StoreSetup(nil)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Configuração é gravada e relida do banco", func(t *testing.T) {
		incoming := &domain.UserConnection{
			Key:            "agent-user-7",
			Username:       "carlos",
			DeveloperToken: "DEVTOKEN1234567890",
		}

		mockConnRepo.EXPECT().SaveOrUpdate(incoming).Return(nil)

		stored := &domain.UserConnection{Key: "agent-user-7", Username: "carlos", Email: "carlos@example.com"}
		mockConnRepo.EXPECT().GetByKey("agent-user-7").Return(stored, nil)

		connection, err := service.StoreSetup(incoming)

		assert.NoError(t, err)
		assert.Equal(t, stored, connection)
	})
}

func TestService_EmailForUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)

	service := &Service{
		cfg:                  testConfig(),
		connectionRepository: mockConnRepo,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, email string, err error)
	}{
		{
			name: "Chave com arroba é o próprio e-mail",
			setup: func() {
				mockConnRepo.EXPECT().
					GetByUsername("carlos").
					Return(&domain.UserConnection{Key: "carlos@example.com", Email: "outro@example.com"}, nil)
			},
			validate: func(t *testing.T, email string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "carlos@example.com", email)
			},
		},
		{
			name: "Chave agêntica usa o e-mail gravado na conexão",
			setup: func() {
				mockConnRepo.EXPECT().
					GetByUsername("carlos").
					Return(&domain.UserConnection{Key: "agent-user-7", Email: "carlos@example.com"}, nil)
			},
			validate: func(t *testing.T, email string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "carlos@example.com", email)
			},
		},
		{
			name: "Username desconhecido devolve usuário não encontrado",
			setup: func() {
				mockConnRepo.EXPECT().
					GetByUsername("carlos").
					Return(nil, nil)
			},
			validate: func(t *testing.T, email string, err error) {
				assert.Empty(t, email)

				var connErr *ConnectionError
				require.ErrorAs(t, err, &connErr)
				assert.ErrorIs(t, err, ErrConnectionNotFound)
				assert.Equal(t, apiErrors.ErrUserNotFound, connErr.Code)
				assert.Equal(t, "User not found", connErr.Details)
			},
		},
		{
			name: "Erro do banco é propagado",
			setup: func() {
				mockConnRepo.EXPECT().
					GetByUsername("carlos").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, email string, err error) {
				assert.Empty(t, email)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			email, err := service.EmailForUsername("carlos")

			tt.validate(t, email, err)
		})
	}
}
