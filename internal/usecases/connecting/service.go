package connecting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleoauth/oauthclient"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const defaultUserID = "default_user"

// stateNonceLength dimensiona o jti de cada state assinado
const stateNonceLength = 16

type ConnectionService interface {
	AuthURL(userID, flow, setupData string) (string, error)
	HandleCallback(ctx context.Context, code, callbackError, state string) string
	ValidateToken(tokenString string) (*domain.Claims, error)
	Connection(userID string) (*domain.RedactedConnection, error)
	CompleteSetup(userID string, data map[string]string) (*domain.UserConnection, error)
	SaveTokens(userID, accessToken, refreshToken, email string) error
	SaveManualConfig(userID, developerToken, loginCustomerID string) error
	StoreSetup(connection *domain.UserConnection) (*domain.UserConnection, error)
	EmailForUsername(username string) (string, error)
}

type Service struct {
	cfg                  *config.Config
	oauthClient          oauthclient.Client
	connectionRepository repository.UserConnectionRepository
}

func NewService(
	cfg *config.Config,
	oauthClient oauthclient.Client,
	connectionRepository repository.UserConnectionRepository,
) ConnectionService {
	return &Service{
		cfg:                  cfg,
		oauthClient:          oauthClient,
		connectionRepository: connectionRepository,
	}
}

// Dados coletados pela conversa de configuração, carregados no state do
// fluxo agêntico
type setupPayload struct {
	Username       string `json:"username"`
	DeveloperToken string `json:"developer_token"`
	ManagerID      string `json:"manager_id"`
	CampaignID     string `json:"campaign_id"`
}

// AuthURL monta a URL de consentimento do Google para o fluxo informado.
// O contexto da requisição viaja assinado no parâmetro state, para o
// callback saber de onde o usuário veio sem confiar no valor cru.
func (s *Service) AuthURL(userID, flow, setupData string) (string, error) {
	if userID == "" {
		userID = defaultUserID
	}

	// Dados de configuração presentes implicam o fluxo agêntico
	if flow != domain.OAuthFlowAgentic && setupData == "" {
		flow = domain.OAuthFlowMainApp
	}
	if setupData != "" {
		flow = domain.OAuthFlowAgentic
	}

	state, err := s.signState(userID, flow, setupData)
	if err != nil {
		return "", NewConnectionError(ErrTokenGeneration, apiErrors.ErrInternalServer, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"flow":    flow,
	}).Info("oauth: starting consent flow")

	return s.oauthClient.AuthCodeURL(state, s.redirectURI(flow)), nil
}

// HandleCallback finaliza o fluxo de autorização: troca o código pelos
// tokens, busca o e-mail do usuário, grava a conexão e emite o token de
// sessão. Sempre devolve uma URL de redirect para o frontend; falhas viram
// o parâmetro error dela.
func (s *Service) HandleCallback(ctx context.Context, code, callbackError, state string) string {
	logrus.WithFields(logrus.Fields{
		"has_code": code != "",
		"error":    callbackError,
	}).Info("oauth: callback received")

	if callbackError != "" {
		return s.errorRedirect(callbackError)
	}

	if code == "" {
		return s.errorRedirect("missing_code")
	}

	stateClaims, err := s.parseState(state)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("oauth: rejecting callback with invalid state")
		return s.errorRedirect("invalid_state")
	}

	token, err := s.oauthClient.ExchangeCode(ctx, code, s.redirectURI(stateClaims.Flow))
	if err != nil {
		logrus.WithField("error", err.Error()).Error("oauth: token exchange failed")
		return s.errorRedirect("token_exchange_failed")
	}

	if token.RefreshToken == "" {
		logrus.Warn("oauth: no refresh token received")
		return s.errorRedirect("no_refresh_token")
	}

	userInfo, err := s.oauthClient.FetchUserInfo(ctx, token.AccessToken)
	if err != nil || userInfo.Email == "" {
		if err != nil {
			logrus.WithField("error", err.Error()).Warn("oauth: failed to fetch user info")
		}
		return s.errorRedirect("no_user_email")
	}

	// Usuários do app principal são gravados pelo e-mail; contas criadas
	// pelo fluxo agêntico mantêm o user_id que veio no state
	storageKey := userInfo.Email
	if stateClaims.Flow == domain.OAuthFlowAgentic {
		storageKey = stateClaims.UserID
	}

	connection := &domain.UserConnection{
		Key:          storageKey,
		Email:        userInfo.Email,
		Name:         userInfo.Name,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   storageKey,
			"error": err.Error(),
		}).Error("oauth: failed to persist connection")
		return s.errorRedirect("connection_save_failed")
	}

	logrus.WithFields(logrus.Fields{
		"key":  storageKey,
		"flow": stateClaims.Flow,
	}).Info("oauth: connection stored")

	if stateClaims.Flow == domain.OAuthFlowAgentic && stateClaims.SetupData != "" {
		return s.completeAgenticSetup(connection, stateClaims.SetupData)
	}

	params := url.Values{}
	params.Set("user_id", storageKey)
	params.Set("email", userInfo.Email)
	if sessionToken, err := s.sessionToken(connection); err == nil {
		params.Set("token", sessionToken)
	} else {
		logrus.WithField("error", err.Error()).Error("oauth: failed to issue session token")
	}

	return s.frontendRedirect(params)
}

// completeAgenticSetup aplica os dados coletados na conversa de
// configuração sobre a conexão recém-autorizada
func (s *Service) completeAgenticSetup(connection *domain.UserConnection, setupData string) string {
	setup := &setupPayload{}
	if err := json.Unmarshal([]byte(setupData), setup); err != nil {
		logrus.WithField("error", err.Error()).Error("oauth: invalid agentic setup payload")
		return s.errorRedirect("agentic_setup_failed")
	}

	connection.Username = setup.Username
	connection.DeveloperToken = setup.DeveloperToken
	connection.LoginCustomerID = setup.ManagerID
	connection.CustomerID = setup.CampaignID

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   connection.Key,
			"error": err.Error(),
		}).Error("oauth: failed to persist agentic setup")
		return s.errorRedirect("agentic_setup_failed")
	}

	logrus.WithFields(logrus.Fields{
		"key":      connection.Key,
		"username": setup.Username,
	}).Info("oauth: agentic setup completed")

	params := url.Values{}
	params.Set("user_id", setup.Username)
	params.Set("setup_complete", "true")
	if sessionToken, err := s.sessionToken(connection); err == nil {
		params.Set("token", sessionToken)
	}

	return s.frontendRedirect(params)
}

// ValidateToken confere a assinatura e a validade do token de sessão
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Connection devolve a visão pública da conexão, sem os tokens OAuth
func (s *Service) Connection(userID string) (*domain.RedactedConnection, error) {
	connection, err := s.connectionRepository.ResolveByUserID(userID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if connection == nil {
		return nil, NewConnectionError(ErrConnectionNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("Nenhuma conexão encontrada para %s", userID))
	}

	return connection.Redacted(), nil
}

// CompleteSetup grava os dados coletados pela conversa de configuração na
// conexão do usuário. Quando já existe uma conexão resolvível pelo
// user_id, os dados são mesclados nela; senão o próprio user_id vira a
// chave de armazenamento.
func (s *Service) CompleteSetup(userID string, data map[string]string) (*domain.UserConnection, error) {
	if userID == "" || len(data) == 0 {
		return nil, NewConnectionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "user_id e os dados coletados são obrigatórios")
	}

	key := userID
	existing, err := s.connectionRepository.ResolveByUserID(userID)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		key = existing.Key
	}

	connection := &domain.UserConnection{
		Key:             key,
		Username:        data[domain.SetupDataKeyUsername],
		DeveloperToken:  data[domain.SetupDataKeyDeveloperToken],
		LoginCustomerID: data[domain.SetupDataKeyManagerID],
		CustomerID:      data[domain.SetupDataKeyCampaignID],
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"key":      key,
		"username": connection.Username,
	}).Info("setup: stored completed setup")

	saved, err := s.connectionRepository.GetByKey(key)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return saved, nil
}

// SaveTokens grava os tokens OAuth obtidos fora do fluxo de callback, como
// quando o app principal repassa um consentimento já concluído
func (s *Service) SaveTokens(userID, accessToken, refreshToken, email string) error {
	if userID == "" || accessToken == "" || refreshToken == "" {
		return NewConnectionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Missing required tokens")
	}

	connection := &domain.UserConnection{
		Key:          userID,
		Email:        email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithField("key", userID).Info("oauth: tokens saved")

	return nil
}

// SaveManualConfig grava o developer token e o login customer id informados
// na configuração manual. A conexão precisa ter passado pelo consentimento
// antes; sem refresh token o chamador é mandado para o fluxo OAuth.
func (s *Service) SaveManualConfig(userID, developerToken, loginCustomerID string) error {
	developerToken = strings.TrimSpace(developerToken)
	loginCustomerID = strings.ReplaceAll(strings.TrimSpace(loginCustomerID), "-", "")

	if developerToken == "" {
		return NewConnectionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Developer token cannot be empty.")
	}

	existing, err := s.connectionRepository.GetByKey(userID)
	if err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing == nil || existing.RefreshToken == "" {
		return ErrAuthorizationRequired
	}

	connection := &domain.UserConnection{
		Key:             userID,
		DeveloperToken:  developerToken,
		LoginCustomerID: loginCustomerID,
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		return NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithField("key", userID).Info("config: manual configuration saved")

	return nil
}

// StoreSetup grava a configuração enviada pelo frontend depois do fluxo
// agêntico: credenciais do Google Ads e, quando presentes, os tokens OAuth.
// Campos vazios não sobrescrevem valores já gravados.
func (s *Service) StoreSetup(connection *domain.UserConnection) (*domain.UserConnection, error) {
	if connection == nil || connection.Key == "" {
		return nil, NewConnectionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Missing required fields")
	}

	if err := s.connectionRepository.SaveOrUpdate(connection); err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"key":      connection.Key,
		"username": connection.Username,
	}).Info("setup: stored setup data")

	saved, err := s.connectionRepository.GetByKey(connection.Key)
	if err != nil {
		return nil, NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return saved, nil
}

// EmailForUsername resolve o e-mail de um usuário a partir do username
// escolhido na conversa de configuração
func (s *Service) EmailForUsername(username string) (string, error) {
	connection, err := s.connectionRepository.GetByUsername(username)
	if err != nil {
		return "", NewConnectionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if connection == nil {
		return "", NewConnectionError(ErrConnectionNotFound, apiErrors.ErrUserNotFound, "User not found")
	}

	if strings.Contains(connection.Key, "@") {
		return connection.Key, nil
	}

	return connection.Email, nil
}

func (s *Service) redirectURI(flow string) string {
	if flow == domain.OAuthFlowAgentic {
		return s.cfg.GoogleOAuth.AgenticRedirectURI
	}
	return s.cfg.GoogleOAuth.RedirectURI
}

func (s *Service) frontendRedirect(params url.Values) string {
	return s.cfg.App.FrontendURL + "/auth/callback?" + params.Encode()
}

func (s *Service) errorRedirect(code string) string {
	params := url.Values{}
	params.Set("error", code)
	return s.frontendRedirect(params)
}

func (s *Service) signState(userID, flow, setupData string) (string, error) {
	// Cada state carrega um nonce próprio para nunca se repetir entre
	// requisições
	nonce, err := utils.GenerateID(stateNonceLength)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o nonce do state: %w", err)
	}

	claims := domain.OAuthStateClaims{
		UserID:    userID,
		Flow:      flow,
		SetupData: setupData,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        nonce,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.GoogleOAuth.StateTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) parseState(state string) (*domain.OAuthStateClaims, error) {
	token, err := jwt.ParseWithClaims(state, &domain.OAuthStateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.OAuthStateClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidState
}

func (s *Service) sessionToken(connection *domain.UserConnection) (string, error) {
	claims := domain.Claims{
		UserEmail:     connection.Email,
		UserName:      connection.Name,
		ConnectionKey: connection.Key,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}
