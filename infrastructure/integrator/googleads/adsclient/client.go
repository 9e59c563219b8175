package adsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleoauth/oauthclient"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/sirupsen/logrus"
)

type Client interface {
	Search(ctx context.Context, conn *domain.UserConnection, customerID, query string) ([]*adsdomain.SearchResult, error)
	ListAccessibleCustomers(ctx context.Context, conn *domain.UserConnection) ([]string, error)
	MutateCampaignBudgets(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.CampaignBudgetOperation, validateOnly bool) (*adsdomain.MutateResults, error)
	MutateCampaigns(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.CampaignOperation) (*adsdomain.MutateResults, error)
	MutateAdGroups(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupOperation) (*adsdomain.MutateResults, error)
	MutateAdGroupCriteria(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupCriterionOperation) (*adsdomain.MutateResults, error)
	MutateAdGroupAds(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupAdOperation) (*adsdomain.MutateResults, error)
}

// TokenPersister grava o token de acesso renovado de uma conexão
type TokenPersister func(key, accessToken string) error

type GoogleAdsClient struct {
	httpClient   *http.Client
	Cfg          *config.Config
	oauthClient  oauthclient.Client
	persistToken TokenPersister
	refreshMutex sync.Mutex
}

func NewClient(cfg *config.Config, oauthClient oauthclient.Client, persistToken TokenPersister) Client {
	return &GoogleAdsClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		Cfg:          cfg,
		oauthClient:  oauthClient,
		persistToken: persistToken,
	}
}

// doRequest executa uma chamada autenticada. Tokens de acesso expiram em
// uma hora, então uma resposta 401 dispara a renovação e uma nova tentativa.
func (c *GoogleAdsClient) doRequest(ctx context.Context, conn *domain.UserConnection, method, endpoint string, payload, out any) error {
	if conn.AccessToken == "" {
		if err := c.refreshAccessToken(ctx, conn); err != nil {
			return err
		}
	}

	body, err := c.attempt(ctx, conn, method, endpoint, payload)
	if err != nil {
		var failure *adsdomain.FailureError
		if !errors.As(err, &failure) || failure.StatusCode != http.StatusUnauthorized {
			return err
		}

		if refreshErr := c.refreshAccessToken(ctx, conn); refreshErr != nil {
			return refreshErr
		}

		body, err = c.attempt(ctx, conn, method, endpoint, payload)
		if err != nil {
			return err
		}
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

func (c *GoogleAdsClient) attempt(ctx context.Context, conn *domain.UserConnection, method, endpoint string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+conn.AccessToken)
	req.Header.Set("developer-token", conn.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if conn.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", strings.ReplaceAll(conn.LoginCustomerID, "-", ""))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &adsdomain.APIError{}
		if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Error != nil {
			return nil, &adsdomain.FailureError{StatusCode: resp.StatusCode, Status: apiErr.Error}
		}

		return nil, &adsdomain.FailureError{
			StatusCode: resp.StatusCode,
			Status: &adsdomain.ErrorStatus{
				Code:    resp.StatusCode,
				Message: strings.TrimSpace(string(body)),
			},
		}
	}

	return body, nil
}

func (c *GoogleAdsClient) refreshAccessToken(ctx context.Context, conn *domain.UserConnection) error {
	c.refreshMutex.Lock()
	defer c.refreshMutex.Unlock()

	if conn.RefreshToken == "" {
		return fmt.Errorf("conexão %s não tem refresh_token para renovar o acesso", conn.Key)
	}

	logrus.WithField("connection_key", conn.Key).Info("Renovando token de acesso do Google Ads")

	token, err := c.oauthClient.RefreshAccessToken(ctx, conn.RefreshToken)
	if err != nil {
		return fmt.Errorf("erro ao renovar token de acesso: %w", err)
	}

	conn.AccessToken = token.AccessToken

	if c.persistToken != nil {
		if err := c.persistToken(conn.Key, token.AccessToken); err != nil {
			logrus.WithFields(logrus.Fields{
				"connection_key": conn.Key,
				"error":          err.Error(),
			}).Warn("Erro ao persistir token de acesso renovado")
		}
	}

	return nil
}
