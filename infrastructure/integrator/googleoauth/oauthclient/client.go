package oauthclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dotlerai-cell/dotler-web/internal/config"
)

type Client interface {
	AuthCodeURL(state, redirectURI string) string
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}

type GoogleOAuthClient struct {
	httpClient *http.Client
	Cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GoogleOAuthClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Cfg: cfg,
	}
}

// AuthCodeURL monta a URL de consentimento do Google. O access_type offline
// com prompt consent garante a emissão do refresh_token.
func (c *GoogleOAuthClient) AuthCodeURL(state, redirectURI string) string {
	params := url.Values{}
	params.Set("client_id", c.Cfg.GoogleOAuth.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(c.Cfg.GoogleOAuth.Scopes, " "))
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return c.Cfg.GoogleOAuth.AuthURL + "?" + params.Encode()
}
