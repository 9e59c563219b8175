package gemini

import (
	"context"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini/geminiclient"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/pkg/errors"
)

// ErrNotConfigured indica que a integração com o Gemini não tem chave de
// API e os recursos de IA estão indisponíveis
var ErrNotConfigured = errors.New("integração com o Gemini não está configurada")

type Integrator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

type GeminiIntegrator struct {
	cfg      *config.Config
	Client   geminiclient.Client
	embedder Embedder
}

// New monta o integrador. O embedder pode ser nil quando a chave de API
// não está configurada; nesse caso as operações retornam ErrNotConfigured.
func New(cfg *config.Config, client geminiclient.Client, embedder Embedder) Integrator {
	return &GeminiIntegrator{
		cfg:      cfg,
		Client:   client,
		embedder: embedder,
	}
}

func (s *GeminiIntegrator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.cfg.Gemini.APIKey == "" {
		return "", ErrNotConfigured
	}

	return s.Client.GenerateContent(ctx, prompt)
}

func (s *GeminiIntegrator) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if s.embedder == nil {
		return nil, ErrNotConfigured
	}

	return s.embedder.EmbedDocuments(ctx, texts)
}

func (s *GeminiIntegrator) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if s.embedder == nil {
		return nil, ErrNotConfigured
	}

	return s.embedder.EmbedQuery(ctx, text)
}
