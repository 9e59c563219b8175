package geminiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dotlerai-cell/dotler-web/internal/config"
)

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	Cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		Cfg: cfg,
	}
}

// GenerateContent envia o prompt ao modelo e devolve o texto da primeira
// resposta candidata. Erros de rede e respostas 429 são repetidos com
// backoff exponencial até o limite configurado.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := &GenerateContentRequest{
		Contents: []*Content{
			{
				Role:  "user",
				Parts: []*Part{{Text: prompt}},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.Cfg.Gemini.BaseURL, c.Cfg.Gemini.Model, c.Cfg.Gemini.APIKey)

	maxRetries := c.Cfg.Gemini.MaxRetries
	var lastErr error

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			time.Sleep(time.Duration(1<<uint(i-1)) * time.Second)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("requisição ao Gemini falhou: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("erro ao ler a resposta do Gemini: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("limite de requisições do Gemini excedido (429)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("requisição ao Gemini falhou com status %s: %s", resp.Status, string(body))
		}

		out := &GenerateContentResponse{}
		if err := json.Unmarshal(body, out); err != nil {
			return "", fmt.Errorf("erro ao interpretar a resposta do Gemini: %w", err)
		}

		if out.Error != nil {
			return "", fmt.Errorf("erro retornado pelo Gemini: %s", out.Error.Message)
		}

		if len(out.Candidates) == 0 || out.Candidates[0].Content == nil || len(out.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("resposta do Gemini não trouxe nenhum candidato")
		}

		var text strings.Builder
		for _, part := range out.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}

		return strings.TrimSpace(text.String()), nil
	}

	return "", fmt.Errorf("tentativas esgotadas ao chamar o Gemini: %w", lastErr)
}
