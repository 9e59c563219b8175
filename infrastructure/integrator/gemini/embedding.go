package gemini

import (
	"context"
	"fmt"

	"github.com/dotlerai-cell/dotler-web/internal/config"
	"google.golang.org/genai"
)

// Embedder gera vetores de embedding para a busca semântica de políticas.
// Documentos e consultas usam task types distintos para melhorar a
// qualidade da recuperação.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	Close() error
}

type GenAIEmbedder struct {
	client *genai.Client
	model  string
}

func NewEmbedder(cfg *config.Config) (Embedder, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("a chave de API do Gemini é obrigatória para gerar embeddings")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cliente GenAI: %w", err)
	}

	return &GenAIEmbedder{
		client: client,
		model:  cfg.Gemini.EmbeddingModel,
	}, nil
}

func (e *GenAIEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx,
		e.model,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "RETRIEVAL_DOCUMENT",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar embeddings dos documentos: %w", err)
	}

	embeddings := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		embeddings[i] = emb.Values
	}

	return embeddings, nil
}

func (e *GenAIEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := e.client.Models.EmbedContent(ctx,
		e.model,
		contents,
		&genai.EmbedContentConfig{
			TaskType: "RETRIEVAL_QUERY",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o embedding da consulta: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("nenhum embedding retornado para a consulta")
	}

	return result.Embeddings[0].Values, nil
}

func (e *GenAIEmbedder) Close() error {
	// genai.Client não possui método Close; não há recursos a liberar.
	return nil
}
