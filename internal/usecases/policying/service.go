package policying

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Janela e passo da quebra do documento em trechos. A sobreposição de 50
// caracteres evita cortar uma cláusula da política ao meio entre trechos.
const (
	chunkSize   = 500
	chunkStride = 450
)

// DefaultTopK é o número de trechos retornados pela busca por similaridade
const DefaultTopK = 3

const policyContextHeader = "\n\nCompany Policy:\n"

type PolicyService interface {
	Upload(ctx context.Context, userID, filename, text string) error
	Status(userID string) (*domain.PolicyStatus, error)
	Search(ctx context.Context, userID, query string, k int) ([]*domain.PolicyMatch, error)
	PolicyContext(ctx context.Context, userID, query string) (string, error)
}

type Service struct {
	geminiService    gemini.Integrator
	policyRepository repository.PolicyChunkRepository
}

func NewService(geminiService gemini.Integrator, policyRepository repository.PolicyChunkRepository) PolicyService {
	return &Service{
		geminiService:    geminiService,
		policyRepository: policyRepository,
	}
}

// Upload quebra o documento de política em trechos, gera os embeddings e
// troca o documento anterior do usuário pelo novo
func (s *Service) Upload(ctx context.Context, userID, filename, text string) error {
	if strings.TrimSpace(text) == "" {
		return NewPolicyError(ErrEmptyPolicy, apiErrors.ErrMissingRequiredData, "Policy file is empty")
	}

	chunks := ChunkText(text)

	embeddings, err := s.geminiService.EmbedDocuments(ctx, chunks)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return NewPolicyError(ErrEmbedding, apiErrors.ErrAIUnavailable, "Gemini API not configured")
		}
		return NewPolicyError(ErrEmbedding, apiErrors.ErrExternalService, err.Error())
	}

	if len(embeddings) != len(chunks) {
		return NewPolicyError(ErrEmbedding, apiErrors.ErrExternalService, fmt.Sprintf("expected %d embeddings, got %d", len(chunks), len(embeddings)))
	}

	policyChunks := make([]*domain.PolicyChunk, 0, len(chunks))
	for i, chunk := range chunks {
		policyChunks = append(policyChunks, &domain.PolicyChunk{
			UserID:    userID,
			Seq:       i,
			Filename:  filename,
			Text:      chunk,
			Embedding: embeddings[i],
		})
	}

	if err := s.policyRepository.ReplaceForUser(ctx, userID, policyChunks); err != nil {
		return NewPolicyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"chunks":  len(policyChunks),
	}).Info("policy: stored policy document")

	return nil
}

func (s *Service) Status(userID string) (*domain.PolicyStatus, error) {
	hasPolicy, err := s.policyRepository.HasPolicy(userID)
	if err != nil {
		return nil, NewPolicyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &domain.PolicyStatus{
		HasPolicy: hasPolicy,
		UserID:    userID,
	}, nil
}

// Search devolve os k trechos da política mais próximos da consulta,
// ordenados do mais parecido para o menos
func (s *Service) Search(ctx context.Context, userID, query string, k int) ([]*domain.PolicyMatch, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	chunks, err := s.policyRepository.ListByUser(userID)
	if err != nil {
		return nil, NewPolicyError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if len(chunks) == 0 {
		return []*domain.PolicyMatch{}, nil
	}

	queryEmbedding, err := s.geminiService.EmbedQuery(ctx, query)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, NewPolicyError(ErrEmbedding, apiErrors.ErrAIUnavailable, "Gemini API not configured")
		}
		return nil, NewPolicyError(ErrEmbedding, apiErrors.ErrExternalService, err.Error())
	}

	matches := make([]*domain.PolicyMatch, 0, len(chunks))
	for _, chunk := range chunks {
		matches = append(matches, &domain.PolicyMatch{
			Text:  chunk.Text,
			Score: cosineSimilarity(queryEmbedding, chunk.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}

	return matches, nil
}

// PolicyContext formata os trechos mais relevantes para anexar ao prompt
// de geração de campanha. Usuários sem política carregada recebem a string
// vazia, não um erro.
func (s *Service) PolicyContext(ctx context.Context, userID, query string) (string, error) {
	matches, err := s.Search(ctx, userID, query, DefaultTopK)
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", nil
	}

	texts := make([]string, 0, len(matches))
	for _, match := range matches {
		texts = append(texts, match.Text)
	}

	return policyContextHeader + strings.Join(texts, "\n"), nil
}

// ChunkText fatia o texto em janelas de 500 caracteres avançando de 450 em
// 450, contando runas para não partir caracteres multibyte
func ChunkText(text string) []string {
	runes := []rune(text)

	chunks := make([]string, 0, (len(runes)/chunkStride)+1)
	for i := 0; i < len(runes); i += chunkStride {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}

	return chunks
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
