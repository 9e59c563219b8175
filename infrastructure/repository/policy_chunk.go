package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

const (
	policyChunksTable = "policy_chunks pc"
)

type PolicyChunkRepository interface {
	ReplaceForUser(ctx context.Context, userID string, chunks []*domain.PolicyChunk) error
	ListByUser(userID string) ([]*domain.PolicyChunk, error)
	HasPolicy(userID string) (bool, error)
}

type policyChunkRepository struct {
	conn *postgres.Connection
}

func NewPolicyChunkRepository(conn *postgres.Connection) PolicyChunkRepository {
	return &policyChunkRepository{
		conn: conn,
	}
}

// ReplaceForUser troca o documento de política inteiro em uma transação,
// para que a busca nunca veja uma mistura de versões
func (r *policyChunkRepository) ReplaceForUser(ctx context.Context, userID string, chunks []*domain.PolicyChunk) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete("policy_chunks").
			Where(squirrel.Eq{"user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover trechos antigos: %w", err)
		}

		for _, chunk := range chunks {
			embeddingJSON, err := json.Marshal(chunk.Embedding)
			if err != nil {
				return fmt.Errorf("erro ao serializar embedding para JSON: %w", err)
			}

			insertQuery, insertArgs, err := squirrel.StatementBuilder.
				Insert("policy_chunks").
				Columns("user_id", "seq", "filename", "chunk_text", "embedding").
				Values(chunk.UserID, chunk.Seq, chunk.Filename, chunk.Text, embeddingJSON).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(insertQuery, insertArgs...); err != nil {
				return fmt.Errorf("erro ao inserir trecho %d: %w", chunk.Seq, err)
			}
		}

		return nil
	})
}

func (r *policyChunkRepository) ListByUser(userID string) ([]*domain.PolicyChunk, error) {
	query, args, err := squirrel.
		Select("pc.id, pc.user_id, pc.seq, pc.filename, pc.chunk_text, pc.embedding, pc.created_at").
		From(policyChunksTable).
		Where(squirrel.Eq{"pc.user_id": userID}).
		OrderBy("pc.seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	chunks := make([]*domain.PolicyChunk, 0)
	for rows.Next() {
		chunk := &domain.PolicyChunk{}
		var embeddingJSON []byte

		if err := rows.Scan(
			&chunk.ID,
			&chunk.UserID,
			&chunk.Seq,
			&chunk.Filename,
			&chunk.Text,
			&embeddingJSON,
			&chunk.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear trechos: %w", err)
		}

		if embeddingJSON != nil {
			if err := json.Unmarshal(embeddingJSON, &chunk.Embedding); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON do embedding: %w", err)
			}
		}

		chunks = append(chunks, chunk)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return chunks, nil
}

func (r *policyChunkRepository) HasPolicy(userID string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(policyChunksTable).
		Where(squirrel.Eq{"pc.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao contar trechos: %w", err)
	}

	return count > 0, nil
}
