package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/lib/pq"
)

const (
	campaignDraftsTable = "campaign_drafts cd"
)

type CampaignDraftRepository interface {
	Save(draft *domain.CampaignDraft) error
	GetByIdempotencyKey(key string) (*domain.CampaignDraft, error)
	ListByConnection(connectionKey string, limit uint64) ([]*domain.CampaignDraft, error)
}

type campaignDraftRepository struct {
	conn *postgres.Connection
}

func NewCampaignDraftRepository(conn *postgres.Connection) CampaignDraftRepository {
	return &campaignDraftRepository{
		conn: conn,
	}
}

func (r *campaignDraftRepository) Save(draft *domain.CampaignDraft) error {
	specJSON, err := json.Marshal(draft.Spec)
	if err != nil {
		return fmt.Errorf("erro ao serializar especificação para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_drafts").
		Columns(
			"idempotency_key", "connection_key", "customer_id",
			"user_query", "landing_url", "used_policy", "spec",
		).
		Values(
			draft.IdempotencyKey,
			draft.ConnectionKey,
			draft.CustomerID,
			draft.UserQuery,
			draft.LandingURL,
			draft.UsedPolicy,
			specJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *campaignDraftRepository) GetByIdempotencyKey(key string) (*domain.CampaignDraft, error) {
	query, args, err := squirrel.
		Select("cd.id, cd.idempotency_key, cd.connection_key, cd.customer_id, cd.user_query, cd.landing_url, cd.used_policy, cd.spec, cd.created_at").
		From(campaignDraftsTable).
		Where(squirrel.Eq{"cd.idempotency_key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	draft, err := r.scanDraft(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear rascunho: %w", err)
	}

	return draft, nil
}

func (r *campaignDraftRepository) ListByConnection(connectionKey string, limit uint64) ([]*domain.CampaignDraft, error) {
	query, args, err := squirrel.
		Select("cd.id, cd.idempotency_key, cd.connection_key, cd.customer_id, cd.user_query, cd.landing_url, cd.used_policy, cd.spec, cd.created_at").
		From(campaignDraftsTable).
		Where(squirrel.Eq{"cd.connection_key": connectionKey}).
		OrderBy("cd.created_at DESC").
		Limit(limit).
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

	drafts := make([]*domain.CampaignDraft, 0)
	for rows.Next() {
		draft, err := r.scanDraftRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear rascunhos: %w", err)
		}
		drafts = append(drafts, draft)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return drafts, nil
}

func (r *campaignDraftRepository) scanDraft(row *sql.Row) (*domain.CampaignDraft, error) {
	draft := &domain.CampaignDraft{}
	var specJSON []byte

	if err := row.Scan(
		&draft.ID,
		&draft.IdempotencyKey,
		&draft.ConnectionKey,
		&draft.CustomerID,
		&draft.UserQuery,
		&draft.LandingURL,
		&draft.UsedPolicy,
		&specJSON,
		&draft.CreatedAt,
	); err != nil {
		return nil, err
	}

	if specJSON != nil {
		spec := &domain.CampaignSpec{}
		if err := json.Unmarshal(specJSON, spec); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON da especificação: %w", err)
		}
		draft.Spec = spec
	}

	return draft, nil
}

func (r *campaignDraftRepository) scanDraftRows(rows *sql.Rows) (*domain.CampaignDraft, error) {
	draft := &domain.CampaignDraft{}
	var specJSON []byte

	if err := rows.Scan(
		&draft.ID,
		&draft.IdempotencyKey,
		&draft.ConnectionKey,
		&draft.CustomerID,
		&draft.UserQuery,
		&draft.LandingURL,
		&draft.UsedPolicy,
		&specJSON,
		&draft.CreatedAt,
	); err != nil {
		return nil, err
	}

	if specJSON != nil {
		spec := &domain.CampaignSpec{}
		if err := json.Unmarshal(specJSON, spec); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON da especificação: %w", err)
		}
		draft.Spec = spec
	}

	return draft, nil
}
