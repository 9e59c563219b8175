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
	setupSessionsTable = "setup_sessions ss"
)

// SetupSessionRepository persiste o estado da conversa de configuração.
// Satisfaz a interface de armazenamento do fluxo conversacional.
type SetupSessionRepository interface {
	Get(userID string) (*domain.SetupSession, error)
	Save(session *domain.SetupSession) error
	Delete(userID string) error
}

type setupSessionRepository struct {
	conn *postgres.Connection
}

func NewSetupSessionRepository(conn *postgres.Connection) SetupSessionRepository {
	return &setupSessionRepository{
		conn: conn,
	}
}

func (r *setupSessionRepository) Get(userID string) (*domain.SetupSession, error) {
	query, args, err := squirrel.
		Select("ss.user_id, ss.step, ss.data, ss.history, ss.created_at, ss.updated_at").
		From(setupSessionsTable).
		Where(squirrel.Eq{"ss.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	session := &domain.SetupSession{}
	var dataJSON, historyJSON []byte
	var step string

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(
		&session.UserID,
		&step,
		&dataJSON,
		&historyJSON,
		&session.CreatedAt,
		&session.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sessão: %w", err)
	}

	session.Step = domain.SetupStep(step)
	if !session.Step.IsValid() {
		return nil, fmt.Errorf("etapa desconhecida gravada na sessão: %s", step)
	}

	session.Data = make(map[string]string)
	if dataJSON != nil {
		if err := json.Unmarshal(dataJSON, &session.Data); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de data: %w", err)
		}
	}

	session.History = make([]domain.SetupMessage, 0)
	if historyJSON != nil {
		if err := json.Unmarshal(historyJSON, &session.History); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do histórico: %w", err)
		}
	}

	return session, nil
}

func (r *setupSessionRepository) Save(session *domain.SetupSession) error {
	dataJSON, err := json.Marshal(session.Data)
	if err != nil {
		return fmt.Errorf("erro ao serializar data para JSON: %w", err)
	}

	historyJSON, err := json.Marshal(session.History)
	if err != nil {
		return fmt.Errorf("erro ao serializar histórico para JSON: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("setup_sessions").
		Columns("user_id", "step", "data", "history").
		Values(
			session.UserID,
			string(session.Step),
			dataJSON,
			historyJSON,
		).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				step = EXCLUDED.step,
				data = EXCLUDED.data,
				history = EXCLUDED.history,
				updated_at = NOW()
		`).
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

func (r *setupSessionRepository) Delete(userID string) error {
	query, args, err := squirrel.
		Delete("setup_sessions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
