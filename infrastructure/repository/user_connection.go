package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/lib/pq"
)

const (
	userConnectionsTable = "user_connections uc"
)

type UserConnectionRepository interface {
	GetByKey(key string) (*domain.UserConnection, error)
	GetByUsername(username string) (*domain.UserConnection, error)
	ResolveByUserID(userID string) (*domain.UserConnection, error)
	SaveOrUpdate(conn *domain.UserConnection) error
	UpdateAccessToken(key, accessToken string) error
	ListWithAdsCredentials() ([]*domain.UserConnection, error)
}

type userConnectionRepository struct {
	conn *postgres.Connection
}

func NewUserConnectionRepository(conn *postgres.Connection) UserConnectionRepository {
	return &userConnectionRepository{
		conn: conn,
	}
}

func (r *userConnectionRepository) GetByKey(key string) (*domain.UserConnection, error) {
	return r.getConnection(squirrel.Eq{"uc.key": key})
}

func (r *userConnectionRepository) GetByUsername(username string) (*domain.UserConnection, error) {
	return r.getConnection(squirrel.Eq{"uc.username": username})
}

// ResolveByUserID aceita tanto a chave de armazenamento (e-mail ou user_id)
// quanto o username escolhido na conversa de configuração
func (r *userConnectionRepository) ResolveByUserID(userID string) (*domain.UserConnection, error) {
	conn, err := r.GetByKey(userID)
	if err != nil {
		return nil, err
	}
	if conn != nil {
		return conn, nil
	}

	return r.GetByUsername(userID)
}

func (r *userConnectionRepository) getConnection(whereClause map[string]interface{}) (*domain.UserConnection, error) {
	query, args, err := squirrel.
		Select("uc.id, uc.key, uc.email, uc.name, uc.username, uc.access_token, uc.refresh_token, uc.developer_token, uc.login_customer_id, uc.customer_id, uc.created_at, uc.updated_at").
		From(userConnectionsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	conn, err := r.scanConnection(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	return conn, nil
}

// SaveOrUpdate insere ou mescla a conexão. Campos vazios no valor recebido
// preservam o que já está gravado, espelhando o merge feito pelo frontend.
func (r *userConnectionRepository) SaveOrUpdate(conn *domain.UserConnection) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("user_connections").
		Columns(
			"key", "email", "name", "username", "access_token", "refresh_token",
			"developer_token", "login_customer_id", "customer_id",
		).
		Values(
			conn.Key,
			conn.Email,
			conn.Name,
			conn.Username,
			conn.AccessToken,
			conn.RefreshToken,
			conn.DeveloperToken,
			conn.LoginCustomerID,
			conn.CustomerID,
		).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				email = COALESCE(NULLIF(EXCLUDED.email, ''), user_connections.email),
				name = COALESCE(NULLIF(EXCLUDED.name, ''), user_connections.name),
				username = COALESCE(NULLIF(EXCLUDED.username, ''), user_connections.username),
				access_token = COALESCE(NULLIF(EXCLUDED.access_token, ''), user_connections.access_token),
				refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), user_connections.refresh_token),
				developer_token = COALESCE(NULLIF(EXCLUDED.developer_token, ''), user_connections.developer_token),
				login_customer_id = COALESCE(NULLIF(EXCLUDED.login_customer_id, ''), user_connections.login_customer_id),
				customer_id = COALESCE(NULLIF(EXCLUDED.customer_id, ''), user_connections.customer_id),
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

func (r *userConnectionRepository) UpdateAccessToken(key, accessToken string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("user_connections").
		Set("access_token", accessToken).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": key}).
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

// ListWithAdsCredentials retorna as conexões prontas para consultar a API
// do Google Ads, usadas pelo job de sincronização de desempenho
func (r *userConnectionRepository) ListWithAdsCredentials() ([]*domain.UserConnection, error) {
	query, args, err := squirrel.
		Select("uc.id, uc.key, uc.email, uc.name, uc.username, uc.access_token, uc.refresh_token, uc.developer_token, uc.login_customer_id, uc.customer_id, uc.created_at, uc.updated_at").
		From(userConnectionsTable).
		Where(squirrel.NotEq{"uc.developer_token": ""}).
		Where(squirrel.NotEq{"uc.refresh_token": ""}).
		Where(squirrel.NotEq{"uc.customer_id": ""}).
		OrderBy("uc.key ASC").
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

	connections := make([]*domain.UserConnection, 0)
	for rows.Next() {
		conn, err := r.scanConnectionRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conexões: %w", err)
		}
		connections = append(connections, conn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

func (r *userConnectionRepository) scanConnection(row *sql.Row) (*domain.UserConnection, error) {
	conn := &domain.UserConnection{}

	if err := row.Scan(
		&conn.ID,
		&conn.Key,
		&conn.Email,
		&conn.Name,
		&conn.Username,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.DeveloperToken,
		&conn.LoginCustomerID,
		&conn.CustomerID,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return conn, nil
}

func (r *userConnectionRepository) scanConnectionRows(rows *sql.Rows) (*domain.UserConnection, error) {
	conn := &domain.UserConnection{}

	if err := rows.Scan(
		&conn.ID,
		&conn.Key,
		&conn.Email,
		&conn.Name,
		&conn.Username,
		&conn.AccessToken,
		&conn.RefreshToken,
		&conn.DeveloperToken,
		&conn.LoginCustomerID,
		&conn.CustomerID,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return conn, nil
}
