package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/lib/pq"
)

type ContactMessageRepository interface {
	Save(message *domain.ContactMessage) error
}

type contactMessageRepository struct {
	conn *postgres.Connection
}

func NewContactMessageRepository(conn *postgres.Connection) ContactMessageRepository {
	return &contactMessageRepository{
		conn: conn,
	}
}

func (r *contactMessageRepository) Save(message *domain.ContactMessage) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("contact_messages").
		Columns("name", "email", "subject", "message").
		Values(message.Name, message.Email, message.Subject, message.Message).
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
