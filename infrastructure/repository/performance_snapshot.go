package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/lib/pq"
)

const (
	performanceSnapshotsTable = "campaign_performance_snapshots cps"
)

type PerformanceSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.PerformanceSnapshot) error
	ListByCustomer(customerID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type performanceSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPerformanceSnapshotRepository(conn *postgres.Connection) PerformanceSnapshotRepository {
	return &performanceSnapshotRepository{
		conn: conn,
	}
}

func (r *performanceSnapshotRepository) SaveOrUpdate(snapshot *domain.PerformanceSnapshot) error {
	var metricsJSON []byte
	var err error

	if snapshot.Metrics != nil {
		metricsJSON, err = json.Marshal(snapshot.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_performance_snapshots").
		Columns("connection_key", "customer_id", "campaign_id", "campaign_name", "snapshot_date", "metrics").
		Values(
			snapshot.ConnectionKey,
			snapshot.CustomerID,
			snapshot.CampaignID,
			snapshot.CampaignName,
			snapshot.SnapshotDate,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (connection_key, campaign_id, snapshot_date) DO UPDATE SET
				customer_id = EXCLUDED.customer_id,
				campaign_name = EXCLUDED.campaign_name,
				metrics = EXCLUDED.metrics,
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

func (r *performanceSnapshotRepository) ListByCustomer(customerID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error) {
	query, args, err := squirrel.
		Select("cps.id, cps.connection_key, cps.customer_id, cps.campaign_id, cps.campaign_name, cps.snapshot_date, cps.metrics, cps.created_at, cps.updated_at").
		From(performanceSnapshotsTable).
		Where(squirrel.Eq{"cps.customer_id": customerID}).
		Where(squirrel.GtOrEq{"cps.snapshot_date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"cps.snapshot_date": endDate.Format("2006-01-02")}).
		OrderBy("cps.snapshot_date ASC", "cps.campaign_id ASC").
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

	snapshots := make([]*domain.PerformanceSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.PerformanceSnapshot{}
		var metricsJSON []byte

		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.ConnectionKey,
			&snapshot.CustomerID,
			&snapshot.CampaignID,
			&snapshot.CampaignName,
			&snapshot.SnapshotDate,
			&metricsJSON,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}

		if metricsJSON != nil {
			metrics := &domain.CampaignPerformance{}
			if err := json.Unmarshal(metricsJSON, metrics); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
			}
			snapshot.Metrics = metrics
		}

		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *performanceSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("campaign_performance_snapshots").
		Where(squirrel.Lt{"snapshot_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
