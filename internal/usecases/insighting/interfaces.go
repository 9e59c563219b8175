package insighting

import (
	"context"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// Insighter expõe a leitura de desempenho do Google Ads para as conexões
// armazenadas
type Insighter interface {
	// AccessibleAccounts lista os customer IDs acessíveis pela conexão do usuário
	AccessibleAccounts(ctx context.Context, userID string) ([]string, error)

	// AccountPerformance busca o desempenho das campanhas de uma conta nos
	// três intervalos exibidos pelo dashboard
	AccountPerformance(ctx context.Context, userID, customerID string) (*domain.AccountPerformance, error)

	// CampaignMetrics busca o desempenho das campanhas em um único intervalo
	CampaignMetrics(ctx context.Context, userID, customerID, period string) (*domain.CampaignMetricsReport, error)

	// MetricTrend busca a série diária de uma métrica de campanha nos
	// últimos 30 dias
	MetricTrend(ctx context.Context, userID, customerID string, campaignID int64, metricName string) (*domain.AdsMetricTrend, error)

	// SnapshotHistory lista os retratos de desempenho coletados pelo job de
	// sincronização para uma conta
	SnapshotHistory(customerID string, days int) ([]*domain.PerformanceSnapshot, error)
}
