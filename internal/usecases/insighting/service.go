package insighting

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

var supportedPeriods = []string{
	domain.DateRangeLast7Days,
	domain.DateRangeLast30Days,
	domain.DateRangeLastYear,
}

type Service struct {
	cfg                  *config.Config
	adsService           googleads.Integrator
	connectionRepository repository.UserConnectionRepository
	snapshotRepository   repository.PerformanceSnapshotRepository
}

func NewService(
	cfg *config.Config,
	adsService googleads.Integrator,
	connectionRepository repository.UserConnectionRepository,
	snapshotRepository repository.PerformanceSnapshotRepository,
) Insighter {
	return &Service{
		cfg:                  cfg,
		adsService:           adsService,
		connectionRepository: connectionRepository,
		snapshotRepository:   snapshotRepository,
	}
}

func (s *Service) AccessibleAccounts(ctx context.Context, userID string) ([]string, error) {
	connection, err := s.resolveConnection(userID)
	if err != nil {
		return nil, err
	}

	customerIDs, err := s.adsService.AccessibleCustomerIDs(ctx, connection)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	return customerIDs, nil
}

// AccountPerformance busca as métricas de campanha da conta em três
// intervalos, na mesma chamada, para o dashboard montar os comparativos
func (s *Service) AccountPerformance(ctx context.Context, userID, customerID string) (*domain.AccountPerformance, error) {
	connection, err := s.resolveConnection(userID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"customer_id": customerID,
	}).Info("insights: fetching campaign performance")

	lastWeek, err := s.adsService.CampaignMetricsForRange(ctx, connection, customerID, domain.DateRangeLast7Days)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	lastMonth, err := s.adsService.CampaignMetricsForRange(ctx, connection, customerID, domain.DateRangeLast30Days)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	lastYear, err := s.adsService.CampaignMetricsForRange(ctx, connection, customerID, domain.DateRangeLastYear)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	return &domain.AccountPerformance{
		CustomerID: customerID,
		LastWeek:   lastWeek,
		LastMonth:  lastMonth,
		LastYear:   lastYear,
	}, nil
}

func (s *Service) CampaignMetrics(ctx context.Context, userID, customerID, period string) (*domain.CampaignMetricsReport, error) {
	if period == "" {
		period = domain.DateRangeLast7Days
	}

	if !slices.Contains(supportedPeriods, period) {
		return nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, fmt.Sprintf("Unsupported date_range: %s", period))
	}

	connection, err := s.resolveConnection(userID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.adsService.CampaignMetricsForRange(ctx, connection, customerID, period)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	return &domain.CampaignMetricsReport{
		CustomerID: customerID,
		Period:     period,
		Campaigns:  campaigns,
	}, nil
}

func (s *Service) MetricTrend(ctx context.Context, userID, customerID string, campaignID int64, metricName string) (*domain.AdsMetricTrend, error) {
	connection, err := s.resolveConnection(userID)
	if err != nil {
		return nil, err
	}

	points, err := s.adsService.MetricTrend(ctx, connection, customerID, campaignID, metricName)
	if err != nil {
		return nil, NewInsightError(ErrAdsQuery, apiErrors.ErrAdsPlatform, err.Error())
	}

	return &domain.AdsMetricTrend{
		MetricName: metricName,
		CampaignID: campaignID,
		Data:       points,
	}, nil
}

func (s *Service) SnapshotHistory(customerID string, days int) ([]*domain.PerformanceSnapshot, error) {
	if days <= 0 {
		days = 30
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	snapshots, err := s.snapshotRepository.ListByCustomer(customerID, startDate, endDate)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return snapshots, nil
}

// resolveConnection localiza a conexão do usuário e garante que ela tem as
// credenciais mínimas para consultar o Google Ads
func (s *Service) resolveConnection(userID string) (*domain.UserConnection, error) {
	connection, err := s.connectionRepository.ResolveByUserID(userID)
	if err != nil {
		return nil, NewInsightError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if connection == nil {
		return nil, NewInsightError(ErrConnectionNotFound, apiErrors.ErrResourceNotFound, fmt.Sprintf("No config found for user_id=%s", userID))
	}

	if !connection.HasAdsCredentials() {
		return nil, NewInsightError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData, fmt.Sprintf("Missing developer_token or refresh_token for user_id=%s", userID))
	}

	return connection, nil
}
