package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	adsmocks "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/mocks"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository/mocks"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_AccessibleAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)
	mockAdsService := adsmocks.NewMockIntegrator(ctrl)

	// Service
	service := &Service{
		adsService:           mockAdsService,
		connectionRepository: mockConnRepo,
	}

	connection := &domain.UserConnection{
		Key:            "user@example.com",
		DeveloperToken: "DEVTOKEN1234567890",
		RefreshToken:   "1//refresh",
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, customerIDs []string, err error)
	}{
		{
			name: "Contas acessíveis são repassadas da API",
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)
				mockAdsService.EXPECT().
					AccessibleCustomerIDs(gomock.Any(), connection).
					Return([]string{"1112223330", "4445556660"}, nil)
			},
			validate: func(t *testing.T, customerIDs []string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"1112223330", "4445556660"}, customerIDs)
			},
		},
		{
			name: "Erro do banco ao resolver a conexão",
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, customerIDs []string, err error) {
				assert.Nil(t, customerIDs)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
		{
			name: "Usuário sem conexão configurada",
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, customerIDs []string, err error) {
				assert.Nil(t, customerIDs)

				var insightErr *InsightError
				require.ErrorAs(t, err, &insightErr)
				assert.ErrorIs(t, err, ErrConnectionNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, insightErr.Code)
				assert.Equal(t, "No config found for user_id=user@example.com", insightErr.Details)
			},
		},
		{
			name: "Conexão sem credenciais do Google Ads",
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(&domain.UserConnection{Key: "user@example.com", RefreshToken: "1//refresh"}, nil)
			},
			validate: func(t *testing.T, customerIDs []string, err error) {
				assert.Nil(t, customerIDs)

				var insightErr *InsightError
				require.ErrorAs(t, err, &insightErr)
				assert.ErrorIs(t, err, ErrMissingCredentials)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, insightErr.Code)
				assert.Equal(t, "Missing developer_token or refresh_token for user_id=user@example.com", insightErr.Details)
			},
		},
		{
			name: "Erro da API do Google Ads",
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)
				mockAdsService.EXPECT().
					AccessibleCustomerIDs(gomock.Any(), connection).
					Return(nil, errors.New("PERMISSION_DENIED"))
			},
			validate: func(t *testing.T, customerIDs []string, err error) {
				assert.Nil(t, customerIDs)

				var insightErr *InsightError
				require.ErrorAs(t, err, &insightErr)
				assert.ErrorIs(t, err, ErrAdsQuery)
				assert.Equal(t, apiErrors.ErrAdsPlatform, insightErr.Code)
				assert.Equal(t, "PERMISSION_DENIED", insightErr.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			customerIDs, err := service.AccessibleAccounts(context.Background(), "user@example.com")

			tt.validate(t, customerIDs, err)
		})
	}
}

func TestService_AccountPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)
	mockAdsService := adsmocks.NewMockIntegrator(ctrl)

	service := &Service{
		adsService:           mockAdsService,
		connectionRepository: mockConnRepo,
	}

	connection := &domain.UserConnection{
		Key:            "user@example.com",
		DeveloperToken: "DEVTOKEN1234567890",
		RefreshToken:   "1//refresh",
	}

	t.Run("Os três intervalos do dashboard vêm em uma única resposta", func(t *testing.T) {
		week := []*domain.CampaignPerformance{{ID: 1, Name: "Summer Sale - Search"}}
		month := []*domain.CampaignPerformance{{ID: 1}, {ID: 2}}
		year := []*domain.CampaignPerformance{{ID: 1}, {ID: 2}, {ID: 3}}

		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLast7Days).
			Return(week, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLast30Days).
			Return(month, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLastYear).
			Return(year, nil)

		performance, err := service.AccountPerformance(context.Background(), "user@example.com", "1112223330")

		assert.NoError(t, err)
		assert.Equal(t, &domain.AccountPerformance{
			CustomerID: "1112223330",
			LastWeek:   week,
			LastMonth:  month,
			LastYear:   year,
		}, performance)
	})

	t.Run("Erro em um dos intervalos interrompe a consulta", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLast7Days).
			Return([]*domain.CampaignPerformance{}, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLast30Days).
			Return(nil, errors.New("quota exceeded"))

		performance, err := service.AccountPerformance(context.Background(), "user@example.com", "1112223330")

		assert.Nil(t, performance)
		assert.ErrorIs(t, err, ErrAdsQuery)
	})
}

func TestService_CampaignMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)
	mockAdsService := adsmocks.NewMockIntegrator(ctrl)

	service := &Service{
		adsService:           mockAdsService,
		connectionRepository: mockConnRepo,
	}

	connection := &domain.UserConnection{
		Key:            "user@example.com",
		DeveloperToken: "DEVTOKEN1234567890",
		RefreshToken:   "1//refresh",
	}

	t.Run("Período vazio assume a última semana", func(t *testing.T) {
		campaigns := []*domain.CampaignPerformance{{ID: 1}}

		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLast7Days).
			Return(campaigns, nil)

		report, err := service.CampaignMetrics(context.Background(), "user@example.com", "1112223330", "")

		assert.NoError(t, err)
		assert.Equal(t, &domain.CampaignMetricsReport{
			CustomerID: "1112223330",
			Period:     domain.DateRangeLast7Days,
			Campaigns:  campaigns,
		}, report)
	})

	t.Run("Período fora da lista é rejeitado antes de consultar qualquer coisa", func(t *testing.T) {
		report, err := service.CampaignMetrics(context.Background(), "user@example.com", "1112223330", "LAST_CENTURY")

		assert.Nil(t, report)

		var insightErr *InsightError
		require.ErrorAs(t, err, &insightErr)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
		assert.Equal(t, apiErrors.ErrInvalidFormat, insightErr.Code)
		assert.Equal(t, "Unsupported date_range: LAST_CENTURY", insightErr.Details)
	})

	t.Run("Período explícito é repassado para a API", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			CampaignMetricsForRange(gomock.Any(), connection, "1112223330", domain.DateRangeLastYear).
			Return([]*domain.CampaignPerformance{}, nil)

		report, err := service.CampaignMetrics(context.Background(), "user@example.com", "1112223330", domain.DateRangeLastYear)

		assert.NoError(t, err)
		assert.Equal(t, domain.DateRangeLastYear, report.Period)
	})
}

func TestService_MetricTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)
	mockAdsService := adsmocks.NewMockIntegrator(ctrl)

	service := &Service{
		adsService:           mockAdsService,
		connectionRepository: mockConnRepo,
	}

	connection := &domain.UserConnection{
		Key:            "user@example.com",
		DeveloperToken: "DEVTOKEN1234567890",
		RefreshToken:   "1//refresh",
	}

	t.Run("Série diária da métrica é montada com os pontos da API", func(t *testing.T) {
		points := []*domain.MetricPoint{
			{Date: "2026-01-14", Value: 120},
			{Date: "2026-01-15", Value: 98},
		}

		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			MetricTrend(gomock.Any(), connection, "1112223330", int64(111222333), "clicks").
			Return(points, nil)

		trend, err := service.MetricTrend(context.Background(), "user@example.com", "1112223330", 111222333, "clicks")

		assert.NoError(t, err)
		assert.Equal(t, &domain.AdsMetricTrend{
			MetricName: "clicks",
			CampaignID: 111222333,
			Data:       points,
		}, trend)
	})

	t.Run("Erro da API é envelopado", func(t *testing.T) {
		mockConnRepo.EXPECT().
			ResolveByUserID("user@example.com").
			Return(connection, nil)
		mockAdsService.EXPECT().
			MetricTrend(gomock.Any(), connection, "1112223330", int64(111222333), "clicks").
			Return(nil, errors.New("request timeout"))

		trend, err := service.MetricTrend(context.Background(), "user@example.com", "1112223330", 111222333, "clicks")

		assert.Nil(t, trend)
		assert.ErrorIs(t, err, ErrAdsQuery)
	})
}

func TestService_SnapshotHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockPerformanceSnapshotRepository(ctrl)

	service := &Service{
		snapshotRepository: mockSnapshotRepo,
	}

	t.Run("Janela solicitada define o intervalo da consulta", func(t *testing.T) {
		snapshots := []*domain.PerformanceSnapshot{{CampaignID: 111222333, SnapshotDate: "2026-01-15"}}

		var capturedStart, capturedEnd time.Time
		mockSnapshotRepo.EXPECT().
			ListByCustomer("1112223330", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error) {
				capturedStart = startDate
				capturedEnd = endDate
				return snapshots, nil
			})

		result, err := service.SnapshotHistory("1112223330", 7)

		assert.NoError(t, err)
		assert.Equal(t, snapshots, result)
		assert.Equal(t, 7, int(capturedEnd.Sub(capturedStart).Hours()/24))
	})

	t.Run("Janela não informada assume 30 dias", func(t *testing.T) {
		var capturedStart, capturedEnd time.Time
		mockSnapshotRepo.EXPECT().
			ListByCustomer("1112223330", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error) {
				capturedStart = startDate
				capturedEnd = endDate
				return []*domain.PerformanceSnapshot{}, nil
			})

		_, err := service.SnapshotHistory("1112223330", 0)

		assert.NoError(t, err)
		assert.Equal(t, 30, int(capturedEnd.Sub(capturedStart).Hours()/24))
	})

	t.Run("Erro do banco é envelopado", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().
			ListByCustomer("1112223330", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("conexão recusada"))

		result, err := service.SnapshotHistory("1112223330", 30)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
