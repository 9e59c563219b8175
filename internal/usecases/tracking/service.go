package tracking

import (
	"fmt"
	"sort"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/dotlerai-cell/dotler-web/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Métricas com série diária disponível para gráficos de tendência
const (
	MetricTypeUsers        = "users"
	MetricTypePageviews    = "pageviews"
	MetricTypePagesPerUser = "pages_per_user"
	MetricTypeAvgTime      = "avg_time"
	MetricTypeEvents       = "events"
)

// DefaultMetricDays é a janela padrão das séries diárias
const DefaultMetricDays = 30

const topPagesLimit = 10

type TrackingService interface {
	Track(event *domain.TrackingEvent) (string, error)
	Overview(siteID string) (*domain.AnalyticsOverview, error)
	ConsentStats(siteID string) (*domain.ConsentStats, error)
	UserBehavior(siteID string) (*domain.UserBehavior, error)
	MetricDetails(siteID, metricType string, days int) (*domain.MetricSeries, error)
}

type Service struct {
	eventRepository repository.TrackingEventRepository
}

func NewService(eventRepository repository.TrackingEventRepository) TrackingService {
	return &Service{
		eventRepository: eventRepository,
	}
}

// Track persiste um evento bruto do script de rastreamento e devolve o
// identificador gerado para ele
func (s *Service) Track(event *domain.TrackingEvent) (string, error) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	if err := s.eventRepository.Insert(event); err != nil {
		return "", NewTrackingError(ErrSaveEvent, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"event_type": event.EventType,
		"site_id":    event.SiteID,
	}).Debug("analytics: event tracked")

	return event.EventID, nil
}

// Overview consolida as métricas do site: totais, distribuição por tipo de
// evento e as estatísticas por página e de cliques, ordenadas das páginas
// mais visitadas para as menos
func (s *Service) Overview(siteID string) (*domain.AnalyticsOverview, error) {
	totalUsers, err := s.eventRepository.DistinctSessionCount(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	totalEvents, err := s.eventRepository.CountEvents(siteID, "")
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	totalPageviews, err := s.eventRepository.CountEvents(siteID, domain.EventTypePageview)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	pagesPerUser := float64(0)
	if totalUsers > 0 {
		pagesPerUser = utils.RoundWithTwoDecimalPlace(float64(totalPageviews) / float64(totalUsers))
	}

	avgTimeOnPage, err := s.eventRepository.AvgTimeOnPage(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}
	avgTimeOnPage = utils.RoundWithOneDecimalPlace(avgTimeOnPage)

	distribution, err := s.eventRepository.EventTypeDistribution(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	pageStatistics, err := s.pageStatistics(siteID, totalUsers)
	if err != nil {
		return nil, err
	}

	clickStatistics, err := s.clickStatistics(siteID, totalUsers)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsOverview{
		TotalUsers:             totalUsers,
		TotalEvents:            totalEvents,
		TotalPageviews:         totalPageviews,
		PagesPerUser:           pagesPerUser,
		AvgTimeOnPageSeconds:   avgTimeOnPage,
		AvgTimeOnPageFormatted: formatDuration(avgTimeOnPage),
		EventTypeDistribution:  distribution,
		PageStatistics:         pageStatistics,
		ClickStatistics:        clickStatistics,
	}, nil
}

func (s *Service) pageStatistics(siteID string, totalUsers int) ([]*domain.PageStat, error) {
	visits, err := s.eventRepository.PageVisitStats(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	timeByURL, err := s.eventRepository.AvgTimeOnPageByURL(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	statistics := make([]*domain.PageStat, 0, len(visits))
	for _, row := range visits {
		userPercentage := float64(0)
		if totalUsers > 0 {
			userPercentage = utils.RoundWithOneDecimalPlace(float64(row.UniqueUsers) / float64(totalUsers) * 100)
		}

		avgVisitsPerUser := float64(0)
		if row.UniqueUsers > 0 {
			avgVisitsPerUser = utils.RoundWithTwoDecimalPlace(float64(row.TotalVisits) / float64(row.UniqueUsers))
		}

		avgTimeSeconds := utils.RoundWithOneDecimalPlace(timeByURL[row.PageURL])

		statistics = append(statistics, &domain.PageStat{
			PageURL:          row.PageURL,
			TotalVisits:      row.TotalVisits,
			UniqueUsers:      row.UniqueUsers,
			UserPercentage:   userPercentage,
			AvgVisitsPerUser: avgVisitsPerUser,
			AvgTimeSeconds:   avgTimeSeconds,
			AvgTimeFormatted: formatDuration(avgTimeSeconds),
		})
	}

	return statistics, nil
}

func (s *Service) clickStatistics(siteID string, totalUsers int) ([]*domain.ClickStat, error) {
	clicks, err := s.eventRepository.ClickStats(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	statistics := make([]*domain.ClickStat, 0, len(clicks))
	for _, row := range clicks {
		clickerPercentage := float64(0)
		if totalUsers > 0 {
			clickerPercentage = utils.RoundWithOneDecimalPlace(float64(row.UniqueClickers) / float64(totalUsers) * 100)
		}

		avgClicksPerUser := float64(0)
		if row.UniqueClickers > 0 {
			avgClicksPerUser = utils.RoundWithTwoDecimalPlace(float64(row.TotalClicks) / float64(row.UniqueClickers))
		}

		statistics = append(statistics, &domain.ClickStat{
			PageURL:           row.PageURL,
			TotalClicks:       row.TotalClicks,
			UniqueClickers:    row.UniqueClickers,
			ClickerPercentage: clickerPercentage,
			AvgClicksPerUser:  avgClicksPerUser,
		})
	}

	return statistics, nil
}

// ConsentStats resume as decisões de consentimento do site. Conta apenas a
// primeira decisão de cada sessão; decisões sem valor registrado entram no
// total mas não como aceitas nem recusadas
func (s *Service) ConsentStats(siteID string) (*domain.ConsentStats, error) {
	totalSessions, err := s.eventRepository.DistinctSessionCount(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	decisions, err := s.eventRepository.FirstConsentDecisions(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	acceptedCount := 0
	declinedCount := 0
	for _, decision := range decisions {
		if decision.ConsentGiven == nil {
			continue
		}
		if *decision.ConsentGiven {
			acceptedCount++
		} else {
			declinedCount++
		}
	}

	totalDecisions := len(decisions)
	acceptanceRate := float64(0)
	if totalDecisions > 0 {
		acceptanceRate = utils.RoundWithOneDecimalPlace(float64(acceptedCount) / float64(totalDecisions) * 100)
	}

	return &domain.ConsentStats{
		TotalSessions:   totalSessions,
		TotalDecisions:  totalDecisions,
		AcceptedCount:   acceptedCount,
		DeclinedCount:   declinedCount,
		AcceptanceRate:  acceptanceRate,
		NoDecisionCount: totalSessions - totalDecisions,
	}, nil
}

// UserBehavior agrega a navegação por sessão: páginas de entrada e saída
// mais comuns e a média de páginas vistas por sessão
func (s *Service) UserBehavior(siteID string) (*domain.UserBehavior, error) {
	journeys, err := s.eventRepository.SessionJourneys(siteID)
	if err != nil {
		return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
	}

	entryPages := make(map[string]int)
	exitPages := make(map[string]int)
	pageCounts := make([]int, 0, len(journeys))

	for _, journey := range journeys {
		if journey.EntryPage != "" {
			entryPages[journey.EntryPage]++
		}
		if journey.ExitPage != "" {
			exitPages[journey.ExitPage]++
		}
		if journey.PageCount > 0 {
			pageCounts = append(pageCounts, journey.PageCount)
		}
	}

	avgPagesPerSession := float64(0)
	if len(pageCounts) > 0 {
		total := 0
		for _, count := range pageCounts {
			total += count
		}
		avgPagesPerSession = utils.RoundWithTwoDecimalPlace(float64(total) / float64(len(pageCounts)))
	}

	return &domain.UserBehavior{
		AvgPagesPerSession: avgPagesPerSession,
		TotalSessions:      len(journeys),
		TopEntryPages:      topPages(entryPages, topPagesLimit),
		TopExitPages:       topPages(exitPages, topPagesLimit),
	}, nil
}

// MetricDetails monta a série diária de uma métrica para os últimos N dias.
// Métricas desconhecidas devolvem a série vazia
func (s *Service) MetricDetails(siteID, metricType string, days int) (*domain.MetricSeries, error) {
	series := &domain.MetricSeries{
		MetricType: metricType,
		Days:       days,
		Data:       make([]*domain.MetricPoint, 0),
	}

	switch metricType {
	case MetricTypeUsers, MetricTypePageviews, MetricTypePagesPerUser, MetricTypeAvgTime, MetricTypeEvents:
	default:
		return series, nil
	}

	endDate := time.Now().UTC()
	startDate := endDate.Add(-time.Duration(days) * 24 * time.Hour)

	for i := 0; i < days; i++ {
		dayStart := startDate.Add(time.Duration(i) * 24 * time.Hour)
		dayEnd := dayStart.Add(24 * time.Hour)

		value, err := s.metricValueForDay(siteID, metricType, dayStart, dayEnd)
		if err != nil {
			return nil, NewTrackingError(ErrAnalyticsQuery, apiErrors.ErrDatabaseOperation, err.Error())
		}

		series.Data = append(series.Data, &domain.MetricPoint{
			Date:  dayStart.Format(time.DateOnly),
			Value: value,
		})
	}

	return series, nil
}

func (s *Service) metricValueForDay(siteID, metricType string, dayStart, dayEnd time.Time) (float64, error) {
	switch metricType {
	case MetricTypeUsers:
		users, err := s.eventRepository.DistinctSessionCountBetween(siteID, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		return float64(users), nil

	case MetricTypePageviews:
		pageviews, err := s.eventRepository.CountEventsBetween(siteID, domain.EventTypePageview, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		return float64(pageviews), nil

	case MetricTypePagesPerUser:
		pageviews, err := s.eventRepository.CountEventsBetween(siteID, domain.EventTypePageview, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		users, err := s.eventRepository.DistinctSessionCountBetween(siteID, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		if users == 0 {
			return 0, nil
		}
		return utils.RoundWithTwoDecimalPlace(float64(pageviews) / float64(users)), nil

	case MetricTypeAvgTime:
		avgTime, err := s.eventRepository.AvgTimeOnPageBetween(siteID, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		return utils.RoundWithOneDecimalPlace(avgTime), nil

	case MetricTypeEvents:
		count, err := s.eventRepository.CountEventsBetween(siteID, "", dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		return float64(count), nil
	}

	return 0, nil
}

// topPages ordena as páginas pela contagem, da maior para a menor, e corta
// no limite. Empates saem em ordem alfabética para a resposta ser estável
func topPages(counts map[string]int, limit int) []*domain.PageCount {
	pages := make([]*domain.PageCount, 0, len(counts))
	for page, count := range counts {
		pages = append(pages, &domain.PageCount{Page: page, Count: count})
	}

	sort.Slice(pages, func(i, j int) bool {
		if pages[i].Count != pages[j].Count {
			return pages[i].Count > pages[j].Count
		}
		return pages[i].Page < pages[j].Page
	})

	if len(pages) > limit {
		pages = pages[:limit]
	}

	return pages
}

func formatDuration(seconds float64) string {
	whole := int(seconds)
	if seconds < 60 {
		return fmt.Sprintf("%ds", whole)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", whole/60, whole%60)
	}
	return fmt.Sprintf("%dh %dm", whole/3600, whole%3600/60)
}
