package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dotlerai-cell/dotler-web/infrastructure/database/postgres"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/lib/pq"
)

const (
	trackingEventsTable = "tracking_events te"
)

// PageVisitRow é a projeção de visitas agregadas por página
type PageVisitRow struct {
	PageURL     string
	TotalVisits int
	UniqueUsers int
}

// ClickRow é a projeção de cliques agregados por página
type ClickRow struct {
	PageURL        string
	TotalClicks    int
	UniqueClickers int
}

// ConsentDecisionRow é a primeira decisão de consentimento de uma sessão
type ConsentDecisionRow struct {
	SessionID    string
	ConsentGiven *bool
}

// SessionJourneyRow resume a navegação de uma sessão
type SessionJourneyRow struct {
	EntryPage string
	ExitPage  string
	PageCount int
}

type TrackingEventRepository interface {
	Insert(event *domain.TrackingEvent) error
	DistinctSessionCount(siteID string) (int, error)
	DistinctSessionCountBetween(siteID string, start, end time.Time) (int, error)
	CountEvents(siteID, eventType string) (int, error)
	CountEventsBetween(siteID, eventType string, start, end time.Time) (int, error)
	AvgTimeOnPage(siteID string) (float64, error)
	AvgTimeOnPageBetween(siteID string, start, end time.Time) (float64, error)
	AvgTimeOnPageByURL(siteID string) (map[string]float64, error)
	EventTypeDistribution(siteID string) (map[string]int, error)
	PageVisitStats(siteID string) ([]*PageVisitRow, error)
	ClickStats(siteID string) ([]*ClickRow, error)
	FirstConsentDecisions(siteID string) ([]*ConsentDecisionRow, error)
	SessionJourneys(siteID string) ([]*SessionJourneyRow, error)
}

type trackingEventRepository struct {
	conn *postgres.Connection
}

func NewTrackingEventRepository(conn *postgres.Connection) TrackingEventRepository {
	return &trackingEventRepository{
		conn: conn,
	}
}

func (r *trackingEventRepository) Insert(event *domain.TrackingEvent) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("tracking_events").
		Columns(
			"event_id", "site_id", "session_id", "event_type", "page_url",
			"page_title", "referrer", "event_timestamp", "user_agent",
			"screen_width", "screen_height", "click_id", "element_text",
			"element_tag", "link_url", "link_text", "is_external",
			"time_on_page", "consent_given",
		).
		Values(
			event.EventID,
			event.SiteID,
			event.SessionID,
			event.EventType,
			event.PageURL,
			event.PageTitle,
			event.Referrer,
			event.Timestamp,
			event.UserAgent,
			event.ScreenWidth,
			event.ScreenHeight,
			event.ClickID,
			event.ElementText,
			event.ElementTag,
			event.LinkURL,
			event.LinkText,
			event.IsExternal,
			event.TimeOnPage,
			event.ConsentGiven,
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

func (r *trackingEventRepository) DistinctSessionCount(siteID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT te.session_id)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar sessões: %w", err)
	}

	return count, nil
}

func (r *trackingEventRepository) DistinctSessionCountBetween(siteID string, start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT te.session_id)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID}).
		Where(squirrel.GtOrEq{"te.created_at": start}).
		Where(squirrel.Lt{"te.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar sessões: %w", err)
	}

	return count, nil
}

func (r *trackingEventRepository) CountEvents(siteID, eventType string) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID})

	if eventType != "" {
		builder = builder.Where(squirrel.Eq{"te.event_type": eventType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}

	return count, nil
}

func (r *trackingEventRepository) CountEventsBetween(siteID, eventType string, start, end time.Time) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID}).
		Where(squirrel.GtOrEq{"te.created_at": start}).
		Where(squirrel.Lt{"te.created_at": end})

	if eventType != "" {
		builder = builder.Where(squirrel.Eq{"te.event_type": eventType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar eventos: %w", err)
	}

	return count, nil
}

func (r *trackingEventRepository) AvgTimeOnPage(siteID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(te.time_on_page), 0)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypePageExit}).
		Where("te.time_on_page IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg float64
	if err := r.conn.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("erro ao calcular tempo médio: %w", err)
	}

	return avg, nil
}

func (r *trackingEventRepository) AvgTimeOnPageBetween(siteID string, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(te.time_on_page), 0)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypePageExit}).
		Where("te.time_on_page IS NOT NULL").
		Where(squirrel.GtOrEq{"te.created_at": start}).
		Where(squirrel.Lt{"te.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg float64
	if err := r.conn.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("erro ao calcular tempo médio: %w", err)
	}

	return avg, nil
}

func (r *trackingEventRepository) AvgTimeOnPageByURL(siteID string) (map[string]float64, error) {
	query, args, err := squirrel.
		Select("te.page_url", "COALESCE(AVG(te.time_on_page), 0)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypePageExit}).
		Where("te.time_on_page IS NOT NULL").
		GroupBy("te.page_url").
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

	averages := make(map[string]float64)
	for rows.Next() {
		var pageURL string
		var avg float64
		if err := rows.Scan(&pageURL, &avg); err != nil {
			return nil, fmt.Errorf("erro ao escanear tempo médio por página: %w", err)
		}
		averages[pageURL] = avg
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return averages, nil
}

func (r *trackingEventRepository) EventTypeDistribution(siteID string) (map[string]int, error) {
	query, args, err := squirrel.
		Select("te.event_type", "COUNT(*)").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID}).
		GroupBy("te.event_type").
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

	distribution := make(map[string]int)
	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear distribuição de eventos: %w", err)
		}
		distribution[eventType] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return distribution, nil
}

func (r *trackingEventRepository) PageVisitStats(siteID string) ([]*PageVisitRow, error) {
	query, args, err := squirrel.
		Select(
			"te.page_url",
			"COUNT(*) AS total_visits",
			"COUNT(DISTINCT te.session_id) AS unique_users",
		).
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypePageview}).
		GroupBy("te.page_url").
		OrderBy("total_visits DESC").
		Limit(100).
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

	stats := make([]*PageVisitRow, 0)
	for rows.Next() {
		row := &PageVisitRow{}
		if err := rows.Scan(&row.PageURL, &row.TotalVisits, &row.UniqueUsers); err != nil {
			return nil, fmt.Errorf("erro ao escanear visitas por página: %w", err)
		}
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

func (r *trackingEventRepository) ClickStats(siteID string) ([]*ClickRow, error) {
	query, args, err := squirrel.
		Select(
			"te.page_url",
			"COUNT(*) AS total_clicks",
			"COUNT(DISTINCT te.session_id) AS unique_clickers",
		).
		From(trackingEventsTable).
		Where(squirrel.Eq{
			"te.site_id":    siteID,
			"te.event_type": []string{domain.EventTypeClick, domain.EventTypeLinkClick},
		}).
		GroupBy("te.page_url").
		OrderBy("total_clicks DESC").
		Limit(100).
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

	stats := make([]*ClickRow, 0)
	for rows.Next() {
		row := &ClickRow{}
		if err := rows.Scan(&row.PageURL, &row.TotalClicks, &row.UniqueClickers); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliques por página: %w", err)
		}
		stats = append(stats, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

// FirstConsentDecisions retorna a primeira decisão de consentimento
// registrada em cada sessão do site
func (r *trackingEventRepository) FirstConsentDecisions(siteID string) ([]*ConsentDecisionRow, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (te.session_id) te.session_id", "te.consent_given").
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypeConsentDecision}).
		OrderBy("te.session_id", "te.created_at ASC").
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

	decisions := make([]*ConsentDecisionRow, 0)
	for rows.Next() {
		row := &ConsentDecisionRow{}
		var consent sql.NullBool
		if err := rows.Scan(&row.SessionID, &consent); err != nil {
			return nil, fmt.Errorf("erro ao escanear decisões de consentimento: %w", err)
		}
		if consent.Valid {
			row.ConsentGiven = &consent.Bool
		}
		decisions = append(decisions, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return decisions, nil
}

// SessionJourneys agrega os pageviews de cada sessão na ordem em que o
// navegador os registrou, produzindo página de entrada e de saída
func (r *trackingEventRepository) SessionJourneys(siteID string) ([]*SessionJourneyRow, error) {
	query, args, err := squirrel.
		Select(
			"(ARRAY_AGG(te.page_url ORDER BY te.event_timestamp ASC))[1] AS entry_page",
			"(ARRAY_AGG(te.page_url ORDER BY te.event_timestamp DESC))[1] AS exit_page",
			"COUNT(*) AS page_count",
		).
		From(trackingEventsTable).
		Where(squirrel.Eq{"te.site_id": siteID, "te.event_type": domain.EventTypePageview}).
		GroupBy("te.session_id").
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

	journeys := make([]*SessionJourneyRow, 0)
	for rows.Next() {
		row := &SessionJourneyRow{}
		if err := rows.Scan(&row.EntryPage, &row.ExitPage, &row.PageCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear jornadas de sessão: %w", err)
		}
		journeys = append(journeys, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return journeys, nil
}
