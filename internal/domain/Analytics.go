package domain

// AnalyticsOverview consolida as métricas de um site rastreado
type AnalyticsOverview struct {
	TotalUsers             int            `json:"total_users"`
	TotalEvents            int            `json:"total_events"`
	TotalPageviews         int            `json:"total_pageviews"`
	PagesPerUser           float64        `json:"pages_per_user"`
	AvgTimeOnPageSeconds   float64        `json:"avg_time_on_page_seconds"`
	AvgTimeOnPageFormatted string         `json:"avg_time_on_page_formatted"`
	EventTypeDistribution  map[string]int `json:"event_type_distribution"`
	PageStatistics         []*PageStat    `json:"page_statistics"`
	ClickStatistics        []*ClickStat   `json:"click_statistics"`
}

type PageStat struct {
	PageURL          string  `json:"page_url"`
	TotalVisits      int     `json:"total_visits"`
	UniqueUsers      int     `json:"unique_users"`
	UserPercentage   float64 `json:"user_percentage"`
	AvgVisitsPerUser float64 `json:"avg_visits_per_user"`
	AvgTimeSeconds   float64 `json:"avg_time_seconds"`
	AvgTimeFormatted string  `json:"avg_time_formatted"`
}

type ClickStat struct {
	PageURL           string  `json:"page_url"`
	TotalClicks       int     `json:"total_clicks"`
	UniqueClickers    int     `json:"unique_clickers"`
	ClickerPercentage float64 `json:"clicker_percentage"`
	AvgClicksPerUser  float64 `json:"avg_clicks_per_user"`
}

// ConsentStats resume as decisões de consentimento por sessão. Apenas a
// primeira decisão de cada sessão conta para as taxas.
type ConsentStats struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalDecisions  int     `json:"total_decisions"`
	AcceptedCount   int     `json:"accepted_count"`
	DeclinedCount   int     `json:"declined_count"`
	AcceptanceRate  float64 `json:"acceptance_rate"`
	NoDecisionCount int     `json:"no_decision_count"`
}

// UserBehavior descreve a navegação agregada por sessão
type UserBehavior struct {
	AvgPagesPerSession float64      `json:"avg_pages_per_session"`
	TotalSessions      int          `json:"total_sessions"`
	TopEntryPages      []*PageCount `json:"top_entry_pages"`
	TopExitPages       []*PageCount `json:"top_exit_pages"`
}

type PageCount struct {
	Page  string `json:"page"`
	Count int    `json:"count"`
}

// MetricSeries é a série diária de uma métrica para gráficos de tendência
type MetricSeries struct {
	MetricType string         `json:"metric_type"`
	Days       int            `json:"days"`
	Data       []*MetricPoint `json:"data"`
}

type MetricPoint struct {
	Date  string  `json:"date"` // Formato yyyy-mm-dd
	Value float64 `json:"value"`
}
