package domain

// CampaignPerformance é o desempenho de uma campanha do Google Ads em um
// intervalo de datas, já convertido da resposta crua da API
type CampaignPerformance struct {
	ID                              int64   `json:"id"`
	Name                            string  `json:"name"`
	Status                          string  `json:"status"`
	Channel                         string  `json:"channel"`
	SubChannel                      string  `json:"sub_channel"`
	BiddingStrategyType             string  `json:"bidding_strategy_type"`
	Impressions                     int64   `json:"impressions"`
	Clicks                          int64   `json:"clicks"`
	CTR                             float64 `json:"ctr"`
	CostMicros                      int64   `json:"cost_micros"`
	AverageCPC                      float64 `json:"average_cpc"`
	Interactions                    int64   `json:"interactions"`
	InteractionRate                 float64 `json:"interaction_rate"`
	Conversions                     float64 `json:"conversions"`
	AllConversions                  float64 `json:"all_conversions"`
	ConversionsValue                float64 `json:"conversions_value"`
	ConversionsFromInteractionsRate float64 `json:"conversions_from_interactions_rate"`
	SearchImpressionShare           float64 `json:"search_impression_share"`
	SearchBudgetLostImprShare       float64 `json:"search_budget_lost_impression_share"`
	SearchRankLostImprShare         float64 `json:"search_rank_lost_impression_share"`
}

// AccountPerformance agrupa o desempenho das campanhas de uma conta nos
// três intervalos exibidos pelo dashboard
type AccountPerformance struct {
	CustomerID string                 `json:"customer_id"`
	LastWeek   []*CampaignPerformance `json:"last_week"`
	LastMonth  []*CampaignPerformance `json:"last_month"`
	LastYear   []*CampaignPerformance `json:"last_year"`
}

// Intervalos aceitos pelas consultas de desempenho
const (
	DateRangeLast7Days  = "LAST_7_DAYS"
	DateRangeLast30Days = "LAST_30_DAYS"
	DateRangeLastYear   = "LAST_YEAR"
)

// CampaignMetricsReport é o desempenho das campanhas de uma conta em um
// único intervalo
type CampaignMetricsReport struct {
	CustomerID string                 `json:"customer_id"`
	Period     string                 `json:"period"`
	Campaigns  []*CampaignPerformance `json:"campaigns"`
}

// AdsMetricTrend é a série diária de uma métrica de campanha nos últimos
// 30 dias
type AdsMetricTrend struct {
	MetricName string         `json:"metric_name"`
	CampaignID int64          `json:"campaign_id"`
	Data       []*MetricPoint `json:"data"`
}
