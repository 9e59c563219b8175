package googleads

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const campaignMetricsQuery = `
	SELECT
	  campaign.id,
	  campaign.name,
	  campaign.status,
	  campaign.advertising_channel_type,
	  campaign.advertising_channel_sub_type,
	  campaign.bidding_strategy_type,
	  metrics.impressions,
	  metrics.clicks,
	  metrics.ctr,
	  metrics.cost_micros,
	  metrics.average_cpc,
	  metrics.interactions,
	  metrics.interaction_rate,
	  metrics.conversions,
	  metrics.all_conversions,
	  metrics.conversions_value,
	  metrics.conversions_from_interactions_rate,
	  metrics.search_impression_share,
	  metrics.search_budget_lost_impression_share,
	  metrics.search_rank_lost_impression_share
	FROM campaign
	WHERE %s
	LIMIT 100`

const metricTrendQuery = `
	SELECT
	  segments.date,
	  metrics.impressions,
	  metrics.clicks,
	  metrics.ctr,
	  metrics.cost_micros,
	  metrics.average_cpc,
	  metrics.conversions,
	  metrics.conversions_value
	FROM campaign
	WHERE campaign.id = %d
	  AND segments.date BETWEEN '%s' AND '%s'
	ORDER BY segments.date ASC`

type Integrator interface {
	AccessibleCustomerIDs(ctx context.Context, conn *domain.UserConnection) ([]string, error)
	CampaignMetricsForRange(ctx context.Context, conn *domain.UserConnection, customerID, dateRange string) ([]*domain.CampaignPerformance, error)
	MetricTrend(ctx context.Context, conn *domain.UserConnection, customerID string, campaignID int64, metricName string) ([]*domain.MetricPoint, error)
	SubmitCampaign(ctx context.Context, conn *domain.UserConnection, customerID string, spec *domain.CampaignSpec, validateOnly bool) (*domain.SubmissionOutcome, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) Integrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// AccessibleCustomerIDs lista os IDs de cliente que a conexão pode consultar
func (s *GoogleAdsIntegrator) AccessibleCustomerIDs(ctx context.Context, conn *domain.UserConnection) ([]string, error) {
	resourceNames, err := s.Client.ListAccessibleCustomers(ctx, conn)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resourceNames))
	for _, name := range resourceNames {
		ids = append(ids, lastSegment(name))
	}

	return ids, nil
}

// CampaignMetricsForRange consulta as métricas de todas as campanhas da conta
// no intervalo informado (LAST_7_DAYS, LAST_30_DAYS ou LAST_YEAR)
func (s *GoogleAdsIntegrator) CampaignMetricsForRange(ctx context.Context, conn *domain.UserConnection, customerID, dateRange string) ([]*domain.CampaignPerformance, error) {
	var whereClause string

	switch dateRange {
	case domain.DateRangeLast7Days:
		whereClause = "segments.date DURING LAST_7_DAYS"
	case domain.DateRangeLast30Days:
		whereClause = "segments.date DURING LAST_30_DAYS"
	case domain.DateRangeLastYear:
		end := time.Now()
		start := end.AddDate(0, 0, -365)
		whereClause = fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'",
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	default:
		return nil, fmt.Errorf("intervalo de datas não suportado: %s", dateRange)
	}

	query := fmt.Sprintf(campaignMetricsQuery, whereClause)

	results, err := s.Client.Search(ctx, conn, stripHyphens(customerID), query)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.CampaignPerformance, 0, len(results))
	for _, row := range results {
		campaigns = append(campaigns, factoryCampaignPerformance(row))
	}

	return campaigns, nil
}

// MetricTrend retorna a série diária dos últimos 30 dias de uma métrica de
// uma campanha específica
func (s *GoogleAdsIntegrator) MetricTrend(ctx context.Context, conn *domain.UserConnection, customerID string, campaignID int64, metricName string) ([]*domain.MetricPoint, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	query := fmt.Sprintf(metricTrendQuery, campaignID,
		start.Format(time.DateOnly), end.Format(time.DateOnly))

	results, err := s.Client.Search(ctx, conn, stripHyphens(customerID), query)
	if err != nil {
		return nil, err
	}

	points := make([]*domain.MetricPoint, 0, len(results))
	for _, row := range results {
		point := &domain.MetricPoint{
			Value: metricValue(metricName, row.Metrics),
		}
		if row.Segments != nil {
			point.Date = row.Segments.Date
		}

		points = append(points, point)
	}

	return points, nil
}

// SubmitCampaign cria a estrutura completa da campanha na conta: orçamento,
// campanha, grupo de anúncios, palavras-chave e anúncio responsivo de
// pesquisa. Tudo nasce pausado para o anunciante revisar antes de ativar.
// Com validateOnly o envio para na validação do orçamento.
func (s *GoogleAdsIntegrator) SubmitCampaign(ctx context.Context, conn *domain.UserConnection, customerID string, spec *domain.CampaignSpec, validateOnly bool) (*domain.SubmissionOutcome, error) {
	custID := stripHyphens(customerID)
	uniqueSuffix := uuid.NewString()[:8]

	biddingStrategy := strings.ToUpper(spec.BiddingStrategy)
	if biddingStrategy == "" {
		biddingStrategy = domain.BiddingManualCPC
	}

	// 1. Orçamento da campanha
	budgetOp := &adsdomain.CampaignBudgetOperation{
		Create: &adsdomain.CampaignBudget{
			Name:             fmt.Sprintf("%s Budget %s", truncate(spec.CampaignName, 200), uniqueSuffix),
			AmountMicros:     budgetMicros(spec.BudgetAmountMicros),
			DeliveryMethod:   "STANDARD",
			ExplicitlyShared: false,
		},
	}

	budgetResults, err := s.Client.MutateCampaignBudgets(ctx, conn, custID,
		[]*adsdomain.CampaignBudgetOperation{budgetOp}, validateOnly)
	if err != nil {
		return nil, err
	}

	if validateOnly {
		return &domain.SubmissionOutcome{
			Status:  "validated",
			Message: "Campaign structure is valid",
		}, nil
	}

	budgetResourceName, err := firstResourceName(budgetResults)
	if err != nil {
		return nil, err
	}

	// 2. Campanha
	campaign := &adsdomain.CampaignCreate{
		Name:                   truncate(spec.CampaignName, 255),
		Status:                 "PAUSED",
		AdvertisingChannelType: "SEARCH",
		CampaignBudget:         budgetResourceName,
		NetworkSettings: &adsdomain.NetworkSettings{
			TargetGoogleSearch:         true,
			TargetSearchNetwork:        true,
			TargetContentNetwork:       false,
			TargetPartnerSearchNetwork: false,
		},
	}

	switch biddingStrategy {
	case domain.BiddingMaximizeClicks:
		campaign.MaximizeClicks = &adsdomain.MaximizeClicks{}
	case domain.BiddingMaximizeConversions:
		campaign.MaximizeConversions = &adsdomain.MaximizeConversions{}
	case domain.BiddingTargetCPA:
		campaign.TargetCPA = &adsdomain.TargetCPA{TargetCPAMicros: 5000000}
	default:
		campaign.ManualCPC = &adsdomain.ManualCPC{}
	}

	campaignResults, err := s.Client.MutateCampaigns(ctx, conn, custID,
		[]*adsdomain.CampaignOperation{{Create: campaign}})
	if err != nil {
		return nil, err
	}

	campaignResourceName, err := firstResourceName(campaignResults)
	if err != nil {
		return nil, err
	}
	campaignID := lastSegment(campaignResourceName)

	// 3. Grupo de anúncios
	adGroupName := spec.AdGroupName
	if adGroupName == "" {
		adGroupName = fmt.Sprintf("Ad Group %s", uniqueSuffix)
	}

	adGroupOp := &adsdomain.AdGroupOperation{
		Create: &adsdomain.AdGroupCreate{
			Name:         truncate(adGroupName, 255),
			Campaign:     campaignResourceName,
			Type:         "SEARCH_STANDARD",
			Status:       "PAUSED",
			CPCBidMicros: 1000000,
		},
	}

	adGroupResults, err := s.Client.MutateAdGroups(ctx, conn, custID,
		[]*adsdomain.AdGroupOperation{adGroupOp})
	if err != nil {
		return nil, err
	}

	adGroupResourceName, err := firstResourceName(adGroupResults)
	if err != nil {
		return nil, err
	}

	// 4. Palavras-chave
	keywordOps := keywordOperations(adGroupResourceName, spec.Keywords)
	if len(keywordOps) > 0 {
		if _, err := s.Client.MutateAdGroupCriteria(ctx, conn, custID, keywordOps); err != nil {
			return nil, err
		}
	}

	// 5. Anúncio responsivo de pesquisa
	rsa := &adsdomain.ResponsiveSearchAd{
		Headlines:    adTextAssets(spec.Headlines, 15, 30),
		Descriptions: adTextAssets(spec.Descriptions, 4, 90),
	}

	adOp := &adsdomain.AdGroupAdOperation{
		Create: &adsdomain.AdGroupAdCreate{
			AdGroup: adGroupResourceName,
			Status:  "PAUSED",
			Ad: &adsdomain.Ad{
				FinalURLs:          []string{spec.FinalURL},
				ResponsiveSearchAd: rsa,
			},
		},
	}

	if _, err := s.Client.MutateAdGroupAds(ctx, conn, custID,
		[]*adsdomain.AdGroupAdOperation{adOp}); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": custID,
		"campaign_id": campaignID,
	}).Info("Campanha criada no Google Ads")

	return &domain.SubmissionOutcome{
		Status:     "success",
		Message:    "Campaign created",
		CampaignID: campaignID,
	}, nil
}

func factoryCampaignPerformance(row *adsdomain.SearchResult) *domain.CampaignPerformance {
	performance := &domain.CampaignPerformance{}

	if c := row.Campaign; c != nil {
		performance.ID = c.ID
		performance.Name = c.Name
		performance.Status = c.Status
		performance.Channel = c.AdvertisingChannelType
		performance.SubChannel = c.AdvertisingChannelSubType
		performance.BiddingStrategyType = c.BiddingStrategyType
	}

	if m := row.Metrics; m != nil {
		performance.Impressions = m.Impressions
		performance.Clicks = m.Clicks
		performance.CTR = m.CTR
		performance.CostMicros = m.CostMicros
		performance.AverageCPC = m.AverageCPC
		performance.Interactions = m.Interactions
		performance.InteractionRate = m.InteractionRate
		performance.Conversions = m.Conversions
		performance.AllConversions = m.AllConversions
		performance.ConversionsValue = m.ConversionsValue
		performance.ConversionsFromInteractionsRate = m.ConversionsFromInteractionsRate
		performance.SearchImpressionShare = m.SearchImpressionShare
		performance.SearchBudgetLostImprShare = m.SearchBudgetLostImpressionShare
		performance.SearchRankLostImprShare = m.SearchRankLostImpressionShare
	}

	return performance
}

// metricValue extrai da linha a métrica pedida pelo gráfico de tendência.
// ctr vira percentual e cost é convertido de micros para a moeda da conta.
func metricValue(metricName string, m *adsdomain.Metrics) float64 {
	if m == nil {
		return 0
	}

	switch metricName {
	case "impressions":
		return float64(m.Impressions)
	case "clicks":
		return float64(m.Clicks)
	case "ctr":
		return utils.RoundWithTwoDecimalPlace(m.CTR * 100)
	case "cost":
		return utils.RoundWithTwoDecimalPlace(float64(m.CostMicros) / 1000000)
	case "average_cpc":
		return utils.RoundWithTwoDecimalPlace(m.AverageCPC)
	case "conversions":
		return utils.RoundWithTwoDecimalPlace(m.Conversions)
	case "conversions_value":
		return utils.RoundWithTwoDecimalPlace(m.ConversionsValue)
	default:
		return 0
	}
}

func keywordOperations(adGroupResourceName string, keywords []any) []*adsdomain.AdGroupCriterionOperation {
	if len(keywords) > 20 {
		keywords = keywords[:20]
	}

	ops := make([]*adsdomain.AdGroupCriterionOperation, 0, len(keywords))
	for _, entry := range keywords {
		kw, ok := entry.(domain.Keyword)
		if !ok {
			continue
		}

		matchType := kw.MatchType
		switch matchType {
		case domain.MatchTypeExact, domain.MatchTypePhrase, domain.MatchTypeBroad:
		default:
			matchType = domain.MatchTypeBroad
		}

		ops = append(ops, &adsdomain.AdGroupCriterionOperation{
			Create: &adsdomain.AdGroupCriterionCreate{
				AdGroup: adGroupResourceName,
				Status:  "PAUSED",
				Keyword: &adsdomain.KeywordInfo{
					Text:      truncate(kw.Text, 80),
					MatchType: matchType,
				},
			},
		})
	}

	return ops
}

func adTextAssets(texts []string, maxAssets, maxChars int) []*adsdomain.AdTextAsset {
	if len(texts) > maxAssets {
		texts = texts[:maxAssets]
	}

	assets := make([]*adsdomain.AdTextAsset, 0, len(texts))
	for _, text := range texts {
		assets = append(assets, &adsdomain.AdTextAsset{Text: truncate(text, maxChars)})
	}

	return assets
}

func firstResourceName(results *adsdomain.MutateResults) (string, error) {
	if results == nil || len(results.Results) == 0 || results.Results[0].ResourceName == "" {
		return "", fmt.Errorf("resposta do Google Ads não trouxe o resource name do recurso criado")
	}

	return results.Results[0].ResourceName, nil
}

// budgetMicros coage o valor do orçamento para micros inteiros. A validação
// já garantiu que o valor é numérico e positivo.
func budgetMicros(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}

func stripHyphens(customerID string) string {
	return strings.ReplaceAll(customerID, "-", "")
}

func lastSegment(resourceName string) string {
	parts := strings.Split(resourceName, "/")
	return parts[len(parts)-1]
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
