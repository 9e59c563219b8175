package adsdomain

// SearchRequest é o corpo do endpoint googleAds:search
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse é uma página de resultados de uma consulta GAQL. Campos
// int64 chegam como string no JSON da API REST.
type SearchResponse struct {
	Results       []*SearchResult `json:"results"`
	NextPageToken string          `json:"nextPageToken"`
	FieldMask     string          `json:"fieldMask"`
}

type SearchResult struct {
	Campaign *Campaign `json:"campaign,omitempty"`
	Metrics  *Metrics  `json:"metrics,omitempty"`
	Segments *Segments `json:"segments,omitempty"`
}

type Campaign struct {
	ResourceName              string `json:"resourceName,omitempty"`
	ID                        int64  `json:"id,string,omitempty"`
	Name                      string `json:"name,omitempty"`
	Status                    string `json:"status,omitempty"`
	AdvertisingChannelType    string `json:"advertisingChannelType,omitempty"`
	AdvertisingChannelSubType string `json:"advertisingChannelSubType,omitempty"`
	BiddingStrategyType       string `json:"biddingStrategyType,omitempty"`
}

type Metrics struct {
	Impressions                     int64   `json:"impressions,string,omitempty"`
	Clicks                          int64   `json:"clicks,string,omitempty"`
	CTR                             float64 `json:"ctr,omitempty"`
	CostMicros                      int64   `json:"costMicros,string,omitempty"`
	AverageCPC                      float64 `json:"averageCpc,omitempty"`
	Interactions                    int64   `json:"interactions,string,omitempty"`
	InteractionRate                 float64 `json:"interactionRate,omitempty"`
	Conversions                     float64 `json:"conversions,omitempty"`
	AllConversions                  float64 `json:"allConversions,omitempty"`
	ConversionsValue                float64 `json:"conversionsValue,omitempty"`
	ConversionsFromInteractionsRate float64 `json:"conversionsFromInteractionsRate,omitempty"`
	SearchImpressionShare           float64 `json:"searchImpressionShare,omitempty"`
	SearchBudgetLostImpressionShare float64 `json:"searchBudgetLostImpressionShare,omitempty"`
	SearchRankLostImpressionShare   float64 `json:"searchRankLostImpressionShare,omitempty"`
}

type Segments struct {
	Date string `json:"date,omitempty"`
}

// ListAccessibleCustomersResponse é a resposta do CustomerService
type ListAccessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}
