package adsdomain

// Operações de escrita enviadas aos endpoints :mutate de cada recurso.
// Cada operação embrulha o objeto a criar no campo create.

type CampaignBudgetOperation struct {
	Create *CampaignBudget `json:"create,omitempty"`
}

type CampaignBudget struct {
	Name             string `json:"name"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod,omitempty"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

type CampaignOperation struct {
	Create *CampaignCreate `json:"create,omitempty"`
}

// CampaignCreate é a campanha a criar. Os campos de estratégia de lance
// formam um oneof: somente um deles pode estar presente.
type CampaignCreate struct {
	Name                   string               `json:"name"`
	Status                 string               `json:"status,omitempty"`
	AdvertisingChannelType string               `json:"advertisingChannelType,omitempty"`
	CampaignBudget         string               `json:"campaignBudget,omitempty"`
	NetworkSettings        *NetworkSettings     `json:"networkSettings,omitempty"`
	MaximizeClicks         *MaximizeClicks      `json:"maximizeClicks,omitempty"`
	MaximizeConversions    *MaximizeConversions `json:"maximizeConversions,omitempty"`
	TargetCPA              *TargetCPA           `json:"targetCpa,omitempty"`
	ManualCPC              *ManualCPC           `json:"manualCpc,omitempty"`
}

type NetworkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

type MaximizeClicks struct{}

type MaximizeConversions struct{}

type TargetCPA struct {
	TargetCPAMicros int64 `json:"targetCpaMicros,string"`
}

type ManualCPC struct{}

type AdGroupOperation struct {
	Create *AdGroupCreate `json:"create,omitempty"`
}

type AdGroupCreate struct {
	Name         string `json:"name"`
	Campaign     string `json:"campaign"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status,omitempty"`
	CPCBidMicros int64  `json:"cpcBidMicros,string,omitempty"`
}

type AdGroupCriterionOperation struct {
	Create *AdGroupCriterionCreate `json:"create,omitempty"`
}

type AdGroupCriterionCreate struct {
	AdGroup string       `json:"adGroup"`
	Status  string       `json:"status,omitempty"`
	Keyword *KeywordInfo `json:"keyword,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type AdGroupAdOperation struct {
	Create *AdGroupAdCreate `json:"create,omitempty"`
}

type AdGroupAdCreate struct {
	AdGroup string `json:"adGroup"`
	Status  string `json:"status,omitempty"`
	Ad      *Ad    `json:"ad,omitempty"`
}

type Ad struct {
	FinalURLs          []string            `json:"finalUrls,omitempty"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
}

type ResponsiveSearchAd struct {
	Headlines    []*AdTextAsset `json:"headlines"`
	Descriptions []*AdTextAsset `json:"descriptions"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

// MutateResults é a resposta dos endpoints :mutate
type MutateResults struct {
	Results []*MutateResult `json:"results"`
}

type MutateResult struct {
	ResourceName string `json:"resourceName"`
}
