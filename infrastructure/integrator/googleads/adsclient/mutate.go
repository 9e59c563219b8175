package adsclient

import (
	"context"
	"fmt"
	"net/http"

	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

type campaignBudgetMutateRequest struct {
	Operations   []*adsdomain.CampaignBudgetOperation `json:"operations"`
	ValidateOnly bool                                 `json:"validateOnly,omitempty"`
}

type campaignMutateRequest struct {
	Operations []*adsdomain.CampaignOperation `json:"operations"`
}

type adGroupMutateRequest struct {
	Operations []*adsdomain.AdGroupOperation `json:"operations"`
}

type adGroupCriterionMutateRequest struct {
	Operations []*adsdomain.AdGroupCriterionOperation `json:"operations"`
}

type adGroupAdMutateRequest struct {
	Operations []*adsdomain.AdGroupAdOperation `json:"operations"`
}

func (c *GoogleAdsClient) MutateCampaignBudgets(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.CampaignBudgetOperation, validateOnly bool) (*adsdomain.MutateResults, error) {
	return c.mutate(ctx, conn, customerID, "campaignBudgets", &campaignBudgetMutateRequest{Operations: operations, ValidateOnly: validateOnly})
}

func (c *GoogleAdsClient) MutateCampaigns(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.CampaignOperation) (*adsdomain.MutateResults, error) {
	return c.mutate(ctx, conn, customerID, "campaigns", &campaignMutateRequest{Operations: operations})
}

func (c *GoogleAdsClient) MutateAdGroups(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupOperation) (*adsdomain.MutateResults, error) {
	return c.mutate(ctx, conn, customerID, "adGroups", &adGroupMutateRequest{Operations: operations})
}

func (c *GoogleAdsClient) MutateAdGroupCriteria(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupCriterionOperation) (*adsdomain.MutateResults, error) {
	return c.mutate(ctx, conn, customerID, "adGroupCriteria", &adGroupCriterionMutateRequest{Operations: operations})
}

func (c *GoogleAdsClient) MutateAdGroupAds(ctx context.Context, conn *domain.UserConnection, customerID string, operations []*adsdomain.AdGroupAdOperation) (*adsdomain.MutateResults, error) {
	return c.mutate(ctx, conn, customerID, "adGroupAds", &adGroupAdMutateRequest{Operations: operations})
}

func (c *GoogleAdsClient) mutate(ctx context.Context, conn *domain.UserConnection, customerID, resource string, payload any) (*adsdomain.MutateResults, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/%s:mutate", c.Cfg.GoogleAds.URL, customerID, resource)

	results := &adsdomain.MutateResults{}
	if err := c.doRequest(ctx, conn, http.MethodPost, endpoint, payload, results); err != nil {
		return nil, err
	}

	return results, nil
}
