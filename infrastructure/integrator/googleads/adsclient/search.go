package adsclient

import (
	"context"
	"fmt"
	"net/http"

	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// Search executa uma consulta GAQL, seguindo a paginação até o fim
func (c *GoogleAdsClient) Search(ctx context.Context, conn *domain.UserConnection, customerID, query string) ([]*adsdomain.SearchResult, error) {
	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, customerID)

	results := make([]*adsdomain.SearchResult, 0)
	pageToken := ""

	for {
		request := &adsdomain.SearchRequest{
			Query:     query,
			PageToken: pageToken,
		}

		response := &adsdomain.SearchResponse{}
		if err := c.doRequest(ctx, conn, http.MethodPost, endpoint, request, response); err != nil {
			return nil, err
		}

		results = append(results, response.Results...)

		if response.NextPageToken == "" {
			break
		}
		pageToken = response.NextPageToken
	}

	return results, nil
}
