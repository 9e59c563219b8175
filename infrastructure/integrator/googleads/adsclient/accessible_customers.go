package adsclient

import (
	"context"
	"fmt"
	"net/http"

	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// ListAccessibleCustomers lista os resource names das contas que o usuário
// autenticado pode acessar diretamente
func (c *GoogleAdsClient) ListAccessibleCustomers(ctx context.Context, conn *domain.UserConnection) ([]string, error) {
	endpoint := fmt.Sprintf("%s/customers:listAccessibleCustomers", c.Cfg.GoogleAds.URL)

	response := &adsdomain.ListAccessibleCustomersResponse{}
	if err := c.doRequest(ctx, conn, http.MethodGet, endpoint, nil, response); err != nil {
		return nil, err
	}

	return response.ResourceNames, nil
}
