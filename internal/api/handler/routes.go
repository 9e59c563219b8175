package handler

import (
	"net/http"

	"github.com/dotlerai-cell/dotler-web/internal/api/handler/router"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/campaigning"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/connecting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/contacting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/insighting"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/policying"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/setupflow"
	"github.com/dotlerai-cell/dotler-web/internal/usecases/tracking"
	"github.com/dotlerai-cell/dotler-web/pkg/middleware"
)

func Healthcheck(database Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(database),
		},
	}
}

// OAuth agrupa o fluxo de consentimento do Google e os endpoints de
// configuração de credenciais usados pelo onboarding
func OAuth(service connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/google",
			Method:  http.MethodGet,
			Handler: GoogleAuth(service),
		},
		{
			Path:    "/oauth2/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
		{
			Path:    "/auth/connections/:email",
			Method:  http.MethodGet,
			Handler: GetConnection(service),
		},
		{
			Path:    "/config",
			Method:  http.MethodPost,
			Handler: SaveUserConfig(service),
		},
		{
			Path:    "/api/save-oauth-tokens",
			Method:  http.MethodPost,
			Handler: SaveOAuthTokens(service),
		},
		{
			Path:    "/api/store-setup",
			Method:  http.MethodPost,
			Handler: StoreSetup(service),
		},
		{
			Path:    "/api/complete-setup",
			Method:  http.MethodPost,
			Handler: CompleteSetup(service),
		},
		{
			Path:    "/api/get-user-email",
			Method:  http.MethodGet,
			Handler: GetUserEmail(service),
		},
	}
}

func Tracking(service tracking.TrackingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/tracking/track",
			Method:  http.MethodPost,
			Handler: TrackEvent(service),
		},
		{
			Path:    "/api/analytics/overview",
			Method:  http.MethodGet,
			Handler: AnalyticsOverview(service),
		},
		{
			Path:    "/api/analytics/consent-stats",
			Method:  http.MethodGet,
			Handler: ConsentStats(service),
		},
		{
			Path:    "/api/analytics/user-behavior",
			Method:  http.MethodGet,
			Handler: UserBehavior(service),
		},
		{
			Path:    "/api/analytics/metric-details",
			Method:  http.MethodGet,
			Handler: MetricDetails(service),
		},
	}
}

func GoogleAds(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/google-ads/accounts",
			Method:  http.MethodGet,
			Handler: ListAccessibleAccounts(service),
		},
		{
			Path:    "/google-ads/performance",
			Method:  http.MethodGet,
			Handler: AccountPerformance(service),
		},
		{
			Path:    "/google-ads/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignMetrics(service),
		},
		{
			Path:    "/google-ads/metric-trend",
			Method:  http.MethodGet,
			Handler: MetricTrend(service),
		},
		{
			Path:    "/google-ads/performance-history",
			Method:  http.MethodGet,
			Handler: PerformanceHistory(service),
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/create-campaign",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/api/submit-campaign",
			Method:  http.MethodPost,
			Handler: SubmitCampaign(service),
		},
		{
			Path:    "/api/campaign-drafts",
			Method:  http.MethodGet,
			Handler: ListCampaignDrafts(service),
		},
	}
}

func Setup(service setupflow.SetupService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/setup-chat",
			Method:  http.MethodPost,
			Handler: SetupChat(service),
		},
		{
			Path:    "/api/setup-status",
			Method:  http.MethodGet,
			Handler: SetupStatus(service),
		},
		{
			Path:    "/api/reset-setup",
			Method:  http.MethodPost,
			Handler: ResetSetup(service),
		},
	}
}

func Policies(service policying.PolicyService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/upload-policy",
			Method:  http.MethodPost,
			Handler: UploadPolicy(service),
		},
		{
			Path:    "/api/policy-status",
			Method:  http.MethodGet,
			Handler: PolicyStatus(service),
		},
		{
			Path:    "/api/policy-search",
			Method:  http.MethodPost,
			Handler: SearchPolicy(service),
		},
	}
}

func Contact(service contacting.ContactService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/contact",
			Method:  http.MethodPost,
			Handler: SubmitContact(service),
		},
	}
}

func CronJobs(services CronJobServices, adminEmails []string) []router.Route {
	return []router.Route{
		{
			Path:        "/api/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminEmails)},
		},
		{
			Path:        "/api/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(adminEmails)},
		},
	}
}
