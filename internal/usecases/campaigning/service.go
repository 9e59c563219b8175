package campaigning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini"
	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads"
	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository"
	"github.com/dotlerai-cell/dotler-web/internal/config"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Prompt enviado ao modelo para gerar a especificação de campanha. O
// terceiro argumento recebe o contexto de política da empresa, quando há.
const campaignPromptTemplate = `Generate a Google Ads Search campaign specification as JSON.

User Query: %s
Landing URL: %s%s

Output JSON schema:
{
  "campaign_name": "string (max 255 chars)",
  "budget_amount_micros": integer (e.g., 10000000 = $10/day),
  "ad_group_name": "string (max 255 chars)",
  "headlines": ["string (max 30 chars)", ...] (3-15 unique),
  "descriptions": ["string (max 90 chars)", ...] (2-4 unique),
  "final_url": "https://... (HTTPS required)",
  "keywords": [{"text": "keyword", "match_type": "EXACT|PHRASE|BROAD"}, ...] (1-20),
  "bidding_strategy": "MAXIMIZE_CLICKS|MAXIMIZE_CONVERSIONS|TARGET_CPA|MANUAL_CPC"
}

CRITICAL RULES:
- Each headline MUST be ≤30 characters (count carefully)
- Each description MUST be ≤90 characters (count carefully)
- All headlines must be unique
- All descriptions must be unique
- final_url must start with https://
- Each keyword must have match_type: EXACT, PHRASE, or BROAD

Return ONLY valid JSON. No markdown, no explanations.`

const defaultLandingURL = "https://example.com"

// Modelos costumam embrulhar o JSON em cercas de markdown mesmo quando
// instruídos a não fazer isso
var jsonFencePattern = regexp.MustCompile("```json\\s*|\\s*```")

// PolicyContextProvider busca trechos da política da empresa relevantes
// para a consulta, já formatados para anexar ao prompt
type PolicyContextProvider interface {
	PolicyContext(ctx context.Context, userID, query string) (string, error)
}

type CampaignService interface {
	DraftCampaign(ctx context.Context, request *domain.CampaignCreationRequest) (*domain.CampaignDraftResult, error)
	SubmitCampaign(ctx context.Context, request *domain.CampaignSubmissionRequest) (*domain.SubmissionOutcome, error)
	ListDrafts(userID string, limit uint64) ([]*domain.CampaignDraft, error)
}

type Service struct {
	cfg                  *config.Config
	geminiService        gemini.Integrator
	adsService           googleads.Integrator
	connectionRepository repository.UserConnectionRepository
	draftRepository      repository.CampaignDraftRepository
	policyContext        PolicyContextProvider
}

func NewService(
	cfg *config.Config,
	geminiService gemini.Integrator,
	adsService googleads.Integrator,
	connectionRepository repository.UserConnectionRepository,
	draftRepository repository.CampaignDraftRepository,
	policyContext PolicyContextProvider,
) CampaignService {
	return &Service{
		cfg:                  cfg,
		geminiService:        geminiService,
		adsService:           adsService,
		connectionRepository: connectionRepository,
		draftRepository:      draftRepository,
		policyContext:        policyContext,
	}
}

// DraftCampaign pede ao modelo uma especificação de campanha a partir da
// consulta do usuário, aplica os limites da plataforma, normaliza as
// palavras-chave e valida o resultado antes de devolvê-lo com uma chave de
// idempotência. O rascunho validado é guardado para consulta posterior.
func (s *Service) DraftCampaign(ctx context.Context, request *domain.CampaignCreationRequest) (*domain.CampaignDraftResult, error) {
	policyContext := ""
	if request.UseCompanyPolicy && s.policyContext != nil {
		fetched, err := s.policyContext.PolicyContext(ctx, request.UserID, request.UserQuery)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": request.UserID,
				"error":   err.Error(),
			}).Warn("campaign: failed to fetch policy context, drafting without it")
		} else {
			policyContext = fetched
		}
	}

	landingURL := request.LandingURL
	if landingURL == "" {
		landingURL = defaultLandingURL
	}

	prompt := fmt.Sprintf(campaignPromptTemplate, request.UserQuery, landingURL, policyContext)

	raw, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, NewCampaignError(ErrAINotConfigured, apiErrors.ErrAIUnavailable, "Gemini API not configured")
		}
		return nil, NewCampaignError(ErrAIRequest, apiErrors.ErrExternalService, err.Error())
	}

	spec := &domain.CampaignSpec{}
	cleaned := jsonFencePattern.ReplaceAllString(strings.TrimSpace(raw), "")
	if err := json.Unmarshal([]byte(cleaned), spec); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": request.UserID,
			"error":   err.Error(),
		}).Error("campaign: AI response is not valid JSON")
		return nil, NewCampaignError(ErrAIResponse, apiErrors.ErrAIResponse, err.Error())
	}

	// Reaplica os limites da plataforma caso o modelo os tenha ignorado
	if spec.CampaignName == "" {
		spec.CampaignName = "Campaign"
	}
	spec.CampaignName = truncateRunes(spec.CampaignName, 255)
	spec.Headlines = truncateAssets(spec.Headlines, 15, 30)
	spec.Descriptions = truncateAssets(spec.Descriptions, 4, 90)

	spec.Keywords = NormalizeKeywords(spec.Keywords)
	if err := ValidateCampaignSpec(spec); err != nil {
		return nil, err
	}

	idempotencyKey := uuid.NewString()
	createdAt := time.Now().UTC()
	usedPolicy := policyContext != ""

	draft := &domain.CampaignDraft{
		IdempotencyKey: idempotencyKey,
		ConnectionKey:  request.UserID,
		CustomerID:     request.CustomerID,
		UserQuery:      request.UserQuery,
		LandingURL:     landingURL,
		UsedPolicy:     usedPolicy,
		Spec:           spec,
		CreatedAt:      createdAt,
	}

	// O rascunho é um registro de apoio: falha ao gravar não invalida a
	// especificação já validada
	if err := s.draftRepository.Save(draft); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": request.UserID,
			"error":   err.Error(),
		}).Error("campaign: failed to persist campaign draft")
	}

	return &domain.CampaignDraftResult{
		Status:         "success",
		CampaignSpec:   spec,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      createdAt,
		Preview:        buildPreview(spec),
	}, nil
}

// SubmitCampaign normaliza e valida a especificação recebida e a envia
// para a conta informada usando as credenciais da conexão do usuário.
// Quando a requisição referencia um rascunho, a especificação gravada na
// geração é recuperada e enviada no lugar de uma especificação inline
func (s *Service) SubmitCampaign(ctx context.Context, request *domain.CampaignSubmissionRequest) (*domain.SubmissionOutcome, error) {
	spec := request.CampaignSpec
	if spec == nil && request.DraftID != "" {
		draft, err := s.draftRepository.GetByIdempotencyKey(request.DraftID)
		if err != nil {
			return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar o rascunho no banco de dados")
		}
		if draft == nil {
			return nil, NewCampaignError(ErrDraftNotFound, apiErrors.ErrResourceNotFound,
				fmt.Sprintf("Nenhum rascunho encontrado para %s", request.DraftID))
		}
		spec = draft.Spec
	}
	if spec == nil {
		return nil, NewCampaignError(ErrSpecRequired, apiErrors.ErrMissingRequiredData, "campaign_spec é obrigatório")
	}

	spec.Keywords = NormalizeKeywords(spec.Keywords)
	if err := ValidateCampaignSpec(spec); err != nil {
		return nil, err
	}

	conn, err := s.connectionRepository.ResolveByUserID(request.UserID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar a conexão do usuário no banco de dados")
	}
	if conn == nil {
		return nil, NewCampaignError(ErrConnectionNotFound, apiErrors.ErrResourceNotFound,
			fmt.Sprintf("Nenhuma conexão encontrada para %s", request.UserID))
	}
	if !conn.HasAdsCredentials() {
		return nil, NewCampaignError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData,
			"A conexão não tem credenciais completas do Google Ads")
	}

	outcome, err := s.adsService.SubmitCampaign(ctx, conn, request.CustomerID, spec, request.ValidateOnly)
	if err != nil {
		var failure *adsdomain.FailureError
		if errors.As(err, &failure) && len(failure.AdsErrors()) > 0 {
			logrus.WithFields(logrus.Fields{
				"user_id":     request.UserID,
				"customer_id": request.CustomerID,
				"errors":      len(failure.AdsErrors()),
			}).Warn("campaign: Google Ads rejected the campaign")
			return nil, NewPlatformError(failure)
		}
		return nil, NewCampaignError(ErrSubmissionFailed, apiErrors.ErrAdsPlatform, err.Error())
	}

	return outcome, nil
}

// ListDrafts devolve os rascunhos mais recentes gerados para o usuário
func (s *Service) ListDrafts(userID string, limit uint64) ([]*domain.CampaignDraft, error) {
	drafts, err := s.draftRepository.ListByConnection(userID, limit)
	if err != nil {
		return nil, NewCampaignError(ErrFetchDrafts, apiErrors.ErrDatabaseOperation, "Falha ao listar rascunhos no banco de dados")
	}

	return drafts, nil
}

func buildPreview(spec *domain.CampaignSpec) *domain.CampaignPreview {
	budget, _ := numericValue(spec.BudgetAmountMicros)

	return &domain.CampaignPreview{
		CampaignName:      spec.CampaignName,
		Budget:            fmt.Sprintf("$%.2f/day", budget/1000000),
		HeadlinesCount:    len(spec.Headlines),
		DescriptionsCount: len(spec.Descriptions),
		KeywordsCount:     len(spec.Keywords),
	}
}

func truncateAssets(items []string, maxItems, maxChars int) []string {
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	truncated := make([]string, 0, len(items))
	for _, item := range items {
		truncated = append(truncated, truncateRunes(item, maxChars))
	}

	return truncated
}
