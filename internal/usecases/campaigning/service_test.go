package campaigning

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini"
	geminimocks "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/gemini/mocks"
	adsdomain "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/domain"
	adsmocks "github.com/dotlerai-cell/dotler-web/infrastructure/integrator/googleads/mocks"
	"github.com/dotlerai-cell/dotler-web/infrastructure/repository/mocks"
	"github.com/dotlerai-cell/dotler-web/internal/domain"
	"github.com/dotlerai-cell/dotler-web/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// policyContextStub troca o provedor de contexto de política por respostas
// fixas definidas em cada caso
type policyContextStub struct {
	text string
	err  error
}

func (s *policyContextStub) PolicyContext(_ context.Context, _, _ string) (string, error) {
	return s.text, s.err
}

const validAIResponse = "```json\n" + `{
  "campaign_name": "Summer Running Shoes",
  "budget_amount_micros": 10000000,
  "ad_group_name": "Running Shoes",
  "headlines": ["Running Shoes Sale", "Up to 50% Off", "Free Shipping Today"],
  "descriptions": ["Shop the best running shoes.", "Limited time offer on all models."],
  "final_url": "https://store.example.com/sale",
  "keywords": [{"text": "running shoes", "match_type": "EXACT"}],
  "bidding_strategy": "MAXIMIZE_CLICKS"
}` + "\n```"

const missingURLAIResponse = `{
  "campaign_name": "Summer Running Shoes",
  "budget_amount_micros": 10000000,
  "headlines": ["Running Shoes Sale", "Up to 50% Off", "Free Shipping Today"],
  "descriptions": ["Shop the best running shoes.", "Limited time offer on all models."],
  "keywords": [{"text": "running shoes", "match_type": "EXACT"}],
  "bidding_strategy": "MAXIMIZE_CLICKS"
}`

// oversizedAIResponse devolve uma resposta com nome vazio e mais títulos e
// descrições do que a plataforma aceita
func oversizedAIResponse(t *testing.T) string {
	t.Helper()

	headlines := make([]string, 0, 16)
	for _, suffix := range []string{
		"um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito",
		"nove", "dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis",
	} {
		headlines = append(headlines, "Oferta "+suffix)
	}

	raw, err := json.Marshal(map[string]any{
		"campaign_name":        "",
		"budget_amount_micros": 10000000,
		"headlines":            headlines,
		"descriptions": []string{
			"Primeira descrição da campanha.",
			"Segunda descrição da campanha.",
			"Terceira descrição da campanha.",
			"Quarta descrição da campanha.",
			"Quinta descrição da campanha.",
		},
		"final_url":        "https://store.example.com",
		"keywords":         []any{"tênis de corrida"},
		"bidding_strategy": "MAXIMIZE_CLICKS",
	})
	require.NoError(t, err)

	return string(raw)
}

func TestService_DraftCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockGemini := geminimocks.NewMockIntegrator(ctrl)
	mockDraftRepo := mocks.NewMockCampaignDraftRepository(ctrl)
	policyStub := &policyContextStub{}

	// Service
	service := &Service{
		geminiService:   mockGemini,
		draftRepository: mockDraftRepo,
		policyContext:   policyStub,
	}

	var capturedPrompt string
	var savedDraft *domain.CampaignDraft

	generateReturning := func(response string, err error) {
		mockGemini.EXPECT().
			GenerateText(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				capturedPrompt = prompt
				return response, err
			})
	}

	captureSavedDraft := func(saveErr error) {
		mockDraftRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(draft *domain.CampaignDraft) error {
				savedDraft = draft
				return saveErr
			})
	}

	tests := []struct {
		name     string
		request  *domain.CampaignCreationRequest
		setup    func(t *testing.T)
		validate func(t *testing.T, result *domain.CampaignDraftResult, err error)
	}{
		{
			name: "Rascunho gerado com sucesso a partir da resposta do modelo",
			request: &domain.CampaignCreationRequest{
				UserID:     "user@example.com",
				CustomerID: "1234567890",
				UserQuery:  "Quero vender tênis de corrida",
				LandingURL: "https://store.example.com/sale",
			},
			setup: func(t *testing.T) {
				generateReturning(validAIResponse, nil)
				captureSavedDraft(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				require.NotNil(t, result)

				assert.Equal(t, "success", result.Status)
				assert.Len(t, result.IdempotencyKey, 36)
				assert.False(t, result.CreatedAt.IsZero())

				assert.Contains(t, capturedPrompt, "User Query: Quero vender tênis de corrida")
				assert.Contains(t, capturedPrompt, "Landing URL: https://store.example.com/sale")
				assert.NotContains(t, capturedPrompt, "Company Policy")

				require.NotNil(t, result.CampaignSpec)
				assert.Equal(t, "Summer Running Shoes", result.CampaignSpec.CampaignName)
				assert.Equal(t, []any{
					domain.Keyword{Text: "running shoes", MatchType: domain.MatchTypeExact},
				}, result.CampaignSpec.Keywords)

				require.NotNil(t, result.Preview)
				assert.Equal(t, "$10.00/day", result.Preview.Budget)
				assert.Equal(t, 3, result.Preview.HeadlinesCount)
				assert.Equal(t, 2, result.Preview.DescriptionsCount)
				assert.Equal(t, 1, result.Preview.KeywordsCount)

				require.NotNil(t, savedDraft)
				assert.Equal(t, result.IdempotencyKey, savedDraft.IdempotencyKey)
				assert.Equal(t, "user@example.com", savedDraft.ConnectionKey)
				assert.Equal(t, "1234567890", savedDraft.CustomerID)
				assert.False(t, savedDraft.UsedPolicy)
			},
		},
		{
			name: "Contexto de política entra no prompt quando solicitado",
			request: &domain.CampaignCreationRequest{
				UserID:           "user@example.com",
				UserQuery:        "Campanha de inverno",
				LandingURL:       "https://store.example.com",
				UseCompanyPolicy: true,
			},
			setup: func(t *testing.T) {
				policyStub.text = "\n\nCompany Policy:\n- Não anunciar bebidas alcoólicas"
				policyStub.err = nil
				generateReturning(validAIResponse, nil)
				captureSavedDraft(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				assert.Contains(t, capturedPrompt, "Company Policy:\n- Não anunciar bebidas alcoólicas")
				require.NotNil(t, savedDraft)
				assert.True(t, savedDraft.UsedPolicy)
			},
		},
		{
			name: "Falha ao buscar a política não impede o rascunho",
			request: &domain.CampaignCreationRequest{
				UserID:           "user@example.com",
				UserQuery:        "Campanha de inverno",
				LandingURL:       "https://store.example.com",
				UseCompanyPolicy: true,
			},
			setup: func(t *testing.T) {
				policyStub.text = ""
				policyStub.err = errors.New("embeddings indisponíveis")
				generateReturning(validAIResponse, nil)
				captureSavedDraft(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.NotContains(t, capturedPrompt, "Company Policy")
				require.NotNil(t, savedDraft)
				assert.False(t, savedDraft.UsedPolicy)
			},
		},
		{
			name: "Landing URL vazia usa o endereço padrão",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha genérica",
			},
			setup: func(t *testing.T) {
				generateReturning(validAIResponse, nil)
				captureSavedDraft(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				assert.Contains(t, capturedPrompt, "Landing URL: https://example.com")
				require.NotNil(t, savedDraft)
				assert.Equal(t, "https://example.com", savedDraft.LandingURL)
			},
		},
		{
			name: "Limites da plataforma são reaplicados sobre a resposta",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha com excesso de ativos",
			},
			setup: func(t *testing.T) {
				generateReturning(oversizedAIResponse(t), nil)
				captureSavedDraft(nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "Campaign", result.CampaignSpec.CampaignName)
				assert.Len(t, result.CampaignSpec.Headlines, 15)
				assert.Len(t, result.CampaignSpec.Descriptions, 4)
				assert.Equal(t, []any{
					domain.Keyword{Text: "tênis de corrida", MatchType: domain.MatchTypeBroad},
				}, result.CampaignSpec.Keywords)
			},
		},
		{
			name: "Gemini não configurado devolve IA indisponível",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha qualquer",
			},
			setup: func(t *testing.T) {
				generateReturning("", gemini.ErrNotConfigured)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrAINotConfigured)
				assert.Equal(t, apiErrors.ErrAIUnavailable, campaignErr.Code)
				assert.Equal(t, "Gemini API not configured", campaignErr.Details)
			},
		},
		{
			name: "Erro do modelo vira erro de serviço externo",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha qualquer",
			},
			setup: func(t *testing.T) {
				generateReturning("", errors.New("deadline exceeded"))
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrAIRequest)
				assert.Equal(t, apiErrors.ErrExternalService, campaignErr.Code)
				assert.Equal(t, "deadline exceeded", campaignErr.Details)
			},
		},
		{
			name: "Resposta que não é JSON devolve erro de resposta da IA",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha qualquer",
			},
			setup: func(t *testing.T) {
				generateReturning("Sorry, I cannot generate that campaign.", nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrAIResponse)
				assert.Equal(t, apiErrors.ErrAIResponse, campaignErr.Code)
			},
		},
		{
			name: "Especificação inválida do modelo devolve as violações sem gravar rascunho",
			request: &domain.CampaignCreationRequest{
				UserID:    "user@example.com",
				UserQuery: "Campanha qualquer",
			},
			setup: func(t *testing.T) {
				generateReturning(missingURLAIResponse, nil)
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.Nil(t, result)
				assert.Equal(t, []Violation{
					{Field: "final_url", Code: CodeRequired, Message: "final_url is required"},
				}, violationsOf(t, err))
			},
		},
		{
			name: "Falha ao gravar o rascunho não invalida o resultado",
			request: &domain.CampaignCreationRequest{
				UserID:     "user@example.com",
				UserQuery:  "Campanha qualquer",
				LandingURL: "https://store.example.com",
			},
			setup: func(t *testing.T) {
				generateReturning(validAIResponse, nil)
				captureSavedDraft(errors.New("conexão com o banco perdida"))
			},
			validate: func(t *testing.T, result *domain.CampaignDraftResult, err error) {
				assert.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, "success", result.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capturedPrompt = ""
			savedDraft = nil
			policyStub.text = ""
			policyStub.err = nil

			tt.setup(t)

			result, err := service.DraftCampaign(context.Background(), tt.request)

			tt.validate(t, result, err)
		})
	}
}

func TestService_SubmitCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockAds := adsmocks.NewMockIntegrator(ctrl)
	mockConnRepo := mocks.NewMockUserConnectionRepository(ctrl)
	mockDraftRepo := mocks.NewMockCampaignDraftRepository(ctrl)

	// Service
	service := &Service{
		adsService:           mockAds,
		connectionRepository: mockConnRepo,
		draftRepository:      mockDraftRepo,
	}

	connection := &domain.UserConnection{
		Key:            "user@example.com",
		Email:          "user@example.com",
		RefreshToken:   "refresh-token",
		DeveloperToken: "developer-token",
	}

	outcome := &domain.SubmissionOutcome{
		Status:     "success",
		Message:    "Campaign created successfully",
		CampaignID: "customers/1234567890/campaigns/999",
	}

	platformFailure := &adsdomain.FailureError{
		StatusCode: 400,
		Status: &adsdomain.ErrorStatus{
			Code:    400,
			Message: "Request contains an invalid argument.",
			Status:  "INVALID_ARGUMENT",
			Details: []*adsdomain.ErrorDetail{
				{
					Type: "type.googleapis.com/google.ads.googleads.v18.errors.GoogleAdsFailure",
					Errors: []*adsdomain.GoogleAdsError{
						{
							ErrorCode: map[string]string{"stringLengthError": "TOO_LONG"},
							Message:   "Too long.",
							Location: &adsdomain.ErrorLocation{
								FieldPathElements: []*adsdomain.FieldPathElement{
									{FieldName: "operations"},
									{FieldName: "create"},
									{FieldName: "name"},
								},
							},
						},
					},
				},
			},
		},
	}

	tests := []struct {
		name     string
		request  *domain.CampaignSubmissionRequest
		setup    func()
		validate func(t *testing.T, result *domain.SubmissionOutcome, err error)
	}{
		{
			name: "Envio com especificação inline bem-sucedido",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CustomerID:   "1234567890",
				CampaignSpec: validSpec(),
				ValidateOnly: true,
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)

				mockAds.EXPECT().
					SubmitCampaign(gomock.Any(), connection, "1234567890", gomock.Any(), true).
					DoAndReturn(func(_ context.Context, _ *domain.UserConnection, _ string, spec *domain.CampaignSpec, _ bool) (*domain.SubmissionOutcome, error) {
						// As palavras-chave chegam normalizadas na plataforma
						assert.Equal(t, []any{
							domain.Keyword{Text: "running shoes", MatchType: domain.MatchTypeExact},
							domain.Keyword{Text: "buy sneakers", MatchType: domain.MatchTypeBroad},
						}, spec.Keywords)
						return outcome, nil
					})
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.NoError(t, err)
				assert.Equal(t, outcome, result)
			},
		},
		{
			name: "Envio a partir de um rascunho gravado",
			request: &domain.CampaignSubmissionRequest{
				UserID:     "user@example.com",
				CustomerID: "1234567890",
				DraftID:    "draft-abc-123",
			},
			setup: func() {
				mockDraftRepo.EXPECT().
					GetByIdempotencyKey("draft-abc-123").
					Return(&domain.CampaignDraft{
						IdempotencyKey: "draft-abc-123",
						ConnectionKey:  "user@example.com",
						Spec:           validSpec(),
					}, nil)

				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)

				mockAds.EXPECT().
					SubmitCampaign(gomock.Any(), connection, "1234567890", gomock.Any(), false).
					Return(outcome, nil)
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.NoError(t, err)
				assert.Equal(t, outcome, result)
			},
		},
		{
			name: "Erro ao buscar o rascunho no banco",
			request: &domain.CampaignSubmissionRequest{
				UserID:  "user@example.com",
				DraftID: "draft-abc-123",
			},
			setup: func() {
				mockDraftRepo.EXPECT().
					GetByIdempotencyKey("draft-abc-123").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, campaignErr.Code)
				assert.Equal(t, "Falha ao buscar o rascunho no banco de dados", campaignErr.Details)
			},
		},
		{
			name: "Rascunho inexistente devolve recurso não encontrado",
			request: &domain.CampaignSubmissionRequest{
				UserID:  "user@example.com",
				DraftID: "draft-abc-123",
			},
			setup: func() {
				mockDraftRepo.EXPECT().
					GetByIdempotencyKey("draft-abc-123").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrDraftNotFound)
				assert.Equal(t, apiErrors.ErrResourceNotFound, campaignErr.Code)
				assert.Equal(t, "Nenhum rascunho encontrado para draft-abc-123", campaignErr.Details)
			},
		},
		{
			name: "Sem especificação e sem rascunho é rejeitado",
			request: &domain.CampaignSubmissionRequest{
				UserID: "user@example.com",
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrSpecRequired)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, campaignErr.Code)
				assert.Equal(t, "campaign_spec é obrigatório", campaignErr.Details)
			},
		},
		{
			name: "Especificação inválida é recusada antes de consultar a conexão",
			request: &domain.CampaignSubmissionRequest{
				UserID: "user@example.com",
				CampaignSpec: &domain.CampaignSpec{
					CampaignName:       "Campanha sem títulos",
					BudgetAmountMicros: 10000000,
					Keywords:           []any{"tênis"},
					Descriptions:       []string{"Primeira descrição.", "Segunda descrição."},
					FinalURL:           "https://store.example.com",
					BiddingStrategy:    domain.BiddingMaximizeClicks,
				},
			},
			setup: func() {},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)
				assert.Equal(t, []Violation{
					{Field: "headlines", Code: CodeTooFew, Message: "At least 3 headlines required (got 0)"},
				}, violationsOf(t, err))
			},
		},
		{
			name: "Erro ao buscar a conexão do usuário",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CampaignSpec: validSpec(),
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
				assert.Equal(t, "Falha ao buscar a conexão do usuário no banco de dados", campaignErr.Details)
			},
		},
		{
			name: "Usuário sem conexão devolve recurso não encontrado",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CampaignSpec: validSpec(),
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrConnectionNotFound)
				assert.Equal(t, "Nenhuma conexão encontrada para user@example.com", campaignErr.Details)
			},
		},
		{
			name: "Conexão sem credenciais completas do Google Ads",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CampaignSpec: validSpec(),
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(&domain.UserConnection{
						Key:          "user@example.com",
						RefreshToken: "refresh-token",
					}, nil)
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrMissingCredentials)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, campaignErr.Code)
				assert.Equal(t, "A conexão não tem credenciais completas do Google Ads", campaignErr.Details)
			},
		},
		{
			name: "Recusa estruturada da plataforma expõe os detalhes",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CustomerID:   "1234567890",
				CampaignSpec: validSpec(),
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)

				mockAds.EXPECT().
					SubmitCampaign(gomock.Any(), connection, "1234567890", gomock.Any(), false).
					Return(nil, platformFailure)
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var platformErr *PlatformError
				require.ErrorAs(t, err, &platformErr)
				require.Len(t, platformErr.Details, 1)
				assert.Equal(t, "operations > create > name", platformErr.Details[0].Field)
				assert.Equal(t, "Too long.", platformErr.Details[0].Message)
				assert.Equal(t, map[string]string{"stringLengthError": "TOO_LONG"}, platformErr.Details[0].ErrorCode)
			},
		},
		{
			name: "Falha genérica no envio vira erro da plataforma de anúncios",
			request: &domain.CampaignSubmissionRequest{
				UserID:       "user@example.com",
				CustomerID:   "1234567890",
				CampaignSpec: validSpec(),
			},
			setup: func() {
				mockConnRepo.EXPECT().
					ResolveByUserID("user@example.com").
					Return(connection, nil)

				mockAds.EXPECT().
					SubmitCampaign(gomock.Any(), connection, "1234567890", gomock.Any(), false).
					Return(nil, errors.New("request timeout"))
			},
			validate: func(t *testing.T, result *domain.SubmissionOutcome, err error) {
				assert.Nil(t, result)

				var campaignErr *CampaignError
				require.ErrorAs(t, err, &campaignErr)
				assert.ErrorIs(t, err, ErrSubmissionFailed)
				assert.Equal(t, apiErrors.ErrAdsPlatform, campaignErr.Code)
				assert.Equal(t, "request timeout", campaignErr.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.SubmitCampaign(context.Background(), tt.request)

			tt.validate(t, result, err)
		})
	}
}

func TestService_ListDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDraftRepo := mocks.NewMockCampaignDraftRepository(ctrl)

	service := &Service{draftRepository: mockDraftRepo}

	t.Run("Rascunhos são devolvidos na ordem do repositório", func(t *testing.T) {
		drafts := []*domain.CampaignDraft{
			{IdempotencyKey: "draft-2"},
			{IdempotencyKey: "draft-1"},
		}

		mockDraftRepo.EXPECT().
			ListByConnection("user@example.com", uint64(10)).
			Return(drafts, nil)

		result, err := service.ListDrafts("user@example.com", 10)

		assert.NoError(t, err)
		assert.Equal(t, drafts, result)
	})

	t.Run("Erro do banco vira erro de listagem", func(t *testing.T) {
		mockDraftRepo.EXPECT().
			ListByConnection("user@example.com", uint64(10)).
			Return(nil, errors.New("conexão recusada"))

		result, err := service.ListDrafts("user@example.com", 10)

		assert.Nil(t, result)

		var campaignErr *CampaignError
		require.ErrorAs(t, err, &campaignErr)
		assert.ErrorIs(t, err, ErrFetchDrafts)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, campaignErr.Code)
	})
}
