package campaigning

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

var validMatchTypes = []string{
	domain.MatchTypeExact,
	domain.MatchTypePhrase,
	domain.MatchTypeBroad,
}

var validBiddingStrategies = []string{
	domain.BiddingMaximizeClicks,
	domain.BiddingMaximizeConversions,
	domain.BiddingTargetCPA,
	domain.BiddingManualCPC,
}

// ValidateCampaignSpec confere todas as regras da especificação e devolve
// um ValidationError que enumera cada violação encontrada, na ordem dos
// campos: nome, orçamento, palavras-chave, títulos, descrições, URL final
// e estratégia de lance. A validação é somente leitura.
func ValidateCampaignSpec(spec *domain.CampaignSpec) error {
	violations := make([]Violation, 0)

	add := func(field, code, message string) {
		violations = append(violations, Violation{Field: field, Code: code, Message: message})
	}

	name := strings.TrimSpace(spec.CampaignName)
	if name == "" {
		add("campaign_name", CodeRequired, "campaign_name is required")
	} else if nameLen := utf8.RuneCountInString(name); nameLen > 255 {
		add("campaign_name", CodeTooLong, fmt.Sprintf("campaign_name exceeds 255 chars (got %d)", nameLen))
	}

	if spec.BudgetAmountMicros == nil {
		add("budget_amount_micros", CodeRequired, "budget_amount_micros is required")
	} else if budget, ok := numericValue(spec.BudgetAmountMicros); !ok || budget <= 0 {
		add("budget_amount_micros", CodeNotPositive,
			fmt.Sprintf("budget_amount_micros must be > 0 (got %v)", spec.BudgetAmountMicros))
	}

	if len(spec.Keywords) == 0 {
		add("keywords", CodeRequired, "At least 1 keyword is required")
	} else {
		for i, entry := range spec.Keywords {
			validateKeyword(i, entry, add)
		}
	}

	validateAssets("headlines", "Headline", spec.Headlines, 3, 30, add)
	validateAssets("descriptions", "Description", spec.Descriptions, 2, 90, add)

	finalURL := strings.TrimSpace(spec.FinalURL)
	if finalURL == "" {
		add("final_url", CodeRequired, "final_url is required")
	} else {
		scheme := ""
		if parsed, err := url.Parse(finalURL); err == nil {
			scheme = parsed.Scheme
		}
		if scheme != "https" {
			add("final_url", CodeInvalidScheme, fmt.Sprintf("final_url must be HTTPS (got %s)", scheme))
		}
	}

	bidding := strings.ToUpper(spec.BiddingStrategy)
	if !slices.Contains(validBiddingStrategies, bidding) {
		add("bidding_strategy", CodeInvalid, fmt.Sprintf("Invalid bidding_strategy: %s", bidding))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}

// validateKeyword aceita os três formatos que chegam até aqui: palavras já
// normalizadas, objetos crus do JSON e texto puro. Nos formatos
// estruturados as duas checagens são independentes: uma palavra pode ter
// texto vazio e match_type inválido ao mesmo tempo.
func validateKeyword(i int, entry any, add func(field, code, message string)) {
	switch kw := entry.(type) {
	case domain.Keyword:
		if strings.TrimSpace(kw.Text) == "" {
			add("keywords", CodeEmpty, fmt.Sprintf("Keyword %d has empty text", i))
		}
		if !slices.Contains(validMatchTypes, kw.MatchType) {
			add("keywords", CodeInvalid, fmt.Sprintf("Keyword %d has invalid match_type: %v", i, kw.MatchType))
		}
	case *domain.Keyword:
		validateKeyword(i, *kw, add)
	case map[string]any:
		if strings.TrimSpace(coerceString(kw["text"])) == "" {
			add("keywords", CodeEmpty, fmt.Sprintf("Keyword %d has empty text", i))
		}
		matchType, isString := kw["match_type"].(string)
		if !isString || !slices.Contains(validMatchTypes, matchType) {
			add("keywords", CodeInvalid, fmt.Sprintf("Keyword %d has invalid match_type: %v", i, kw["match_type"]))
		}
	case string:
		if strings.TrimSpace(kw) == "" {
			add("keywords", CodeEmpty, fmt.Sprintf("Keyword %d is empty", i))
		}
	}
}

// validateAssets aplica as regras comuns de títulos e descrições: mínimo de
// elementos, tamanho máximo e unicidade após o trim. A primeira ocorrência
// nunca é marcada como duplicada; cada repetição seguinte é marcada
// individualmente. Elementos vazios ou longos demais não disparam a
// checagem de duplicidade, mas ainda contam como vistos.
func validateAssets(field, label string, items []string, minItems, maxChars int, add func(field, code, message string)) {
	if len(items) < minItems {
		add(field, CodeTooFew, fmt.Sprintf("At least %d %s required (got %d)", minItems, field, len(items)))
		return
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		trimmed := strings.TrimSpace(item)
		length := utf8.RuneCountInString(trimmed)

		switch {
		case trimmed == "":
			add(field, CodeEmpty, fmt.Sprintf("%s %d is empty", label, i))
		case length > maxChars:
			add(field, CodeTooLong, fmt.Sprintf("%s %d exceeds %d chars (got %d)", label, i, maxChars, length))
		default:
			if _, duplicate := seen[trimmed]; duplicate {
				add(field, CodeDuplicate, fmt.Sprintf("%s %d is duplicate: '%s'", label, i, trimmed))
			}
		}

		seen[trimmed] = struct{}{}
	}
}

// numericValue extrai o valor numérico do orçamento. Texto e outros tipos
// não contam como numéricos, mesmo que representem números.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
