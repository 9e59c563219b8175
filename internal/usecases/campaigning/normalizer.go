package campaigning

import (
	"fmt"
	"strings"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// NormalizeKeywords converte uma sequência heterogênea de palavras-chave
// (texto puro, objetos crus do JSON ou já tipadas) para o formato
// canônico, truncando e aplicando defaults em vez de rejeitar. Valores de
// match_type fora do enum passam adiante em maiúsculas para o validador
// decidir; apenas a ausência vira BROAD. Formatos desconhecidos são
// descartados em silêncio e a ordem dos demais é preservada.
func NormalizeKeywords(keywords []any) []any {
	normalized := make([]any, 0, len(keywords))

	for _, entry := range keywords {
		switch kw := entry.(type) {
		case domain.Keyword:
			normalized = append(normalized, normalizeKeyword(kw.Text, kw.MatchType))
		case *domain.Keyword:
			normalized = append(normalized, normalizeKeyword(kw.Text, kw.MatchType))
		case map[string]any:
			normalized = append(normalized, normalizeKeyword(coerceString(kw["text"]), coerceString(kw["match_type"])))
		case string:
			normalized = append(normalized, normalizeKeyword(kw, domain.MatchTypeBroad))
		}
	}

	return normalized
}

func normalizeKeyword(text, matchType string) domain.Keyword {
	matchType = strings.ToUpper(matchType)
	if matchType == "" {
		matchType = domain.MatchTypeBroad
	}

	return domain.Keyword{
		Text:      truncateRunes(strings.TrimSpace(text), 80),
		MatchType: matchType,
	}
}

// coerceString transforma qualquer valor em texto. Valores ausentes viram
// vazio, não o nome do tipo.
func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
