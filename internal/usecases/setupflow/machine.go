package setupflow

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dotlerai-cell/dotler-web/internal/domain"
)

// Chaves dos valores coletados durante a conversa
const (
	DataKeyUsername       = domain.SetupDataKeyUsername
	DataKeyDeveloperToken = domain.SetupDataKeyDeveloperToken
	DataKeyManagerID      = domain.SetupDataKeyManagerID
	DataKeyCampaignID     = domain.SetupDataKeyCampaignID
)

// Respostas do assistente em cada etapa da coleta
const (
	replyGreeting = "Nice to meet you, %s! 👋\n\n" +
		"Now, I need your **Google Ads Developer Token**. This is a special key that lets us access your Google Ads data.\n\n" +
		"**Where to find it:**\n" +
		"1. Go to Google Ads\n" +
		"2. Click Tools & Settings → API Center\n" +
		"3. Copy your Developer Token\n\n" +
		"Paste it here, or type 'help' if you need more guidance."

	replyDeveloperTokenHelp = "**How to get your Developer Token:**\n\n" +
		"1. Sign in to Google Ads\n" +
		"2. Click the tools icon (🔧) in the top right\n" +
		"3. Under 'Setup', click 'API Center'\n" +
		"4. You'll see your Developer Token there\n" +
		"5. Click 'Copy' and paste it here\n\n" +
		"**Note:** If you don't see it, you may need to request access first. This can take 24-48 hours for approval.\n\n" +
		"Ready to paste your token?"

	replyTokenSaved = "Great! Token saved. ✅\n\n" +
		"Next, I need your **Manager Account ID** (also called MCC ID or Login Customer ID).\n\n" +
		"**What is this?**\n" +
		"This is the ID of the Google Ads account that manages your campaigns. If you only have one account, use that account's ID.\n\n" +
		"**Where to find it:**\n" +
		"Look at the top right of your Google Ads dashboard - you'll see a number like `123-456-7890`.\n\n" +
		"Type 'help' if you need more info, or paste your Manager ID:"

	replyManagerHelp = "**About Manager Account ID:**\n\n" +
		"This is the customer ID that has access to your campaigns.\n\n" +
		"- If you have a **Manager Account (MCC)**: Use that ID\n" +
		"- If you have a **single account**: Use your account's customer ID\n\n" +
		"**Where to find it:**\n" +
		"1. Go to Google Ads\n" +
		"2. Look at the top right corner\n" +
		"3. You'll see a number like `123-456-7890`\n" +
		"4. That's your customer ID!\n\n" +
		"Paste it here:"

	replyManagerSaved = "Perfect! Manager ID saved. ✅\n\n" +
		"Last step! I need the **Campaign Account ID** - this is the specific account whose campaigns you want to analyze.\n\n" +
		"**Important:**\n" +
		"- This might be the same as your Manager ID (if you only have one account)\n" +
		"- Or it could be a different account that your Manager Account has access to\n\n" +
		"**Format:** `123-456-7890`\n\n" +
		"Type 'same' if it's the same as your Manager ID, or paste the Campaign Account ID:"

	replyCampaignHelp = "**About Campaign Account ID:**\n\n" +
		"This is the account that actually runs your ad campaigns.\n\n" +
		"- If you only have **one Google Ads account**: Type 'same'\n" +
		"- If your Manager Account manages **multiple accounts**: Paste the specific account ID you want to analyze\n\n" +
		"**Where to find it:**\n" +
		"1. Go to Google Ads\n" +
		"2. If you see multiple accounts, select the one you want\n" +
		"3. The ID is shown in the top right (format: `123-456-7890`)\n\n" +
		"Type 'same' or paste the ID:"

	replySetupComplete = "🎉 **Setup Complete!**\n\n" +
		"Here's what I've collected:\n\n" +
		"✅ Username: %s\n" +
		"✅ Developer Token: %s...\n" +
		"✅ Manager ID: %s\n" +
		"✅ Campaign ID: %s\n\n" +
		"I'm now saving this configuration and fetching your campaign data. This may take a moment..."

	replyAlreadyComplete = "Your setup is already complete! You can now access your dashboard."
)

// Padrões de saudação usados para extrair o nome de usuário de texto livre
var usernamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my\s+(?:name|username)\s+is\s+(\w+)`),
	regexp.MustCompile(`(?i)call\s+me\s+(\w+)`),
	regexp.MustCompile(`(?i)i'm\s+(\w+)`),
	regexp.MustCompile(`(?i)^(\w+)$`),
}

// Advance processa uma mensagem na etapa atual da sessão, atualizando
// etapa e dados coletados, e devolve a resposta do assistente junto com a
// indicação de conclusão. A função não faz I/O: histórico e persistência
// são responsabilidade do chamador.
//
// A etapa de username nunca fica parada: qualquer mensagem, inclusive
// 'help', vira o nome extraído. As demais etapas aceitam 'help' para
// repetir a orientação sem avançar.
func Advance(session *domain.SetupSession, message string) (string, bool) {
	if session.Data == nil {
		session.Data = make(map[string]string)
	}

	switch session.Step {
	case domain.StepUsername:
		username := extractValue(message)
		session.Data[DataKeyUsername] = username
		session.Step = domain.StepDeveloperToken
		return fmt.Sprintf(replyGreeting, username), false

	case domain.StepDeveloperToken:
		if strings.ToLower(message) == "help" {
			return replyDeveloperTokenHelp, false
		}
		session.Data[DataKeyDeveloperToken] = strings.TrimSpace(message)
		session.Step = domain.StepManagerID
		return replyTokenSaved, false

	case domain.StepManagerID:
		if strings.ToLower(message) == "help" {
			return replyManagerHelp, false
		}
		session.Data[DataKeyManagerID] = stripDashes(strings.TrimSpace(message))
		session.Step = domain.StepCampaignID
		return replyManagerSaved, false

	case domain.StepCampaignID:
		switch strings.ToLower(message) {
		case "same":
			session.Data[DataKeyCampaignID] = session.Data[DataKeyManagerID]
		case "help":
			return replyCampaignHelp, false
		default:
			session.Data[DataKeyCampaignID] = stripDashes(strings.TrimSpace(message))
		}

		session.Step = domain.StepComplete
		return completionSummary(session.Data), true

	case domain.StepComplete:
		return replyAlreadyComplete, true
	}

	// Etapa desconhecida: recomeça a coleta preservando o que já existe
	session.Step = domain.StepUsername
	return Advance(session, message)
}

// extractValue tira um token curto de uma frase de apresentação, caindo
// para a mensagem inteira (sem espaços nas pontas) quando nenhum padrão
// casa
func extractValue(text string) string {
	text = strings.TrimSpace(text)

	for _, pattern := range usernamePatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return match[1]
		}
	}

	return text
}

func completionSummary(data map[string]string) string {
	return fmt.Sprintf(replySetupComplete,
		data[DataKeyUsername],
		truncateRunes(data[DataKeyDeveloperToken], 10),
		data[DataKeyManagerID],
		data[DataKeyCampaignID],
	)
}

func stripDashes(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
