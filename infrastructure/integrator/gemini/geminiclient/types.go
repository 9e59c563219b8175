package geminiclient

// Corpos de requisição e resposta do endpoint generateContent da API do
// Gemini. Somente os campos usados pela aplicação estão mapeados.

type GenerateContentRequest struct {
	Contents []*Content `json:"contents"`
}

type Content struct {
	Role  string  `json:"role,omitempty"`
	Parts []*Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates []*Candidate `json:"candidates"`
	Error      *APIError    `json:"error,omitempty"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
