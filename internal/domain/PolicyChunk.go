package domain

import "time"

// PolicyChunk é um trecho do documento de política da empresa com o seu
// embedding, usado na busca por similaridade durante a geração de campanhas
type PolicyChunk struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Seq       int       `json:"seq"`
	Filename  string    `json:"filename"`
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
	CreatedAt time.Time `json:"created_at"`
}

// PolicyMatch é um trecho retornado pela busca por similaridade
type PolicyMatch struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// PolicyStatus indica se o usuário tem um documento de política carregado
type PolicyStatus struct {
	HasPolicy bool   `json:"has_policy"`
	UserID    string `json:"user_id"`
}
