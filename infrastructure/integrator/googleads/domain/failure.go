package adsdomain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError é o envelope de erro devolvido pela API REST do Google Ads
type APIError struct {
	Error *ErrorStatus `json:"error"`
}

type ErrorStatus struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Status  string         `json:"status"`
	Details []*ErrorDetail `json:"details"`
}

type ErrorDetail struct {
	Type      string            `json:"@type"`
	Errors    []*GoogleAdsError `json:"errors"`
	RequestID string            `json:"requestId"`
}

type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
	Location  *ErrorLocation    `json:"location"`
}

type ErrorLocation struct {
	FieldPathElements []*FieldPathElement `json:"fieldPathElements"`
}

type FieldPathElement struct {
	FieldName string      `json:"fieldName"`
	Index     json.Number `json:"index,omitempty"`
}

// FieldPath monta o caminho do campo que causou o erro
func (e *GoogleAdsError) FieldPath() string {
	if e.Location == nil || len(e.Location.FieldPathElements) == 0 {
		return "unknown"
	}

	names := make([]string, 0, len(e.Location.FieldPathElements))
	for _, element := range e.Location.FieldPathElements {
		names = append(names, element.FieldName)
	}

	return strings.Join(names, " > ")
}

// FailureError é devolvido quando a plataforma recusa uma requisição,
// preservando os erros estruturados para o chamador
type FailureError struct {
	StatusCode int
	Status     *ErrorStatus
}

func (e *FailureError) Error() string {
	if e.Status != nil && e.Status.Message != "" {
		return fmt.Sprintf("requisição recusada pelo Google Ads: %s", e.Status.Message)
	}
	return fmt.Sprintf("requisição recusada pelo Google Ads com status %d", e.StatusCode)
}

// AdsErrors devolve os erros estruturados presentes nos detalhes
func (e *FailureError) AdsErrors() []*GoogleAdsError {
	if e.Status == nil {
		return nil
	}

	errors := make([]*GoogleAdsError, 0)
	for _, detail := range e.Status.Details {
		errors = append(errors, detail.Errors...)
	}

	return errors
}
