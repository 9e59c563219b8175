package domain

import "time"

// TrackingEvent é um evento bruto enviado pelo script de rastreamento
// embutido nos sites dos clientes. Campos opcionais variam por tipo de
// evento (pageview, click, link_click, page_exit, consent_decision).
type TrackingEvent struct {
	EventID      string    `json:"event_id,omitempty"`
	SiteID       string    `json:"site_id"`
	SessionID    string    `json:"session_id"`
	EventType    string    `json:"event_type"`
	PageURL      string    `json:"page_url"`
	PageTitle    *string   `json:"page_title,omitempty"`
	Referrer     *string   `json:"referrer,omitempty"`
	Timestamp    string    `json:"timestamp"`
	UserAgent    *string   `json:"user_agent,omitempty"`
	ScreenWidth  *int      `json:"screen_width,omitempty"`
	ScreenHeight *int      `json:"screen_height,omitempty"`
	ClickID      *string   `json:"click_id,omitempty"`
	ElementText  *string   `json:"element_text,omitempty"`
	ElementTag   *string   `json:"element_tag,omitempty"`
	LinkURL      *string   `json:"link_url,omitempty"`
	LinkText     *string   `json:"link_text,omitempty"`
	IsExternal   *bool     `json:"is_external,omitempty"`
	TimeOnPage   *int      `json:"time_on_page,omitempty"`
	ConsentGiven *bool     `json:"consent_given,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Tipos de evento reconhecidos pelas agregações de analytics
const (
	EventTypePageview        = "pageview"
	EventTypeClick           = "click"
	EventTypeLinkClick       = "link_click"
	EventTypePageExit        = "page_exit"
	EventTypeConsentDecision = "consent_decision"
)
