package requests

// TrackEventRequest represents a storefront analytics event
type TrackEventRequest struct {
	Event      string                 `json:"event"`
	SessionID  string                 `json:"session_id"`
	Page       string                 `json:"page,omitempty"`
	Referrer   string                 `json:"referrer,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty" swaggertype:"object"`
}
