package params

// TrackEventParams contains a storefront analytics event
type TrackEventParams struct {
	Event      string
	SessionID  string
	Page       string
	Referrer   string
	Properties map[string]interface{}
}
