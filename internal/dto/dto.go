package dto

type WebhookData struct {
	ID *int `json:"id"`
}

type WebhookRequest struct {
	Data *WebhookData `json:"data"`
}

// Envelope is the fixed two-field response body returned for every
// webhook, success or failure.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}
