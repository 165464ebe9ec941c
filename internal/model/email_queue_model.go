package model

import "time"

// EmailStatus is the delivery state of one queued notification attempt.
type EmailStatus string

const (
	EmailPending     EmailStatus = "pending"
	EmailSent        EmailStatus = "sent"
	EmailFailed      EmailStatus = "failed"
	EmailError       EmailStatus = "error"
	EmailRetryFailed EmailStatus = "retry_failed"
)

// EmailTemplateLine is one order line carried in the template data, enough
// to re-render the confirmation without the original order.
type EmailTemplateLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// EmailTemplateData is the minimal order view stored with a queue entry so
// a retry can rebuild subject and body on its own.
type EmailTemplateData struct {
	OrderNumber    string              `json:"orderNumber"`
	CustomerName   string              `json:"customerName"`
	EstimatedTotal float64             `json:"estimatedTotal"`
	TotalWeightKg  float64             `json:"totalWeightKg"`
	Lines          []EmailTemplateLine `json:"lines"`
}

// EmailQueueEntry records every notification attempt and its outcome.
// Entries are never deleted automatically; the admin dashboard reads them
// to drive manual retries.
type EmailQueueEntry struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	OrderNumber   string            `json:"order_number"`
	Status        EmailStatus       `json:"status"`
	RetryCount    int               `json:"retry_count"`
	LastRetryAt   *time.Time        `json:"last_retry_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	TemplateData  EmailTemplateData `json:"template_data"`
}
