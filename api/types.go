// Package api holds the request and response types of the HTTP surface.
package api

import "time"

// TicketLine is one (category, count) pair of a purchase request.
type TicketLine struct {
	Category string `json:"category" validate:"required,ticket_category"`
	Count    int    `json:"count" validate:"required,gt=0"`
}

// PurchaseRequest is the body of POST /purchases. Email is optional; when
// present a receipt is sent there after a successful purchase.
type PurchaseRequest struct {
	AccountID int64        `json:"accountId" validate:"required"`
	Tickets   []TicketLine `json:"tickets" validate:"required,min=1,dive"`
	Email     *string      `json:"email,omitempty" validate:"omitempty,email"`
}

// PurchaseResponse confirms a completed purchase.
type PurchaseResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	TotalAmount   int    `json:"totalAmount"`
	TotalSeats    int    `json:"totalSeats"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
