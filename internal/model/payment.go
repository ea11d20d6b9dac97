package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only record of a completed charge. It is never
// updated or deleted; enrollment and history views re-query by email.
type Payment struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	ClassID       uuid.UUID `json:"class_id"`
	CartID        string    `json:"cart_id"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}

// CreateIntentRequest is the payload for POST /create-payment-intent.
// ClassPrice is in major currency units.
type CreateIntentRequest struct {
	ClassPrice float64 `json:"classPrice" binding:"required,gt=0"`
}

// FinalizePaymentRequest is the payload for POST /payment.
type FinalizePaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	ClassID       string  `json:"class_id" binding:"required,uuid"`
	CartID        string  `json:"cart_id" binding:"required,min=1,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transaction_id" binding:"required,min=1"`
}
