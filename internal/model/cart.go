package model

import (
	"time"

	"github.com/google/uuid"
)

// CartSelection is a pending, unpaid intent to enroll in a class.
// The ID is a client-supplied opaque identifier; ClassID is a weak
// reference to the offering (no cascade on either side).
type CartSelection struct {
	ID        string    `json:"id"`
	ClassID   uuid.UUID `json:"class_id"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// SelectClassRequest is the payload for POST /select.
type SelectClassRequest struct {
	ID       string  `json:"id" binding:"required,min=1,max=100"`
	ClassID  string  `json:"class_id" binding:"required,uuid"`
	Email    string  `json:"email" binding:"required,email"`
	Title    string  `json:"title" binding:"required,min=1,max=200"`
	ImageURL string  `json:"image_url" binding:"omitempty,url"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}
