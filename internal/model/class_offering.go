package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferingStatus is the review state of a class offering.
type OfferingStatus string

const (
	StatusPending  OfferingStatus = "pending"
	StatusApproved OfferingStatus = "approved"
	StatusDenied   OfferingStatus = "denied"
)

// ClassOffering represents a class listed on the platform.
// AvailableSeats never goes below zero; the seat decrement is conditional.
type ClassOffering struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	InstructorName  string         `json:"instructor_name"`
	InstructorEmail string         `json:"instructor_email"`
	ImageURL        string         `json:"image_url,omitempty"`
	Price           float64        `json:"price"`
	AvailableSeats  int            `json:"available_seats"`
	Status          OfferingStatus `json:"status"`
	Feedback        *string        `json:"feedback,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CreateOfferingRequest is the payload for creating a class offering.
type CreateOfferingRequest struct {
	Title           string  `json:"title" binding:"required,min=2,max=200"`
	InstructorName  string  `json:"instructor_name" binding:"required,min=2,max=100"`
	InstructorEmail string  `json:"instructor_email" binding:"required,email"`
	ImageURL        string  `json:"image_url" binding:"omitempty,url"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	AvailableSeats  int     `json:"available_seats" binding:"required,gte=0"`
}

// UpdateOfferingRequest is the payload for the upsert-by-id route.
type UpdateOfferingRequest struct {
	Title           string  `json:"title" binding:"required,min=2,max=200"`
	InstructorName  string  `json:"instructor_name" binding:"required,min=2,max=100"`
	InstructorEmail string  `json:"instructor_email" binding:"required,email"`
	ImageURL        string  `json:"image_url" binding:"omitempty,url"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	AvailableSeats  int     `json:"available_seats" binding:"required,gte=0"`
}

// SetStatusRequest approves or denies an offering.
type SetStatusRequest struct {
	Status OfferingStatus `json:"status" binding:"required,oneof=pending approved denied"`
}

// SetFeedbackRequest attaches admin feedback to an offering.
type SetFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,min=1"`
}

// SeatUpdate is published on the seat channel after a successful decrement.
type SeatUpdate struct {
	ClassID        uuid.UUID `json:"class_id"`
	AvailableSeats int       `json:"available_seats"`
}
