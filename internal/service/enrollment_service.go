package service

import (
	"context"

	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/repository"
)

// EnrollmentService serves the payment-derived read views. "Enrolled" and
// "payment history" are both re-queries of the append-only payments table.
type EnrollmentService struct {
	paymentRepo *repository.PaymentRepository
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(paymentRepo *repository.PaymentRepository) *EnrollmentService {
	return &EnrollmentService{paymentRepo: paymentRepo}
}

// Enrolled returns a user's payments in insertion order.
func (s *EnrollmentService) Enrolled(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.ListByEmail(ctx, email)
}

// History returns a user's payments newest first.
func (s *EnrollmentService) History(ctx context.Context, email string) ([]model.Payment, error) {
	return s.paymentRepo.ListHistoryByEmail(ctx, email)
}

// AllPayments returns every payment; clients count per class as a
// popularity proxy.
func (s *EnrollmentService) AllPayments(ctx context.Context) ([]model.Payment, error) {
	return s.paymentRepo.ListAll(ctx)
}
