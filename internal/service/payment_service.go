package service

import (
	"context"
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/gateway"
	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/repository"
)

// PaymentStore appends payment records.
type PaymentStore interface {
	Insert(ctx context.Context, p *model.Payment) error
}

// SeatStore performs the store-side conditional seat decrement.
type SeatStore interface {
	DecrementSeat(ctx context.Context, id uuid.UUID) (remaining int, decremented bool, err error)
}

// CartRemover deletes a finalized selection from the cart.
type CartRemover interface {
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// FinalizeInput carries everything a completed gateway charge needs to
// become durable state.
type FinalizeInput struct {
	Email         string
	ClassID       uuid.UUID
	CartID        string
	Amount        float64
	TransactionID string
}

// FinalizeResult reports each finalization step individually so callers
// can detect partial completion.
type FinalizeResult struct {
	PaymentID       uuid.UUID            `json:"payment_id"`
	Inserted        bool                 `json:"inserted"`
	SeatDecremented bool                 `json:"seat_decremented"`
	CartDeleted     bool                 `json:"cart_deleted"`
	Mode            config.FinalizerMode `json:"mode"`
}

// PaymentService creates gateway charges and finalizes completed payments.
//
// In legacy mode the three finalization writes are independent and there
// is no rollback: a failed seat decrement or cart delete never undoes the
// payment insert. Atomic mode wraps the same statements in one
// transaction. In both modes a seat decrement that finds no seats left is
// a recorded no-op, not an error: the payment stays on file with
// seat_decremented:false.
type PaymentService struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	payments PaymentStore
	seats    SeatStore
	carts    CartRemover
	gw       gateway.PaymentGateway
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewPaymentService creates a new PaymentService. pool is only used by the
// atomic finalizer mode; rdb feeds the seat-update channel and may be nil.
func NewPaymentService(
	cfg *config.Config,
	pool *pgxpool.Pool,
	payments PaymentStore,
	seats SeatStore,
	carts CartRemover,
	gw gateway.PaymentGateway,
	rdb *redis.Client,
	log zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		cfg:      cfg,
		pool:     pool,
		payments: payments,
		seats:    seats,
		carts:    carts,
		gw:       gw,
		rdb:      rdb,
		log:      log.With().Str("component", "payment_service").Logger(),
	}
}

// MinorUnits converts a price in major currency units to the gateway's
// integer minor units, rounding half away from zero to the nearest unit
// (49.99 -> 4999).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent requests a charge for the given price and returns the
// gateway's client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	return s.gw.CreateIntent(ctx, MinorUnits(price), s.cfg.Currency)
}

// Finalize converts a completed charge into durable state. A non-nil error
// means a store-level failure; the returned result still reports any steps
// that completed before it.
func (s *PaymentService) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	if s.cfg.FinalizerMode == config.FinalizerAtomic && s.pool != nil {
		return s.finalizeAtomic(ctx, in)
	}

	res, remaining, err := s.finalizeSteps(ctx, in, s.payments, s.seats, s.carts, config.FinalizerLegacy)
	if err == nil && res.SeatDecremented {
		s.publishSeatUpdate(ctx, in.ClassID, remaining)
	}
	return res, err
}

func (s *PaymentService) finalizeAtomic(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	res, remaining, err := s.finalizeSteps(ctx, in,
		repository.NewPaymentRepository(tx),
		repository.NewClassRepository(tx),
		repository.NewCartRepository(tx),
		config.FinalizerAtomic,
	)
	if err != nil {
		return res, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	// Only published once the transaction is durable.
	if res.SeatDecremented {
		s.publishSeatUpdate(ctx, in.ClassID, remaining)
	}
	return res, nil
}

func (s *PaymentService) finalizeSteps(
	ctx context.Context,
	in FinalizeInput,
	payments PaymentStore,
	seats SeatStore,
	carts CartRemover,
	mode config.FinalizerMode,
) (*FinalizeResult, int, error) {
	res := &FinalizeResult{Mode: mode}

	p := &model.Payment{
		Email:         in.Email,
		ClassID:       in.ClassID,
		CartID:        in.CartID,
		Amount:        in.Amount,
		TransactionID: in.TransactionID,
	}
	if err := payments.Insert(ctx, p); err != nil {
		return res, 0, err
	}
	res.PaymentID = p.ID
	res.Inserted = true

	remaining, decremented, err := seats.DecrementSeat(ctx, in.ClassID)
	if err != nil {
		s.log.Error().Err(err).Str("class_id", in.ClassID.String()).
			Msg("seat decrement failed after payment insert")
		return res, 0, err
	}
	res.SeatDecremented = decremented
	if !decremented {
		s.log.Warn().Str("class_id", in.ClassID.String()).
			Str("email", in.Email).
			Msg("payment recorded for a class with no seats left")
	}

	deleted, err := carts.DeleteByID(ctx, in.CartID)
	if err != nil {
		s.log.Error().Err(err).Str("cart_id", in.CartID).
			Msg("cart delete failed after payment insert")
		return res, remaining, err
	}
	res.CartDeleted = deleted

	return res, remaining, nil
}

// publishSeatUpdate fans the new seat count out to monitor subscribers and
// drops the catalog cache. Best effort on both counts.
func (s *PaymentService) publishSeatUpdate(ctx context.Context, classID uuid.UUID, remaining int) {
	if s.rdb == nil {
		return
	}

	b, err := json.Marshal(model.SeatUpdate{ClassID: classID, AvailableSeats: remaining})
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, config.CacheKey.SeatChannel(), b).Err(); err != nil {
		s.log.Warn().Err(err).Msg("seat update publish failed")
	}
	if err := s.rdb.Del(ctx, config.CacheKey.CatalogKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
