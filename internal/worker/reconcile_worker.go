package worker

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/harmonia/academy-backend/internal/repository"
)

// ReconcileWorker periodically scans for cart selections that a finalized
// payment should have removed. The legacy finalizer makes no atomicity
// promise, so a crash between its second and third write leaves the cart
// row behind; this worker surfaces those leftovers in the logs.
type ReconcileWorker struct {
	carts    *repository.CartRepository
	log      zerolog.Logger
	interval time.Duration
}

// NewReconcileWorker creates a new ReconcileWorker.
func NewReconcileWorker(pool *pgxpool.Pool, log zerolog.Logger, interval time.Duration) *ReconcileWorker {
	return &ReconcileWorker{
		carts:    repository.NewCartRepository(pool),
		log:      log.With().Str("component", "reconcile_worker").Logger(),
		interval: interval,
	}
}

// Start runs the scan loop until the context is cancelled.
func (w *ReconcileWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("ReconcileWorker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("ReconcileWorker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *ReconcileWorker) scan(ctx context.Context) {
	orphaned, err := w.carts.ListOrphaned(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("orphaned cart scan failed")
		return
	}
	if len(orphaned) == 0 {
		return
	}

	for _, sel := range orphaned {
		w.log.Warn().
			Str("cart_id", sel.ID).
			Str("email", sel.Email).
			Str("class_id", sel.ClassID.String()).
			Msg("cart selection survived a finalized payment")
	}
	w.log.Warn().Int("count", len(orphaned)).Msg("orphaned cart selections found")
}
