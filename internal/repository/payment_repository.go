package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

// PaymentRepository handles payment records. The table is append-only:
// there are no update or delete operations here on purpose.
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, email, class_id, cart_id, amount, transaction_id, paid_at`

func scanPayment(row pgx.Row, p *model.Payment) error {
	return row.Scan(&p.ID, &p.Email, &p.ClassID, &p.CartID, &p.Amount, &p.TransactionID, &p.PaidAt)
}

// Insert appends a payment record.
func (r *PaymentRepository) Insert(ctx context.Context, p *model.Payment) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO payments (email, class_id, cart_id, amount, transaction_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, paid_at`,
		p.Email, p.ClassID, p.CartID, p.Amount, p.TransactionID,
	).Scan(&p.ID, &p.PaidAt)
}

// ListByEmail retrieves a user's payments in insertion order. Backs the
// enrolled-classes view.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE email = $1 ORDER BY paid_at`, email)
}

// ListHistoryByEmail retrieves a user's payments newest first.
func (r *PaymentRepository) ListHistoryByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE email = $1 ORDER BY paid_at DESC`, email)
}

// ListAll retrieves every payment. The popular-classes view counts these
// client-side as a popularity proxy.
func (r *PaymentRepository) ListAll(ctx context.Context) ([]model.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY paid_at`)
}

func (r *PaymentRepository) list(ctx context.Context, sql string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
