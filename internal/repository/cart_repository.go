package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

// CartRepository handles cart selection data access.
type CartRepository struct {
	db DBTX
}

// NewCartRepository creates a new CartRepository.
func NewCartRepository(db DBTX) *CartRepository {
	return &CartRepository{db: db}
}

const cartColumns = `id, class_id, email, title, image_url, price, created_at`

func scanSelection(row pgx.Row, s *model.CartSelection) error {
	return row.Scan(&s.ID, &s.ClassID, &s.Email, &s.Title, &s.ImageURL, &s.Price, &s.CreatedAt)
}

// Insert stores a new cart selection under its client-supplied id.
func (r *CartRepository) Insert(ctx context.Context, s *model.CartSelection) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO cart_selections (id, class_id, email, title, image_url, price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		s.ID, s.ClassID, s.Email, s.Title, s.ImageURL, s.Price,
	).Scan(&s.CreatedAt)
}

// GetByID retrieves one selection. Returns pgx.ErrNoRows if absent.
func (r *CartRepository) GetByID(ctx context.Context, id string) (*model.CartSelection, error) {
	s := &model.CartSelection{}
	err := scanSelection(r.db.QueryRow(ctx,
		`SELECT `+cartColumns+` FROM cart_selections WHERE id = $1`, id), s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListByEmail retrieves the cart of one user.
func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartSelection, error) {
	return r.list(ctx, `SELECT `+cartColumns+` FROM cart_selections WHERE email = $1 ORDER BY created_at`, email)
}

// ListAll retrieves every cart selection.
func (r *CartRepository) ListAll(ctx context.Context) ([]model.CartSelection, error) {
	return r.list(ctx, `SELECT `+cartColumns+` FROM cart_selections ORDER BY created_at`)
}

// DeleteByID removes a selection, reporting whether a row existed.
func (r *CartRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_selections WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListOrphaned finds selections that a finalized payment should have
// removed. Non-empty results mean a legacy-mode finalization lost its
// third step.
func (r *CartRepository) ListOrphaned(ctx context.Context) ([]model.CartSelection, error) {
	return r.list(ctx,
		`SELECT c.id, c.class_id, c.email, c.title, c.image_url, c.price, c.created_at
		 FROM cart_selections c
		 JOIN payments p ON p.cart_id = c.id
		 ORDER BY c.created_at`)
}

func (r *CartRepository) list(ctx context.Context, sql string, args ...any) ([]model.CartSelection, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []model.CartSelection
	for rows.Next() {
		var s model.CartSelection
		if err := scanSelection(rows, &s); err != nil {
			return nil, err
		}
		selections = append(selections, s)
	}
	return selections, rows.Err()
}
