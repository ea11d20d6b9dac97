package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

// ErrClassAlreadySelected reports a duplicate cart-add for the same id.
var ErrClassAlreadySelected = errors.New("class already selected")

// CartStore is the data access the cart service needs.
type CartStore interface {
	Insert(ctx context.Context, s *model.CartSelection) error
	GetByID(ctx context.Context, id string) (*model.CartSelection, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartSelection, error)
	ListAll(ctx context.Context) ([]model.CartSelection, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// CartService handles pending enrollment selections.
type CartService struct {
	carts CartStore
}

// NewCartService creates a new CartService.
func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// Select adds a selection unless its id is already present. The existence
// check is a preceding read; the primary key backstops the duplicate race.
func (s *CartService) Select(ctx context.Context, sel *model.CartSelection) error {
	_, err := s.carts.GetByID(ctx, sel.ID)
	if err == nil {
		return ErrClassAlreadySelected
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return s.carts.Insert(ctx, sel)
}

// GetByID returns one selection, or pgx.ErrNoRows when absent.
func (s *CartService) GetByID(ctx context.Context, id string) (*model.CartSelection, error) {
	return s.carts.GetByID(ctx, id)
}

// ListByEmail returns one user's cart.
func (s *CartService) ListByEmail(ctx context.Context, email string) ([]model.CartSelection, error) {
	return s.carts.ListByEmail(ctx, email)
}

// ListAll returns every pending selection.
func (s *CartService) ListAll(ctx context.Context) ([]model.CartSelection, error) {
	return s.carts.ListAll(ctx)
}

// Delete removes a selection, reporting whether it existed.
func (s *CartService) Delete(ctx context.Context, id string) (bool, error) {
	return s.carts.DeleteByID(ctx, id)
}
