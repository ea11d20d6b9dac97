package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harmonia/academy-backend/internal/model"
)

type memCartStore struct {
	selections map[string]*model.CartSelection
}

func newMemCartStore() *memCartStore {
	return &memCartStore{selections: make(map[string]*model.CartSelection)}
}

func (s *memCartStore) Insert(_ context.Context, sel *model.CartSelection) error {
	s.selections[sel.ID] = sel
	return nil
}

func (s *memCartStore) GetByID(_ context.Context, id string) (*model.CartSelection, error) {
	sel, ok := s.selections[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return sel, nil
}

func (s *memCartStore) ListByEmail(_ context.Context, email string) ([]model.CartSelection, error) {
	var out []model.CartSelection
	for _, sel := range s.selections {
		if sel.Email == email {
			out = append(out, *sel)
		}
	}
	return out, nil
}

func (s *memCartStore) ListAll(_ context.Context) ([]model.CartSelection, error) {
	var out []model.CartSelection
	for _, sel := range s.selections {
		out = append(out, *sel)
	}
	return out, nil
}

func (s *memCartStore) DeleteByID(_ context.Context, id string) (bool, error) {
	if _, ok := s.selections[id]; !ok {
		return false, nil
	}
	delete(s.selections, id)
	return true, nil
}

func TestSelectStoresNewSelection(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)

	sel := &model.CartSelection{
		ID:      "sel-1",
		ClassID: uuid.New(),
		Email:   "a@x.com",
		Title:   "Beginner Violin",
		Price:   89.99,
	}
	if err := svc.Select(context.Background(), sel); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(store.selections) != 1 {
		t.Errorf("stored selections = %d, want 1", len(store.selections))
	}
}

func TestSelectRejectsDuplicateID(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)

	sel := &model.CartSelection{ID: "sel-1", ClassID: uuid.New(), Email: "a@x.com", Price: 10}
	if err := svc.Select(context.Background(), sel); err != nil {
		t.Fatalf("first Select: %v", err)
	}

	again := &model.CartSelection{ID: "sel-1", ClassID: uuid.New(), Email: "b@x.com", Price: 10}
	err := svc.Select(context.Background(), again)
	if !errors.Is(err, ErrClassAlreadySelected) {
		t.Fatalf("second Select err = %v, want ErrClassAlreadySelected", err)
	}

	if len(store.selections) != 1 {
		t.Errorf("stored selections = %d, want 1", len(store.selections))
	}
	if store.selections["sel-1"].Email != "a@x.com" {
		t.Error("duplicate select must not overwrite the original entry")
	}
}

func TestSelectPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewCartService(failingCartStore{err: boom})

	err := svc.Select(context.Background(), &model.CartSelection{ID: "sel-1"})
	if !errors.Is(err, boom) {
		t.Fatalf("Select err = %v, want the store error", err)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	store := newMemCartStore()
	svc := NewCartService(store)

	if err := svc.Select(context.Background(), &model.CartSelection{ID: "sel-1", Price: 10}); err != nil {
		t.Fatalf("Select: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), "sel-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true for an existing selection")
	}

	deleted, err = svc.Delete(context.Background(), "sel-1")
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for a missing selection")
	}
}

// failingCartStore errors on the existence read, simulating a backend
// outage mid-Select.
type failingCartStore struct {
	err error
}

func (s failingCartStore) Insert(context.Context, *model.CartSelection) error { return s.err }
func (s failingCartStore) GetByID(context.Context, string) (*model.CartSelection, error) {
	return nil, s.err
}
func (s failingCartStore) ListByEmail(context.Context, string) ([]model.CartSelection, error) {
	return nil, s.err
}
func (s failingCartStore) ListAll(context.Context) ([]model.CartSelection, error) {
	return nil, s.err
}
func (s failingCartStore) DeleteByID(context.Context, string) (bool, error) { return false, s.err }
