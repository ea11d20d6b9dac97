package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/model"
)

type stubPaymentStore struct {
	mu       sync.Mutex
	inserted []*model.Payment
	err      error
}

func (s *stubPaymentStore) Insert(_ context.Context, p *model.Payment) error {
	if s.err != nil {
		return s.err
	}
	p.ID = uuid.New()
	p.PaidAt = time.Now()
	s.mu.Lock()
	s.inserted = append(s.inserted, p)
	s.mu.Unlock()
	return nil
}

// stubSeatStore mimics the store-side conditional decrement: the check
// and the decrement happen under one lock, like the single UPDATE does.
type stubSeatStore struct {
	mu    sync.Mutex
	seats int
}

func (s *stubSeatStore) DecrementSeat(_ context.Context, _ uuid.UUID) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seats > 0 {
		s.seats--
		return s.seats, true, nil
	}
	return 0, false, nil
}

type stubCartStore struct {
	mu      sync.Mutex
	entries map[string]bool
}

func (s *stubCartStore) DeleteByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[id] {
		delete(s.entries, id)
		return true, nil
	}
	return false, nil
}

type stubGateway struct {
	lastAmount   int64
	lastCurrency string
	secret       string
	err          error
}

func (g *stubGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	g.lastAmount = amount
	g.lastCurrency = currency
	if g.err != nil {
		return "", g.err
	}
	return g.secret, nil
}

func newLegacyService(payments *stubPaymentStore, seats *stubSeatStore, carts *stubCartStore, gw *stubGateway) *PaymentService {
	cfg := &config.Config{FinalizerMode: config.FinalizerLegacy, Currency: "usd"}
	return NewPaymentService(cfg, nil, payments, seats, carts, gw, nil, zerolog.Nop())
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{49.99, 4999},
		{10, 1000},
		{0.50, 50},
		{129.50, 12950},
		{74, 7400},
	}
	for _, tc := range cases {
		if got := MinorUnits(tc.price); got != tc.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCreateIntentSendsMinorUnits(t *testing.T) {
	gw := &stubGateway{secret: "pi_secret"}
	svc := newLegacyService(&stubPaymentStore{}, &stubSeatStore{}, &stubCartStore{}, gw)

	secret, err := svc.CreateIntent(context.Background(), 49.99)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if secret != "pi_secret" {
		t.Errorf("secret = %q, want pi_secret", secret)
	}
	if gw.lastAmount != 4999 {
		t.Errorf("gateway amount = %d, want 4999", gw.lastAmount)
	}
	if gw.lastCurrency != "usd" {
		t.Errorf("gateway currency = %q, want usd", gw.lastCurrency)
	}
}

func TestFinalizeHappyPath(t *testing.T) {
	payments := &stubPaymentStore{}
	seats := &stubSeatStore{seats: 1}
	carts := &stubCartStore{entries: map[string]bool{"sel-1": true}}
	svc := newLegacyService(payments, seats, carts, &stubGateway{})

	res, err := svc.Finalize(context.Background(), FinalizeInput{
		Email:         "a@x.com",
		ClassID:       uuid.New(),
		CartID:        "sel-1",
		Amount:        49.99,
		TransactionID: "txn_1",
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !res.Inserted || !res.SeatDecremented || !res.CartDeleted {
		t.Errorf("result = %+v, want all steps true", res)
	}
	if res.PaymentID == uuid.Nil {
		t.Error("expected a payment id")
	}
	if seats.seats != 0 {
		t.Errorf("seats = %d, want 0", seats.seats)
	}
	if len(payments.inserted) != 1 {
		t.Errorf("payments inserted = %d, want 1", len(payments.inserted))
	}
}

func TestFinalizeMissingCartStillRecordsPayment(t *testing.T) {
	payments := &stubPaymentStore{}
	seats := &stubSeatStore{seats: 5}
	carts := &stubCartStore{entries: map[string]bool{}}
	svc := newLegacyService(payments, seats, carts, &stubGateway{})

	res, err := svc.Finalize(context.Background(), FinalizeInput{
		Email:         "a@x.com",
		ClassID:       uuid.New(),
		CartID:        "no-such-selection",
		Amount:        10,
		TransactionID: "txn_2",
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	// The three steps are independent: a missing cart entry does not
	// undo the insert or the decrement.
	if !res.Inserted {
		t.Error("payment insert should have succeeded")
	}
	if !res.SeatDecremented {
		t.Error("seat decrement should have succeeded")
	}
	if res.CartDeleted {
		t.Error("cart delete should report false for a missing selection")
	}
	if len(payments.inserted) != 1 {
		t.Errorf("payments inserted = %d, want 1", len(payments.inserted))
	}
}

func TestFinalizeNoSeatsLeftIsSilentNoOp(t *testing.T) {
	payments := &stubPaymentStore{}
	seats := &stubSeatStore{seats: 0}
	carts := &stubCartStore{entries: map[string]bool{"sel-1": true}}
	svc := newLegacyService(payments, seats, carts, &stubGateway{})

	res, err := svc.Finalize(context.Background(), FinalizeInput{
		Email:         "a@x.com",
		ClassID:       uuid.New(),
		CartID:        "sel-1",
		Amount:        10,
		TransactionID: "txn_3",
	})
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	// Known gap carried over from the source: the payment is recorded
	// even though no seat was taken. The flag is the only signal.
	if !res.Inserted {
		t.Error("payment insert should have succeeded")
	}
	if res.SeatDecremented {
		t.Error("seat decrement should report false with zero seats")
	}
	if seats.seats != 0 {
		t.Errorf("seats = %d, want 0 (never negative)", seats.seats)
	}
}

func TestFinalizeConcurrentSeatInvariant(t *testing.T) {
	const initialSeats = 3
	const attempts = 12

	payments := &stubPaymentStore{}
	seats := &stubSeatStore{seats: initialSeats}
	carts := &stubCartStore{entries: map[string]bool{}}
	svc := newLegacyService(payments, seats, carts, &stubGateway{})

	classID := uuid.New()
	results := make(chan *FinalizeResult, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			res, err := svc.Finalize(context.Background(), FinalizeInput{
				Email:         "a@x.com",
				ClassID:       classID,
				CartID:        uuid.New().String(),
				Amount:        10,
				TransactionID: uuid.New().String(),
			})
			if err != nil {
				t.Errorf("Finalize %d: %v", n, err)
				return
			}
			results <- res
		}(i)
	}
	wg.Wait()
	close(results)

	decrements := 0
	for res := range results {
		if res.SeatDecremented {
			decrements++
		}
	}

	if decrements != initialSeats {
		t.Errorf("successful decrements = %d, want %d", decrements, initialSeats)
	}
	if seats.seats < 0 {
		t.Errorf("seats = %d, must never go negative", seats.seats)
	}
	if len(payments.inserted) != attempts {
		t.Errorf("payments inserted = %d, want %d (every payment is recorded)", len(payments.inserted), attempts)
	}
}
