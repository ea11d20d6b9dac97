package router

import (
	"net/http"
	"testing"

	"github.com/harmonia/academy-backend/internal/handler"
)

// The table drives gate application, so these tests pin it down: which
// routes sit behind the auth gate is contract, not an implementation
// detail.

func testHandlers() *Handlers {
	return &Handlers{
		Token:   &handler.TokenHandler{},
		Class:   &handler.ClassHandler{},
		User:    &handler.UserHandler{},
		Cart:    &handler.CartHandler{},
		Payment: &handler.PaymentHandler{},
	}
}

func TestRouteTableGatedSet(t *testing.T) {
	wantGated := map[string]bool{
		http.MethodPost + " /addClass":        true,
		http.MethodPut + " /update/:id":       true,
		http.MethodPut + " /users/:email":     true,
		http.MethodGet + " /users":            true,
		http.MethodPost + " /user":            true,
		http.MethodGet + " /selected/:email":  true,
		http.MethodGet + " /selected":         true,
	}

	for _, r := range Routes(testHandlers()) {
		key := r.Method + " " + r.Path
		if r.Gated != wantGated[key] {
			t.Errorf("%s: gated = %v, want %v", key, r.Gated, wantGated[key])
		}
		delete(wantGated, key)
	}
	for key := range wantGated {
		t.Errorf("expected gated route %s missing from table", key)
	}
}

func TestRouteTableHasNoDuplicates(t *testing.T) {
	routes := Routes(testHandlers())
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		key := r.Method + " " + r.Path
		if seen[key] {
			t.Errorf("duplicate route %s", key)
		}
		seen[key] = true
	}
}

func TestRouteTableIsComplete(t *testing.T) {
	want := []string{
		http.MethodPost + " /jwt",
		http.MethodPost + " /addClass",
		http.MethodGet + " /classes",
		http.MethodGet + " /class/:id",
		http.MethodPatch + " /class/status/:id",
		http.MethodPut + " /class/feedback/:id",
		http.MethodPut + " /update/:id",
		http.MethodPut + " /users/:email",
		http.MethodGet + " /users/:email",
		http.MethodGet + " /users",
		http.MethodPost + " /user",
		http.MethodGet + " /instructors",
		http.MethodGet + " /selected/:email",
		http.MethodGet + " /selected",
		http.MethodPost + " /select",
		http.MethodDelete + " /selectClass/:id",
		http.MethodGet + " /selectClass/:id",
		http.MethodPost + " /create-payment-intent",
		http.MethodPost + " /payment",
		http.MethodGet + " /enrolled/:email",
		http.MethodGet + " /payments/:email",
		http.MethodGet + " /popular-classes",
	}

	routes := Routes(testHandlers())
	if len(routes) != len(want) {
		t.Fatalf("route table has %d entries, want %d", len(routes), len(want))
	}

	have := make(map[string]bool, len(routes))
	for _, r := range routes {
		have[r.Method+" "+r.Path] = true
	}
	for _, key := range want {
		if !have[key] {
			t.Errorf("route %s missing from table", key)
		}
	}
}

func TestEveryRouteHasAHandler(t *testing.T) {
	for _, r := range Routes(testHandlers()) {
		if r.Handle == nil {
			t.Errorf("%s %s has a nil handler", r.Method, r.Path)
		}
	}
}
