package controller

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/database"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/shopping"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/store"
)

func newShoppingController(t *testing.T, handler http.Handler) *ShoppingController {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	expenses := api.NewExpensesService(newTestClient(t, handler))
	svc := shopping.NewService(store.NewShoppingStore(db), expenses, slog.Default())
	return NewShoppingController(svc, slog.Default())
}

func TestShoppingInvalidTotalIsFieldError(t *testing.T) {
	requests := 0
	c := newShoppingController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	c.OpenComplete()
	fe, err := c.Complete(context.Background(), "0", "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, ok := fe["total"]; !ok {
		t.Errorf("expected total field error, got %v", fe)
	}
	if requests != 0 {
		t.Errorf("invalid total reached the network: %d requests", requests)
	}
	if !c.CompleteOpen() {
		t.Error("dialog should stay open")
	}
}

func TestShoppingConfirmationSelfClears(t *testing.T) {
	c := newShoppingController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"id": "e1"})
	}))
	now := time.Date(2025, 8, 31, 18, 0, 0, 0, time.Local)
	c.now = func() time.Time { return now }

	c.OpenComplete()
	if _, err := c.Complete(context.Background(), "25,90", ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if c.CompleteOpen() {
		t.Error("dialog should close on success")
	}
	if c.Message() != "Spesa di €25.90 aggiunta correttamente!" {
		t.Errorf("message = %q", c.Message())
	}

	now = now.Add(shopping.ConfirmationTTL + time.Second)
	if c.Message() != "" {
		t.Errorf("message should self-clear, got %q", c.Message())
	}
}
