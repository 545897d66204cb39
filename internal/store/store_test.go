package store

import (
	"testing"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/database"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

func setupTestDB(t *testing.T) (*SessionStore, *ShoppingStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSessionStore(db), NewShoppingStore(db)
}

func TestTokenLifecycle(t *testing.T) {
	ss, _ := setupTestDB(t)

	token, err := ss.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "" {
		t.Errorf("fresh store token = %q, want empty", token)
	}

	if err := ss.SaveToken("abc123"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	token, _ = ss.Token()
	if token != "abc123" {
		t.Errorf("token = %q, want abc123", token)
	}

	// Overwrite, not append
	if err := ss.SaveToken("def456"); err != nil {
		t.Fatalf("save token again: %v", err)
	}
	token, _ = ss.Token()
	if token != "def456" {
		t.Errorf("token = %q, want def456", token)
	}

	if err := ss.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, _ = ss.Token()
	if token != "" {
		t.Errorf("token after clear = %q, want empty", token)
	}
}

func TestShoppingSaveAndLoad(t *testing.T) {
	_, sh := setupTestDB(t)

	stored, err := sh.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored != nil {
		t.Fatalf("fresh store load = %+v, want nil", stored)
	}

	items := []model.ShoppingItem{
		{ID: "1", Text: "latte", Checked: false},
		{ID: "2", Text: "pane", Checked: true},
	}
	if err := sh.Save(items, "2025-08-31"); err != nil {
		t.Fatalf("save: %v", err)
	}

	stored, err = sh.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Date != "2025-08-31" {
		t.Errorf("date = %q, want 2025-08-31", stored.Date)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(stored.Items))
	}
	if stored.Items[0].Text != "latte" || stored.Items[1].Checked != true {
		t.Errorf("items = %+v", stored.Items)
	}
}

func TestShoppingOverwrite(t *testing.T) {
	_, sh := setupTestDB(t)

	if err := sh.Save([]model.ShoppingItem{{ID: "1", Text: "uova"}}, "2025-08-30"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := sh.Save(nil, "2025-08-31"); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	stored, err := sh.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Date != "2025-08-31" {
		t.Errorf("date = %q, want 2025-08-31", stored.Date)
	}
	if len(stored.Items) != 0 {
		t.Errorf("got %d items, want 0", len(stored.Items))
	}
}
