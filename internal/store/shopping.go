package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// ShoppingStore persists the daily shopping list as one JSON row keyed by a
// yyyy-mm-dd day. Day-boundary invalidation is the caller's rule; the store
// only reads and writes the payload verbatim.
type ShoppingStore struct {
	db *sql.DB
}

func NewShoppingStore(db *sql.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

// Save overwrites the stored list wholesale.
func (s *ShoppingStore) Save(items []model.ShoppingItem, day string) error {
	if items == nil {
		items = []model.ShoppingItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode shopping items: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO shopping_list (id, day, items, updated_at) VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET day = excluded.day, items = excluded.items, updated_at = CURRENT_TIMESTAMP`,
		day, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("save shopping list: %w", err)
	}
	return nil
}

// Load returns the stored list, or nil when nothing is stored.
func (s *ShoppingStore) Load() (*model.StoredShoppingList, error) {
	var day, encoded string
	err := s.db.QueryRow(`SELECT day, items FROM shopping_list WHERE id = 1`).Scan(&day, &encoded)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load shopping list: %w", err)
	}

	var items []model.ShoppingItem
	if err := json.Unmarshal([]byte(encoded), &items); err != nil {
		return nil, fmt.Errorf("decode shopping items: %w", err)
	}
	return &model.StoredShoppingList{Items: items, Date: day}, nil
}

func (s *ShoppingStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM shopping_list WHERE id = 1`); err != nil {
		return fmt.Errorf("clear shopping list: %w", err)
	}
	return nil
}
