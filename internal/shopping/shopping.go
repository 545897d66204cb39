// Package shopping owns the daily shopping list: the only client-side state
// that survives restarts. The list is scoped to a calendar day; a stored
// list from a previous day is discarded wholesale on load.
package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/format"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/store"
)

var (
	ErrEmptyItem    = errors.New("item text is empty")
	ErrInvalidTotal = errors.New("total must be a positive amount")
)

// ConfirmationTTL is how long the "spesa aggiunta" confirmation stays
// visible before the caller clears it.
const ConfirmationTTL = 4 * time.Second

// ExpenseCreator is the slice of the expenses API the complete flow needs.
type ExpenseCreator interface {
	Create(ctx context.Context, payload api.ExpensePayload) (*model.Expense, error)
}

// Service keeps the in-memory list and writes every mutation through to the
// local store under today's day key.
type Service struct {
	store    *store.ShoppingStore
	expenses ExpenseCreator
	log      *slog.Logger
	now      func() time.Time

	items []model.ShoppingItem
}

func NewService(st *store.ShoppingStore, expenses ExpenseCreator, log *slog.Logger) *Service {
	return &Service{store: st, expenses: expenses, log: log, now: time.Now}
}

// Load reads the stored list. A list stored under a different day, or an
// unreadable payload, yields an empty list; no history is kept.
func (s *Service) Load() error {
	stored, err := s.store.Load()
	if err != nil {
		s.log.Warn("stored shopping list unreadable, starting empty", "error", err)
		s.items = nil
		return nil
	}
	if stored == nil || stored.Date != format.DayKey(s.now()) {
		s.items = nil
		return nil
	}
	s.items = stored.Items
	return nil
}

// Items returns the list with unchecked entries first, preserving insertion
// order within each half.
func (s *Service) Items() []model.ShoppingItem {
	ordered := make([]model.ShoppingItem, 0, len(s.items))
	for _, item := range s.items {
		if !item.Checked {
			ordered = append(ordered, item)
		}
	}
	for _, item := range s.items {
		if item.Checked {
			ordered = append(ordered, item)
		}
	}
	return ordered
}

// Counts returns how many items are still to buy and how many are checked.
func (s *Service) Counts() (unchecked, checked int) {
	for _, item := range s.items {
		if item.Checked {
			checked++
		} else {
			unchecked++
		}
	}
	return unchecked, checked
}

func (s *Service) Add(text string) (*model.ShoppingItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyItem
	}
	item := model.ShoppingItem{ID: uuid.NewString(), Text: text}
	s.items = append(s.items, item)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Toggle(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Checked = !s.items[i].Checked
			return s.persist()
		}
	}
	return fmt.Errorf("shopping item %s not found", id)
}

func (s *Service) Remove(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return fmt.Errorf("shopping item %s not found", id)
}

func (s *Service) Clear() error {
	s.items = nil
	return s.persist()
}

// Complete records the finished shopping run as one CUSTOM expense in
// category "spesa", named after today's date with an optional note, then
// removes only the checked items; unchecked ones carry over to the next
// session. Returns the confirmation message to show.
func (s *Service) Complete(ctx context.Context, totalInput, note string) (string, error) {
	amount, err := format.ParseAmount(totalInput)
	if err != nil || amount <= 0 {
		return "", ErrInvalidTotal
	}

	today := s.now()
	name := "Spesa del " + format.Date(today)
	if n := strings.TrimSpace(note); n != "" {
		name += " — " + n
	}

	active := true
	_, err = s.expenses.Create(ctx, api.ExpensePayload{
		Name:      name,
		Amount:    amount,
		Frequency: model.FrequencyCustom,
		Category:  "spesa",
		Date:      format.DayKey(today),
		IsActive:  &active,
	})
	if err != nil {
		return "", err
	}

	var kept []model.ShoppingItem
	for _, item := range s.items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if err := s.persist(); err != nil {
		return "", err
	}

	s.log.Info("shopping completed", "amount", amount, "kept", len(kept))
	return fmt.Sprintf("Spesa di €%.2f aggiunta correttamente!", amount), nil
}

func (s *Service) persist() error {
	return s.store.Save(s.items, format.DayKey(s.now()))
}
