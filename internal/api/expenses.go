package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type ExpensesService struct {
	client *Client
}

func NewExpensesService(client *Client) *ExpensesService {
	return &ExpensesService{client: client}
}

type ExpensePayload struct {
	Name      string                 `json:"name"`
	Amount    float64                `json:"amount"`
	Frequency model.ExpenseFrequency `json:"frequency"`
	Category  string                 `json:"category"`
	DayOfMonth *int                  `json:"dayOfMonth,omitempty"`
	Date      string                 `json:"date,omitempty"`
	IsActive  *bool                  `json:"isActive,omitempty"`
}

func (s *ExpensesService) List(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := s.client.get(ctx, "/expenses", nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (s *ExpensesService) Get(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	if err := s.client.get(ctx, "/expenses/"+id, nil, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpensesService) Create(ctx context.Context, payload ExpensePayload) (*model.Expense, error) {
	var expense model.Expense
	if err := s.client.post(ctx, "/expenses", payload, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpensesService) Update(ctx context.Context, id string, payload ExpensePayload) (*model.Expense, error) {
	var expense model.Expense
	if err := s.client.put(ctx, "/expenses/"+id, payload, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/expenses/"+id)
}

// HistoryMonths lists the archived months available in the expense history.
func (s *ExpensesService) HistoryMonths(ctx context.Context) ([]model.HistoryMonth, error) {
	var months []model.HistoryMonth
	if err := s.client.get(ctx, "/expenses/history", nil, &months); err != nil {
		return nil, err
	}
	return months, nil
}

// HistoryExpenses returns the archived expenses of one (month, year).
func (s *ExpensesService) HistoryExpenses(ctx context.Context, month, year int) ([]model.Expense, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(month))
	query.Set("year", strconv.Itoa(year))

	var expenses []model.Expense
	if err := s.client.get(ctx, "/expenses/history", query, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}
