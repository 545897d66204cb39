package controller

import (
	"context"
	"log/slog"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/derive"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// ExpensesController drives the recurring expenses page and its history
// modal.
type ExpensesController struct {
	svc *api.ExpensesService
	log *slog.Logger

	loading  bool
	expenses []model.Expense

	dialog   DialogMode
	selected *model.Expense

	historyMonths   []model.HistoryMonth
	historyExpenses []model.Expense

	message string
}

func NewExpensesController(svc *api.ExpensesService, log *slog.Logger) *ExpensesController {
	return &ExpensesController{svc: svc, log: log}
}

type ExpenseForm struct {
	Name       string
	Amount     string
	Frequency  model.ExpenseFrequency
	Category   string
	DayOfMonth string
	Date       string
	IsActive   bool
}

func (c *ExpensesController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	expenses, err := c.svc.List(ctx)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.expenses = expenses
	c.message = ""
	return nil
}

func (c *ExpensesController) Loading() bool            { return c.loading }
func (c *ExpensesController) Expenses() []model.Expense { return c.expenses }
func (c *ExpensesController) Message() string          { return c.message }
func (c *ExpensesController) Dialog() DialogMode       { return c.dialog }
func (c *ExpensesController) Selected() *model.Expense { return c.selected }

// Groups returns the active expenses grouped by category with monthly
// subtotals.
func (c *ExpensesController) Groups() []derive.CategoryGroup {
	return derive.GroupByCategory(c.expenses)
}

// Inactive returns the suspended bucket.
func (c *ExpensesController) Inactive() []model.Expense {
	_, inactive := derive.SplitActive(c.expenses)
	return inactive
}

// MonthlyTotal is the monthly-equivalent sum of the active expenses.
func (c *ExpensesController) MonthlyTotal() float64 {
	return derive.ActiveMonthlyTotal(c.expenses)
}

func (c *ExpensesController) OpenCreate() {
	c.dialog = DialogCreate
	c.selected = nil
}

func (c *ExpensesController) OpenEdit(e model.Expense) {
	c.dialog = DialogEdit
	c.selected = &e
}

func (c *ExpensesController) OpenDelete(e model.Expense) {
	c.dialog = DialogConfirmDelete
	c.selected = &e
}

func (c *ExpensesController) CloseDialog() {
	c.dialog = DialogClosed
	c.selected = nil
	c.message = ""
}

func (c *ExpensesController) Submit(ctx context.Context, form ExpenseForm) (FieldErrors, error) {
	fe := FieldErrors{}
	name := requireText(fe, "name", form.Name)
	amount := requireAmount(fe, "amount", form.Amount)
	category := requireText(fe, "category", form.Category)
	if !form.Frequency.Valid() {
		fe.Add("frequency", "Frequenza non valida")
	}
	day := optionalDayOfMonth(fe, "dayOfMonth", form.DayOfMonth)
	if !fe.Ok() {
		return fe, nil
	}

	active := form.IsActive
	payload := api.ExpensePayload{
		Name:      name,
		Amount:    amount,
		Frequency: form.Frequency,
		Category:  category,
		DayOfMonth: day,
		Date:      form.Date,
		IsActive:  &active,
	}

	var err error
	switch c.dialog {
	case DialogCreate:
		_, err = c.svc.Create(ctx, payload)
	case DialogEdit:
		_, err = c.svc.Update(ctx, c.selected.ID, payload)
	default:
		return nil, nil
	}
	if err != nil {
		c.message = userMessage(err)
		return nil, err
	}

	c.CloseDialog()
	return nil, c.Load(ctx)
}

// ToggleActive flips the suspended state of one expense and reloads.
func (c *ExpensesController) ToggleActive(ctx context.Context, e model.Expense) error {
	active := !e.IsActive
	_, err := c.svc.Update(ctx, e.ID, api.ExpensePayload{
		Name:      e.Name,
		Amount:    e.Amount,
		Frequency: e.Frequency,
		Category:  e.Category,
		DayOfMonth: e.DayOfMonth,
		IsActive:  &active,
	})
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	return c.Load(ctx)
}

func (c *ExpensesController) ConfirmDelete(ctx context.Context) error {
	if c.dialog != DialogConfirmDelete || c.selected == nil {
		return nil
	}
	if err := c.svc.Delete(ctx, c.selected.ID); err != nil {
		c.message = userMessage(err)
		return err
	}
	c.CloseDialog()
	return c.Load(ctx)
}

// LoadHistory fetches the archived months for the history modal.
func (c *ExpensesController) LoadHistory(ctx context.Context) error {
	months, err := c.svc.HistoryMonths(ctx)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.historyMonths = months
	return nil
}

// LoadHistoryMonth fetches the archived expenses of one month.
func (c *ExpensesController) LoadHistoryMonth(ctx context.Context, month, year int) error {
	expenses, err := c.svc.HistoryExpenses(ctx, month, year)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.historyExpenses = expenses
	return nil
}

func (c *ExpensesController) HistoryMonths() []model.HistoryMonth { return c.historyMonths }
func (c *ExpensesController) HistoryExpenses() []model.Expense    { return c.historyExpenses }
