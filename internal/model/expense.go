package model

import "time"

type ExpenseFrequency string

const (
	FrequencyMonthly   ExpenseFrequency = "MONTHLY"
	FrequencyBimonthly ExpenseFrequency = "BIMONTHLY"
	FrequencyCustom    ExpenseFrequency = "CUSTOM"
)

func (f ExpenseFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBimonthly, FrequencyCustom:
		return true
	}
	return false
}

type Expense struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Amount    float64          `json:"amount"`
	Frequency ExpenseFrequency `json:"frequency"`
	Category  string           `json:"category"`
	// DayOfMonth is set for recurring expenses charged on a fixed day.
	DayOfMonth *int `json:"dayOfMonth,omitempty"`
	// Date is a yyyy-mm-dd day key, set for one-off CUSTOM expenses.
	Date      string    `json:"date,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HistoryMonth is one archived month returned by the expense history query.
type HistoryMonth struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}
