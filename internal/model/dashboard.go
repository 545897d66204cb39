package model

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type IncomeSummary struct {
	TotalSalaries     float64 `json:"totalSalaries"`
	TotalExtraIncomes float64 `json:"totalExtraIncomes"`
	Total             float64 `json:"total"`
	MemberCount       int     `json:"memberCount"`
}

type ExpenseSummary struct {
	TotalMonthly float64          `json:"totalMonthly"`
	Count        int              `json:"count"`
	ByCategory   []CategoryAmount `json:"byCategory"`
}

type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type DashboardSummary struct {
	Income     IncomeSummary    `json:"income"`
	Expenses   ExpenseSummary   `json:"expenses"`
	Renovation RenovationTotals `json:"renovation"`
	Balance    float64          `json:"balance"`
	Period     Period           `json:"period"`
}

type TrendPoint struct {
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}
