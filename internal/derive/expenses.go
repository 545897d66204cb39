// Package derive computes the display aggregates of the dashboard pages.
// Everything here is a pure function over loaded collections.
package derive

import (
	"sort"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// MonthlyEquivalent normalizes an expense amount to a per-month figure.
// Bimonthly expenses count half per month; everything else counts as-is.
func MonthlyEquivalent(e model.Expense) float64 {
	if e.Frequency == model.FrequencyBimonthly {
		return e.Amount / 2
	}
	return e.Amount
}

// SplitActive partitions expenses into the active list and the suspended
// bucket, preserving order.
func SplitActive(expenses []model.Expense) (active, inactive []model.Expense) {
	for _, e := range expenses {
		if e.IsActive {
			active = append(active, e)
		} else {
			inactive = append(inactive, e)
		}
	}
	return active, inactive
}

// ActiveMonthlyTotal sums the monthly equivalents of the active expenses.
func ActiveMonthlyTotal(expenses []model.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		if e.IsActive {
			total += MonthlyEquivalent(e)
		}
	}
	return total
}

// CategoryGroup is one category section of the expenses page.
type CategoryGroup struct {
	Category     string
	Expenses     []model.Expense
	MonthlyTotal float64
}

// GroupByCategory groups the active expenses by category, each group with
// its monthly-equivalent subtotal, sorted by category name. Inactive
// expenses are excluded; they render in their own bucket.
func GroupByCategory(expenses []model.Expense) []CategoryGroup {
	byCategory := make(map[string][]model.Expense)
	for _, e := range expenses {
		if !e.IsActive {
			continue
		}
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for category, list := range byCategory {
		total := 0.0
		for _, e := range list {
			total += MonthlyEquivalent(e)
		}
		groups = append(groups, CategoryGroup{Category: category, Expenses: list, MonthlyTotal: total})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}

// MemberMonthlyIncome is salary plus all extra incomes.
func MemberMonthlyIncome(m model.FamilyMember) float64 {
	total := m.Salary
	for _, income := range m.ExtraIncomes {
		total += income.Amount
	}
	return total
}

// HouseholdMonthlyIncome sums MemberMonthlyIncome over all members.
func HouseholdMonthlyIncome(members []model.FamilyMember) float64 {
	total := 0.0
	for _, m := range members {
		total += MemberMonthlyIncome(m)
	}
	return total
}
