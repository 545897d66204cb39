package derive

import "github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"

// ProjectTotalCost sums the items' total prices.
func ProjectTotalCost(p model.RenovationProject) float64 {
	total := 0.0
	for _, item := range p.Items {
		total += item.TotalPrice
	}
	return total
}

// ProjectTotalPaid sums the items' paid amounts.
func ProjectTotalPaid(p model.RenovationProject) float64 {
	total := 0.0
	for _, item := range p.Items {
		total += item.PaidAmount
	}
	return total
}

// PercentPaid is paid/cost as a percentage. A zero total cost is defined as
// 0%. The result is deliberately not capped at 100: overpaid projects show
// above 100%, matching the product's signed-off behavior.
func PercentPaid(totalCost, totalPaid float64) float64 {
	if totalCost == 0 {
		return 0
	}
	return totalPaid / totalCost * 100
}

// ProjectPercentPaid is PercentPaid over a project's item sums.
func ProjectPercentPaid(p model.RenovationProject) float64 {
	return PercentPaid(ProjectTotalCost(p), ProjectTotalPaid(p))
}
