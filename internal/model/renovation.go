package model

import "time"

type RenovationStatus string

const (
	StatusPlanned    RenovationStatus = "PLANNED"
	StatusInProgress RenovationStatus = "IN_PROGRESS"
	StatusCompleted  RenovationStatus = "COMPLETED"
	StatusOnHold     RenovationStatus = "ON_HOLD"
)

func (s RenovationStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type RenovationItem struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Name      string  `json:"name"`
	Company   string  `json:"company,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
	PaidAmount float64 `json:"paidAmount"`
	// Remaining is computed server-side and trusted as-is.
	Remaining float64   `json:"remaining"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RenovationProject struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Company   string           `json:"company,omitempty"`
	Status    RenovationStatus `json:"status"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	Items     []RenovationItem `json:"items"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type RenovationProjectSummary struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Status         RenovationStatus `json:"status"`
	TotalCost      float64          `json:"totalCost"`
	TotalPaid      float64          `json:"totalPaid"`
	TotalRemaining float64          `json:"totalRemaining"`
	ItemCount      int              `json:"itemCount"`
}

type RenovationTotals struct {
	TotalCost      float64 `json:"totalCost"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalRemaining float64 `json:"totalRemaining"`
}

type RenovationSummary struct {
	Projects []RenovationProjectSummary `json:"projects"`
	Totals   RenovationTotals           `json:"totals"`
}
