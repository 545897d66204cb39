package api

import (
	"context"
	"net/url"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type DashboardService struct {
	client *Client
}

func NewDashboardService(client *Client) *DashboardService {
	return &DashboardService{client: client}
}

// Summary fetches the dashboard totals for an optional [from, to] range of
// yyyy-mm-dd day keys; empty strings mean the server default period.
func (s *DashboardService) Summary(ctx context.Context, from, to string) (*model.DashboardSummary, error) {
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	var summary model.DashboardSummary
	if err := s.client.get(ctx, "/dashboard/summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Trend fetches the income/expense trend grouped by "month" or "week".
func (s *DashboardService) Trend(ctx context.Context, from, to, groupBy string) ([]model.TrendPoint, error) {
	if groupBy == "" {
		groupBy = "month"
	}
	query := url.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	query.Set("groupBy", groupBy)

	var payload struct {
		Trend []model.TrendPoint `json:"trend"`
	}
	if err := s.client.get(ctx, "/dashboard/trend", query, &payload); err != nil {
		return nil, err
	}
	return payload.Trend, nil
}
