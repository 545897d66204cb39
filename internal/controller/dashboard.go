package controller

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// DashboardController loads the summary and the trend concurrently; the page
// renders only when both reads have resolved.
type DashboardController struct {
	svc *api.DashboardService
	log *slog.Logger

	loading bool
	summary *model.DashboardSummary
	trend   []model.TrendPoint

	message string
}

func NewDashboardController(svc *api.DashboardService, log *slog.Logger) *DashboardController {
	return &DashboardController{svc: svc, log: log}
}

// Load fetches summary and trend for an optional [from, to] day-key range
// and a groupBy of "month" or "week" (empty means month).
func (c *DashboardController) Load(ctx context.Context, from, to, groupBy string) error {
	c.loading = true
	defer func() { c.loading = false }()

	var (
		summary *model.DashboardSummary
		trend   []model.TrendPoint
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = c.svc.Summary(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		trend, err = c.svc.Trend(ctx, from, to, groupBy)
		return err
	})
	if err := g.Wait(); err != nil {
		c.message = userMessage(err)
		return err
	}

	c.summary = summary
	c.trend = trend
	c.message = ""
	return nil
}

func (c *DashboardController) Loading() bool                    { return c.loading }
func (c *DashboardController) Summary() *model.DashboardSummary { return c.summary }
func (c *DashboardController) Trend() []model.TrendPoint        { return c.trend }
func (c *DashboardController) Message() string                  { return c.message }
