package controller

import (
	"context"
	"log/slog"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/derive"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/format"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// RenovationController drives the renovation page: the project list with
// per-project expansion and the nested item dialog.
type RenovationController struct {
	svc *api.RenovationService
	log *slog.Logger

	loading  bool
	projects []model.RenovationProject
	expanded map[string]bool

	dialog   DialogMode
	selected *model.RenovationProject

	itemDialog  DialogMode
	itemProject *model.RenovationProject
	itemEdit    *model.RenovationItem

	message string
}

func NewRenovationController(svc *api.RenovationService, log *slog.Logger) *RenovationController {
	return &RenovationController{svc: svc, log: log, expanded: make(map[string]bool)}
}

type ProjectForm struct {
	Name      string
	Company   string
	Status    model.RenovationStatus
	StartDate string
	EndDate   string
}

type ItemForm struct {
	Name       string
	Company    string
	TotalPrice string
	PaidAmount string
}

func (c *RenovationController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	projects, err := c.svc.ListProjects(ctx)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.projects = projects
	c.message = ""
	return nil
}

func (c *RenovationController) Loading() bool                       { return c.loading }
func (c *RenovationController) Projects() []model.RenovationProject { return c.projects }
func (c *RenovationController) Message() string                     { return c.message }
func (c *RenovationController) Dialog() DialogMode                  { return c.dialog }

// ToggleExpanded flips the expand/collapse state of one project row.
func (c *RenovationController) ToggleExpanded(projectID string) {
	c.expanded[projectID] = !c.expanded[projectID]
}

func (c *RenovationController) Expanded(projectID string) bool {
	return c.expanded[projectID]
}

// PercentPaid is the progress figure shown on a project row.
func (c *RenovationController) PercentPaid(p model.RenovationProject) float64 {
	return derive.ProjectPercentPaid(p)
}

func (c *RenovationController) OpenCreate() {
	c.dialog = DialogCreate
	c.selected = nil
}

func (c *RenovationController) OpenEdit(p model.RenovationProject) {
	c.dialog = DialogEdit
	c.selected = &p
}

func (c *RenovationController) OpenDelete(p model.RenovationProject) {
	c.dialog = DialogConfirmDelete
	c.selected = &p
}

func (c *RenovationController) CloseDialog() {
	c.dialog = DialogClosed
	c.selected = nil
	c.message = ""
}

func (c *RenovationController) Submit(ctx context.Context, form ProjectForm) (FieldErrors, error) {
	fe := FieldErrors{}
	name := requireText(fe, "name", form.Name)
	if form.Status != "" && !form.Status.Valid() {
		fe.Add("status", "Stato non valido")
	}
	start := optionalDateTime(fe, "startDate", form.StartDate)
	end := optionalDateTime(fe, "endDate", form.EndDate)
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.ProjectPayload{Name: name, Company: form.Company, Status: form.Status}
	if start != nil {
		payload.StartDate = format.DayKey(*start)
	}
	if end != nil {
		payload.EndDate = format.DayKey(*end)
	}

	var err error
	switch c.dialog {
	case DialogCreate:
		_, err = c.svc.CreateProject(ctx, payload)
	case DialogEdit:
		_, err = c.svc.UpdateProject(ctx, c.selected.ID, payload)
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

func (c *RenovationController) ConfirmDelete(ctx context.Context) error {
	if c.dialog != DialogConfirmDelete || c.selected == nil {
		return nil
	}
	if err := c.svc.DeleteProject(ctx, c.selected.ID); err != nil {
		c.message = userMessage(err)
		return err
	}
	c.CloseDialog()
	return c.Load(ctx)
}

// --- Item dialog ---

func (c *RenovationController) OpenItemCreate(p model.RenovationProject) {
	c.itemDialog = DialogCreate
	c.itemProject = &p
	c.itemEdit = nil
}

func (c *RenovationController) OpenItemEdit(p model.RenovationProject, item model.RenovationItem) {
	c.itemDialog = DialogEdit
	c.itemProject = &p
	c.itemEdit = &item
}

func (c *RenovationController) CloseItemDialog() {
	c.itemDialog = DialogClosed
	c.itemProject = nil
	c.itemEdit = nil
	c.message = ""
}

func (c *RenovationController) ItemDialog() DialogMode { return c.itemDialog }

func (c *RenovationController) SubmitItem(ctx context.Context, form ItemForm) (FieldErrors, error) {
	fe := FieldErrors{}
	name := requireText(fe, "name", form.Name)
	totalPrice := requireAmount(fe, "totalPrice", form.TotalPrice)
	paid := 0.0
	if form.PaidAmount != "" {
		paid = requireAmount(fe, "paidAmount", form.PaidAmount)
	}
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.ItemPayload{Name: name, Company: form.Company, TotalPrice: totalPrice, PaidAmount: paid}

	var err error
	switch c.itemDialog {
	case DialogCreate:
		_, err = c.svc.CreateItem(ctx, c.itemProject.ID, payload)
	case DialogEdit:
		_, err = c.svc.UpdateItem(ctx, c.itemProject.ID, c.itemEdit.ID, payload)
	default:
		return nil, nil
	}
	if err != nil {
		c.message = userMessage(err)
		return nil, err
	}

	c.CloseItemDialog()
	return nil, c.Load(ctx)
}

func (c *RenovationController) DeleteItem(ctx context.Context, projectID, itemID string) error {
	if err := c.svc.DeleteItem(ctx, projectID, itemID); err != nil {
		c.message = userMessage(err)
		return err
	}
	return c.Load(ctx)
}
