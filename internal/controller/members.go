package controller

import (
	"context"
	"log/slog"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// MembersController drives the family members page, including the nested
// extra-income dialog.
type MembersController struct {
	svc *api.MembersService
	log *slog.Logger

	loading bool
	members []model.FamilyMember

	dialog   DialogMode
	selected *model.FamilyMember

	incomeDialog DialogMode
	incomeMember *model.FamilyMember
	incomeEdit   *model.ExtraIncome

	message string
}

func NewMembersController(svc *api.MembersService, log *slog.Logger) *MembersController {
	return &MembersController{svc: svc, log: log}
}

type MemberForm struct {
	Name   string
	Role   string
	Phone  string
	Salary string
}

type ExtraIncomeForm struct {
	Name   string
	Amount string
}

func (c *MembersController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	members, err := c.svc.List(ctx)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.members = members
	c.message = ""
	return nil
}

func (c *MembersController) Loading() bool                 { return c.loading }
func (c *MembersController) Members() []model.FamilyMember { return c.members }
func (c *MembersController) Message() string               { return c.message }
func (c *MembersController) Dialog() DialogMode            { return c.dialog }
func (c *MembersController) Selected() *model.FamilyMember { return c.selected }

func (c *MembersController) OpenCreate() {
	c.dialog = DialogCreate
	c.selected = nil
}

func (c *MembersController) OpenEdit(m model.FamilyMember) {
	c.dialog = DialogEdit
	c.selected = &m
}

func (c *MembersController) OpenDelete(m model.FamilyMember) {
	c.dialog = DialogConfirmDelete
	c.selected = &m
}

func (c *MembersController) CloseDialog() {
	c.dialog = DialogClosed
	c.selected = nil
	c.message = ""
}

// Submit validates the member form and performs the create or update the
// open dialog calls for, then reloads.
func (c *MembersController) Submit(ctx context.Context, form MemberForm) (FieldErrors, error) {
	fe := FieldErrors{}
	name := requireText(fe, "name", form.Name)
	salary := requireAmount(fe, "salary", form.Salary)
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.MemberPayload{Name: name, Role: form.Role, Phone: form.Phone, Salary: salary}

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

// ConfirmDelete removes the selected member. On failure the dialog stays
// open with the server message and the loaded collection is untouched.
func (c *MembersController) ConfirmDelete(ctx context.Context) error {
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

// --- Extra income dialog ---

func (c *MembersController) OpenIncomeCreate(member model.FamilyMember) {
	c.incomeDialog = DialogCreate
	c.incomeMember = &member
	c.incomeEdit = nil
}

func (c *MembersController) OpenIncomeEdit(member model.FamilyMember, income model.ExtraIncome) {
	c.incomeDialog = DialogEdit
	c.incomeMember = &member
	c.incomeEdit = &income
}

func (c *MembersController) CloseIncomeDialog() {
	c.incomeDialog = DialogClosed
	c.incomeMember = nil
	c.incomeEdit = nil
	c.message = ""
}

func (c *MembersController) IncomeDialog() DialogMode { return c.incomeDialog }

func (c *MembersController) SubmitIncome(ctx context.Context, form ExtraIncomeForm) (FieldErrors, error) {
	fe := FieldErrors{}
	name := requireText(fe, "name", form.Name)
	amount := requireAmount(fe, "amount", form.Amount)
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.ExtraIncomePayload{Name: name, Amount: amount}

	var err error
	switch c.incomeDialog {
	case DialogCreate:
		_, err = c.svc.AddExtraIncome(ctx, c.incomeMember.ID, payload)
	case DialogEdit:
		_, err = c.svc.UpdateExtraIncome(ctx, c.incomeMember.ID, c.incomeEdit.ID, payload)
	default:
		return nil, nil
	}
	if err != nil {
		c.message = userMessage(err)
		return nil, err
	}

	c.CloseIncomeDialog()
	return nil, c.Load(ctx)
}

func (c *MembersController) DeleteIncome(ctx context.Context, memberID, incomeID string) error {
	if err := c.svc.DeleteExtraIncome(ctx, memberID, incomeID); err != nil {
		c.message = userMessage(err)
		return err
	}
	return c.Load(ctx)
}
