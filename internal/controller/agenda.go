package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/derive"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// AgendaController drives the appointments page: the quick range filter,
// the upcoming/past split, day grouping, and the appointment dialog with
// embedded notification rows.
type AgendaController struct {
	svc *api.AppointmentsService
	log *slog.Logger
	now func() time.Time

	loading      bool
	appointments []model.Appointment
	filter       derive.RangeFilter
	showPast     bool

	dialog   DialogMode
	selected *model.Appointment

	message string
}

func NewAgendaController(svc *api.AppointmentsService, log *slog.Logger) *AgendaController {
	return &AgendaController{svc: svc, log: log, now: time.Now, filter: derive.FilterAll}
}

type NotificationForm struct {
	MinutesBefore  string
	Channel        model.NotificationChannel
	RecipientPhone string
}

type AppointmentForm struct {
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Notes       string
	Category    string
	MemberID    string
	Notifications []NotificationForm
}

func (c *AgendaController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	appointments, err := c.svc.List(ctx, nil)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.appointments = appointments
	c.message = ""
	return nil
}

func (c *AgendaController) Loading() bool            { return c.loading }
func (c *AgendaController) Message() string          { return c.message }
func (c *AgendaController) Dialog() DialogMode       { return c.dialog }
func (c *AgendaController) Filter() derive.RangeFilter { return c.filter }

// SetFilter narrows the upcoming list; invalid values fall back to all.
func (c *AgendaController) SetFilter(filter derive.RangeFilter) {
	if !filter.Valid() {
		filter = derive.FilterAll
	}
	c.filter = filter
}

func (c *AgendaController) TogglePast() { c.showPast = !c.showPast }
func (c *AgendaController) ShowPast() bool { return c.showPast }

// Upcoming returns the filtered upcoming appointments.
func (c *AgendaController) Upcoming() []model.Appointment {
	upcoming, _ := derive.SplitUpcomingPast(c.appointments, c.now())
	return derive.FilterRange(upcoming, c.filter, c.now())
}

// Past returns appointments that already started.
func (c *AgendaController) Past() []model.Appointment {
	_, past := derive.SplitUpcomingPast(c.appointments, c.now())
	return past
}

// Groups buckets the filtered upcoming appointments by calendar day.
func (c *AgendaController) Groups() []derive.DayGroup {
	return derive.GroupByDay(c.Upcoming())
}

func (c *AgendaController) OpenCreate() {
	c.dialog = DialogCreate
	c.selected = nil
}

func (c *AgendaController) OpenEdit(a model.Appointment) {
	c.dialog = DialogEdit
	c.selected = &a
}

func (c *AgendaController) OpenDelete(a model.Appointment) {
	c.dialog = DialogConfirmDelete
	c.selected = &a
}

func (c *AgendaController) CloseDialog() {
	c.dialog = DialogClosed
	c.selected = nil
	c.message = ""
}

func (c *AgendaController) Submit(ctx context.Context, form AppointmentForm) (FieldErrors, error) {
	fe := FieldErrors{}
	title := requireText(fe, "title", form.Title)
	start := requireDateTime(fe, "startDate", form.StartDate)
	end := optionalDateTime(fe, "endDate", form.EndDate)

	notifications := make([]api.NotificationPayload, 0, len(form.Notifications))
	for _, n := range form.Notifications {
		minutes := optionalMinutes(fe, "minutesBefore", n.MinutesBefore)
		if !n.Channel.Valid() {
			fe.Add("channel", "Canale non valido")
		}
		phone := requireText(fe, "recipientPhone", n.RecipientPhone)
		notifications = append(notifications, api.NotificationPayload{
			MinutesBefore:  minutes,
			Channel:        n.Channel,
			RecipientPhone: phone,
		})
	}
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.AppointmentPayload{
		Title:       title,
		Description: form.Description,
		StartDate:   start.Format(time.RFC3339),
		Notes:       form.Notes,
		Category:    form.Category,
		MemberID:    form.MemberID,
		Notifications: notifications,
	}
	if end != nil {
		payload.EndDate = end.Format(time.RFC3339)
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

func (c *AgendaController) ConfirmDelete(ctx context.Context) error {
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
