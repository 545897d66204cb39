package controller

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// SettingsController drives the notification settings page.
type SettingsController struct {
	svc *api.SettingsService
	log *slog.Logger

	loading  bool
	settings *model.NotificationSettings

	message     string
	testMessage string
}

func NewSettingsController(svc *api.SettingsService, log *slog.Logger) *SettingsController {
	return &SettingsController{svc: svc, log: log}
}

type SettingsForm struct {
	DefaultPhone   string
	DefaultChannel model.NotificationChannel
	DefaultMinutes string
	Timezone       string
}

func (c *SettingsController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	settings, err := c.svc.GetNotifications(ctx)
	if err != nil {
		c.message = userMessage(err)
		return err
	}
	c.settings = settings
	c.message = ""
	return nil
}

func (c *SettingsController) Loading() bool                         { return c.loading }
func (c *SettingsController) Settings() *model.NotificationSettings { return c.settings }
func (c *SettingsController) Message() string                       { return c.message }
func (c *SettingsController) TestMessage() string                   { return c.testMessage }

// Submit validates and saves the settings form, then reloads the record.
func (c *SettingsController) Submit(ctx context.Context, form SettingsForm) (FieldErrors, error) {
	fe := FieldErrors{}
	if form.DefaultChannel != "" && !form.DefaultChannel.Valid() {
		fe.Add("defaultChannel", "Canale non valido")
	}
	minutes := optionalMinutes(fe, "defaultMinutes", form.DefaultMinutes)
	if !fe.Ok() {
		return fe, nil
	}

	payload := api.SettingsPayload{
		DefaultPhone:   strings.TrimSpace(form.DefaultPhone),
		DefaultChannel: form.DefaultChannel,
		Timezone:       form.Timezone,
	}
	if form.DefaultMinutes != "" {
		payload.DefaultMinutes = &minutes
	}

	if _, err := c.svc.UpdateNotifications(ctx, payload); err != nil {
		c.message = userMessage(err)
		return nil, err
	}
	return nil, c.Load(ctx)
}

// SendTest fires a test notification and records the provider's reply.
func (c *SettingsController) SendTest(ctx context.Context, phone string, channel model.NotificationChannel) error {
	fe := FieldErrors{}
	phone = requireText(fe, "phone", phone)
	if !channel.Valid() {
		fe.Add("channel", "Canale non valido")
	}
	if !fe.Ok() {
		c.testMessage = "Numero o canale non valido"
		return nil
	}

	result, err := c.svc.SendTest(ctx, phone, channel)
	if err != nil {
		c.testMessage = userMessage(err)
		return err
	}
	c.testMessage = result.Message
	return nil
}
