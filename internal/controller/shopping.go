package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/shopping"
)

// ShoppingController drives the daily shopping page on top of the
// persistent list service, adding the complete-spesa dialog and the
// transient confirmation message.
type ShoppingController struct {
	svc *shopping.Service
	log *slog.Logger
	now func() time.Time

	completeOpen   bool
	message        string
	messageExpires time.Time
}

func NewShoppingController(svc *shopping.Service, log *slog.Logger) *ShoppingController {
	return &ShoppingController{svc: svc, log: log, now: time.Now}
}

func (c *ShoppingController) Load() error { return c.svc.Load() }

func (c *ShoppingController) Items() []model.ShoppingItem { return c.svc.Items() }
func (c *ShoppingController) Counts() (unchecked, checked int) { return c.svc.Counts() }

func (c *ShoppingController) Add(text string) error {
	_, err := c.svc.Add(text)
	return err
}

func (c *ShoppingController) Toggle(id string) error { return c.svc.Toggle(id) }
func (c *ShoppingController) Remove(id string) error { return c.svc.Remove(id) }
func (c *ShoppingController) Clear() error           { return c.svc.Clear() }

func (c *ShoppingController) OpenComplete()  { c.completeOpen = true }
func (c *ShoppingController) CloseComplete() { c.completeOpen = false }
func (c *ShoppingController) CompleteOpen() bool { return c.completeOpen }

// Complete validates the total locally, records the expense, and arms the
// self-clearing confirmation message.
func (c *ShoppingController) Complete(ctx context.Context, total, note string) (FieldErrors, error) {
	msg, err := c.svc.Complete(ctx, total, note)
	if errors.Is(err, shopping.ErrInvalidTotal) {
		fe := FieldErrors{}
		fe.Add("total", "Inserisci un totale positivo")
		return fe, nil
	}
	if err != nil {
		c.message = userMessage(err)
		c.messageExpires = time.Time{}
		return nil, err
	}

	c.completeOpen = false
	c.message = msg
	c.messageExpires = c.now().Add(shopping.ConfirmationTTL)
	return nil, nil
}

// Message returns the current banner text; the confirmation self-clears
// after its TTL.
func (c *ShoppingController) Message() string {
	if !c.messageExpires.IsZero() && c.now().After(c.messageExpires) {
		c.message = ""
		c.messageExpires = time.Time{}
	}
	return c.message
}
