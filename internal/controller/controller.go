// Package controller holds the per-page state containers. Every page keeps
// the same shape: load the collection on start, track one dialog (create,
// edit, or confirm-delete), validate form input before any network call, and
// reload the whole collection after each successful mutation. A failed
// mutation leaves the dialog open with the server's message so the user can
// retry; nothing is retried automatically.
//
// Pages are driven from a single goroutine; controllers hold no locks.
package controller

import (
	"errors"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/api"
)

type DialogMode int

const (
	DialogClosed DialogMode = iota
	DialogCreate
	DialogEdit
	DialogConfirmDelete
)

// FieldErrors maps form field names to inline validation messages. A
// non-empty map blocks submission before it reaches the network layer.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, taken := fe[field]; !taken {
		fe[field] = message
	}
}

func (fe FieldErrors) Ok() bool { return len(fe) == 0 }

// genericErrorMessage is shown when the server gave no structured error.
const genericErrorMessage = "Si è verificato un errore. Riprova."

// userMessage extracts the user-visible message for a failed API call.
func userMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericErrorMessage
}
