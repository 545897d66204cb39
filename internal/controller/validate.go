package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/format"
)

func requireText(fe FieldErrors, field, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		fe.Add(field, "Campo obbligatorio")
	}
	return value
}

// requireAmount parses a non-negative amount from a comma-or-dot string.
func requireAmount(fe FieldErrors, field, value string) float64 {
	amount, err := format.ParseAmount(value)
	if err != nil {
		fe.Add(field, "Importo non valido")
		return 0
	}
	if amount < 0 {
		fe.Add(field, "L'importo non può essere negativo")
		return 0
	}
	return amount
}

// optionalDayOfMonth parses a day in [1, 31], or nil when blank.
func optionalDayOfMonth(fe FieldErrors, field, value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	day, err := strconv.Atoi(value)
	if err != nil || day < 1 || day > 31 {
		fe.Add(field, "Giorno non valido (1-31)")
		return nil
	}
	return &day
}

func optionalMinutes(fe FieldErrors, field, value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < 0 {
		fe.Add(field, "Minuti non validi")
		return 0
	}
	return minutes
}

// dateTimeLayouts accepted from date/time form fields.
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func requireDateTime(fe FieldErrors, field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		fe.Add(field, "Campo obbligatorio")
		return time.Time{}
	}
	return parseDateTime(fe, field, value)
}

func optionalDateTime(fe FieldErrors, field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t := parseDateTime(fe, field, value)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseDateTime(fe FieldErrors, field, value string) time.Time {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	fe.Add(field, "Data non valida")
	return time.Time{}
}
