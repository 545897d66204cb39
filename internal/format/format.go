// Package format renders amounts and dates with fixed Italian patterns.
// The rules are spelled out explicitly instead of going through a locale
// library so the output is identical on every platform.
package format

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Number renders a value with two decimals, comma decimal separator and dot
// thousands grouping: 1234.5 -> "1.234,56"-style output.
func Number(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// Euro renders an amount as "1.234,56 €".
func Euro(amount float64) string {
	return Number(amount) + " €"
}

// Date renders dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// Clock renders 24h hh:mm.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// DayKey renders the yyyy-mm-dd key used by storage and query params.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseAmount reads a user-entered amount accepting either comma or dot as
// the decimal separator. The value must parse; positivity is the caller's
// rule.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

var weekdays = [...]string{
	"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
}

var months = [...]string{
	"", "gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// Weekday is the lowercase Italian weekday name.
func Weekday(t time.Time) string {
	return weekdays[int(t.Weekday())]
}

// Month is the lowercase Italian month name.
func Month(t time.Time) string {
	return months[int(t.Month())]
}

// LongDate renders "domenica 31 agosto 2025".
func LongDate(t time.Time) string {
	return Weekday(t) + " " + strconv.Itoa(t.Day()) + " " + Month(t) + " " + strconv.Itoa(t.Year())
}

// shortDate renders "domenica 31 agosto", the agenda group form.
func shortDate(t time.Time) string {
	return Weekday(t) + " " + strconv.Itoa(t.Day()) + " " + Month(t)
}

// GroupLabel renders the agenda day heading relative to now: "Oggi — …" for
// today, "Domani — …" for tomorrow, otherwise the capitalized weekday form.
func GroupLabel(day, now time.Time) string {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	label := shortDate(day)
	switch {
	case dayStart.Equal(today):
		return "Oggi — " + label
	case dayStart.Equal(tomorrow):
		return "Domani — " + label
	default:
		return capitalize(label)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
