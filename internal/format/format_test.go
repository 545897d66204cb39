package format

import (
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{12.5, "12,50"},
		{1234.56, "1.234,56"},
		{1234567.891, "1.234.567,89"},
		{-987.6, "-987,60"},
		{100, "100,00"},
		{1000, "1.000,00"},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEuro(t *testing.T) {
	if got := Euro(1234.5); got != "1.234,50 €" {
		t.Errorf("Euro(1234.5) = %q, want %q", got, "1.234,50 €")
	}
	if got := Euro(0); got != "0,00 €" {
		t.Errorf("Euro(0) = %q, want %q", got, "0,00 €")
	}
}

func TestDateAndClock(t *testing.T) {
	d := time.Date(2025, 8, 31, 9, 5, 0, 0, time.Local)
	if got := Date(d); got != "31/08/2025" {
		t.Errorf("Date = %q, want 31/08/2025", got)
	}
	if got := Clock(d); got != "09:05" {
		t.Errorf("Clock = %q, want 09:05", got)
	}
	if got := DayKey(d); got != "2025-08-31" {
		t.Errorf("DayKey = %q, want 2025-08-31", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"12,50", 12.50, false},
		{"12.50", 12.50, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"-3", -3, false},
		{"", 0, true},
		{"abc", 0, true},
		{"1,2,3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLongDate(t *testing.T) {
	d := time.Date(2025, 8, 31, 0, 0, 0, 0, time.Local) // a Sunday
	if got := LongDate(d); got != "domenica 31 agosto 2025" {
		t.Errorf("LongDate = %q", got)
	}
}

func TestGroupLabel(t *testing.T) {
	now := time.Date(2025, 8, 31, 14, 0, 0, 0, time.Local) // Sunday

	if got := GroupLabel(now, now); got != "Oggi — domenica 31 agosto" {
		t.Errorf("today label = %q", got)
	}
	tomorrow := now.AddDate(0, 0, 1)
	if got := GroupLabel(tomorrow, now); got != "Domani — lunedì 1 settembre" {
		t.Errorf("tomorrow label = %q", got)
	}
	later := now.AddDate(0, 0, 3) // Wednesday
	if got := GroupLabel(later, now); got != "Mercoledì 3 settembre" {
		t.Errorf("later label = %q", got)
	}
}
