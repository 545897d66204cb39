package charts

import (
	"os"
	"testing"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

func TestTrendPNG(t *testing.T) {
	dir := t.TempDir()
	points := []model.TrendPoint{
		{Label: "Giu", Income: 3000, Expenses: 2100, Balance: 900},
		{Label: "Lug", Income: 3000, Expenses: 2500, Balance: 500},
		{Label: "Ago", Income: 3200, Expenses: 2000, Balance: 1200},
	}

	path, err := TrendPNG(points, dir)
	if err != nil {
		t.Fatalf("render trend: %v", err)
	}
	assertPNG(t, path)
}

func TestCategoryPNG(t *testing.T) {
	dir := t.TempDir()
	byCategory := []model.CategoryAmount{
		{Category: "Casa", Amount: 800},
		{Category: "Utenze", Amount: 145},
	}

	path, err := CategoryPNG(byCategory, dir)
	if err != nil {
		t.Fatalf("render categories: %v", err)
	}
	assertPNG(t, path)
}

func TestEmptyInput(t *testing.T) {
	if _, err := TrendPNG(nil, t.TempDir()); err == nil {
		t.Error("expected error for empty trend")
	}
	if _, err := CategoryPNG(nil, t.TempDir()); err == nil {
		t.Error("expected error for empty categories")
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("%s is not a PNG (%d bytes)", path, len(data))
	}
}
