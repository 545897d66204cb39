package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestEnvelopeUnwrap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/members" {
			t.Errorf("path = %q, want /api/members", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "m1", "name": "Anna", "salary": 1800},
				{"id": "m2", "name": "Luca", "salary": 2100.50},
			},
		})
	}))
	defer server.Close()

	svc := NewMembersService(NewClient(server.URL, staticToken("")))
	members, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	if members[0].ID != "m1" || members[0].Name != "Anna" {
		t.Errorf("members[0] = %+v", members[0])
	}
	if members[1].Salary != 2100.50 {
		t.Errorf("members[1].Salary = %v, want 2100.50", members[1].Salary)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"data": model.User{ID: "u1"}})
	}))
	defer server.Close()

	svc := NewAuthService(NewClient(server.URL, staticToken("tok-123")))
	if _, err := svc.Me(context.Background()); err != nil {
		t.Fatalf("me: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("unexpected Authorization header %q", h)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": LoginResult{Token: "t"}})
	}))
	defer server.Close()

	svc := NewAuthService(NewClient(server.URL, staticToken("")))
	if _, err := svc.Login(context.Background(), "a@b.it", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestStructuredErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "nome già in uso"})
	}))
	defer server.Close()

	svc := NewMembersService(NewClient(server.URL, staticToken("t")))
	_, err := svc.Create(context.Background(), MemberPayload{Name: "Anna"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", apiErr.Status)
	}
	if apiErr.Message != "nome già in uso" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestUnstructuredErrorFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewExpensesService(NewClient(server.URL, staticToken("t")))
	err := svc.Delete(context.Background(), "e1")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Message != "" {
		t.Errorf("message = %q, want empty", apiErr.Message)
	}
	if apiErr.Error() != "api: server returned 500" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestHistoryQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"data": []model.Expense{}})
	}))
	defer server.Close()

	svc := NewExpensesService(NewClient(server.URL, staticToken("t")))
	if _, err := svc.HistoryExpenses(context.Background(), 3, 2025); err != nil {
		t.Fatalf("history expenses: %v", err)
	}
	if gotQuery != "month=3&year=2025" {
		t.Errorf("query = %q, want month=3&year=2025", gotQuery)
	}
}

func TestTrendUnwrapsNestedArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("groupBy"); got != "week" {
			t.Errorf("groupBy = %q, want week", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"trend": []model.TrendPoint{
					{Label: "W1", Income: 100, Expenses: 40, Balance: 60},
				},
			},
		})
	}))
	defer server.Close()

	svc := NewDashboardService(NewClient(server.URL, staticToken("t")))
	trend, err := svc.Trend(context.Background(), "", "", "week")
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if len(trend) != 1 || trend[0].Label != "W1" || trend[0].Balance != 60 {
		t.Errorf("trend = %+v", trend)
	}
}

func TestAppointmentCreateEmbedsNotifications(t *testing.T) {
	var gotBody AppointmentPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": model.Appointment{ID: "a1"}})
	}))
	defer server.Close()

	svc := NewAppointmentsService(NewClient(server.URL, staticToken("t")))
	_, err := svc.Create(context.Background(), AppointmentPayload{
		Title:     "Visita medica",
		StartDate: "2025-09-02T10:00:00.000Z",
		Notifications: []NotificationPayload{
			{MinutesBefore: 60, Channel: model.ChannelWhatsApp, RecipientPhone: "+391234567890"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(gotBody.Notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(gotBody.Notifications))
	}
	if gotBody.Notifications[0].Channel != model.ChannelWhatsApp {
		t.Errorf("channel = %q", gotBody.Notifications[0].Channel)
	}
}

func TestMissingEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"unexpected": true})
	}))
	defer server.Close()

	svc := NewSettingsService(NewClient(server.URL, staticToken("t")))
	if _, err := svc.GetNotifications(context.Background()); err == nil {
		t.Fatal("expected error for missing data envelope")
	}
}
