package api

import (
	"context"
	"net/url"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type AppointmentsService struct {
	client *Client
}

func NewAppointmentsService(client *Client) *AppointmentsService {
	return &AppointmentsService{client: client}
}

type NotificationPayload struct {
	MinutesBefore  int                       `json:"minutesBefore"`
	Channel        model.NotificationChannel `json:"channel"`
	RecipientPhone string                    `json:"recipientPhone"`
}

type AppointmentPayload struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Category    string `json:"category,omitempty"`
	MemberID    string `json:"memberId,omitempty"`
	Notifications []NotificationPayload `json:"notifications,omitempty"`
}

// AppointmentListOptions narrows the appointment listing; the zero value
// lists everything.
type AppointmentListOptions struct {
	Upcoming bool
	MemberID string
}

func (s *AppointmentsService) List(ctx context.Context, opts *AppointmentListOptions) ([]model.Appointment, error) {
	var query url.Values
	if opts != nil {
		query = url.Values{}
		if opts.Upcoming {
			query.Set("upcoming", "true")
		}
		if opts.MemberID != "" {
			query.Set("memberId", opts.MemberID)
		}
	}

	var appointments []model.Appointment
	if err := s.client.get(ctx, "/appointments", query, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *AppointmentsService) Get(ctx context.Context, id string) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := s.client.get(ctx, "/appointments/"+id, nil, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentsService) Create(ctx context.Context, payload AppointmentPayload) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := s.client.post(ctx, "/appointments", payload, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentsService) Update(ctx context.Context, id string, payload AppointmentPayload) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := s.client.put(ctx, "/appointments/"+id, payload, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *AppointmentsService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/appointments/"+id)
}
