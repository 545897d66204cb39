package api

import (
	"context"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

type SettingsService struct {
	client *Client
}

func NewSettingsService(client *Client) *SettingsService {
	return &SettingsService{client: client}
}

type SettingsPayload struct {
	DefaultPhone   string                    `json:"defaultPhone,omitempty"`
	DefaultChannel model.NotificationChannel `json:"defaultChannel,omitempty"`
	DefaultMinutes *int                      `json:"defaultMinutes,omitempty"`
	Timezone       string                    `json:"timezone,omitempty"`
}

// TestResult reports the outcome of a test notification delivery.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *SettingsService) GetNotifications(ctx context.Context) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	if err := s.client.get(ctx, "/settings/notifications", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) UpdateNotifications(ctx context.Context, payload SettingsPayload) (*model.NotificationSettings, error) {
	var settings model.NotificationSettings
	if err := s.client.put(ctx, "/settings/notifications", payload, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

type testRequest struct {
	Phone   string                    `json:"phone"`
	Channel model.NotificationChannel `json:"channel"`
}

func (s *SettingsService) SendTest(ctx context.Context, phone string, channel model.NotificationChannel) (*TestResult, error) {
	var result TestResult
	if err := s.client.post(ctx, "/settings/test", testRequest{Phone: phone, Channel: channel}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
