package model

import "time"

type NotificationChannel string

const (
	ChannelSMS      NotificationChannel = "SMS"
	ChannelWhatsApp NotificationChannel = "WHATSAPP"
)

func (c NotificationChannel) Valid() bool {
	return c == ChannelSMS || c == ChannelWhatsApp
}

type AppointmentNotification struct {
	ID            string              `json:"id"`
	AppointmentID string              `json:"appointmentId"`
	MinutesBefore int                 `json:"minutesBefore"`
	Channel       NotificationChannel `json:"channel"`
	RecipientPhone string             `json:"recipientPhone"`
	Sent          bool                `json:"sent"`
	SentAt        *time.Time          `json:"sentAt,omitempty"`
	Error         string              `json:"error,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type Appointment struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Category    string     `json:"category"`
	MemberID    string     `json:"memberId,omitempty"`
	Member      *MemberRef `json:"member,omitempty"`
	Notifications []AppointmentNotification `json:"notifications"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
