package model

import "time"

// NotificationSettings is a singleton record per account; its defaults
// pre-fill the notification rows of the appointment dialog.
type NotificationSettings struct {
	ID             string              `json:"id"`
	DefaultPhone   string              `json:"defaultPhone,omitempty"`
	DefaultChannel NotificationChannel `json:"defaultChannel"`
	DefaultMinutes int                 `json:"defaultMinutes"`
	Timezone       string              `json:"timezone"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
