package models

// NotificationType groups notifications in the panel
type NotificationType string

const (
	NotificationOrder    NotificationType = "order"
	NotificationDelivery NotificationType = "delivery"
)

// Notification is an informational message with a read flag.
// Time is a relative label such as "5 мин назад", not a timestamp.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
}
