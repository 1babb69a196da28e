package domain

import "fmt"

type NotificationType string

const (
	NotificationTypeSystem   NotificationType = "SYSTEM"
	NotificationTypeResource NotificationType = "RESOURCE"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityNormal NotificationPriority = "NORMAL"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
)

// NotificationAction is an optional deep link attached to a notification.
type NotificationAction struct {
	Type   string `json:"type"`
	Target string `json:"target"`
}

// Notification is an in-app message. Private notifications live under the
// recipient's node, global ones under a shared node visible to everyone.
type Notification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Icon      string               `json:"icon"`
	Priority  NotificationPriority `json:"priority"`
	Action    *NotificationAction  `json:"action,omitempty"`
	Read      bool                 `json:"read"`
	CreatedAt int64                `json:"createdAt"` // epoch millis
}

// Validate checks the shape of a notification decoded from the document store.
func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification: missing id")
	}
	switch n.Type {
	case NotificationTypeSystem, NotificationTypeResource:
	default:
		return fmt.Errorf("notification %s: unknown type %q", n.ID, n.Type)
	}
	if n.Title == "" {
		return fmt.Errorf("notification %s: missing title", n.ID)
	}
	return nil
}
