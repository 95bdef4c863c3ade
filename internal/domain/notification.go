package domain

import "time"

type Notification struct {
	NotificationID int64      `json:"notificationId"`
	UserID         int64      `json:"userId"`
	Message        string     `json:"message"`
	Type           string     `json:"type,omitempty"`
	Read           bool       `json:"read"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

func (n Notification) EntityID() int64 { return n.NotificationID }

func (n Notification) Validate() error {
	return requirePositiveID("notification", "notificationId", n.NotificationID)
}

type UnreadCount struct {
	Count int `json:"count"`
}

func (c UnreadCount) Validate() error {
	if c.Count < 0 {
		return invalid("unread count", "count must not be negative, got %d", c.Count)
	}

	return nil
}
