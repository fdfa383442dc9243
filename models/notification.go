package models

import "time"

// Notification is a message pushed to the owning user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// PrimaryKey implements the realtime list key contract.
func (n Notification) PrimaryKey() string {
	return n.ID
}

// NotificationList is the notification panel payload.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// NewFeedbackNotificationMessage is the message created when a customer submits feedback.
const NewFeedbackNotificationMessage = "New feedback received"
