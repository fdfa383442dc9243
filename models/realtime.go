package models

import (
	"encoding/json"
	"fmt"
)

// Entity names a realtime-observable table.
type Entity string

const (
	EntityFeedbacks     Entity = "feedbacks"
	EntityNotifications Entity = "notifications"
	EntityQRCodes       Entity = "qr_codes"
)

// Valid reports whether e can be subscribed to.
func (e Entity) Valid() bool {
	switch e {
	case EntityFeedbacks, EntityNotifications, EntityQRCodes:
		return true
	}
	return false
}

// ChangeType is the kind of row change carried by an event.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Topic is the (entity, user) pair a realtime channel is bound to.
type Topic struct {
	Entity Entity
	UserID string
}

// String renders the topic as a broker channel name.
func (t Topic) String() string {
	return fmt.Sprintf("veepo:realtime:%s:%s", t.Entity, t.UserID)
}

// ChangeEvent is a row change pushed to subscribers. Record holds the new row as JSON.
type ChangeEvent struct {
	Entity Entity          `json:"entity"`
	Type   ChangeType      `json:"type"`
	UserID string          `json:"user_id"`
	Record json.RawMessage `json:"record"`
}

// Topic returns the channel the event belongs to.
func (e ChangeEvent) Topic() Topic {
	return Topic{Entity: e.Entity, UserID: e.UserID}
}

// NewChangeEvent marshals record into an event.
func NewChangeEvent(entity Entity, changeType ChangeType, userID string, record any) (ChangeEvent, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return ChangeEvent{}, fmt.Errorf("marshal %s record: %w", entity, err)
	}
	return ChangeEvent{Entity: entity, Type: changeType, UserID: userID, Record: raw}, nil
}
