package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "reservation_audit_logs"
	EntityName = "audit log"

	FieldID        = "id"
	FieldBookingID = "booking_id"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

func (a Action) pastTense() string {
	switch a {
	case ActionCreate:
		return "created"
	case ActionUpdate:
		return "updated"
	default:
		return string(a)
	}
}

// Event records who changed which reservation and when. It is both the kafka payload and the stored row.
type Event struct {
	ID         string    `db:"id"          json:"id"`
	Actor      string    `db:"actor"       json:"actor"`
	Action     Action    `db:"action"      json:"action"`
	BookingID  string    `db:"booking_id"  json:"booking_id"`
	Message    string    `db:"message"     json:"message"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}

func NewEvent(actor string, action Action, bookingID string, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Actor:      actor,
		Action:     action,
		BookingID:  bookingID,
		Message:    fmt.Sprintf("%s %s reservation %s", actor, action.pastTense(), bookingID),
		OccurredAt: at,
	}
}
