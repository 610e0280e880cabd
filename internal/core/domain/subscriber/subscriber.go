package subscriber

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a subscriber. A subscriber is created
// pending and moves to confirmed exactly once, never back.
type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingConfirmation, StatusConfirmed:
		return true
	default:
		return false
	}
}

// ErrTokenNotFound is returned when a confirmation token does not map to any
// subscriber.
var ErrTokenNotFound = errors.New("subscription token not found")

// Subscriber is the persistent newsletter subscriber entity. Email and Name
// hold the canonical string form of validated values; every construction path
// goes through ParseEmail/ParseName first.
type Subscriber struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	SubscribedAt time.Time `json:"subscribed_at" db:"subscribed_at"`
	Status       Status    `json:"status" db:"status"`
}

// New creates a pending subscriber with a fresh id and a UTC creation
// timestamp.
func New(email Email, name Name) *Subscriber {
	return &Subscriber{
		ID:           uuid.New(),
		Email:        email.String(),
		Name:         name.String(),
		SubscribedAt: time.Now().UTC(),
		Status:       StatusPendingConfirmation,
	}
}
