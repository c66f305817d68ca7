package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a transaction change pushed to the owner's clients
type EventKind string

const (
	EventTransactionAdded   EventKind = "transaction:added"
	EventTransactionUpdated EventKind = "transaction:updated"
	EventTransactionDeleted EventKind = "transaction:deleted"
)

// TransactionEvent is delivered only to subscribers of UserID
type TransactionEvent struct {
	ID            uuid.UUID
	Kind          EventKind
	UserID        uint64
	Transaction   *Transaction
	TransactionID uint64
	OccurredAt    time.Time
}

// NewTransactionEvent stamps a new event with a random id
func NewTransactionEvent(kind EventKind, userID uint64, tx *Transaction, occurredAt time.Time) TransactionEvent {
	ev := TransactionEvent{
		ID:         uuid.New(),
		Kind:       kind,
		UserID:     userID,
		OccurredAt: occurredAt,
	}
	if tx != nil {
		ev.Transaction = tx
		ev.TransactionID = tx.ID
	}
	return ev
}
