package messaging

import (
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// TransactionPayload is the wire form of a transaction inside an event
type TransactionPayload struct {
	ID          uint64 `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Account     string `json:"account"`
}

// EventMessage is the JSON body of a transaction event, shared by the
// broker publisher and the server-sent event stream
type EventMessage struct {
	ID            string              `json:"id"`
	Kind          string              `json:"kind"`
	UserID        uint64              `json:"userId"`
	TransactionID uint64              `json:"transactionId"`
	Transaction   *TransactionPayload `json:"transaction,omitempty"`
	OccurredAt    time.Time           `json:"occurredAt"`
}

// NewEventMessage converts a domain event to its wire form
func NewEventMessage(ev entity.TransactionEvent) EventMessage {
	msg := EventMessage{
		ID:            ev.ID.String(),
		Kind:          string(ev.Kind),
		UserID:        ev.UserID,
		TransactionID: ev.TransactionID,
		OccurredAt:    ev.OccurredAt.UTC(),
	}
	if tx := ev.Transaction; tx != nil {
		msg.Transaction = &TransactionPayload{
			ID:          tx.ID,
			Date:        tx.Date.Format(time.DateOnly),
			Description: tx.Description,
			Amount:      entity.FormatAmount(tx.Amount),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Account:     tx.Account,
		}
	}
	return msg
}
