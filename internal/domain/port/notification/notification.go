package notification

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// EventPublisher delivers transaction events to the owner's subscribers.
// Delivery is at-most-once; implementations must not block on slow consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.TransactionEvent) error
}

// EventSubscriber hands out per-user event streams
type EventSubscriber interface {
	// Subscribe returns a channel of userID's events and a function that ends the subscription
	Subscribe(userID uint64) (<-chan entity.TransactionEvent, func())
}

// Mailer sends transactional email
type Mailer interface {
	// SendCode mails a verification or reset code to the address
	SendCode(ctx context.Context, to, code string, purpose entity.VerificationPurpose) error
}
