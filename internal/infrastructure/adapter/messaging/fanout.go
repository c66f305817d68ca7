package messaging

import (
	"context"
	"errors"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
)

// Fanout publishes each event to every publisher, even when an earlier one fails
type Fanout []notification.EventPublisher

// Publish returns the joined errors of the failing publishers
func (f Fanout) Publish(ctx context.Context, ev entity.TransactionEvent) error {
	var failures []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
