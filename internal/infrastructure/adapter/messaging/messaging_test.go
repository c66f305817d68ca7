package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
)

var occurred = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func groceriesEvent(userID uint64) entity.TransactionEvent {
	tx := &entity.Transaction{
		ID:          9,
		UserID:      userID,
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.RequireFromString("300.50"),
		Type:        entity.TypeExpense,
		Category:    "Groceries",
		Account:     entity.DefaultAccount,
	}
	return entity.NewTransactionEvent(entity.EventTransactionAdded, userID, tx, occurred)
}

func TestHubDeliversOnlyToOwner(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())

	mine, cancelMine := hub.Subscribe(1)
	defer cancelMine()
	theirs, cancelTheirs := hub.Subscribe(2)
	defer cancelTheirs()

	require.NoError(t, hub.Publish(context.Background(), groceriesEvent(1)))

	select {
	case ev := <-mine:
		assert.Equal(t, uint64(1), ev.UserID)
		assert.Equal(t, uint64(9), ev.TransactionID)
	case <-time.After(time.Second):
		t.Fatal("owner did not receive event")
	}

	select {
	case ev := <-theirs:
		t.Fatalf("other user received %v", ev.Kind)
	default:
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())
	ch, cancel := hub.Subscribe(3)
	defer cancel()

	for range SubscriberBuffer + 5 {
		require.NoError(t, hub.Publish(context.Background(), groceriesEvent(3)))
	}
	assert.Len(t, ch, SubscriberBuffer)
}

func TestHubCancel(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())
	ch, cancel := hub.Subscribe(4)
	assert.Equal(t, 1, hub.Subscribers(4))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers(4))
	assert.NoError(t, hub.Publish(context.Background(), groceriesEvent(4)))
}

func TestHubClose(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())
	a, cancelA := hub.Subscribe(5)
	b, cancelB := hub.Subscribe(6)

	hub.Close()

	_, open := <-a
	assert.False(t, open)
	_, open = <-b
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers(5))

	// late cancels from the streams are harmless
	cancelA()
	cancelB()
}

func TestHubConcurrentPublishAndCancel(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		_, cancel := hub.Subscribe(5)
		go func() {
			defer wg.Done()
			_ = hub.Publish(context.Background(), groceriesEvent(5))
		}()
		go func() {
			defer wg.Done()
			cancel()
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, hub.Subscribers(5))
}

func TestEventMessage(t *testing.T) {
	msg := NewEventMessage(groceriesEvent(7))

	b, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "transaction:added", decoded["kind"])
	tx := decoded["transaction"].(map[string]any)
	assert.Equal(t, "2025-03-14", tx["date"])
	assert.Equal(t, "300.50", tx["amount"])

	deleted := entity.NewTransactionEvent(entity.EventTransactionDeleted, 7, nil, occurred)
	deleted.TransactionID = 9
	msg = NewEventMessage(deleted)
	assert.Nil(t, msg.Transaction)
	assert.Equal(t, uint64(9), msg.TransactionID)
}

func TestAMQPPublishing(t *testing.T) {
	ev := groceriesEvent(12)
	assert.Equal(t, "user.12.transaction:added", RoutingKey(ev))

	pub, err := newPublishing(ev)
	require.NoError(t, err)
	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, ev.ID.String(), pub.MessageId)
	assert.Equal(t, uint8(2), pub.DeliveryMode)
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, entity.TransactionEvent) error { return f.err }

func TestFanout(t *testing.T) {
	hub := NewHub(logger.NewNoopLogger())
	ch, cancel := hub.Subscribe(1)
	defer cancel()

	brokerDown := errors.New("broker down")
	err := Fanout{failingPublisher{brokerDown}, hub}.Publish(context.Background(), groceriesEvent(1))

	assert.ErrorIs(t, err, brokerDown)
	assert.Len(t, ch, 1, "later publishers still run after a failure")
	assert.NoError(t, Fanout{hub}.Publish(context.Background(), groceriesEvent(1)))
}
