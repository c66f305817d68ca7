package transaction

import (
	"context"
	"sync"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// defaultQueueSize bounds the number of writes waiting per user
const defaultQueueSize = 100

// WriteFunc performs one ledger write on behalf of a user
type WriteFunc func(ctx context.Context) (*entity.Transaction, error)

// TransactionManager runs the writes of each user one at a time, in arrival
// order. Writes of different users run concurrently.
type TransactionManager struct {
	logger    coreport.Logger
	queueSize int

	// User-based write queues for strict ordering
	userQueues     sync.Map // map[uint64]chan *writeRequest
	queueWaitGroup sync.WaitGroup

	// Guards sends against Shutdown closing the queues
	mu     sync.RWMutex
	closed bool
}

type writeRequest struct {
	ctx        context.Context
	userID     uint64
	write      WriteFunc
	resultChan chan writeResult
}

type writeResult struct {
	tx  *entity.Transaction
	err error
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(logger coreport.Logger) *TransactionManager {
	return &TransactionManager{
		logger:    logger,
		queueSize: defaultQueueSize,
	}
}

// Enqueue appends write to the user's queue and waits for its result.
// A canceled context abandons the wait; a write that has not started is skipped.
func (m *TransactionManager) Enqueue(ctx context.Context, userID uint64, write WriteFunc) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return nil, errs.ErrInternalServer
	}

	queueIface, loaded := m.userQueues.LoadOrStore(userID, make(chan *writeRequest, m.queueSize))
	queue, ok := queueIface.(chan *writeRequest)
	if !ok {
		m.mu.RUnlock()
		m.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		m.logger.Debug("Starting write queue worker for user", map[string]any{
			"user_id": userID,
		})
		m.queueWaitGroup.Add(1)
		go m.processUserWrites(userID, queue)
	}

	req := &writeRequest{
		ctx:        ctx,
		userID:     userID,
		write:      write,
		resultChan: make(chan writeResult, 1),
	}

	select {
	case queue <- req:
		m.mu.RUnlock()
	case <-ctx.Done():
		m.mu.RUnlock()
		m.logger.Warn("Context canceled while enqueueing write", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	select {
	case result := <-req.resultChan:
		return result.tx, result.err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for write result", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processUserWrites drains one user's queue sequentially
func (m *TransactionManager) processUserWrites(userID uint64, queue chan *writeRequest) {
	defer m.queueWaitGroup.Done()

	for req := range queue {
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- writeResult{err: err}
			continue
		}
		tx, err := req.write(req.ctx)
		req.resultChan <- writeResult{tx: tx, err: err}
	}

	m.logger.Debug("Write queue worker stopped", map[string]any{
		"user_id": userID,
	})
}

// Shutdown stops accepting writes, lets queued writes finish and waits for the workers
func (m *TransactionManager) Shutdown() {
	m.logger.Info("Shutting down transaction manager", nil)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.userQueues.Range(func(_, queueIface any) bool {
		if queue, ok := queueIface.(chan *writeRequest); ok {
			close(queue)
		}
		return true
	})
	m.mu.Unlock()

	m.queueWaitGroup.Wait()
	m.logger.Info("Transaction manager shut down successfully", nil)
}
