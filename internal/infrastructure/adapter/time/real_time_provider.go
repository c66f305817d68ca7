package time

import (
	"context"
	"fmt"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// RealTimeProvider reads the wall clock in a fixed location. Calendar rules such
// as "today" and "current month" follow that location.
type RealTimeProvider struct {
	loc *time.Location
}

// NewRealTimeProvider creates a provider in the named IANA zone; empty means UTC
func NewRealTimeProvider(timezone string) (core.TimeProvider, error) {
	if timezone == "" {
		return &RealTimeProvider{loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &RealTimeProvider{loc: loc}, nil
}

// Now returns the current time in the provider's location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.loc)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Until returns the duration until t
func (p *RealTimeProvider) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}

// Sleep pauses the current goroutine for the specified duration
func (p *RealTimeProvider) Sleep(d core.Duration) {
	time.Sleep(d.Std())
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// ParseDuration parses a duration string
func (p *RealTimeProvider) ParseDuration(s string) (core.Duration, error) {
	d, err := time.ParseDuration(s)
	return core.Duration(d), err
}

// FixedTimeProvider always reports the same instant
type FixedTimeProvider struct {
	RealTimeProvider
	now time.Time
}

// NewFixedTimeProvider pins Now to t
func NewFixedTimeProvider(t time.Time) *FixedTimeProvider {
	return &FixedTimeProvider{RealTimeProvider: RealTimeProvider{loc: t.Location()}, now: t}
}

// Now returns the pinned instant
func (p *FixedTimeProvider) Now() time.Time {
	return p.now
}
