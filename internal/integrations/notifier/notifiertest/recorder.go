// Package notifiertest provides an in-memory notifier for tests.
package notifiertest

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// Recorder запоминает доставленные подтверждения.
// После Fail(err) каждая доставка возвращает err и ничего не запоминает.
type Recorder struct {
	mu            sync.Mutex
	confirmations []domain.Confirmation
	err           error
}

// NewRecorder создает пустой Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Fail makes subsequent Notify calls return err; nil restores delivery
func (r *Recorder) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Notify stores a copy of the confirmation
func (r *Recorder) Notify(ctx context.Context, c *domain.Confirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.confirmations = append(r.confirmations, *c)
	return nil
}

// Confirmations returns the delivered confirmations in order
func (r *Recorder) Confirmations() []domain.Confirmation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Confirmation, len(r.confirmations))
	copy(out, r.confirmations)
	return out
}
