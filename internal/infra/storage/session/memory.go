package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

type memoryEntry struct {
	form      *domain.Form
	expiresAt time.Time // нулевое значение - без срока хранения
}

// MemoryRepository хранилище форм в памяти процесса.
// Хранит копии: вызывающий код не может изменить сохраненную форму без Update.
// Как и в Redis, каждая запись живет ttl с момента последней записи.
type MemoryRepository struct {
	mu           sync.RWMutex
	forms        map[string]memoryEntry
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewMemoryRepository создает пустое хранилище; ttl <= 0 отключает истечение
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		forms:        make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: realTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени
func (r *MemoryRepository) WithTimeProvider(tp TimeProvider) *MemoryRepository {
	r.timeProvider = tp
	return r
}

// Create сохраняет новую форму
func (r *MemoryRepository) Create(ctx context.Context, form *domain.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if entry, exists := r.forms[form.ID]; exists && !entry.expired(now) {
		return ErrFormExists
	}
	r.forms[form.ID] = r.entry(form, now)
	return nil
}

// Get возвращает копию формы по ID
func (r *MemoryRepository) Get(ctx context.Context, id string) (*domain.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.forms[id]
	if !ok || entry.expired(r.timeProvider.Now()) {
		return nil, ErrFormNotFound
	}
	return entry.form.Clone(), nil
}

// Update заменяет сохраненную форму и продлевает срок хранения
func (r *MemoryRepository) Update(ctx context.Context, form *domain.Form) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	entry, ok := r.forms[form.ID]
	if !ok || entry.expired(now) {
		return ErrFormNotFound
	}
	r.forms[form.ID] = r.entry(form, now)
	return nil
}

// DeleteExpired удаляет истекшие формы и возвращает их количество
func (r *MemoryRepository) DeleteExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	removed := 0
	for id, entry := range r.forms {
		if entry.expired(now) {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает DeleteExpired до отмены ctx
func (r *MemoryRepository) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.DeleteExpired()
		}
	}
}

// Len returns the number of stored entries, expired ones included
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.forms)
}

// Close is a no-op for the memory store
func (r *MemoryRepository) Close() error {
	return nil
}

func (r *MemoryRepository) entry(form *domain.Form, now time.Time) memoryEntry {
	e := memoryEntry{form: form.Clone()}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	return e
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
