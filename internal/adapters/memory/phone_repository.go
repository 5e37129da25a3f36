// internal/adapters/memory/phone_repository.go
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
)

// PhoneRepository is a process-lifetime phone store. Records are copied in
// and out so callers never alias stored state.
type PhoneRepository struct {
	mu     sync.RWMutex
	phones map[string]domain.Phone
	order  []string
	logger *slog.Logger
}

var _ ports.PhoneRepository = (*PhoneRepository)(nil)

// NewPhoneRepository creates an empty in-memory repository
func NewPhoneRepository(logger *slog.Logger) *PhoneRepository {
	return &PhoneRepository{
		phones: make(map[string]domain.Phone),
		logger: logger.With(slog.String("component", "memory_repository")),
	}
}

// Save stores a new phone
func (r *PhoneRepository) Save(ctx context.Context, phone *domain.Phone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phones[phone.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrPhoneExists, phone.ID)
	}

	r.phones[phone.ID] = *phone
	r.order = append(r.order, phone.ID)

	r.logger.DebugContext(ctx, "phone stored", slog.String("phone_id", phone.ID))
	return nil
}

// Update replaces an existing phone
func (r *PhoneRepository) Update(ctx context.Context, phone *domain.Phone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.phones[phone.ID]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrPhoneNotFound, phone.ID)
	}

	r.phones[phone.ID] = *phone
	return nil
}

// FindByID retrieves a phone by id
func (r *PhoneRepository) FindByID(ctx context.Context, id string) (*domain.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phone, ok := r.phones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPhoneNotFound, id)
	}
	return &phone, nil
}

// FindAll returns every phone in insertion order
func (r *PhoneRepository) FindAll(ctx context.Context) ([]domain.Phone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phones := make([]domain.Phone, 0, len(r.order))
	for _, id := range r.order {
		phones = append(phones, r.phones[id])
	}
	return phones, nil
}

// Count returns the number of stored phones
func (r *PhoneRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.phones)), nil
}

// Ping always succeeds
func (r *PhoneRepository) Ping(ctx context.Context) error {
	return nil
}
