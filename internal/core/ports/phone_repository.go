// internal/core/ports/phone_repository.go
package ports

import (
	"context"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

// PhoneRepository defines the persistence port for phones.
// This interface is implemented by the memory and redis adapters.
type PhoneRepository interface {
	Save(ctx context.Context, phone *domain.Phone) error
	Update(ctx context.Context, phone *domain.Phone) error
	// FindByID returns domain.ErrPhoneNotFound for an unknown id
	FindByID(ctx context.Context, id string) (*domain.Phone, error)
	// FindAll returns every phone in insertion order
	FindAll(ctx context.Context) ([]domain.Phone, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}
