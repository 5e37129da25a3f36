// internal/core/ports/phone_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

// PhoneService defines the application service port for the phone inventory.
// This interface is implemented by the application service.
type PhoneService interface {
	ListPhones(ctx context.Context) ([]domain.PhoneView, error)
	GetPhone(ctx context.Context, id string) (*domain.PhoneView, error)
	AddPhone(ctx context.Context, input AddPhoneInput) (string, error)
	UpdatePhone(ctx context.Context, id string, patch domain.PhonePatch) (*domain.Phone, error)
	Catalog() domain.PlatformCatalog
}

// AddPhoneInput holds the already-typed fields of a new phone
type AddPhoneInput struct {
	Model     string
	BaseCost  decimal.Decimal
	Condition domain.ConditionGrade
	Stock     int
}

// AuthService exchanges credentials for a session token
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}
