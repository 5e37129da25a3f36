// internal/core/services/phone.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
	"github.com/ammerola/resell-phones/internal/core/pricing"
)

// PhoneService owns the phone inventory and prices it on every read
type PhoneService struct {
	repo   ports.PhoneRepository
	engine *pricing.Engine
	logger *slog.Logger

	// mu serializes mutations so a read-modify-write on one phone never
	// interleaves with another.
	mu sync.Mutex
}

// Statically assert that *PhoneService implements the PhoneService interface.
var _ ports.PhoneService = (*PhoneService)(nil)

// NewPhoneService creates a new phone service
func NewPhoneService(repo ports.PhoneRepository, engine *pricing.Engine, logger *slog.Logger) *PhoneService {
	return &PhoneService{
		repo:   repo,
		engine: engine,
		logger: logger.With(slog.String("service", "phones")),
	}
}

// Catalog returns the platform catalog phones are priced against
func (s *PhoneService) Catalog() domain.PlatformCatalog {
	return s.engine.Catalog()
}

// ListPhones returns every phone with its listing decision, listed first
func (s *PhoneService) ListPhones(ctx context.Context) ([]domain.PhoneView, error) {
	phones, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}

	views := s.engine.EvaluateAll(ctx, phones)

	s.logger.DebugContext(ctx, "listed phones", slog.Int("count", len(views)))

	return views, nil
}

// GetPhone returns a single phone with its listing decision
func (s *PhoneService) GetPhone(ctx context.Context, id string) (*domain.PhoneView, error) {
	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}

	view := s.engine.Evaluate(ctx, *phone)
	return &view, nil
}

// AddPhone validates and stores a new phone. New phones are never
// committed to a B2B/direct sale.
func (s *PhoneService) AddPhone(ctx context.Context, input ports.AddPhoneInput) (string, error) {
	phone := &domain.Phone{
		Model:     input.Model,
		BaseCost:  input.BaseCost,
		Condition: input.Condition,
		Stock:     input.Stock,
	}

	if err := phone.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	phone.PrepareForStorage()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, phone); err != nil {
		return "", fmt.Errorf("failed to save phone: %w", err)
	}

	s.logger.InfoContext(ctx, "phone added",
		slog.String("phone_id", phone.ID),
		slog.String("model", phone.Model),
		slog.String("base_cost", phone.BaseCost.StringFixed(2)),
		slog.String("condition", string(phone.Condition)),
		slog.Int("stock", phone.Stock))

	return phone.ID, nil
}

// UpdatePhone applies patch to the phone with the given id. The whole patch
// is validated before any field changes.
func (s *PhoneService) UpdatePhone(ctx context.Context, id string, patch domain.PhonePatch) (*domain.Phone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	phone, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if patch.IsEmpty() {
		return phone, nil
	}

	patch.Apply(phone)

	if err := s.repo.Update(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}

	attrs := []any{slog.String("phone_id", phone.ID)}
	if patch.Stock != nil {
		attrs = append(attrs, slog.Int("stock", phone.Stock))
	}
	if patch.SoldB2BOrDirect != nil {
		attrs = append(attrs, slog.Bool("sold_b2b_or_direct", phone.SoldB2BOrDirect))
	}
	s.logger.InfoContext(ctx, "phone updated", attrs...)

	return phone, nil
}

// Seed stores phones as-is, keeping their identifiers
func (s *PhoneService) Seed(ctx context.Context, phones []domain.Phone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range phones {
		phone := phones[i]
		if err := phone.Validate(); err != nil {
			return fmt.Errorf("invalid seed phone %s: %w", phone.ID, err)
		}
		phone.PrepareForStorage()

		if err := s.repo.Save(ctx, &phone); err != nil {
			return fmt.Errorf("failed to seed phone %s: %w", phone.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "seeded phones", slog.Int("count", len(phones)))
	return nil
}
