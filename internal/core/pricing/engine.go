// internal/core/pricing/engine.go
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// MinimumSellingPrice returns the lowest price S at which the seller nets
// baseCost * (1 + margin) after the platform deducts its fee:
//
//	percentage: S = T / (1 - r)
//	mixed:      S = (T + f) / (1 - r)
//
// The result is rounded to cents. A fee model that cannot be priced, or a
// price that would fall below base cost, yields ErrPricingUnavailable.
func MinimumSellingPrice(baseCost decimal.Decimal, fee domain.FeeModel, margin decimal.Decimal) (decimal.Decimal, error) {
	if err := fee.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", domain.ErrPricingUnavailable, err)
	}

	target := baseCost.Mul(one.Add(margin))
	if fee.Type == domain.FeeMixed {
		target = target.Add(fee.FlatFee)
	}

	price := target.Div(one.Sub(fee.Rate))
	if price.LessThan(baseCost) {
		return decimal.Zero, fmt.Errorf("%w: price %s is below base cost %s",
			domain.ErrPricingUnavailable, price.StringFixed(2), baseCost.StringFixed(2))
	}

	return price.Round(2), nil
}

// Engine prices phones against a fixed platform catalog. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	catalog domain.PlatformCatalog
	logger  *slog.Logger
}

// NewEngine creates a pricing engine for the given catalog
func NewEngine(catalog domain.PlatformCatalog, logger *slog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "pricing")),
	}
}

// Catalog returns the catalog the engine prices against
func (e *Engine) Catalog() domain.PlatformCatalog {
	return e.catalog
}

// MinimumSellingPrice prices baseCost on the named platform
func (e *Engine) MinimumSellingPrice(ctx context.Context, baseCost decimal.Decimal, platform string) (decimal.Decimal, error) {
	p, ok := e.catalog.Platform(platform)
	if !ok {
		e.logger.WarnContext(ctx, "unknown platform", slog.String("platform", platform))
		return decimal.Zero, fmt.Errorf("%w: %w %q", domain.ErrPricingUnavailable, domain.ErrUnknownPlatform, platform)
	}

	price, err := MinimumSellingPrice(baseCost, p.Fee, e.catalog.ProfitMargin)
	if err != nil {
		level := slog.LevelDebug
		if errors.Is(err, domain.ErrInvalidFeeModel) {
			level = slog.LevelWarn
		}
		e.logger.Log(ctx, level, "cannot price phone",
			slog.String("platform", platform),
			slog.String("base_cost", baseCost.StringFixed(2)),
			slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	return price, nil
}

// MapCondition returns the platform's label for grade. It never fails;
// unmapped pairs resolve to domain.UnknownCondition.
func (e *Engine) MapCondition(grade domain.ConditionGrade, platform string) string {
	return e.catalog.Conditions.Label(grade, platform)
}
