// internal/adapters/memory/seed.go
package memory

import (
	"github.com/shopspring/decimal"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

// SamplePhones returns the fixed demo inventory loaded at startup
func SamplePhones() []domain.Phone {
	sample := func(id, model, cost string, condition domain.ConditionGrade, stock int, b2b bool) domain.Phone {
		return domain.Phone{
			ID:              id,
			Model:           model,
			BaseCost:        decimal.RequireFromString(cost),
			Condition:       condition,
			Stock:           stock,
			SoldB2BOrDirect: b2b,
		}
	}

	return []domain.Phone{
		sample("phone-001", "iPhone 12 Pro", "400.00", domain.ConditionLikeNew, 5, false),
		sample("phone-002", "Samsung Galaxy S21", "300.00", domain.ConditionGood, 3, false),
		sample("phone-003", "Google Pixel 5", "200.00", domain.ConditionFair, 1, false),
		sample("phone-004", "OnePlus 9", "350.00", domain.ConditionLikeNew, 0, false),
		sample("phone-005", "Xiaomi Mi 11", "100.00", domain.ConditionFair, 2, false),
		sample("phone-006", "iPhone SE (2nd Gen)", "250.00", domain.ConditionGood, 1, true),
		sample("phone-007", "Oppo Find X3 Pro", "50.00", domain.ConditionGood, 1, false),
	}
}
