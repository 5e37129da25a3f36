// internal/core/pricing/catalog.go
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

// Platform names
const (
	PlatformX = "PlatformX"
	PlatformY = "PlatformY"
	PlatformZ = "PlatformZ"
)

// DefaultProfitMargin is the markup applied to base cost before fees
var DefaultProfitMargin = decimal.RequireFromString("0.20")

// DefaultCatalog returns the platforms the business sells on, their fee
// models and the condition vocabulary each one uses. Every call returns a
// fresh copy.
func DefaultCatalog() domain.PlatformCatalog {
	return domain.PlatformCatalog{
		Platforms: []domain.Platform{
			{Name: PlatformX, Fee: domain.PercentageFee("0.10")},
			{Name: PlatformY, Fee: domain.MixedFee("0.08", "2.00")},
			{Name: PlatformZ, Fee: domain.PercentageFee("0.12")},
		},
		Conditions: domain.ConditionMapping{
			domain.ConditionLikeNew: {
				PlatformX: "New",
				PlatformY: "3 Stars (Excellent)",
				PlatformZ: "New",
			},
			domain.ConditionGood: {
				PlatformX: "Good",
				PlatformY: "2 Stars (Good)",
				PlatformZ: "As New",
			},
			domain.ConditionFair: {
				PlatformX: "Scrap",
				PlatformY: "1 Star (Usable)",
				PlatformZ: "Good",
			},
		},
		ProfitMargin: DefaultProfitMargin,
	}
}
