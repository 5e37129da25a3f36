// internal/core/domain/platform.go
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnknownCondition is the label for an unmapped (grade, platform) pair
const UnknownCondition = "Unknown"

// Reasons reported when a phone is not listed
const (
	ReasonOutOfStock           = "Out of Stock"
	ReasonSoldB2BDirect        = "Sold B2B/Direct"
	ReasonUnprofitableOnAll    = "Unprofitable on all platforms"
	reasonUnprofitableOnFormat = "Unprofitable on %s"
)

// UnprofitableOn is the reason reported for a platform that cannot price a phone
func UnprofitableOn(platform string) string {
	return fmt.Sprintf(reasonUnprofitableOnFormat, platform)
}

// FeeType represents how a platform charges fees
type FeeType string

// Fee type constants
const (
	FeePercentage FeeType = "percentage"
	FeeMixed      FeeType = "mixed"
)

// FeeModel describes the fee a platform deducts from each sale.
// FlatFee is only charged by mixed models.
type FeeModel struct {
	Type    FeeType         `json:"type"`
	Rate    decimal.Decimal `json:"rate"`
	FlatFee decimal.Decimal `json:"flat_fee"`
}

// PercentageFee creates a percentage-only fee model
func PercentageFee(rate string) FeeModel {
	return FeeModel{
		Type: FeePercentage,
		Rate: decimal.RequireFromString(rate),
	}
}

// MixedFee creates a percentage plus flat fee model
func MixedFee(rate, flat string) FeeModel {
	return FeeModel{
		Type:    FeeMixed,
		Rate:    decimal.RequireFromString(rate),
		FlatFee: decimal.RequireFromString(flat),
	}
}

// Validate reports whether the fee model can be priced against.
// The rate must lie in [0, 1).
func (f FeeModel) Validate() error {
	if f.Type != FeePercentage && f.Type != FeeMixed {
		return fmt.Errorf("%w: unknown fee type %q", ErrInvalidFeeModel, f.Type)
	}
	if f.Rate.IsNegative() {
		return fmt.Errorf("%w: negative fee rate %s", ErrInvalidFeeModel, f.Rate)
	}
	if f.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: fee rate %s consumes all revenue", ErrInvalidFeeModel, f.Rate)
	}
	if f.Type == FeeMixed && f.FlatFee.IsNegative() {
		return fmt.Errorf("%w: negative flat fee %s", ErrInvalidFeeModel, f.FlatFee)
	}
	return nil
}

// Platform is a resale platform and the fee it charges
type Platform struct {
	Name string   `json:"name"`
	Fee  FeeModel `json:"fee"`
}

// ConditionMapping translates internal grades to each platform's vocabulary
type ConditionMapping map[ConditionGrade]map[string]string

// Label returns the platform label for grade, or UnknownCondition
func (m ConditionMapping) Label(grade ConditionGrade, platform string) string {
	if labels, ok := m[grade]; ok {
		if label, ok := labels[platform]; ok {
			return label
		}
	}
	return UnknownCondition
}

// PlatformCatalog is the full pricing configuration: platforms in
// evaluation order, the condition table and the target profit margin.
type PlatformCatalog struct {
	Platforms    []Platform       `json:"platforms"`
	Conditions   ConditionMapping `json:"conditions"`
	ProfitMargin decimal.Decimal  `json:"profit_margin"`
}

// Platform looks up a platform by name
func (c PlatformCatalog) Platform(name string) (Platform, bool) {
	for _, p := range c.Platforms {
		if p.Name == name {
			return p, true
		}
	}
	return Platform{}, false
}

// PlatformListing is the derived listing state of a phone on one platform.
// It is recomputed on every read and never stored.
type PlatformListing struct {
	SellingPrice    *decimal.Decimal `json:"selling_price"`
	MappedCondition string           `json:"mapped_condition"`
	CanList         bool             `json:"can_list"`
}

// PhoneView is a phone together with its listing decision
type PhoneView struct {
	Phone
	IsSoldB2BOrDirectFlag bool                       `json:"is_sold_b2b_or_direct_flag"`
	IsListed              bool                       `json:"is_listed"`
	NotListedReasons      []string                   `json:"not_listed_reasons"`
	PlatformListings      map[string]PlatformListing `json:"platform_listings"`
}

// NewPhoneView creates an unlisted view of phone with no platform data yet
func NewPhoneView(phone Phone) PhoneView {
	return PhoneView{
		Phone:                 phone,
		IsSoldB2BOrDirectFlag: phone.SoldB2BOrDirect,
		NotListedReasons:      []string{},
		PlatformListings:      make(map[string]PlatformListing),
	}
}
