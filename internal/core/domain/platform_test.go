package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/resell-phones/internal/core/domain"
)

func TestFeeModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fee     domain.FeeModel
		wantErr bool
	}{
		{"percentage", domain.PercentageFee("0.10"), false},
		{"mixed", domain.MixedFee("0.08", "2.00"), false},
		{"zero_rate", domain.PercentageFee("0"), false},
		{"rate_of_one", domain.PercentageFee("1"), true},
		{"rate_above_one", domain.MixedFee("1.2", "0"), true},
		{"negative_rate", domain.PercentageFee("-0.01"), true},
		{"negative_flat_fee", domain.MixedFee("0.05", "-1"), true},
		{"unknown_type", domain.FeeModel{Type: "auction"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fee.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFeeModel)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConditionMapping_Label(t *testing.T) {
	mapping := domain.ConditionMapping{
		domain.ConditionGood: {"X": "Good"},
	}

	assert.Equal(t, "Good", mapping.Label(domain.ConditionGood, "X"))
	assert.Equal(t, domain.UnknownCondition, mapping.Label(domain.ConditionGood, "Y"))
	assert.Equal(t, domain.UnknownCondition, mapping.Label(domain.ConditionFair, "X"))
	assert.Equal(t, domain.UnknownCondition, domain.ConditionMapping(nil).Label(domain.ConditionFair, "X"))
}

func TestPhoneView_JSON(t *testing.T) {
	price := decimal.RequireFromString("533.33")
	view := domain.NewPhoneView(domain.Phone{
		ID:        "phone-001",
		Model:     "iPhone 12 Pro",
		BaseCost:  decimal.RequireFromString("400"),
		Condition: domain.ConditionLikeNew,
		Stock:     5,
	})
	view.IsListed = true
	view.PlatformListings["X"] = domain.PlatformListing{SellingPrice: &price, MappedCondition: "New", CanList: true}
	view.PlatformListings["Y"] = domain.PlatformListing{MappedCondition: "3 Stars (Excellent)"}

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "phone-001", raw["id"])
	assert.Equal(t, true, raw["is_listed"])
	assert.Equal(t, false, raw["is_sold_b2b_or_direct_flag"])
	assert.Equal(t, []any{}, raw["not_listed_reasons"])

	listings := raw["platform_listings"].(map[string]any)
	x := listings["X"].(map[string]any)
	assert.Equal(t, 533.33, x["selling_price"])
	y := listings["Y"].(map[string]any)
	assert.Nil(t, y["selling_price"])
	assert.Equal(t, false, y["can_list"])
}
