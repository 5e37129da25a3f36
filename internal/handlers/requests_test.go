// internal/handlers/requests_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/handlers"
)

func TestUpdatePhoneRequest_ToPatch(t *testing.T) {
	tests := []struct {
		name          string
		body          map[string]any
		expectedStock *int
		expectedFlag  *bool
		expectedError string
	}{
		{
			name:          "integer_number",
			body:          map[string]any{"stock": json.Number("4")},
			expectedStock: intPtr(4),
		},
		{
			name:          "integral_string",
			body:          map[string]any{"stock": " 12 "},
			expectedStock: intPtr(12),
		},
		{
			name:          "trailing_zero_decimal_is_integral",
			body:          map[string]any{"stock": json.Number("5.0")},
			expectedStock: intPtr(5),
		},
		{
			name:          "fractional_number",
			body:          map[string]any{"stock": json.Number("5.5")},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:          "leading_zero_stock_is_decimal",
			body:          map[string]any{"stock": "010"},
			expectedStock: intPtr(10),
		},
		{
			name:          "zero_fraction_string_stock",
			body:          map[string]any{"stock": "7.00"},
			expectedStock: intPtr(7),
		},
		{
			name:          "hex_stock",
			body:          map[string]any{"stock": "0x10"},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:          "binary_stock",
			body:          map[string]any{"stock": "0b11"},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:          "underscored_stock",
			body:          map[string]any{"stock": "1_000"},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:          "null_stock",
			body:          map[string]any{"stock": nil},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:          "boolean_stock",
			body:          map[string]any{"stock": false},
			expectedError: domain.MsgPatchStockFormat,
		},
		{
			name:         "flag_only",
			body:         map[string]any{"sold_b2b_or_direct": false},
			expectedFlag: boolPtr(false),
		},
		{
			name:          "string_flag",
			body:          map[string]any{"sold_b2b_or_direct": "true"},
			expectedError: domain.MsgPatchFlagFormat,
		},
		{
			name: "other_fields_ignored",
			body: map[string]any{"model": "renamed", "base_cost": json.Number("1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := handlers.UpdatePhoneRequest(tt.body).ToPatch()

			if tt.expectedError != "" {
				var validationErr *domain.ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.expectedError, validationErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStock, patch.Stock)
			assert.Equal(t, tt.expectedFlag, patch.SoldB2BOrDirect)
		})
	}
}

func TestAddPhoneRequest_ToInput(t *testing.T) {
	req := handlers.AddPhoneRequest{
		Model:     "Galaxy S23",
		BaseCost:  json.Number("0.10"),
		Condition: "Good",
		Stock:     json.Number("0"),
	}

	input, err := req.ToInput()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.1").Equal(input.BaseCost))
	assert.Equal(t, 0, input.Stock)

	t.Run("stock_strings_are_base_10", func(t *testing.T) {
		tests := []struct {
			name          string
			stock         string
			expectedStock int
			expectedError string
		}{
			{name: "leading_zero", stock: "010", expectedStock: 10},
			{name: "hex", stock: "0x10", expectedError: domain.MsgInvalidNumberFormat},
			{name: "octal_prefix", stock: "0o7", expectedError: domain.MsgInvalidNumberFormat},
			{name: "underscore", stock: "1_000", expectedError: domain.MsgInvalidNumberFormat},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := req
				r.Stock = tt.stock

				input, err := r.ToInput()
				if tt.expectedError != "" {
					require.Error(t, err)
					assert.Equal(t, tt.expectedError, err.Error())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.expectedStock, input.Stock)
			})
		}
	})

	req.Condition = 3
	_, err = req.ToInput()
	require.Error(t, err)
	assert.Equal(t, domain.MsgMissingFields, err.Error())
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }
