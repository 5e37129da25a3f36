// internal/core/domain/phone.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Money values go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ConditionGrade represents the internal condition of a phone
type ConditionGrade string

// Condition constants
const (
	ConditionLikeNew ConditionGrade = "Like New"
	ConditionGood    ConditionGrade = "Good"
	ConditionFair    ConditionGrade = "Fair"
)

// ConditionGrades lists the known grades in display order.
func ConditionGrades() []ConditionGrade {
	return []ConditionGrade{ConditionLikeNew, ConditionGood, ConditionFair}
}

// IsValid reports whether g is one of the known grades
func (g ConditionGrade) IsValid() bool {
	for _, known := range ConditionGrades() {
		if g == known {
			return true
		}
	}
	return false
}

// Validation messages returned to API clients
const (
	MsgMissingFields       = "Missing required fields (model, base_cost, condition, stock)"
	MsgInvalidNumberFormat = "Invalid base_cost or stock format. Must be numbers."
	MsgBaseCostNotPositive = "Base cost must be greater than 0"
	MsgStockNegative       = "Stock cannot be negative"
	MsgPatchStockNegative  = "Stock cannot be negative."
	MsgPatchStockFormat    = "Invalid stock format. Must be an integer."
	MsgPatchFlagFormat     = "sold_b2b_or_direct must be a boolean (true/false)"
)

// InvalidConditionMessage lists the accepted condition grades
func InvalidConditionMessage() string {
	names := make([]string, 0, len(ConditionGrades()))
	for _, g := range ConditionGrades() {
		names = append(names, string(g))
	}
	return fmt.Sprintf("Invalid condition. Must be one of: %s", strings.Join(names, ", "))
}

// Phone represents a single phone record held in inventory
type Phone struct {
	ID              string          `json:"id"`
	Model           string          `json:"model"`
	BaseCost        decimal.Decimal `json:"base_cost"`
	Condition       ConditionGrade  `json:"condition"`
	Stock           int             `json:"stock"`
	SoldB2BOrDirect bool            `json:"sold_b2b_or_direct"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the phone
func (p *Phone) Validate() error {
	if strings.TrimSpace(p.Model) == "" {
		return NewValidationError("model", MsgMissingFields)
	}
	if !p.BaseCost.IsPositive() {
		return NewValidationError("base_cost", MsgBaseCostNotPositive)
	}
	if p.Stock < 0 {
		return NewValidationError("stock", MsgStockNegative)
	}
	if !p.Condition.IsValid() {
		return NewValidationError("condition", InvalidConditionMessage())
	}
	return nil
}

// PrepareForStorage assigns an identifier and timestamps
func (p *Phone) PrepareForStorage() {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// PhonePatch is a partial update. Nil fields are left untouched.
type PhonePatch struct {
	Stock           *int
	SoldB2BOrDirect *bool
}

// IsEmpty reports whether the patch changes nothing
func (p PhonePatch) IsEmpty() bool {
	return p.Stock == nil && p.SoldB2BOrDirect == nil
}

// Validate checks every field of the patch before any is applied
func (p PhonePatch) Validate() error {
	if p.Stock != nil && *p.Stock < 0 {
		return NewValidationError("stock", MsgPatchStockNegative)
	}
	return nil
}

// Apply copies the set fields of the patch onto phone
func (p PhonePatch) Apply(phone *Phone) {
	if p.Stock != nil {
		phone.Stock = *p.Stock
	}
	if p.SoldB2BOrDirect != nil {
		phone.SoldB2BOrDirect = *p.SoldB2BOrDirect
	}
	phone.UpdatedAt = time.Now()
}
