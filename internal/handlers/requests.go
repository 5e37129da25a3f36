// internal/handlers/requests.go
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/ammerola/resell-phones/internal/core/domain"
	"github.com/ammerola/resell-phones/internal/core/ports"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON document from the request body. Numbers
// are kept as json.Number so that integers and decimals can be told apart.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// AddPhoneRequest is the body of POST /api/phones. Fields are loosely typed
// on the wire: base_cost and stock may arrive as numbers or numeric strings.
type AddPhoneRequest struct {
	Model     any `json:"model"`
	BaseCost  any `json:"base_cost"`
	Condition any `json:"condition"`
	Stock     any `json:"stock"`
}

// ToInput converts the request into typed service input. Range checks are
// left to the domain.
func (r *AddPhoneRequest) ToInput() (ports.AddPhoneInput, error) {
	model, modelOK := r.Model.(string)
	condition, conditionOK := r.Condition.(string)
	if !modelOK || model == "" || !conditionOK || condition == "" || r.BaseCost == nil || r.Stock == nil {
		return ports.AddPhoneInput{}, domain.NewValidationError("", domain.MsgMissingFields)
	}

	baseCost, err := parseDecimal(r.BaseCost)
	if err != nil {
		return ports.AddPhoneInput{}, domain.NewValidationError("base_cost", domain.MsgInvalidNumberFormat)
	}

	stock, err := parseInt(r.Stock)
	if err != nil {
		return ports.AddPhoneInput{}, domain.NewValidationError("stock", domain.MsgInvalidNumberFormat)
	}

	return ports.AddPhoneInput{
		Model:     model,
		BaseCost:  baseCost,
		Condition: domain.ConditionGrade(condition),
		Stock:     stock,
	}, nil
}

// UpdatePhoneRequest is the body of PUT /api/phones/{id}. Unknown keys are
// ignored.
type UpdatePhoneRequest map[string]any

// ToPatch converts the present fields into a patch
func (r UpdatePhoneRequest) ToPatch() (domain.PhonePatch, error) {
	var patch domain.PhonePatch

	if raw, ok := r["stock"]; ok {
		stock, err := parseInt(raw)
		if err != nil {
			return patch, domain.NewValidationError("stock", domain.MsgPatchStockFormat)
		}
		patch.Stock = &stock
	}

	if raw, ok := r["sold_b2b_or_direct"]; ok {
		flag, isBool := raw.(bool)
		if !isBool {
			return patch, domain.NewValidationError("sold_b2b_or_direct", domain.MsgPatchFlagFormat)
		}
		patch.SoldB2BOrDirect = &flag
	}

	return patch, nil
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func parseDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero, fmt.Errorf("unable to parse %#v of type %T as a decimal", v, v)
	}
}

// parseInt accepts integral numbers and base-10 integer strings. Booleans and
// null are rejected even though cast would coerce them.
func parseInt(v any) (int, error) {
	switch s := v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("unable to parse %#v of type %T as an integer", v, v)
	case string:
		return strconv.Atoi(trimZeroFraction(strings.TrimSpace(s)))
	}
	return cast.ToIntE(v)
}

// trimZeroFraction turns "5.0" or "5.00" into "5".
func trimZeroFraction(s string) string {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" || strings.Trim(frac, "0") != "" {
		return s
	}
	return whole
}
