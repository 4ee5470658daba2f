package interfaces

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
)

// OptionSide is the direction of an option contract
type OptionSide int

const (
	Call OptionSide = iota
	Put
)

func (s OptionSide) String() string {
	if s == Call {
		return "call"
	}
	return "put"
}

// SideFromIsCall maps the wire boolean onto an OptionSide
func SideFromIsCall(isCall bool) OptionSide {
	if isCall {
		return Call
	}
	return Put
}

// FlexBool is a boolean that also accepts the string and 0/1 spellings
// browsers send from form controls ("true", "false", "1", "yes", "off", ...).
type FlexBool bool

var boolType = reflect.TypeOf(true)

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
		return nil
	case float64:
		if v == 0 || v == 1 {
			*b = v == 1
			return nil
		}
		return &json.UnmarshalTypeError{Value: "number", Type: boolType}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "t", "yes", "y", "on", "1":
			*b = true
			return nil
		case "false", "f", "no", "n", "off", "0":
			*b = false
			return nil
		}
		return &json.UnmarshalTypeError{Value: "string", Type: boolType}
	}
	return &json.UnmarshalTypeError{Value: "value", Type: boolType}
}

// PricingRequest is the body of POST /api/price.
// Pointer fields distinguish "absent" from zero so validation can report
// missing values.
type PricingRequest struct {
	IsCall         *FlexBool `json:"is_call"`
	SpotPrice      *float64  `json:"spot_price"`
	StrikePrice    *float64  `json:"strike_price"`
	TimeToMaturity *float64  `json:"time_to_maturity"`
	RiskFreeRate   *float64  `json:"risk_free_rate"`
	Volatility     *float64  `json:"volatility"`
	DividendYield  *float64  `json:"dividend_yield,omitempty"`
	Q              *float64  `json:"q,omitempty"`         // short alias for dividend_yield
	TimeUnit       string    `json:"time_unit,omitempty"` // "year" (default), "month", "day"
}

// Dividend returns the dividend yield, preferring dividend_yield over q.
// It is nil when neither was sent.
func (r *PricingRequest) Dividend() *float64 {
	if r.DividendYield != nil {
		return r.DividendYield
	}
	return r.Q
}

// PricingResult is returned by a successful quote
type PricingResult struct {
	OptionPrice float64 `json:"option_price"`
	OptionType  string  `json:"option_type"`

	// RawPrice is the unrounded model price
	RawPrice float64    `json:"-"`
	Side     OptionSide `json:"-"`
}

// ViolationKind names the constraint a field failed
type ViolationKind string

const (
	KindRequired ViolationKind = "required"
	KindGT       ViolationKind = "gt"
	KindGE       ViolationKind = "ge"
	KindLT       ViolationKind = "lt"
	KindLE       ViolationKind = "le"
	KindOneOf    ViolationKind = "one_of"
	KindType     ViolationKind = "type"
)

// Violation is a single failed field constraint
type Violation struct {
	Field string
	Kind  ViolationKind
	Bound float64
}

// PricingService defines the interface the HTTP layer prices through
type PricingService interface {
	Quote(ctx context.Context, req *PricingRequest, locale string) (*PricingResult, error)
}
