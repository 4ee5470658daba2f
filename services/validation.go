package services

import (
	"encoding/json"
	"errors"
	"option-pricer/interfaces"
)

// Field keys, in the order violations are reported
const (
	FieldIsCall         = "is_call"
	FieldSpotPrice      = "spot_price"
	FieldStrikePrice    = "strike_price"
	FieldTimeToMaturity = "time_to_maturity"
	FieldRiskFreeRate   = "risk_free_rate"
	FieldVolatility     = "volatility"
	FieldDividendYield  = "dividend_yield"
	FieldTimeUnit       = "time_unit"
)

type bound struct {
	kind  interfaces.ViolationKind
	value float64
}

type fieldRule struct {
	field    string
	value    func(*interfaces.PricingRequest) *float64
	required bool
	bounds   []bound
}

var numericRules = []fieldRule{
	{
		field:    FieldSpotPrice,
		value:    func(r *interfaces.PricingRequest) *float64 { return r.SpotPrice },
		required: true,
		bounds:   []bound{{interfaces.KindGT, 0}},
	},
	{
		field:    FieldStrikePrice,
		value:    func(r *interfaces.PricingRequest) *float64 { return r.StrikePrice },
		required: true,
		bounds:   []bound{{interfaces.KindGT, 0}},
	},
	{
		field:    FieldTimeToMaturity,
		value:    func(r *interfaces.PricingRequest) *float64 { return r.TimeToMaturity },
		required: true,
		bounds:   []bound{{interfaces.KindGE, 0}},
	},
	{
		field:    FieldRiskFreeRate,
		value:    func(r *interfaces.PricingRequest) *float64 { return r.RiskFreeRate },
		required: true,
	},
	{
		field:    FieldVolatility,
		value:    func(r *interfaces.PricingRequest) *float64 { return r.Volatility },
		required: true,
		bounds:   []bound{{interfaces.KindGT, 0}},
	},
	{
		field:  FieldDividendYield,
		value:  (*interfaces.PricingRequest).Dividend,
		bounds: []bound{{interfaces.KindGE, 0}},
	},
}

// ValidateRequest checks every field of req and returns all violations.
// An empty result means the request may be priced.
func ValidateRequest(req *interfaces.PricingRequest) []interfaces.Violation {
	var violations []interfaces.Violation

	if req.IsCall == nil {
		violations = append(violations, interfaces.Violation{Field: FieldIsCall, Kind: interfaces.KindRequired})
	}

	for _, rule := range numericRules {
		v := rule.value(req)
		if v == nil {
			if rule.required {
				violations = append(violations, interfaces.Violation{Field: rule.field, Kind: interfaces.KindRequired})
			}
			continue
		}
		for _, b := range rule.bounds {
			if !satisfies(*v, b) {
				violations = append(violations, interfaces.Violation{Field: rule.field, Kind: b.kind, Bound: b.value})
				break
			}
		}
	}

	if _, ok := maturityDivisors[normalizeUnit(req.TimeUnit)]; !ok {
		violations = append(violations, interfaces.Violation{Field: FieldTimeUnit, Kind: interfaces.KindOneOf})
	}

	return violations
}

// wireFields maps JSON keys onto field keys
var wireFields = map[string]string{
	"is_call":          FieldIsCall,
	"spot_price":       FieldSpotPrice,
	"strike_price":     FieldStrikePrice,
	"time_to_maturity": FieldTimeToMaturity,
	"risk_free_rate":   FieldRiskFreeRate,
	"volatility":       FieldVolatility,
	"dividend_yield":   FieldDividendYield,
	"q":                FieldDividendYield,
	"time_unit":        FieldTimeUnit,
}

// DecodeViolation turns a JSON type mismatch on a known request field into
// a KindType violation. Any other decode error reports false.
func DecodeViolation(err error) (interfaces.Violation, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return interfaces.Violation{}, false
	}
	field, ok := wireFields[typeErr.Field]
	if !ok {
		return interfaces.Violation{}, false
	}
	return interfaces.Violation{Field: field, Kind: interfaces.KindType}, true
}

// satisfies reports whether v meets b. NaN never does.
func satisfies(v float64, b bound) bool {
	switch b.kind {
	case interfaces.KindGT:
		return v > b.value
	case interfaces.KindGE:
		return v >= b.value
	case interfaces.KindLT:
		return v < b.value
	case interfaces.KindLE:
		return v <= b.value
	}
	return true
}
