package services

import "strings"

// TradingDaysPerYear is used to convert day counts into years
const TradingDaysPerYear = 252

// Maturity units accepted in time_unit
const (
	UnitYear  = "year"
	UnitMonth = "month"
	UnitDay   = "day"
)

var maturityDivisors = map[string]float64{
	UnitYear:  1,
	UnitMonth: 12,
	UnitDay:   TradingDaysPerYear,
}

func normalizeUnit(unit string) string {
	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" {
		return UnitYear
	}
	return unit
}

// MaturityInYears converts a maturity expressed in unit into years.
// Days are trading days. Unknown units are treated as years; ValidateRequest
// rejects them before this is reached.
func MaturityInYears(value float64, unit string) float64 {
	divisor, ok := maturityDivisors[normalizeUnit(unit)]
	if !ok {
		return value
	}
	return value / divisor
}
