package services

import (
	"fmt"
	"math"
	"option-pricer/interfaces"
)

// BlackScholesPrice prices a European option on an underlying paying a
// continuous dividend yield q, using the Black-Scholes-Merton formula.
//
// S, K and sigma are expected to be positive and T non-negative; the caller
// is responsible for that. When T or sigma is not positive there is no time
// value left, so the intrinsic value is returned before any log or division.
//
// The result is the raw model price. Rounding belongs to the presentation
// layer.
func BlackScholesPrice(side interfaces.OptionSide, S, K, T, r, sigma, q float64) float64 {
	if T <= 0 || sigma <= 0 {
		return Intrinsic(side, S, K)
	}

	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	spotPV := S * math.Exp(-q*T)
	strikePV := K * math.Exp(-r*T)

	if side == interfaces.Call {
		return spotPV*normCDF(d1) - strikePV*normCDF(d2)
	}
	return strikePV*normCDF(-d2) - spotPV*normCDF(-d1)
}

// Intrinsic returns the immediate exercise payoff
func Intrinsic(side interfaces.OptionSide, S, K float64) float64 {
	if side == interfaces.Call {
		return math.Max(S-K, 0)
	}
	return math.Max(K-S, 0)
}

// CheckedPrice is BlackScholesPrice with argument checks, for callers that
// have not validated their inputs.
func CheckedPrice(side interfaces.OptionSide, S, K, T, r, sigma, q float64) (float64, error) {
	for _, arg := range []struct {
		name  string
		value float64
	}{
		{"spot", S}, {"strike", K}, {"maturity", T},
		{"rate", r}, {"volatility", sigma}, {"dividend yield", q},
	} {
		if math.IsNaN(arg.value) || math.IsInf(arg.value, 0) {
			return 0, fmt.Errorf("%w: %s is not finite", ErrInvalidArgument, arg.name)
		}
	}
	if S <= 0 {
		return 0, fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidArgument, S)
	}
	if K <= 0 {
		return 0, fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidArgument, K)
	}
	if T < 0 {
		return 0, fmt.Errorf("%w: maturity must not be negative, got %g", ErrInvalidArgument, T)
	}
	if sigma < 0 {
		return 0, fmt.Errorf("%w: volatility must not be negative, got %g", ErrInvalidArgument, sigma)
	}

	price := BlackScholesPrice(side, S, K, T, r, sigma, q)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: non-finite %s price", ErrComputation, side)
	}
	// Cancellation in the put/call difference can leave a tiny negative
	// value deep out of the money.
	if price < 0 {
		price = 0
	}
	return price, nil
}

// normCDF is the standard normal CDF. erfc keeps precision in the lower tail
// where 1+erf(x) would cancel.
func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}
