package services

import (
	"context"
	"errors"
	"fmt"
	"option-pricer/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PricePrecision is the number of decimal places in quoted prices
const PricePrecision = 2

// PricingService validates pricing requests and prices them with
// Black-Scholes-Merton
type PricingService struct {
	logger *logrus.Logger
}

// NewPricingService creates a new pricing service. A nil logger gets a
// default text logger.
func NewPricingService(logger *logrus.Logger) *PricingService {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &PricingService{
		logger: logger,
	}
}

// Quote validates req and returns its rounded price. Validation failures are
// returned as *ValidationError, anything that goes wrong while pricing as
// *ComputationError.
func (ps *PricingService) Quote(ctx context.Context, req *interfaces.PricingRequest, locale string) (*interfaces.PricingResult, error) {
	if req == nil {
		req = &interfaces.PricingRequest{}
	}

	log := ps.logger.WithContext(ctx)

	if violations := ValidateRequest(req); len(violations) > 0 {
		log.WithFields(logrus.Fields{
			"violations": len(violations),
			"locale":     locale,
		}).Debug("Rejected pricing request")
		return nil, NewValidationError(locale, violations)
	}

	side := interfaces.SideFromIsCall(bool(*req.IsCall))
	q := 0.0
	if d := req.Dividend(); d != nil {
		q = *d
	}
	T := MaturityInYears(*req.TimeToMaturity, req.TimeUnit)

	raw, err := ps.price(side, *req.SpotPrice, *req.StrikePrice, T, *req.RiskFreeRate, *req.Volatility, q)
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"side":   side.String(),
			"spot":   *req.SpotPrice,
			"strike": *req.StrikePrice,
		}).Error("Failed to price option")
		return nil, err
	}

	result := &interfaces.PricingResult{
		OptionPrice: RoundPrice(raw),
		OptionType:  SideLabel(locale, side),
		RawPrice:    raw,
		Side:        side,
	}

	log.WithFields(logrus.Fields{
		"side":       side.String(),
		"spot":       *req.SpotPrice,
		"strike":     *req.StrikePrice,
		"maturity":   T,
		"rate":       *req.RiskFreeRate,
		"volatility": *req.Volatility,
		"dividend":   q,
		"price":      result.OptionPrice,
	}).Info("Option priced")

	return result, nil
}

// price evaluates the model. Panics and argument errors come back as
// *ComputationError.
func (ps *PricingService) price(side interfaces.OptionSide, S, K, T, r, sigma, q float64) (price float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &ComputationError{Cause: fmt.Errorf("panic: %v", rec)}
		}
	}()

	price, err = CheckedPrice(side, S, K, T, r, sigma, q)
	if err != nil {
		var ce *ComputationError
		if !errors.As(err, &ce) {
			err = &ComputationError{Cause: err}
		}
		return 0, err
	}
	return price, nil
}

// RoundPrice rounds a raw model price to PricePrecision decimal places,
// half away from zero.
func RoundPrice(raw float64) float64 {
	rounded, _ := decimal.NewFromFloat(raw).Round(PricePrecision).Float64()
	return rounded
}
