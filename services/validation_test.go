package services

import (
	"encoding/json"
	"math"
	"option-pricer/interfaces"
	"reflect"
	"testing"
)

func f(v float64) *float64 { return &v }

func b(v bool) *interfaces.FlexBool {
	fb := interfaces.FlexBool(v)
	return &fb
}

func validRequest() *interfaces.PricingRequest {
	return &interfaces.PricingRequest{
		IsCall:         b(true),
		SpotPrice:      f(100),
		StrikePrice:    f(95),
		TimeToMaturity: f(0.5),
		RiskFreeRate:   f(0.05),
		Volatility:     f(0.2),
	}
}

func TestValidateRequestValid(t *testing.T) {
	req := validRequest()
	req.RiskFreeRate = f(-0.01)
	req.DividendYield = f(0)
	req.TimeToMaturity = f(0)

	if got := ValidateRequest(req); len(got) != 0 {
		t.Errorf("violations = %+v, want none", got)
	}
}

func TestValidateRequestBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*interfaces.PricingRequest)
		want   interfaces.Violation
	}{
		{
			name:   "zero spot",
			mutate: func(r *interfaces.PricingRequest) { r.SpotPrice = f(0) },
			want:   interfaces.Violation{Field: FieldSpotPrice, Kind: interfaces.KindGT, Bound: 0},
		},
		{
			name:   "negative strike",
			mutate: func(r *interfaces.PricingRequest) { r.StrikePrice = f(-5) },
			want:   interfaces.Violation{Field: FieldStrikePrice, Kind: interfaces.KindGT, Bound: 0},
		},
		{
			name:   "negative maturity",
			mutate: func(r *interfaces.PricingRequest) { r.TimeToMaturity = f(-1) },
			want:   interfaces.Violation{Field: FieldTimeToMaturity, Kind: interfaces.KindGE, Bound: 0},
		},
		{
			name:   "zero volatility",
			mutate: func(r *interfaces.PricingRequest) { r.Volatility = f(0) },
			want:   interfaces.Violation{Field: FieldVolatility, Kind: interfaces.KindGT, Bound: 0},
		},
		{
			name:   "negative dividend via alias",
			mutate: func(r *interfaces.PricingRequest) { r.Q = f(-0.01) },
			want:   interfaces.Violation{Field: FieldDividendYield, Kind: interfaces.KindGE, Bound: 0},
		},
		{
			name:   "NaN spot",
			mutate: func(r *interfaces.PricingRequest) { r.SpotPrice = f(math.NaN()) },
			want:   interfaces.Violation{Field: FieldSpotPrice, Kind: interfaces.KindGT, Bound: 0},
		},
		{
			name:   "unknown time unit",
			mutate: func(r *interfaces.PricingRequest) { r.TimeUnit = "week" },
			want:   interfaces.Violation{Field: FieldTimeUnit, Kind: interfaces.KindOneOf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			got := ValidateRequest(req)
			want := []interfaces.Violation{tt.want}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("violations = %+v, want %+v", got, want)
			}
		})
	}
}

func TestValidateRequestMissingFields(t *testing.T) {
	got := ValidateRequest(&interfaces.PricingRequest{})

	want := []interfaces.Violation{
		{Field: FieldIsCall, Kind: interfaces.KindRequired},
		{Field: FieldSpotPrice, Kind: interfaces.KindRequired},
		{Field: FieldStrikePrice, Kind: interfaces.KindRequired},
		{Field: FieldTimeToMaturity, Kind: interfaces.KindRequired},
		{Field: FieldRiskFreeRate, Kind: interfaces.KindRequired},
		{Field: FieldVolatility, Kind: interfaces.KindRequired},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violations = %+v, want %+v", got, want)
	}
}

func TestValidateRequestReportsAllViolationsInOrder(t *testing.T) {
	req := validRequest()
	req.Volatility = f(-0.2)
	req.SpotPrice = f(0)
	req.TimeToMaturity = f(-1)

	got := ValidateRequest(req)
	fields := make([]string, len(got))
	for i, v := range got {
		fields[i] = v.Field
	}
	want := []string{FieldSpotPrice, FieldTimeToMaturity, FieldVolatility}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("fields = %v, want %v", fields, want)
	}
}

func TestDividendPrefersFullName(t *testing.T) {
	req := validRequest()
	req.DividendYield = f(0.02)
	req.Q = f(-1)

	if got := ValidateRequest(req); len(got) != 0 {
		t.Errorf("violations = %+v, want none", got)
	}
	if got := *req.Dividend(); got != 0.02 {
		t.Errorf("Dividend() = %v, want 0.02", got)
	}
}

func TestDecodeViolation(t *testing.T) {
	tests := []struct {
		body  string
		field string
	}{
		{`{"spot_price":"abc"}`, FieldSpotPrice},
		{`{"volatility":true}`, FieldVolatility},
		{`{"q":"x"}`, FieldDividendYield},
		{`{"time_unit":5}`, FieldTimeUnit},
		{`{"is_call":"maybe"}`, FieldIsCall},
	}

	for _, tt := range tests {
		var req interfaces.PricingRequest
		err := json.Unmarshal([]byte(tt.body), &req)

		v, ok := DecodeViolation(err)
		if !ok {
			t.Errorf("%s: DecodeViolation(%v) reported no violation", tt.body, err)
			continue
		}
		want := interfaces.Violation{Field: tt.field, Kind: interfaces.KindType}
		if v != want {
			t.Errorf("%s: violation = %+v, want %+v", tt.body, v, want)
		}
	}
}

func TestDecodeViolationIgnoresSyntaxErrors(t *testing.T) {
	var req interfaces.PricingRequest
	for _, body := range []string{`{`, `[1,2]`} {
		err := json.Unmarshal([]byte(body), &req)
		if _, ok := DecodeViolation(err); ok {
			t.Errorf("%s: DecodeViolation(%v) reported a violation", body, err)
		}
	}
}

func TestTypeViolationMessage(t *testing.T) {
	got := FormatViolations(LocaleZH, []interfaces.Violation{{Field: FieldSpotPrice, Kind: interfaces.KindType}})
	if got != "参数验证失败: 标的当前价格 类型无效" {
		t.Errorf("message = %q", got)
	}
}
