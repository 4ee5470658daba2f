package services

import (
	"option-pricer/interfaces"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Supported locales
const (
	LocaleZH = "zh"
	LocaleEN = "en"

	DefaultLocale = LocaleZH
)

// Message keys shared across locales
const (
	MsgValidationPrefix  = "validation_prefix"
	MsgWelcome           = "welcome"
	MsgComputationFailed = "computation_failed"
	MsgMalformedBody     = "malformed_body"
	MsgCall              = "call"
	MsgPut               = "put"
)

type catalog struct {
	fields   map[string]string
	reasons  map[interfaces.ViolationKind]string
	messages map[string]string
}

var catalogs = map[string]catalog{
	LocaleZH: {
		fields: map[string]string{
			FieldIsCall:         "期权类型",
			FieldSpotPrice:      "标的当前价格",
			FieldStrikePrice:    "行权价格",
			FieldTimeToMaturity: "期权剩余到期时间",
			FieldRiskFreeRate:   "无风险利率",
			FieldVolatility:     "波动率",
			FieldDividendYield:  "股息率",
			FieldTimeUnit:       "时间单位",
		},
		reasons: map[interfaces.ViolationKind]string{
			interfaces.KindRequired: "为必填项",
			interfaces.KindGT:       "必须大于 {bound}",
			interfaces.KindGE:       "必须大于或等于 {bound}",
			interfaces.KindLT:       "必须小于 {bound}",
			interfaces.KindLE:       "必须小于或等于 {bound}",
			interfaces.KindOneOf:    "必须是 year、month、day 之一",
			interfaces.KindType:     "类型无效",
		},
		messages: map[string]string{
			MsgValidationPrefix:  "参数验证失败",
			MsgWelcome:           "欢迎使用期权定价API",
			MsgComputationFailed: "计算错误，请检查输入并重试",
			MsgMalformedBody:     "请求体格式错误",
			MsgCall:              "看涨期权(Call)",
			MsgPut:               "看跌期权(Put)",
		},
	},
	LocaleEN: {
		fields: map[string]string{
			FieldIsCall:         "option type",
			FieldSpotPrice:      "spot price",
			FieldStrikePrice:    "strike price",
			FieldTimeToMaturity: "time to maturity",
			FieldRiskFreeRate:   "risk-free rate",
			FieldVolatility:     "volatility",
			FieldDividendYield:  "dividend yield",
			FieldTimeUnit:       "time unit",
		},
		reasons: map[interfaces.ViolationKind]string{
			interfaces.KindRequired: "is required",
			interfaces.KindGT:       "must be greater than {bound}",
			interfaces.KindGE:       "must be greater than or equal to {bound}",
			interfaces.KindLT:       "must be less than {bound}",
			interfaces.KindLE:       "must be less than or equal to {bound}",
			interfaces.KindOneOf:    "must be one of year, month, day",
			interfaces.KindType:     "has an invalid type",
		},
		messages: map[string]string{
			MsgValidationPrefix:  "Validation failed",
			MsgWelcome:           "Welcome to the option pricing API",
			MsgComputationFailed: "Computation error, please check the input and retry",
			MsgMalformedBody:     "Malformed request body",
			MsgCall:              "Call",
			MsgPut:               "Put",
		},
	},
}

func catalogFor(locale string) catalog {
	if c, ok := catalogs[locale]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

// IsSupportedLocale reports whether locale has a message catalog
func IsSupportedLocale(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// ResolveLocale picks the best supported locale from an Accept-Language
// header, falling back to fallback.
func ResolveLocale(acceptLanguage, fallback string) string {
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			for _, tag := range tags {
				base, _ := tag.Base()
				if IsSupportedLocale(base.String()) {
					return base.String()
				}
			}
		}
	}
	if IsSupportedLocale(fallback) {
		return fallback
	}
	return DefaultLocale
}

// Message returns a localized fixed message
func Message(locale, key string) string {
	return catalogFor(locale).messages[key]
}

// SideLabel returns the localized label for an option side
func SideLabel(locale string, side interfaces.OptionSide) string {
	if side == interfaces.Call {
		return Message(locale, MsgCall)
	}
	return Message(locale, MsgPut)
}

// FormatViolation renders one violation as "<label> <reason>"
func FormatViolation(locale string, v interfaces.Violation) string {
	c := catalogFor(locale)

	label, ok := c.fields[v.Field]
	if !ok {
		label = v.Field
	}
	reason, ok := c.reasons[v.Kind]
	if !ok {
		reason = string(v.Kind)
	}
	reason = strings.ReplaceAll(reason, "{bound}", FormatBound(v.Bound))

	return label + " " + reason
}

// FormatViolations renders the full validation failure message
func FormatViolations(locale string, violations []interfaces.Violation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = FormatViolation(locale, v)
	}
	return Message(locale, MsgValidationPrefix) + ": " + strings.Join(parts, "; ")
}

// FormatBound prints a bound the way it is shown to users: always with a
// fractional part, so 0 becomes "0.0".
func FormatBound(b float64) string {
	s := strconv.FormatFloat(b, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
