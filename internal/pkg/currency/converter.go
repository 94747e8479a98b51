package currency

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Converter converts provider quote amounts into minor units of a single
// fixed display currency using a static rate table. Unknown currencies
// fall back to the default rate instead of failing normalization.
type Converter struct {
	target   string
	rates    map[string]decimal.Decimal
	fallback decimal.Decimal
}

// Rates to VND. Minor unit of VND is the dong itself.
var defaultRates = map[string]decimal.Decimal{
	"VND": decimal.NewFromInt(1),
	"USD": decimal.NewFromInt(25500),
	"EUR": decimal.NewFromInt(27800),
	"GBP": decimal.NewFromInt(32400),
	"SGD": decimal.NewFromInt(19000),
	"THB": decimal.NewFromInt(720),
	"JPY": decimal.NewFromInt(170),
}

func NewConverter(target string) *Converter {
	return &Converter{
		target:   strings.ToUpper(target),
		rates:    defaultRates,
		fallback: decimal.NewFromInt(1),
	}
}

// NewConverterWithRates is used by tests and by deployments that load a
// different table.
func NewConverterWithRates(target string, rates map[string]decimal.Decimal) *Converter {
	return &Converter{
		target:   strings.ToUpper(target),
		rates:    rates,
		fallback: decimal.NewFromInt(1),
	}
}

func (c *Converter) Target() string {
	return c.target
}

// Convert returns the amount in minor units of the target currency,
// rounded half-up.
func (c *Converter) Convert(amount decimal.Decimal, from string) int64 {
	from = strings.ToUpper(strings.TrimSpace(from))
	if from == c.target {
		return amount.Round(0).IntPart()
	}

	rate, ok := c.rates[from]
	if !ok {
		slog.Warn("unknown quote currency, using fallback rate",
			"currency", from, "target", c.target)
		rate = c.fallback
	}

	return amount.Mul(rate).Round(0).IntPart()
}

// ConvertFloat is a convenience wrapper for provider payloads that carry
// plain JSON numbers.
func (c *Converter) ConvertFloat(amount float64, from string) int64 {
	return c.Convert(decimal.NewFromFloat(amount), from)
}
