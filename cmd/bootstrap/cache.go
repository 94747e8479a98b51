package bootstrap

import (
	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"
	"travel-core/internal/pkg/cache"
	"travel-core/internal/pkg/clock"
	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/currency"

	"go.uber.org/fx"
)

// CacheModule wires the in-process TTL caches. Search results and the
// cheap-flight scan share the offer loader; geocode places get their
// own, since the two value types differ.
var CacheModule = fx.Module("cache",
	fx.Provide(
		NewOfferLoader,
		NewPlaceLoader,
		NewCurrencyConverter,
	),
)

func NewOfferLoader(clk clock.Clock) *cache.Loader[[]offer.Offer] {
	return cache.NewLoader(cache.New[[]offer.Offer](clk))
}

func NewPlaceLoader(clk clock.Clock) *cache.Loader[[]provider.Place] {
	return cache.NewLoader(cache.New[[]provider.Place](clk))
}

func NewCurrencyConverter(cfg config.PaymentConfig) *currency.Converter {
	return currency.NewConverter(cfg.DisplayCurrency)
}
