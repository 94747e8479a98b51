package normalize

import (
	"math"
	"strings"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"

	"github.com/shopspring/decimal"
)

const milesToKm = 1.60934

// CarRental normalizes a rental quote: one pickup/dropoff leg, flat
// rental total.
func CarRental(raw provider.CarOffer, nctx Context) (offer.Offer, error) {
	if raw.Price == nil || raw.Price.Currency == "" {
		return offer.Offer{}, ErrMissingPrice
	}

	sourceTotal := decimal.NewFromFloat(raw.Price.Amount)
	totalMinor := nctx.Converter.Convert(sourceTotal, raw.Price.Currency)

	return offer.Offer{
		ID:   raw.ID,
		Kind: offer.KindCarRental,
		Legs: []offer.Leg{carLeg(raw)},
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: totalMinor, // flat rental total, one booking unit
			Currency:          nctx.Converter.Target(),
		},
		SourceCurrency: raw.Price.Currency,
		SourceAmount:   sourceTotal,
		CapacityHint:   1,
		Metadata:       carMetadata(raw),
	}, nil
}

// CarTransfer normalizes a transfer quote. Providers may return both a
// pre-converted price block and a raw quotation; converted wins.
func CarTransfer(raw provider.CarOffer, nctx Context) (offer.Offer, error) {
	price := raw.Converted
	if price == nil {
		price = raw.Quotation
	}
	if price == nil || price.Currency == "" {
		return offer.Offer{}, ErrMissingPrice
	}

	capacity := nctx.adults()
	sourceTotal := decimal.NewFromFloat(price.Amount)
	totalMinor := nctx.Converter.Convert(sourceTotal, price.Currency)
	perPassengerMinor := decimal.NewFromInt(totalMinor).
		Div(decimal.NewFromInt(int64(capacity))).
		Round(0).IntPart()

	leg := carLeg(raw)
	leg.DistanceKm = distanceKm(raw)

	return offer.Offer{
		ID:   raw.ID,
		Kind: offer.KindCarTransfer,
		Legs: []offer.Leg{leg},
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: perPassengerMinor,
			Currency:          nctx.Converter.Target(),
		},
		SourceCurrency: price.Currency,
		SourceAmount:   sourceTotal,
		CapacityHint:   capacity,
		Metadata:       carMetadata(raw),
	}, nil
}

func carLeg(raw provider.CarOffer) offer.Leg {
	return offer.Leg{
		Origin:      locationLabel(raw.Pickup),
		Destination: locationLabel(raw.Dropoff),
		DepartAt:    raw.PickupAt,
		ArriveAt:    raw.DropoffAt,
	}
}

// distanceKm reports the transfer distance in kilometers, converting
// mile-based quotes with one decimal of precision.
func distanceKm(raw provider.CarOffer) float64 {
	if raw.DistanceValue == 0 {
		return 0
	}
	v := raw.DistanceValue
	if strings.EqualFold(raw.DistanceUnit, "MI") {
		v *= milesToKm
	}
	return math.Round(v*10) / 10
}

func locationLabel(loc provider.CarLocation) string {
	if loc.Code != "" {
		return loc.Code
	}
	return loc.Address
}

func carMetadata(raw provider.CarOffer) map[string]string {
	if raw.Vehicle == "" {
		return nil
	}
	return map[string]string{"vehicle": raw.Vehicle}
}
