package normalize

import (
	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"

	"github.com/shopspring/decimal"
)

// Flight builds one canonical offer from a raw fare bundle: one leg per
// itinerary (one-way = 1, round-trip = 2), each leg spanning the first
// segment's departure to the last segment's arrival.
func Flight(raw provider.FlightFare, nctx Context) (offer.Offer, error) {
	if len(raw.Itineraries) == 0 {
		return offer.Offer{}, ErrNoItineraries
	}
	if raw.Price == nil || raw.Price.Currency == "" {
		return offer.Offer{}, ErrMissingPrice
	}

	legs := make([]offer.Leg, 0, len(raw.Itineraries))
	for _, itin := range raw.Itineraries {
		leg, err := flightLeg(itin)
		if err != nil {
			return offer.Offer{}, err
		}
		legs = append(legs, leg)
	}

	sourceTotal, capacity := flightSourceTotal(raw, nctx)

	totalMinor := nctx.Converter.Convert(sourceTotal, raw.Price.Currency)
	perPassengerMinor := decimal.NewFromInt(totalMinor).
		Div(decimal.NewFromInt(int64(capacity))).
		Round(0).IntPart()

	return offer.Offer{
		ID:   raw.ID,
		Kind: offer.KindFlight,
		Legs: legs,
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: perPassengerMinor,
			Currency:          nctx.Converter.Target(),
		},
		SourceCurrency: raw.Price.Currency,
		SourceAmount:   sourceTotal,
		CapacityHint:   capacity,
	}, nil
}

// flightSourceTotal prefers per-traveler pricing entries when the
// provider supplies them; otherwise the grand total covers the adults
// the caller searched for.
func flightSourceTotal(raw provider.FlightFare, nctx Context) (decimal.Decimal, int) {
	if len(raw.TravelerPricings) > 0 {
		total := decimal.Zero
		for _, tp := range raw.TravelerPricings {
			total = total.Add(decimal.NewFromFloat(tp.Total))
		}
		return total, len(raw.TravelerPricings)
	}
	return decimal.NewFromFloat(raw.Price.GrandTotal), nctx.adults()
}

func flightLeg(itin provider.Itinerary) (offer.Leg, error) {
	if len(itin.Segments) == 0 {
		return offer.Leg{}, ErrEmptySegments
	}

	first := itin.Segments[0]
	last := itin.Segments[len(itin.Segments)-1]

	return offer.Leg{
		Origin:      first.DepartureAirport,
		Destination: last.ArrivalAirport,
		DepartAt:    first.DepartureAt,
		ArriveAt:    last.ArrivalAt,
		Carrier:     first.CarrierCode,
		DurationMin: int(last.ArrivalAt.Sub(first.DepartureAt).Minutes()),
		Stops:       len(itin.Segments) - 1,
	}, nil
}
