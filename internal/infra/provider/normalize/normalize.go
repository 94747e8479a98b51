// Package normalize converts raw provider payloads into canonical
// offers. One function per offer kind, composed through a dispatch
// table; a malformed record rejects that single offer, never the batch.
package normalize

import (
	"log/slog"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"
	"travel-core/internal/pkg/currency"
	"travel-core/internal/pkg/errs"
)

var (
	ErrNoItineraries  = errs.New("fare has no itineraries")
	ErrEmptySegments  = errs.New("itinerary has no segments")
	ErrMissingPrice   = errs.New("offer has no price block")
	ErrNoRates        = errs.New("property has no rate offers")
	ErrUnsupportedKind = errs.New("unsupported offer kind")
)

// Context carries the request-scoped inputs every normalizer needs:
// how many travelers the quote was requested for and the converter to
// the display currency.
type Context struct {
	Adults    int
	Converter *currency.Converter
}

func (c Context) adults() int {
	if c.Adults < 1 {
		return 1
	}
	return c.Adults
}

// Func normalizes one raw payload of the matching kind. The raw type is
// asserted per kind; a mismatch is a programming error and returns
// ErrUnsupportedKind.
type Func func(raw any, nctx Context) (offer.Offer, error)

var dispatch = map[offer.Kind]Func{
	offer.KindFlight: func(raw any, nctx Context) (offer.Offer, error) {
		fare, ok := raw.(provider.FlightFare)
		if !ok {
			return offer.Offer{}, ErrUnsupportedKind
		}
		return Flight(fare, nctx)
	},
	offer.KindHotel: func(raw any, nctx Context) (offer.Offer, error) {
		prop, ok := raw.(provider.HotelProperty)
		if !ok {
			return offer.Offer{}, ErrUnsupportedKind
		}
		return Hotel(prop, nctx)
	},
	offer.KindCarRental: func(raw any, nctx Context) (offer.Offer, error) {
		car, ok := raw.(provider.CarOffer)
		if !ok {
			return offer.Offer{}, ErrUnsupportedKind
		}
		return CarRental(car, nctx)
	},
	offer.KindCarTransfer: func(raw any, nctx Context) (offer.Offer, error) {
		car, ok := raw.(provider.CarOffer)
		if !ok {
			return offer.Offer{}, ErrUnsupportedKind
		}
		return CarTransfer(car, nctx)
	},
}

func ByKind(kind offer.Kind) (Func, bool) {
	fn, ok := dispatch[kind]
	return fn, ok
}

// all normalizes a batch with skip-and-continue semantics: one bad
// record must not fail an entire search response.
func all[T any](kind offer.Kind, raws []T, nctx Context, fn func(T, Context) (offer.Offer, error)) []offer.Offer {
	offers := make([]offer.Offer, 0, len(raws))
	for _, raw := range raws {
		o, err := fn(raw, nctx)
		if err != nil {
			slog.Warn("dropping malformed provider offer", "kind", kind.String(), "error", err.Error())
			continue
		}
		offers = append(offers, o)
	}
	return offers
}

func Flights(raws []provider.FlightFare, nctx Context) []offer.Offer {
	return all(offer.KindFlight, raws, nctx, Flight)
}

func Hotels(raws []provider.HotelProperty, nctx Context) []offer.Offer {
	return all(offer.KindHotel, raws, nctx, Hotel)
}

func CarRentals(raws []provider.CarOffer, nctx Context) []offer.Offer {
	return all(offer.KindCarRental, raws, nctx, CarRental)
}

func CarTransfers(raws []provider.CarOffer, nctx Context) []offer.Offer {
	return all(offer.KindCarTransfer, raws, nctx, CarTransfer)
}
