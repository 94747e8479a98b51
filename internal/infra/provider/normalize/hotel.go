package normalize

import (
	"strings"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"

	"github.com/shopspring/decimal"
)

// Hotel normalizes a property into one flat-priced stay offer. The
// provider orders rate offers best-first, so the first one prices the
// requested room/guest combination. Room type and amenities are display
// metadata only.
func Hotel(raw provider.HotelProperty, nctx Context) (offer.Offer, error) {
	if len(raw.Offers) == 0 {
		return offer.Offer{}, ErrNoRates
	}

	best := raw.Offers[0]
	if best.Currency == "" || best.Total <= 0 {
		return offer.Offer{}, ErrMissingPrice
	}

	sourceTotal := decimal.NewFromFloat(best.Total)
	totalMinor := nctx.Converter.Convert(sourceTotal, best.Currency)

	metadata := map[string]string{}
	if best.RoomType != "" {
		metadata["roomType"] = best.RoomType
	}
	if name := strings.TrimSpace(raw.Name); name != "" {
		metadata["hotelName"] = name
	}
	if len(raw.Amenities) > 0 {
		metadata["amenities"] = strings.Join(raw.Amenities, ",")
	}

	return offer.Offer{
		ID:   raw.HotelID,
		Kind: offer.KindHotel,
		Legs: []offer.Leg{{
			Origin:      raw.CityCode,
			Destination: raw.CityCode,
			DepartAt:    best.CheckIn,
			ArriveAt:    best.CheckOut,
		}},
		Price: offer.Price{
			TotalMinor:        totalMinor,
			PerPassengerMinor: totalMinor, // flat stay total, one booking unit
			Currency:          nctx.Converter.Target(),
		},
		SourceCurrency: best.Currency,
		SourceAmount:   sourceTotal,
		CapacityHint:   1,
		Metadata:       metadata,
	}, nil
}
