package response

import (
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"
)

type OfferResponse struct {
	ID                string            `json:"id"`
	Kind              string            `json:"kind"`
	Legs              []LegResponse     `json:"legs"`
	TotalMinor        int64             `json:"totalMinor"`
	PerPassengerMinor int64             `json:"perPassengerMinor"`
	Currency          string            `json:"currency"`
	CapacityHint      int               `json:"capacityHint"`
	Metadata          map[string]string `json:"metadata,omitempty"`
}

type LegResponse struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartAt    time.Time `json:"departAt"`
	ArriveAt    time.Time `json:"arriveAt"`
	Carrier     string    `json:"carrier,omitempty"`
	DurationMin int       `json:"durationMin,omitempty"`
	Stops       int       `json:"stops"`
	DistanceKm  float64   `json:"distanceKm,omitempty"`
}

type PlaceResponse struct {
	FullAddress string  `json:"fullAddress"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode"`
}

func FromOffer(o offer.Offer) OfferResponse {
	legs := make([]LegResponse, len(o.Legs))
	for i, l := range o.Legs {
		legs[i] = LegResponse{
			Origin:      l.Origin,
			Destination: l.Destination,
			DepartAt:    l.DepartAt,
			ArriveAt:    l.ArriveAt,
			Carrier:     l.Carrier,
			DurationMin: l.DurationMin,
			Stops:       l.Stops,
			DistanceKm:  l.DistanceKm,
		}
	}

	return OfferResponse{
		ID:                o.ID,
		Kind:              o.Kind.String(),
		Legs:              legs,
		TotalMinor:        o.Price.TotalMinor,
		PerPassengerMinor: o.Price.PerPassengerMinor,
		Currency:          o.Price.Currency,
		CapacityHint:      o.CapacityHint,
		Metadata:          o.Metadata,
	}
}

func FromOffers(offers []offer.Offer) []OfferResponse {
	result := make([]OfferResponse, len(offers))
	for i, o := range offers {
		result[i] = FromOffer(o)
	}
	return result
}

func FromPlaces(places []provider.Place) []PlaceResponse {
	result := make([]PlaceResponse, len(places))
	for i, p := range places {
		result[i] = PlaceResponse{
			FullAddress: p.FullAddress,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			CountryCode: p.CountryCode,
		}
	}
	return result
}
