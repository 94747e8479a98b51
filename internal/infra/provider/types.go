// Package provider defines the wire contracts of the external inventory
// adapters. The raw HTTP clients themselves live outside this service;
// adapters implementing the usecase interfaces return these payloads
// as-is, provider quirks included. Normalization happens in
// provider/normalize.
package provider

import (
	"errors"
	"time"
)

// Adapter error contract. Adapters wrap transport failures so callers
// can tell a throttling signal from an ordinary failure.
var (
	ErrRateLimited = errors.New("provider rate limited")
	ErrUnavailable = errors.New("provider unavailable")
)

// ---------------------------------------------------------------------------
// Flights
// ---------------------------------------------------------------------------

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Adults        int
	ServiceClass  string
	TripType      TripType
}

// FlightFare is one raw fare bundle. Itineraries holds one entry for
// one-way and two for round-trip. Price may be absent on malformed
// records; TravelerPricings is only populated by providers that quote
// per traveler.
type FlightFare struct {
	ID               string            `json:"id"`
	Itineraries      []Itinerary       `json:"itineraries"`
	Price            *FarePrice        `json:"price,omitempty"`
	TravelerPricings []TravelerPricing `json:"travelerPricings,omitempty"`
}

type Itinerary struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	DepartureAirport string    `json:"departureAirport"`
	DepartureAt      time.Time `json:"departureAt"`
	ArrivalAirport   string    `json:"arrivalAirport"`
	ArrivalAt        time.Time `json:"arrivalAt"`
	CarrierCode      string    `json:"carrierCode"`
}

type FarePrice struct {
	GrandTotal float64 `json:"grandTotal"`
	Currency   string  `json:"currency"`
}

type TravelerPricing struct {
	Total float64 `json:"total"`
}

// DealQuery asks for the cheapest destinations reachable on one
// departure date. The origin hint is optional; without coordinates the
// provider scans from its default market.
type DealQuery struct {
	OriginLat     *float64
	OriginLng     *float64
	DepartureDate time.Time
}

// FlightDeal is one raw best-price entry of a deal scan: cheapest fare
// from the origin to one destination on the queried date.
type FlightDeal struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartureAt time.Time `json:"departureAt"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
}

// ---------------------------------------------------------------------------
// Hotels
// ---------------------------------------------------------------------------

type HotelQuery struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Rooms    int
}

// HotelProperty carries the property plus its rate offers, best rate
// first as returned by the provider.
type HotelProperty struct {
	HotelID   string      `json:"hotelId"`
	Name      string      `json:"name"`
	CityCode  string      `json:"cityCode"`
	Amenities []string    `json:"amenities,omitempty"`
	Offers    []HotelRate `json:"offers"`
}

type HotelRate struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Total    float64   `json:"total"`
	Currency string    `json:"currency"`
	RoomType string    `json:"roomType"`
}

// ---------------------------------------------------------------------------
// Cars (rental and transfer)
// ---------------------------------------------------------------------------

type CarServiceType string

const (
	CarRental   CarServiceType = "rental"
	CarTransfer CarServiceType = "transfer"
)

type CarQuery struct {
	ServiceType CarServiceType
	Pickup      CarLocation
	Dropoff     CarLocation
	PickupAt    time.Time
	DropoffAt   *time.Time
	Passengers  int
}

type CarLocation struct {
	Code      string  `json:"code,omitempty"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// CarOffer is one raw rental or transfer quote. Rentals price through
// Price. Transfers may carry both a pre-converted price block and a raw
// quotation; Converted wins when both are present. Distance units vary
// by provider (KM or MI).
type CarOffer struct {
	ID            string      `json:"id"`
	Vehicle       string      `json:"vehicle"`
	Pickup        CarLocation `json:"pickup"`
	Dropoff       CarLocation `json:"dropoff"`
	PickupAt      time.Time   `json:"pickupAt"`
	DropoffAt     time.Time   `json:"dropoffAt"`
	Price         *CarPrice   `json:"price,omitempty"`
	Converted     *CarPrice   `json:"converted,omitempty"`
	Quotation     *CarPrice   `json:"quotation,omitempty"`
	DistanceValue float64     `json:"distanceValue,omitempty"`
	DistanceUnit  string      `json:"distanceUnit,omitempty"`
}

type CarPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ---------------------------------------------------------------------------
// Geocoding
// ---------------------------------------------------------------------------

type Place struct {
	FullAddress string  `json:"fullAddress"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"countryCode"`
}
