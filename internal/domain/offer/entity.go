package offer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyLegs         = errors.New("offer has no legs")
	ErrInvalidKind       = errors.New("invalid offer kind")
	ErrMissingID         = errors.New("offer id is required")
	ErrInvalidPrice      = errors.New("invalid offer price")
	ErrInvalidCapacity   = errors.New("invalid capacity hint")
	ErrPriceInconsistent = errors.New("total price does not match per-passenger price")
)

// Leg is one directional segment of travel or stay: an outbound or
// return flight, a hotel stay window, or a car pickup/dropoff.
type Leg struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartAt    time.Time `json:"departAt"`
	ArriveAt    time.Time `json:"arriveAt"`
	Carrier     string    `json:"carrier,omitempty"`
	DurationMin int       `json:"durationMin,omitempty"`
	Stops       int       `json:"stops"`
	DistanceKm  float64   `json:"distanceKm,omitempty"`
}

// Price holds amounts in minor units of the display currency. No
// floating point: conversion happens once, in the normalizer.
type Price struct {
	TotalMinor        int64  `json:"totalMinor"`
	PerPassengerMinor int64  `json:"perPassengerMinor"`
	Currency          string `json:"currency"`
}

// Offer is a normalized, provider-agnostic quote. IDs are provider-origin
// and stable only for the lifetime of one search result set.
type Offer struct {
	ID             string            `json:"id"`
	Kind           Kind              `json:"kind"`
	Legs           []Leg             `json:"legs"`
	Price          Price             `json:"price"`
	SourceCurrency string            `json:"sourceCurrency"`
	SourceAmount   decimal.Decimal   `json:"sourceAmount"`
	CapacityHint   int               `json:"capacityHint"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// Validate enforces the pricing invariants. For per-traveler kinds the
// total must equal perPassenger * capacityHint within one minor unit per
// passenger of rounding slack; per-unit kinds carry a flat total with
// capacityHint = 1.
func (o Offer) Validate() error {
	if o.ID == "" {
		return ErrMissingID
	}
	if !o.Kind.IsValid() {
		return ErrInvalidKind
	}
	if len(o.Legs) == 0 {
		return ErrEmptyLegs
	}
	if o.Price.TotalMinor < 0 || o.Price.PerPassengerMinor < 0 || o.Price.Currency == "" {
		return ErrInvalidPrice
	}
	if o.CapacityHint < 1 {
		return ErrInvalidCapacity
	}

	if o.Kind.PricedPerTraveler() {
		diff := o.Price.TotalMinor - o.Price.PerPassengerMinor*int64(o.CapacityHint)
		if diff < 0 {
			diff = -diff
		}
		if diff > int64(o.CapacityHint) {
			return ErrPriceInconsistent
		}
	}
	return nil
}
