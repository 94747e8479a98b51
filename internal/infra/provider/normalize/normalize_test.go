//go:build unit

package normalize_test

import (
	"testing"
	"time"

	"travel-core/internal/domain/offer"
	"travel-core/internal/infra/provider"
	"travel-core/internal/infra/provider/normalize"
	"travel-core/internal/pkg/currency"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func testContext(adults int) normalize.Context {
	return normalize.Context{
		Adults: adults,
		Converter: currency.NewConverterWithRates("VND", map[string]decimal.Decimal{
			"VND": decimal.NewFromInt(1),
			"USD": decimal.NewFromInt(25000),
		}),
	}
}

func segment(dep, arr string, departAt time.Time, hours int) provider.Segment {
	return provider.Segment{
		DepartureAirport: dep,
		DepartureAt:      departAt,
		ArrivalAirport:   arr,
		ArrivalAt:        departAt.Add(time.Duration(hours) * time.Hour),
		CarrierCode:      "VN",
	}
}

func TestFlight_OneWayTwoAdults(t *testing.T) {
	// Scenario: HAN→SGN, 2 adults; invariant total == perPassenger * capacity.
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	raw := provider.FlightFare{
		ID:          "fare-1",
		Itineraries: []provider.Itinerary{{Segments: []provider.Segment{segment("HAN", "SGN", depart, 2)}}},
		Price:       &provider.FarePrice{GrandTotal: 3000000, Currency: "VND"},
	}

	got, err := normalize.Flight(raw, testContext(2))
	require.NoError(t, err)

	expected := offer.Offer{
		ID:   "fare-1",
		Kind: offer.KindFlight,
		Legs: []offer.Leg{{
			Origin: "HAN", Destination: "SGN",
			DepartAt: depart, ArriveAt: depart.Add(2 * time.Hour),
			Carrier: "VN", DurationMin: 120, Stops: 0,
		}},
		Price:          offer.Price{TotalMinor: 3000000, PerPassengerMinor: 1500000, Currency: "VND"},
		SourceCurrency: "VND",
		SourceAmount:   decimal.NewFromInt(3000000),
		CapacityHint:   2,
	}
	if diff := cmp.Diff(expected, got, cmpOpts...); diff != "" {
		t.Errorf("Offer mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, got.Price.TotalMinor, got.Price.PerPassengerMinor*int64(got.CapacityHint))
	assert.NoError(t, got.Validate())
}

func TestFlight_RoundTripHasTwoLegs(t *testing.T) {
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	back := depart.AddDate(0, 0, 3)
	raw := provider.FlightFare{
		ID: "fare-rt",
		Itineraries: []provider.Itinerary{
			{Segments: []provider.Segment{
				segment("HAN", "BKK", depart, 1),
				segment("BKK", "SIN", depart.Add(2*time.Hour), 2),
			}},
			{Segments: []provider.Segment{segment("SIN", "HAN", back, 3)}},
		},
		Price: &provider.FarePrice{GrandTotal: 200, Currency: "USD"},
	}

	got, err := normalize.Flight(raw, testContext(1))
	require.NoError(t, err)

	require.Len(t, got.Legs, 2)
	assert.Equal(t, "HAN", got.Legs[0].Origin)
	assert.Equal(t, "SIN", got.Legs[0].Destination, "outbound destination = last segment arrival")
	assert.Equal(t, 1, got.Legs[0].Stops)
	assert.Equal(t, 0, got.Legs[1].Stops)
	assert.Equal(t, int64(5000000), got.Price.TotalMinor, "USD converted to display currency")
	assert.Equal(t, "USD", got.SourceCurrency)
}

func TestFlight_PerTravelerPricingsPreferred(t *testing.T) {
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	raw := provider.FlightFare{
		ID:          "fare-tp",
		Itineraries: []provider.Itinerary{{Segments: []provider.Segment{segment("HAN", "SGN", depart, 2)}}},
		Price:       &provider.FarePrice{GrandTotal: 999, Currency: "VND"}, // grand total ignored when entries exist
		TravelerPricings: []provider.TravelerPricing{
			{Total: 1200000}, {Total: 1200000}, {Total: 600000},
		},
	}

	got, err := normalize.Flight(raw, testContext(2))
	require.NoError(t, err)

	assert.Equal(t, 3, got.CapacityHint, "capacity follows pricing entries, not the search")
	assert.Equal(t, int64(3000000), got.Price.TotalMinor)
	assert.Equal(t, int64(1000000), got.Price.PerPassengerMinor)
}

func TestFlight_MalformedRecords(t *testing.T) {
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	valid := provider.Itinerary{Segments: []provider.Segment{segment("HAN", "SGN", depart, 2)}}

	tests := []struct {
		name  string
		raw   provider.FlightFare
		errIs error
	}{
		{
			name:  "itinerariesなし",
			raw:   provider.FlightFare{ID: "x", Price: &provider.FarePrice{GrandTotal: 1, Currency: "VND"}},
			errIs: normalize.ErrNoItineraries,
		},
		{
			name:  "価格ブロックなし",
			raw:   provider.FlightFare{ID: "x", Itineraries: []provider.Itinerary{valid}},
			errIs: normalize.ErrMissingPrice,
		},
		{
			name:  "空セグメント",
			raw:   provider.FlightFare{ID: "x", Itineraries: []provider.Itinerary{{}}, Price: &provider.FarePrice{GrandTotal: 1, Currency: "VND"}},
			errIs: normalize.ErrEmptySegments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize.Flight(tt.raw, testContext(1))
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestFlights_SkipsBadRecordKeepsSiblings(t *testing.T) {
	// One record without a price must not poison the batch.
	depart := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	valid := provider.FlightFare{
		ID:          "good",
		Itineraries: []provider.Itinerary{{Segments: []provider.Segment{segment("HAN", "SGN", depart, 2)}}},
		Price:       &provider.FarePrice{GrandTotal: 1000000, Currency: "VND"},
	}
	broken := provider.FlightFare{
		ID:          "bad",
		Itineraries: []provider.Itinerary{{Segments: []provider.Segment{segment("HAN", "SGN", depart, 2)}}},
	}

	offers := normalize.Flights([]provider.FlightFare{broken, valid}, testContext(1))

	require.Len(t, offers, 1)
	assert.Equal(t, "good", offers[0].ID)
}

func TestHotel(t *testing.T) {
	checkIn := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)
	raw := provider.HotelProperty{
		HotelID:   "htl-1",
		Name:      "Riverside Hotel",
		CityCode:  "SGN",
		Amenities: []string{"wifi", "pool"},
		Offers: []provider.HotelRate{
			{CheckIn: checkIn, CheckOut: checkOut, Total: 120, Currency: "USD", RoomType: "DELUXE"},
			{CheckIn: checkIn, CheckOut: checkOut, Total: 150, Currency: "USD", RoomType: "SUITE"},
		},
	}

	got, err := normalize.Hotel(raw, testContext(2))
	require.NoError(t, err)

	assert.Equal(t, offer.KindHotel, got.Kind)
	assert.Equal(t, 1, got.CapacityHint, "hotels price per booking unit")
	assert.Equal(t, int64(3000000), got.Price.TotalMinor, "first (best) rate wins")
	require.Len(t, got.Legs, 1)
	assert.Equal(t, checkIn, got.Legs[0].DepartAt)
	assert.Equal(t, checkOut, got.Legs[0].ArriveAt)
	assert.Equal(t, "DELUXE", got.Metadata["roomType"])
	assert.Equal(t, "wifi,pool", got.Metadata["amenities"])
}

func TestHotel_NoRates(t *testing.T) {
	_, err := normalize.Hotel(provider.HotelProperty{HotelID: "htl-2"}, testContext(1))
	assert.ErrorIs(t, err, normalize.ErrNoRates)
}

func TestCarRental(t *testing.T) {
	pickupAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	raw := provider.CarOffer{
		ID:       "car-1",
		Vehicle:  "Toyota Vios",
		Pickup:   provider.CarLocation{Code: "SGN"},
		Dropoff:  provider.CarLocation{Address: "District 1, HCMC"},
		PickupAt: pickupAt,
		DropoffAt: pickupAt.AddDate(0, 0, 1),
		Price:    &provider.CarPrice{Amount: 850000, Currency: "VND"},
	}

	got, err := normalize.CarRental(raw, testContext(3))
	require.NoError(t, err)

	assert.Equal(t, offer.KindCarRental, got.Kind)
	assert.Equal(t, 1, got.CapacityHint)
	assert.Equal(t, int64(850000), got.Price.TotalMinor)
	assert.Equal(t, "SGN", got.Legs[0].Origin)
	assert.Equal(t, "District 1, HCMC", got.Legs[0].Destination)
	assert.Equal(t, "Toyota Vios", got.Metadata["vehicle"])
}

func TestCarTransfer(t *testing.T) {
	pickupAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	base := provider.CarOffer{
		ID:        "tr-1",
		Pickup:    provider.CarLocation{Code: "SGN"},
		Dropoff:   provider.CarLocation{Address: "Vung Tau"},
		PickupAt:  pickupAt,
		DropoffAt: pickupAt.Add(2 * time.Hour),
	}

	t.Run("convertedブロック優先", func(t *testing.T) {
		raw := base
		raw.Converted = &provider.CarPrice{Amount: 500000, Currency: "VND"}
		raw.Quotation = &provider.CarPrice{Amount: 20, Currency: "USD"}

		got, err := normalize.CarTransfer(raw, testContext(2))
		require.NoError(t, err)
		assert.Equal(t, int64(500000), got.Price.TotalMinor)
		assert.Equal(t, int64(250000), got.Price.PerPassengerMinor)
		assert.Equal(t, 2, got.CapacityHint)
	})

	t.Run("convertedなしはquotationへフォールバック", func(t *testing.T) {
		raw := base
		raw.Quotation = &provider.CarPrice{Amount: 20, Currency: "USD"}

		got, err := normalize.CarTransfer(raw, testContext(1))
		require.NoError(t, err)
		assert.Equal(t, int64(500000), got.Price.TotalMinor)
		assert.Equal(t, "USD", got.SourceCurrency)
	})

	t.Run("マイル距離はキロに換算", func(t *testing.T) {
		raw := base
		raw.Converted = &provider.CarPrice{Amount: 500000, Currency: "VND"}
		raw.DistanceValue = 10
		raw.DistanceUnit = "MI"

		got, err := normalize.CarTransfer(raw, testContext(1))
		require.NoError(t, err)
		assert.Equal(t, 16.1, got.Legs[0].DistanceKm) // round(10 * 1.60934, 1)
	})

	t.Run("価格ブロックなしNG", func(t *testing.T) {
		_, err := normalize.CarTransfer(base, testContext(1))
		assert.ErrorIs(t, err, normalize.ErrMissingPrice)
	})
}

func TestByKind_DispatchTable(t *testing.T) {
	for _, kind := range []offer.Kind{offer.KindFlight, offer.KindHotel, offer.KindCarRental, offer.KindCarTransfer} {
		fn, ok := normalize.ByKind(kind)
		require.True(t, ok, "kind %s", kind)
		_, err := fn(struct{}{}, testContext(1))
		assert.ErrorIs(t, err, normalize.ErrUnsupportedKind, "wrong raw type must be rejected")
	}

	_, ok := normalize.ByKind(offer.Kind("cruise"))
	assert.False(t, ok)
}
