package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-core/internal/domain/offer"
	reqdto "travel-core/internal/handler/dto/request"
	"travel-core/internal/infra/provider"
	"travel-core/internal/infra/provider/normalize"
	"travel-core/internal/pkg/cache"
	"travel-core/internal/pkg/config"
	"travel-core/internal/pkg/currency"
	"travel-core/internal/pkg/errs"
)

var (
	ErrInvalidSearchQuery  = errors.New("invalid search query")
	ErrProviderFailed      = errors.New("provider call failed")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// Adapter contracts. The concrete HTTP clients live in
// internal/infra/adapter; stubs and mocks satisfy these in tests.
type FlightProvider interface {
	SearchFares(ctx context.Context, query provider.FlightQuery) ([]provider.FlightFare, error)
	CheapestDeals(ctx context.Context, query provider.DealQuery) ([]provider.FlightDeal, error)
}

type HotelProvider interface {
	SearchProperties(ctx context.Context, query provider.HotelQuery) ([]provider.HotelProperty, error)
}

type CarProvider interface {
	SearchOffers(ctx context.Context, query provider.CarQuery) ([]provider.CarOffer, error)
}

type GeocodeProvider interface {
	Autocomplete(ctx context.Context, query string) ([]provider.Place, error)
}

type SearchUseCase interface {
	SearchFlights(ctx context.Context, req reqdto.FlightSearchRequest) ([]offer.Offer, error)
	SearchHotels(ctx context.Context, req reqdto.HotelSearchRequest) ([]offer.Offer, error)
	SearchCars(ctx context.Context, req reqdto.CarSearchRequest) ([]offer.Offer, error)
	Geocode(ctx context.Context, query string) ([]provider.Place, error)
}

type searchUseCaseImpl struct {
	flights   FlightProvider
	hotels    HotelProvider
	cars      CarProvider
	geocoder  GeocodeProvider
	offers    *cache.Loader[[]offer.Offer]
	places    *cache.Loader[[]provider.Place]
	converter *currency.Converter
	cfg       config.SearchConfig
}

func NewSearchUseCase(
	flights FlightProvider,
	hotels HotelProvider,
	cars CarProvider,
	geocoder GeocodeProvider,
	offers *cache.Loader[[]offer.Offer],
	places *cache.Loader[[]provider.Place],
	converter *currency.Converter,
	cfg config.SearchConfig,
) SearchUseCase {
	return &searchUseCaseImpl{
		flights:   flights,
		hotels:    hotels,
		cars:      cars,
		geocoder:  geocoder,
		offers:    offers,
		places:    places,
		converter: converter,
		cfg:       cfg,
	}
}

func (s *searchUseCaseImpl) SearchFlights(ctx context.Context, req reqdto.FlightSearchRequest) ([]offer.Offer, error) {
	query, err := req.ToQuery()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchQuery)
	}
	if query.Origin == query.Destination {
		return nil, errs.Mark(errs.New("origin and destination must differ"), ErrInvalidSearchQuery)
	}
	if query.TripType == provider.TripRoundTrip && query.ReturnDate == nil {
		return nil, errs.Mark(errs.New("round-trip search requires return_date"), ErrInvalidSearchQuery)
	}

	key := flightKey(query)
	nctx := normalize.Context{Adults: query.Adults, Converter: s.converter}

	return s.offers.GetOrFetch(ctx, key, s.cfg.ResultTTL, func(ctx context.Context) ([]offer.Offer, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()

		fares, err := s.flights.SearchFares(ctx, query)
		if err != nil {
			return nil, markProviderErr(err)
		}
		return normalize.Flights(fares, nctx), nil
	})
}

func (s *searchUseCaseImpl) SearchHotels(ctx context.Context, req reqdto.HotelSearchRequest) ([]offer.Offer, error) {
	query, err := req.ToQuery()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchQuery)
	}
	if !query.CheckOut.After(query.CheckIn) {
		return nil, errs.Mark(errs.New("check_out must be after check_in"), ErrInvalidSearchQuery)
	}

	key := fmt.Sprintf("hotels:%s:%s:%s:%d:%d",
		query.Location, query.CheckIn.Format("2006-01-02"), query.CheckOut.Format("2006-01-02"),
		query.Guests, query.Rooms)
	nctx := normalize.Context{Adults: query.Guests, Converter: s.converter}

	return s.offers.GetOrFetch(ctx, key, s.cfg.ResultTTL, func(ctx context.Context) ([]offer.Offer, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()

		properties, err := s.hotels.SearchProperties(ctx, query)
		if err != nil {
			return nil, markProviderErr(err)
		}
		return normalize.Hotels(properties, nctx), nil
	})
}

func (s *searchUseCaseImpl) SearchCars(ctx context.Context, req reqdto.CarSearchRequest) ([]offer.Offer, error) {
	query, err := req.ToQuery()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSearchQuery)
	}
	if query.ServiceType == provider.CarTransfer && query.Dropoff == (provider.CarLocation{}) {
		return nil, errs.Mark(errs.New("transfer search requires dropoff"), ErrInvalidSearchQuery)
	}

	key := carKey(query)
	nctx := normalize.Context{Adults: query.Passengers, Converter: s.converter}

	return s.offers.GetOrFetch(ctx, key, s.cfg.ResultTTL, func(ctx context.Context) ([]offer.Offer, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()

		raws, err := s.cars.SearchOffers(ctx, query)
		if err != nil {
			return nil, markProviderErr(err)
		}
		if query.ServiceType == provider.CarTransfer {
			return normalize.CarTransfers(raws, nctx), nil
		}
		return normalize.CarRentals(raws, nctx), nil
	})
}

// Geocode caches autocomplete results per normalized query string.
// Place data is near-static, so the TTL is much longer than for offers.
func (s *searchUseCaseImpl) Geocode(ctx context.Context, query string) ([]provider.Place, error) {
	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, errs.Mark(errs.New("geocode query must be at least 3 characters"), ErrInvalidSearchQuery)
	}

	key := "geocode:" + strings.ToLower(query)

	return s.places.GetOrFetch(ctx, key, s.cfg.GeocodeTTL, func(ctx context.Context) ([]provider.Place, error) {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()

		places, err := s.geocoder.Autocomplete(ctx, query)
		if err != nil {
			return nil, markProviderErr(err)
		}
		return places, nil
	})
}

func flightKey(q provider.FlightQuery) string {
	ret := "-"
	if q.ReturnDate != nil {
		ret = q.ReturnDate.Format("2006-01-02")
	}
	return fmt.Sprintf("flights:%s:%s:%s:%s:%d:%s:%s",
		q.Origin, q.Destination, q.DepartureDate.Format("2006-01-02"), ret,
		q.Adults, q.ServiceClass, q.TripType)
}

func carKey(q provider.CarQuery) string {
	dropoffAt := "-"
	if q.DropoffAt != nil {
		dropoffAt = q.DropoffAt.Format("2006-01-02")
	}
	return fmt.Sprintf("cars:%s:%s:%s:%s:%s:%d",
		q.ServiceType, locationKey(q.Pickup), locationKey(q.Dropoff),
		q.PickupAt.Format("2006-01-02"), dropoffAt, q.Passengers)
}

func locationKey(loc provider.CarLocation) string {
	if loc.Code != "" {
		return loc.Code
	}
	if loc.Address != "" {
		return strings.ToLower(strings.ReplaceAll(loc.Address, " ", "_"))
	}
	return fmt.Sprintf("%.4f,%.4f", loc.Latitude, loc.Longitude)
}

func markProviderErr(err error) error {
	if errors.Is(err, provider.ErrRateLimited) {
		return errs.Mark(err, ErrProviderRateLimited)
	}
	return errs.Mark(err, ErrProviderFailed)
}
