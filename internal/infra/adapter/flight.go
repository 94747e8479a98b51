package adapter

import (
	"context"
	"net/url"
	"strconv"

	"travel-core/internal/infra/provider"
)

const dateLayout = "2006-01-02"

type FlightAdapter struct {
	client *Client
}

func NewFlightAdapter(client *Client) *FlightAdapter {
	return &FlightAdapter{client: client}
}

func (a *FlightAdapter) SearchFares(ctx context.Context, query provider.FlightQuery) ([]provider.FlightFare, error) {
	params := url.Values{}
	params.Set("origin", query.Origin)
	params.Set("destination", query.Destination)
	params.Set("departure_date", query.DepartureDate.Format(dateLayout))
	if query.ReturnDate != nil {
		params.Set("return_date", query.ReturnDate.Format(dateLayout))
	}
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("service_class", query.ServiceClass)
	params.Set("trip_type", string(query.TripType))

	var fares []provider.FlightFare
	if err := a.client.getJSON(ctx, "/flights/search", params, &fares); err != nil {
		return nil, err
	}
	return fares, nil
}

func (a *FlightAdapter) CheapestDeals(ctx context.Context, query provider.DealQuery) ([]provider.FlightDeal, error) {
	params := url.Values{}
	params.Set("departure_date", query.DepartureDate.Format(dateLayout))
	if query.OriginLat != nil && query.OriginLng != nil {
		params.Set("lat", strconv.FormatFloat(*query.OriginLat, 'f', -1, 64))
		params.Set("lng", strconv.FormatFloat(*query.OriginLng, 'f', -1, 64))
	}

	var deals []provider.FlightDeal
	if err := a.client.getJSON(ctx, "/flights/deals", params, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}
