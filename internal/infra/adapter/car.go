package adapter

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"travel-core/internal/infra/provider"
)

type CarAdapter struct {
	client *Client
}

func NewCarAdapter(client *Client) *CarAdapter {
	return &CarAdapter{client: client}
}

func (a *CarAdapter) SearchOffers(ctx context.Context, query provider.CarQuery) ([]provider.CarOffer, error) {
	params := url.Values{}
	params.Set("service_type", string(query.ServiceType))
	encodeLocation(params, "pickup", query.Pickup)
	if query.ServiceType == provider.CarTransfer {
		encodeLocation(params, "dropoff", query.Dropoff)
	}
	params.Set("pickup_at", query.PickupAt.Format(time.RFC3339))
	if query.DropoffAt != nil {
		params.Set("dropoff_at", query.DropoffAt.Format(time.RFC3339))
	}
	params.Set("passengers", strconv.Itoa(query.Passengers))

	var offers []provider.CarOffer
	if err := a.client.getJSON(ctx, "/cars/search", params, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// encodeLocation flattens a car location into query parameters. IATA
// codes and free-form addresses are mutually exclusive on the gateway
// side, so only one of the two is sent.
func encodeLocation(params url.Values, prefix string, loc provider.CarLocation) {
	if loc.Code != "" {
		params.Set(prefix+"_code", loc.Code)
		return
	}
	params.Set(prefix+"_address", loc.Address)
	if loc.Latitude != 0 || loc.Longitude != 0 {
		params.Set(prefix+"_lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		params.Set(prefix+"_lng", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	}
}
