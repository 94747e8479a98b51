package adapter

import (
	"context"
	"net/url"

	"travel-core/internal/infra/provider"
)

type GeocodeAdapter struct {
	client *Client
}

func NewGeocodeAdapter(client *Client) *GeocodeAdapter {
	return &GeocodeAdapter{client: client}
}

func (a *GeocodeAdapter) Autocomplete(ctx context.Context, query string) ([]provider.Place, error) {
	params := url.Values{}
	params.Set("q", query)

	var places []provider.Place
	if err := a.client.getJSON(ctx, "/geocode", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}
