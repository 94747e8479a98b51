package adapter

import (
	"context"
	"net/url"
	"strconv"

	"travel-core/internal/infra/provider"
)

type HotelAdapter struct {
	client *Client
}

func NewHotelAdapter(client *Client) *HotelAdapter {
	return &HotelAdapter{client: client}
}

func (a *HotelAdapter) SearchProperties(ctx context.Context, query provider.HotelQuery) ([]provider.HotelProperty, error) {
	params := url.Values{}
	params.Set("location", query.Location)
	params.Set("check_in", query.CheckIn.Format(dateLayout))
	params.Set("check_out", query.CheckOut.Format(dateLayout))
	params.Set("guests", strconv.Itoa(query.Guests))
	params.Set("rooms", strconv.Itoa(query.Rooms))

	var properties []provider.HotelProperty
	if err := a.client.getJSON(ctx, "/hotels/search", params, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}
