package request

import (
	"strings"
	"time"

	"travel-core/internal/infra/provider"
)

const dateLayout = "2006-01-02"

type FlightSearchRequest struct {
	Origin        string `form:"origin" binding:"required,len=3,alpha"`
	Destination   string `form:"destination" binding:"required,len=3,alpha"`
	DepartureDate string `form:"departure_date" binding:"required"`
	ReturnDate    string `form:"return_date"`
	Passengers    int    `form:"passengers,default=1" binding:"min=1,max=9"`
	ServiceClass  string `form:"service_class,default=economy"`
	TripType      string `form:"trip_type,default=one-way" binding:"oneof=one-way round-trip"`
}

// ToQuery parses the date fields into the adapter query. A round-trip
// request without a return date is rejected here rather than at the
// provider.
func (r FlightSearchRequest) ToQuery() (provider.FlightQuery, error) {
	depart, err := time.Parse(dateLayout, r.DepartureDate)
	if err != nil {
		return provider.FlightQuery{}, err
	}

	q := provider.FlightQuery{
		Origin:        strings.ToUpper(r.Origin),
		Destination:   strings.ToUpper(r.Destination),
		DepartureDate: depart,
		Adults:        r.Passengers,
		ServiceClass:  strings.ToLower(r.ServiceClass),
		TripType:      provider.TripType(r.TripType),
	}

	if r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, r.ReturnDate)
		if err != nil {
			return provider.FlightQuery{}, err
		}
		q.ReturnDate = &ret
	}

	return q, nil
}

type CheapFlightScanRequest struct {
	Lat *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Lng *float64 `form:"lng" binding:"omitempty,min=-180,max=180"`
}

type HotelSearchRequest struct {
	Location string `form:"location" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
	Guests   int    `form:"guests,default=1" binding:"min=1,max=9"`
	Rooms    int    `form:"rooms,default=1" binding:"min=1,max=9"`
}

func (r HotelSearchRequest) ToQuery() (provider.HotelQuery, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return provider.HotelQuery{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return provider.HotelQuery{}, err
	}

	return provider.HotelQuery{
		Location: strings.ToUpper(strings.TrimSpace(r.Location)),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   r.Guests,
		Rooms:    r.Rooms,
	}, nil
}

type CarSearchRequest struct {
	ServiceType string   `form:"service_type" binding:"required,oneof=rental transfer"`
	Pickup      string   `form:"pickup" binding:"required"`
	Dropoff     string   `form:"dropoff"`
	PickupLat   *float64 `form:"pickup_lat"`
	PickupLng   *float64 `form:"pickup_lng"`
	DropoffLat  *float64 `form:"dropoff_lat"`
	DropoffLng  *float64 `form:"dropoff_lng"`
	PickupDate  string   `form:"pickup_date" binding:"required"`
	DropoffDate string   `form:"dropoff_date"`
	Passengers  int      `form:"passengers,default=1" binding:"min=1,max=9"`
}

// ToQuery maps pickup/dropoff to locations: a 3-letter value is treated
// as an airport/city code, anything longer as a free-text address.
func (r CarSearchRequest) ToQuery() (provider.CarQuery, error) {
	pickupAt, err := time.Parse(dateLayout, r.PickupDate)
	if err != nil {
		return provider.CarQuery{}, err
	}

	q := provider.CarQuery{
		ServiceType: provider.CarServiceType(r.ServiceType),
		Pickup:      toCarLocation(r.Pickup, r.PickupLat, r.PickupLng),
		Dropoff:     toCarLocation(r.Dropoff, r.DropoffLat, r.DropoffLng),
		PickupAt:    pickupAt,
		Passengers:  r.Passengers,
	}

	if r.DropoffDate != "" {
		dropoffAt, err := time.Parse(dateLayout, r.DropoffDate)
		if err != nil {
			return provider.CarQuery{}, err
		}
		q.DropoffAt = &dropoffAt
	}

	return q, nil
}

func toCarLocation(value string, lat, lng *float64) provider.CarLocation {
	loc := provider.CarLocation{}
	value = strings.TrimSpace(value)
	if len(value) == 3 {
		loc.Code = strings.ToUpper(value)
	} else {
		loc.Address = value
	}
	if lat != nil && lng != nil {
		loc.Latitude = *lat
		loc.Longitude = *lng
	}
	return loc
}

type GeocodeRequest struct {
	Query string `form:"q" binding:"required,min=3"`
}
