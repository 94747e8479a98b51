package offer

type Kind string

const (
	KindFlight      Kind = "flight"
	KindHotel       Kind = "hotel"
	KindCarRental   Kind = "car-rental"
	KindCarTransfer Kind = "car-transfer"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindFlight, KindHotel, KindCarRental, KindCarTransfer:
		return true
	default:
		return false
	}
}

// PricedPerTraveler reports whether the kind's total is a per-traveler
// multiple. Hotels and rentals are priced per booking unit instead.
func (k Kind) PricedPerTraveler() bool {
	return k == KindFlight || k == KindCarTransfer
}
